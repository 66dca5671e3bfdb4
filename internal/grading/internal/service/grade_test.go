// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"testing"

	"github.com/ecodeclub/vibecode/internal/grading/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newSvc() GradeService {
	return NewGradeService(nil)
}

func TestGradeService_StartGrade(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		yearsExp    float64
		selfClaimed domain.Grade
		resume      domain.Grade
		want        domain.Grade
	}{
		{
			name:        "应届生自称 junior",
			yearsExp:    0.3,
			selfClaimed: domain.GradeJunior,
			want:        domain.GradeJunior,
		},
		{
			// round(0.5*3 + 0.3*2 + 0.2*2) = round(2.5) = 3
			name:        "五年经验自称 middle",
			yearsExp:    5,
			selfClaimed: domain.GradeMiddle,
			want:        domain.GradeMiddlePlus,
		},
		{
			name:        "简历信号拉高开场定级",
			yearsExp:    5,
			selfClaimed: domain.GradeMiddle,
			resume:      domain.GradeSenior,
			want:        domain.GradeMiddlePlus,
		},
		{
			name:        "全顶格",
			yearsExp:    10,
			selfClaimed: domain.GradeSenior,
			resume:      domain.GradeSenior,
			want:        domain.GradeSenior,
		},
		{
			name:        "未识别的自称职级按 middle 算",
			yearsExp:    2,
			selfClaimed: domain.Grade("staff engineer"),
			want:        domain.GradeMiddle,
		},
	}
	svc := newSvc()
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, svc.StartGrade(tc.yearsExp, tc.selfClaimed, tc.resume))
		})
	}
}

func TestGradeService_TheoryScore(t *testing.T) {
	t.Parallel()
	svc := newSvc()
	assert.Equal(t, 0.0, svc.TheoryScore(nil))
	assert.InDelta(t, 75.0, svc.TheoryScore([]float64{1, 0.5, 0.75}), 0.001)
	assert.Equal(t, 100.0, svc.TheoryScore([]float64{1, 1}))
}

func TestGradeService_OverallScore(t *testing.T) {
	t.Parallel()
	svc := newSvc()
	assert.InDelta(t, 79.0, svc.OverallScore(85, 65), 0.001)
	assert.Equal(t, 0.0, svc.OverallScore(0, 0))
}

func TestGradeService_FinalGrade(t *testing.T) {
	t.Parallel()
	svc := newSvc()
	testCases := []struct {
		name        string
		overall     float64
		yearsExp    float64
		selfClaimed domain.Grade
		want        domain.Grade
	}{
		{
			// round(0.6*4 + 0.25*4 + 0.15*4) = 4
			name:        "全维度顶格",
			overall:     90,
			yearsExp:    10,
			selfClaimed: domain.GradeSenior,
			want:        domain.GradeSenior,
		},
		{
			// round(0.6*0 + 0.25*0 + 0.15*0) = 0
			name:        "全维度垫底",
			overall:     10,
			yearsExp:    0.2,
			selfClaimed: domain.GradeJunior,
			want:        domain.GradeJunior,
		},
		{
			// round(0.6*2 + 0.25*2 + 0.15*2) = 2
			name:        "表现经验自称都在 middle",
			overall:     60,
			yearsExp:    2,
			selfClaimed: domain.GradeMiddle,
			want:        domain.GradeMiddle,
		},
		{
			// round(0.6*1 + 0.25*4 + 0.15*4) = round(2.2) = 2：经验托不起糟糕的表现
			name:        "资深经验但表现差",
			overall:     45,
			yearsExp:    8,
			selfClaimed: domain.GradeSenior,
			want:        domain.GradeMiddle,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, svc.FinalGrade(tc.overall, tc.yearsExp, tc.selfClaimed))
		})
	}
}

// 任意输入组合下职级下标都落在 [0,4]
func TestGradeService_FinalGrade_AlwaysClamped(t *testing.T) {
	t.Parallel()
	svc := newSvc()
	grades := []domain.Grade{domain.GradeJunior, domain.GradeSenior, domain.Grade("???"), ""}
	for _, overall := range []float64{-50, 0, 42, 99, 1000} {
		for _, exp := range []float64{-1, 0, 2, 7, 40} {
			for _, self := range grades {
				idx := svc.FinalGrade(overall, exp, self).Index()
				assert.GreaterOrEqual(t, idx, 0)
				assert.LessOrEqual(t, idx, 4)
			}
		}
	}
}

func TestGradeService_Progress(t *testing.T) {
	t.Parallel()
	svc := newSvc()
	t.Run("middle 的进度", func(t *testing.T) {
		t.Parallel()
		// middle 区间 [50,75)
		percent, points := svc.Progress(60, domain.GradeMiddle)
		assert.InDelta(t, 40.0, percent, 0.001)
		assert.InDelta(t, 15.0, points, 0.001)
	})
	t.Run("低于本档门槛进度为 0", func(t *testing.T) {
		t.Parallel()
		percent, _ := svc.Progress(30, domain.GradeMiddle)
		assert.Equal(t, 0.0, percent)
	})
	t.Run("顶档恒为 100", func(t *testing.T) {
		t.Parallel()
		percent, points := svc.Progress(20, domain.GradeSenior)
		assert.Equal(t, 100.0, percent)
		assert.Equal(t, 0.0, points)
	})
}

func TestGradeService_FourLevel(t *testing.T) {
	t.Parallel()
	svc := newSvc()
	t.Run("经验映射", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, domain.FourLevelIntern, svc.ExperienceToFourLevel(0.2))
		assert.Equal(t, domain.FourLevelJunior, svc.ExperienceToFourLevel(1))
		assert.Equal(t, domain.FourLevelMiddle, svc.ExperienceToFourLevel(2))
		assert.Equal(t, domain.FourLevelSenior, svc.ExperienceToFourLevel(5))
	})
	t.Run("分数映射用四档自己的门槛表", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, domain.FourLevelIntern, svc.ScoreToFourLevel(20))
		assert.Equal(t, domain.FourLevelJunior, svc.ScoreToFourLevel(40))
		assert.Equal(t, domain.FourLevelMiddle, svc.ScoreToFourLevel(60))
		assert.Equal(t, domain.FourLevelSenior, svc.ScoreToFourLevel(80))
	})
	t.Run("四档换算五档", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, domain.GradeJunior, domain.FourLevelIntern.ToFiveLevel())
		assert.Equal(t, domain.GradeJunior, domain.FourLevelJunior.ToFiveLevel())
		assert.Equal(t, domain.GradeMiddle, domain.FourLevelMiddle.ToFiveLevel())
		assert.Equal(t, domain.GradeSenior, domain.FourLevelSenior.ToFiveLevel())
	})
}
