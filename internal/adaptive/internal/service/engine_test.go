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

	"github.com/ecodeclub/vibecode/internal/adaptive/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEngineService_IsStrongPass(t *testing.T) {
	svc := NewEngineService()
	testCases := []struct {
		name    string
		result  domain.TaskResult
		wantRes bool
	}{
		{
			name: "easy难度_可见全过_总通过率90%_一个medium提示",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyEasy,
				VisiblePassed: 3,
				VisibleTotal:  3,
				HiddenPassed:  9,
				HiddenTotal:   10,
				HintsMedium:   1,
			},
			wantRes: true,
		},
		{
			name: "easy难度_用了hard提示",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyEasy,
				VisiblePassed: 3,
				VisibleTotal:  3,
				HiddenPassed:  10,
				HiddenTotal:   10,
				HintsHard:     1,
			},
			wantRes: false,
		},
		{
			name: "middle难度_两个medium提示",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyMiddle,
				VisiblePassed: 3,
				VisibleTotal:  3,
				HiddenPassed:  10,
				HiddenTotal:   10,
				HintsMedium:   2,
			},
			wantRes: false,
		},
		{
			name: "middle难度_总通过率不足90%",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyMiddle,
				VisiblePassed: 3,
				VisibleTotal:  3,
				HiddenPassed:  5,
				HiddenTotal:   10,
			},
			wantRes: false,
		},
		{
			name: "hard难度_总通过率75%即可_提示不计",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyHard,
				VisiblePassed: 2,
				VisibleTotal:  2,
				HiddenPassed:  4,
				HiddenTotal:   6,
				HintsHard:     3,
			},
			wantRes: true,
		},
		{
			name: "hard难度_可见没全过",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyHard,
				VisiblePassed: 1,
				VisibleTotal:  2,
				HiddenPassed:  6,
				HiddenTotal:   6,
			},
			wantRes: false,
		},
		{
			name: "零用例不会除零",
			result: domain.TaskResult{
				Difficulty: domain.DifficultyEasy,
			},
			wantRes: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, svc.IsStrongPass(tc.result))
		})
	}
}

func TestEngineService_IsFail(t *testing.T) {
	svc := NewEngineService()
	testCases := []struct {
		name    string
		result  domain.TaskResult
		wantRes bool
	}{
		{
			name: "可见通过率不足60%",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyMiddle,
				VisiblePassed: 1,
				VisibleTotal:  3,
				HiddenPassed:  8,
				HiddenTotal:   10,
			},
			wantRes: true,
		},
		{
			name: "总通过率不足50%",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyMiddle,
				VisiblePassed: 3,
				VisibleTotal:  3,
				HiddenPassed:  1,
				HiddenTotal:   10,
			},
			wantRes: true,
		},
		{
			name: "普通通过不算失败",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyMiddle,
				VisiblePassed: 2,
				VisibleTotal:  3,
				HiddenPassed:  8,
				HiddenTotal:   10,
			},
			wantRes: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, svc.IsFail(tc.result))
		})
	}
}

func TestEngineService_TaskScore(t *testing.T) {
	svc := NewEngineService()
	testCases := []struct {
		name    string
		result  domain.TaskResult
		wantRes float64
	}{
		{
			name: "零用例得0分",
			result: domain.TaskResult{
				Difficulty: domain.DifficultyEasy,
			},
			wantRes: 0.0,
		},
		{
			name: "hard全过无提示得满权重",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyHard,
				VisiblePassed: 2,
				VisibleTotal:  2,
				HiddenPassed:  3,
				HiddenTotal:   3,
			},
			wantRes: 3.0,
		},
		{
			name: "三档提示各一次_罚65%未触顶",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyEasy,
				VisiblePassed: 2,
				VisibleTotal:  2,
				HiddenPassed:  2,
				HiddenTotal:   2,
				HintsSoft:     1,
				HintsMedium:   1,
				HintsHard:     1,
			},
			// 1.0 * (1 - 0.65) * 1.0
			wantRes: 0.35,
		},
		{
			name: "提示罚分触顶70%",
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyMiddle,
				VisiblePassed: 2,
				VisibleTotal:  2,
				HiddenPassed:  2,
				HiddenTotal:   2,
				HintsHard:     3,
			},
			// 1.0 * (1 - 0.70) * 2.0
			wantRes: 0.6,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.wantRes, svc.TaskScore(tc.result), 0.0001)
		})
	}
}

func TestEngineService_CodingScore(t *testing.T) {
	svc := NewEngineService()
	t.Run("空任务列表返回0", func(t *testing.T) {
		assert.Equal(t, 0.0, svc.CodingScore(nil))
	})
	t.Run("单个hard任务全过得100", func(t *testing.T) {
		results := []domain.TaskResult{
			{
				Difficulty:    domain.DifficultyHard,
				VisiblePassed: 3,
				VisibleTotal:  3,
				HiddenPassed:  5,
				HiddenTotal:   5,
			},
		}
		assert.InDelta(t, 100.0, svc.CodingScore(results), 0.0001)
	})
	t.Run("多任务按难度权重聚合", func(t *testing.T) {
		results := []domain.TaskResult{
			// easy 全过：1.0
			{
				Difficulty:    domain.DifficultyEasy,
				VisiblePassed: 2,
				VisibleTotal:  2,
				HiddenPassed:  2,
				HiddenTotal:   2,
			},
			// middle 半过：0.5 * 2.0 = 1.0
			{
				Difficulty:    domain.DifficultyMiddle,
				VisiblePassed: 1,
				VisibleTotal:  2,
				HiddenPassed:  1,
				HiddenTotal:   2,
			},
		}
		// (1.0 + 1.0) / (1.0 + 2.0) * 100
		assert.InDelta(t, 66.6667, svc.CodingScore(results), 0.001)
	})
}
