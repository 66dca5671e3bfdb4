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
	"context"
	"math"

	"github.com/ecodeclub/vibecode/internal/grading/internal/domain"
	"github.com/ecodeclub/vibecode/internal/grading/internal/repository"
)

const (
	codingWeight = 0.7
	theoryWeight = 0.3

	finalPerfWeight = 0.6
	finalExpWeight  = 0.25
	finalSelfWeight = 0.15

	startExpWeight    = 0.5
	startSelfWeight   = 0.3
	startResumeWeight = 0.2
)

// 各档位对应的总分门槛，下标即职级下标
var gradeScoreBreakpoints = []float64{0, 30, 50, 75, 100}

// GradeService 定级引擎。除 SaveCalculation/Calculation 外全部是纯函数。
//
//go:generate mockgen -source=./grade.go -destination=../../mocks/grade.mock.go -package=gradingmocks -typed=true GradeService
type GradeService interface {
	// StartGrade 开场定级，resume 没有信号时传空串
	StartGrade(yearsExp float64, selfClaimed domain.Grade, resume domain.Grade) domain.Grade
	// TheoryScore scores 是每题 [0,1] 的得分比
	TheoryScore(scores []float64) float64
	OverallScore(codingScore, theoryScore float64) float64
	// FinalGrade 终局定级
	FinalGrade(overallScore, yearsExp float64, selfClaimed domain.Grade) domain.Grade
	// Progress 距下一档的进度百分比和还差的总分
	Progress(overallScore float64, grade domain.Grade) (percent, pointsToNext float64)
	// ExperienceToFourLevel 旧简历链路的四档映射
	ExperienceToFourLevel(yearsExp float64) domain.FourLevelGrade
	// ScoreToFourLevel 四档的分数映射，门槛表和五档的不通用
	ScoreToFourLevel(score float64) domain.FourLevelGrade

	// SaveCalculation 覆盖写一场面试的定级快照
	SaveCalculation(ctx context.Context, calc domain.GradeCalculation) error
	Calculation(ctx context.Context, interviewID int64) (domain.GradeCalculation, error)
}

var _ GradeService = &gradeService{}

type gradeService struct {
	repo repository.GradeRepository
}

func NewGradeService(repo repository.GradeRepository) GradeService {
	return &gradeService{repo: repo}
}

func (s *gradeService) StartGrade(yearsExp float64, selfClaimed, resume domain.Grade) domain.Grade {
	selfIdx := selfClaimed.Index()
	resumeIdx := selfIdx
	if resume != "" {
		resumeIdx = resume.Index()
	}
	idx := int(math.Round(
		startExpWeight*float64(experienceToIndex(yearsExp)) +
			startSelfWeight*float64(selfIdx) +
			startResumeWeight*float64(resumeIdx)))
	return domain.GradeFromIndex(idx)
}

func (s *gradeService) TheoryScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, score := range scores {
		sum += score
	}
	return 100 * sum / float64(len(scores))
}

func (s *gradeService) OverallScore(codingScore, theoryScore float64) float64 {
	return codingWeight*codingScore + theoryWeight*theoryScore
}

func (s *gradeService) FinalGrade(overallScore, yearsExp float64, selfClaimed domain.Grade) domain.Grade {
	idx := int(math.Round(
		finalPerfWeight*float64(scoreToIndex(overallScore)) +
			finalExpWeight*float64(experienceToIndex(yearsExp)) +
			finalSelfWeight*float64(selfClaimed.Index())))
	return domain.GradeFromIndex(idx)
}

func (s *gradeService) Progress(overallScore float64, grade domain.Grade) (float64, float64) {
	idx := grade.Index()
	// 顶档没有下一档
	if idx >= len(gradeScoreBreakpoints)-1 {
		return 100, 0
	}
	cur := gradeScoreBreakpoints[idx]
	next := gradeScoreBreakpoints[idx+1]
	percent := (overallScore - cur) / (next - cur) * 100
	percent = math.Max(0, math.Min(100, percent))
	points := math.Max(0, next-overallScore)
	return percent, points
}

func (s *gradeService) ExperienceToFourLevel(yearsExp float64) domain.FourLevelGrade {
	switch {
	case yearsExp < 0.5:
		return domain.FourLevelIntern
	case yearsExp < 1.5:
		return domain.FourLevelJunior
	case yearsExp < 3.5:
		return domain.FourLevelMiddle
	default:
		return domain.FourLevelSenior
	}
}

func (s *gradeService) ScoreToFourLevel(score float64) domain.FourLevelGrade {
	switch {
	case score < 30:
		return domain.FourLevelIntern
	case score < 50:
		return domain.FourLevelJunior
	case score < 75:
		return domain.FourLevelMiddle
	default:
		return domain.FourLevelSenior
	}
}

func (s *gradeService) SaveCalculation(ctx context.Context, calc domain.GradeCalculation) error {
	return s.repo.Save(ctx, calc)
}

func (s *gradeService) Calculation(ctx context.Context, interviewID int64) (domain.GradeCalculation, error) {
	return s.repo.ByInterview(ctx, interviewID)
}

func experienceToIndex(yearsExp float64) int {
	switch {
	case yearsExp < 0.5:
		return 0
	case yearsExp < 1.5:
		return 1
	case yearsExp < 3.5:
		return 2
	case yearsExp < 6:
		return 3
	default:
		return 4
	}
}

func scoreToIndex(score float64) int {
	switch {
	case score < 40:
		return 0
	case score < 55:
		return 1
	case score < 70:
		return 2
	case score < 85:
		return 3
	default:
		return 4
	}
}
