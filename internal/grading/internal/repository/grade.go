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

package repository

import (
	"context"

	"github.com/ecodeclub/vibecode/internal/grading/internal/domain"
	"github.com/ecodeclub/vibecode/internal/grading/internal/repository/dao"
)

type GradeRepository interface {
	Save(ctx context.Context, calc domain.GradeCalculation) error
	ByInterview(ctx context.Context, interviewID int64) (domain.GradeCalculation, error)
}

var _ GradeRepository = &gradeRepository{}

type gradeRepository struct {
	dao dao.GradeCalculationDAO
}

func NewGradeRepository(d dao.GradeCalculationDAO) GradeRepository {
	return &gradeRepository{dao: d}
}

func (r *gradeRepository) Save(ctx context.Context, calc domain.GradeCalculation) error {
	return r.dao.Upsert(ctx, dao.GradeCalculation{
		InterviewID:       calc.InterviewID,
		YearsOfExperience: calc.YearsOfExperience,
		SelfClaimedGrade:  calc.SelfClaimedGrade.String(),
		CodingScore:       calc.CodingScore,
		TheoryScore:       calc.TheoryScore,
		OverallScore:      calc.OverallScore,
		GradeIndex:        calc.GradeIndex,
		Grade:             calc.Grade.String(),
		ProgressPercent:   calc.ProgressPercent,
		PointsToNext:      calc.PointsToNext,
	})
}

func (r *gradeRepository) ByInterview(ctx context.Context, interviewID int64) (domain.GradeCalculation, error) {
	entity, err := r.dao.FindByInterview(ctx, interviewID)
	if err != nil {
		return domain.GradeCalculation{}, err
	}
	return domain.GradeCalculation{
		InterviewID:       entity.InterviewID,
		YearsOfExperience: entity.YearsOfExperience,
		SelfClaimedGrade:  domain.Grade(entity.SelfClaimedGrade),
		CodingScore:       entity.CodingScore,
		TheoryScore:       entity.TheoryScore,
		OverallScore:      entity.OverallScore,
		GradeIndex:        entity.GradeIndex,
		Grade:             domain.Grade(entity.Grade),
		ProgressPercent:   entity.ProgressPercent,
		PointsToNext:      entity.PointsToNext,
	}, nil
}
