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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type GradeCalculationDAO interface {
	// Upsert 以 interview_id 为幂等键覆盖写
	Upsert(ctx context.Context, calc GradeCalculation) error
	FindByInterview(ctx context.Context, interviewID int64) (GradeCalculation, error)
}

var _ GradeCalculationDAO = &GORMGradeCalculationDAO{}

type GORMGradeCalculationDAO struct {
	db *egorm.Component
}

func NewGORMGradeCalculationDAO(db *egorm.Component) GradeCalculationDAO {
	return &GORMGradeCalculationDAO{db: db}
}

func (g *GORMGradeCalculationDAO) Upsert(ctx context.Context, calc GradeCalculation) error {
	now := time.Now().UnixMilli()
	calc.Ctime = now
	calc.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "interview_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"years_of_experience", "self_claimed_grade",
			"coding_score", "theory_score", "overall_score",
			"grade_index", "grade", "progress_percent", "points_to_next",
			"utime",
		}),
	}).Create(&calc).Error
}

func (g *GORMGradeCalculationDAO) FindByInterview(ctx context.Context, interviewID int64) (GradeCalculation, error) {
	var res GradeCalculation
	err := g.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		First(&res).Error
	return res, err
}

type GradeCalculation struct {
	Id          int64 `gorm:"primaryKey,autoIncrement"`
	InterviewID int64 `gorm:"column:interview_id;uniqueIndex:uniq_interview;not null"`

	YearsOfExperience float64
	SelfClaimedGrade  string `gorm:"type:varchar(16)"`

	CodingScore     float64
	TheoryScore     float64
	OverallScore    float64
	GradeIndex      int
	Grade           string `gorm:"type:varchar(16)"`
	ProgressPercent float64
	PointsToNext    float64

	Ctime int64
	Utime int64
}

func (GradeCalculation) TableName() string {
	return "grade_calculations"
}
