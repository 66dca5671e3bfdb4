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
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrRecordChanged 带状态前置条件的更新没有命中任何行
	ErrRecordChanged = errors.New("作答记录状态已变化")
	ErrRecordNotFound = gorm.ErrRecordNotFound
)

type AnswerDAO interface {
	Create(ctx context.Context, ans Answer) (int64, error)
	FindByID(ctx context.Context, id int64) (Answer, error)
	ListByBlock(ctx context.Context, blockID int64) ([]Answer, error)
	ListByInterview(ctx context.Context, interviewID int64) ([]Answer, error)
	// UpdateFromStatus 带状态前置条件的整行更新。
	// 同一条记录的并发 Submit/Retry 靠这里的 check-and-set 拦住，
	// 没命中任何行返回 ErrRecordChanged。
	UpdateFromStatus(ctx context.Context, ans Answer, fromStatus string) error
}

var _ AnswerDAO = &GORMAnswerDAO{}

type GORMAnswerDAO struct {
	db *egorm.Component
}

func NewGORMAnswerDAO(db *egorm.Component) AnswerDAO {
	return &GORMAnswerDAO{db: db}
}

func (g *GORMAnswerDAO) Create(ctx context.Context, ans Answer) (int64, error) {
	now := time.Now().UnixMilli()
	ans.Ctime = now
	ans.Utime = now
	err := g.db.WithContext(ctx).Create(&ans).Error
	return ans.Id, err
}

func (g *GORMAnswerDAO) FindByID(ctx context.Context, id int64) (Answer, error) {
	var res Answer
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMAnswerDAO) ListByBlock(ctx context.Context, blockID int64) ([]Answer, error) {
	var res []Answer
	err := g.db.WithContext(ctx).
		Where("block_id = ?", blockID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMAnswerDAO) ListByInterview(ctx context.Context, interviewID int64) ([]Answer, error) {
	var res []Answer
	err := g.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMAnswerDAO) UpdateFromStatus(ctx context.Context, ans Answer, fromStatus string) error {
	res := g.db.WithContext(ctx).
		Model(&Answer{}).
		Where("id = ? AND status = ?", ans.Id, fromStatus).
		Updates(map[string]any{
			"status":           ans.Status,
			"attempt_number":   ans.AttemptNumber,
			"user_answer":      ans.UserAnswer,
			"evaluation_score": ans.EvaluationScore,
			"final_score":      ans.FinalScore,
			"is_correct":       ans.IsCorrect,
			"feedback":         ans.Feedback,
			"utime":            time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrRecordChanged, "id %d 不在 %s 状态", ans.Id, fromStatus)
	}
	return nil
}

type Answer struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	BlockID     int64  `gorm:"column:block_id;index:idx_block;not null"`
	InterviewID int64  `gorm:"column:interview_id;index:idx_interview;not null"`
	QuestionID  int64  `gorm:"column:question_id;not null"`
	Category    string `gorm:"type:varchar(64)"`
	Difficulty  string `gorm:"type:varchar(16)"`

	Status        string `gorm:"type:varchar(16);not null"`
	AttemptNumber int    `gorm:"not null;default:1"`

	UserAnswer      string `gorm:"type:text"`
	EvaluationScore float64
	FinalScore      float64
	IsCorrect       bool
	Feedback        string `gorm:"type:text"`

	Ctime int64
	Utime int64
}

func (Answer) TableName() string {
	return "quiz_answers"
}
