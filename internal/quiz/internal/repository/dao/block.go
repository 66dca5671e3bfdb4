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
	"gorm.io/gorm"
)

type BlockDAO interface {
	Create(ctx context.Context, block QuizBlock) (int64, error)
	FindByID(ctx context.Context, id int64) (QuizBlock, error)
	ListByInterview(ctx context.Context, interviewID int64) ([]QuizBlock, error)
	// IncrAnswered delta 为正表示定稿一题，为负表示重做放回一题
	IncrAnswered(ctx context.Context, id int64, delta int) error
}

var _ BlockDAO = &GORMBlockDAO{}

type GORMBlockDAO struct {
	db *egorm.Component
}

func NewGORMBlockDAO(db *egorm.Component) BlockDAO {
	return &GORMBlockDAO{db: db}
}

func (g *GORMBlockDAO) Create(ctx context.Context, block QuizBlock) (int64, error) {
	now := time.Now().UnixMilli()
	block.Ctime = now
	block.Utime = now
	err := g.db.WithContext(ctx).Create(&block).Error
	return block.Id, err
}

func (g *GORMBlockDAO) FindByID(ctx context.Context, id int64) (QuizBlock, error) {
	var res QuizBlock
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMBlockDAO) ListByInterview(ctx context.Context, interviewID int64) ([]QuizBlock, error) {
	var res []QuizBlock
	err := g.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMBlockDAO) IncrAnswered(ctx context.Context, id int64, delta int) error {
	return g.db.WithContext(ctx).
		Model(&QuizBlock{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"answered_count": gorm.Expr("GREATEST(answered_count + ?, 0)", delta),
			"utime":          time.Now().UnixMilli(),
		}).Error
}

type QuizBlock struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	InterviewID int64  `gorm:"column:interview_id;index:idx_interview;not null"`
	Title       string `gorm:"type:varchar(256)"`

	TotalQuestions int `gorm:"not null;default:0"`
	AnsweredCount  int `gorm:"column:answered_count;not null;default:0"`

	Ctime int64
	Utime int64
}

func (QuizBlock) TableName() string {
	return "quiz_blocks"
}
