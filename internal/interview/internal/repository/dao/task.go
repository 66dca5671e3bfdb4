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
)

type TaskRecordDAO interface {
	Insert(ctx context.Context, record TaskRecord) (int64, error)
	ListByInterview(ctx context.Context, interviewID int64) ([]TaskRecord, error)
}

var _ TaskRecordDAO = &GORMTaskRecordDAO{}

type GORMTaskRecordDAO struct {
	db *egorm.Component
}

func NewGORMTaskRecordDAO(db *egorm.Component) TaskRecordDAO {
	return &GORMTaskRecordDAO{db: db}
}

func (g *GORMTaskRecordDAO) Insert(ctx context.Context, record TaskRecord) (int64, error) {
	now := time.Now().UnixMilli()
	record.Ctime = now
	record.Utime = now
	err := g.db.WithContext(ctx).Create(&record).Error
	return record.Id, err
}

func (g *GORMTaskRecordDAO) ListByInterview(ctx context.Context, interviewID int64) ([]TaskRecord, error) {
	var res []TaskRecord
	err := g.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

type TaskRecord struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	InterviewID int64  `gorm:"column:interview_id;index:idx_interview;not null"`
	Difficulty  string `gorm:"type:varchar(16);not null"`

	VisiblePassed int
	VisibleTotal  int
	HiddenPassed  int
	HiddenTotal   int
	HintsSoft     int
	HintsMedium   int
	HintsHard     int
	TimeSec       float64

	WantNext bool
	// TaskCreatedAt 出题时间，毫秒
	TaskCreatedAt int64 `gorm:"column:task_created_at"`
	// FirstPassedAt 第一次高通过率提交的时间，毫秒
	FirstPassedAt int64  `gorm:"column:first_passed_at"`
	FinalCode     string `gorm:"type:text"`

	Ctime int64
	Utime int64
}

func (TaskRecord) TableName() string {
	return "interview_task_records"
}
