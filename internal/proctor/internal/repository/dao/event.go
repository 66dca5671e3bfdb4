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

type BehaviorEventDAO interface {
	Insert(ctx context.Context, evt BehaviorEvent) (int64, error)
	// ListByInterview 按事件发生时间升序返回
	ListByInterview(ctx context.Context, interviewID int64) ([]BehaviorEvent, error)
}

var _ BehaviorEventDAO = &GORMBehaviorEventDAO{}

type GORMBehaviorEventDAO struct {
	db *egorm.Component
}

func NewGORMBehaviorEventDAO(db *egorm.Component) BehaviorEventDAO {
	return &GORMBehaviorEventDAO{db: db}
}

func (g *GORMBehaviorEventDAO) Insert(ctx context.Context, evt BehaviorEvent) (int64, error) {
	now := time.Now().UnixMilli()
	evt.Ctime = now
	evt.Utime = now
	err := g.db.WithContext(ctx).Create(&evt).Error
	return evt.Id, err
}

func (g *GORMBehaviorEventDAO) ListByInterview(ctx context.Context, interviewID int64) ([]BehaviorEvent, error) {
	var res []BehaviorEvent
	err := g.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("occurred_at ASC, id ASC").
		Find(&res).Error
	return res, err
}

// BehaviorEvent 行为事件只追加不修改
type BehaviorEvent struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	InterviewID int64  `gorm:"index:idx_interview_occurred;not null;comment:面试会话 ID"`
	Type        string `gorm:"type:varchar(32);not null;comment:事件类型"`
	// OccurredAt 候选人浏览器里的事件时间戳，毫秒
	OccurredAt int64 `gorm:"index:idx_interview_occurred;not null"`
	// Meta 各事件类型的附加字段，JSON
	Meta  string `gorm:"type:text"`
	Ctime int64
	Utime int64
}

func (BehaviorEvent) TableName() string {
	return "behavior_events"
}
