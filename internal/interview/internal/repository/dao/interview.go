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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var ErrDuplicatedInterviewSN = errors.New("面试流水号冲突")

type InterviewDAO interface {
	// Insert 调用方负责生成好雪花 ID 和 SN
	Insert(ctx context.Context, iv Interview) error
	FindByID(ctx context.Context, id int64) (Interview, error)
	FindBySN(ctx context.Context, sn string) (Interview, error)
	UpdateDifficulty(ctx context.Context, id int64, difficulty string) error
	// Finish 写入终局字段并置为 finished，重复调用覆盖旧值
	Finish(ctx context.Context, iv Interview) error
}

var _ InterviewDAO = &GORMInterviewDAO{}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Insert(ctx context.Context, iv Interview) error {
	now := time.Now().UnixMilli()
	iv.Ctime = now
	iv.Utime = now
	err := g.db.WithContext(ctx).Create(&iv).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return ErrDuplicatedInterviewSN
		}
	}
	return err
}

func (g *GORMInterviewDAO) FindByID(ctx context.Context, id int64) (Interview, error) {
	var res Interview
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) FindBySN(ctx context.Context, sn string) (Interview, error) {
	var res Interview
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) UpdateDifficulty(ctx context.Context, id int64, difficulty string) error {
	return g.db.WithContext(ctx).
		Model(&Interview{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_difficulty": difficulty,
			"utime":              time.Now().UnixMilli(),
		}).Error
}

func (g *GORMInterviewDAO) Finish(ctx context.Context, iv Interview) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).
		Model(&Interview{}).
		Where("id = ?", iv.Id).
		Updates(map[string]any{
			"status":        iv.Status,
			"decision":      iv.Decision,
			"final_grade":   iv.FinalGrade,
			"overall_score": iv.OverallScore,
			"trust_score":   iv.TrustScore,
			"trust_status":  iv.TrustStatus,
			"etime":         iv.Etime,
			"utime":         now,
		}).Error
}

type Interview struct {
	Id int64  `gorm:"primaryKey;comment:雪花 ID"`
	SN string `gorm:"column:sn;type:varchar(64);uniqueIndex:uniq_sn;not null"`

	CandidateName string `gorm:"type:varchar(128)"`
	Position      string `gorm:"type:varchar(128)"`

	YearsOfExperience float64
	SelfClaimedGrade  string `gorm:"type:varchar(16)"`
	ResumeGrade       string `gorm:"type:varchar(16)"`

	StartGrade        string `gorm:"type:varchar(16)"`
	CurrentDifficulty string `gorm:"column:current_difficulty;type:varchar(16)"`
	Status            string `gorm:"type:varchar(16);not null"`

	Decision     string `gorm:"type:varchar(16)"`
	FinalGrade   string `gorm:"column:final_grade;type:varchar(16)"`
	OverallScore float64
	TrustScore   int
	TrustStatus  string `gorm:"type:varchar(16)"`

	Stime int64
	Etime int64
	Ctime int64
	Utime int64
}

func (Interview) TableName() string {
	return "interviews"
}
