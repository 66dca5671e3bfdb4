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

package domain

import (
	"github.com/ecodeclub/vibecode/internal/adaptive"
	"github.com/ecodeclub/vibecode/internal/grading"
	"github.com/pkg/errors"
)

var (
	// ErrInterviewFinished 已结束的面试不再接受任务结果
	ErrInterviewFinished = errors.New("面试已结束")
)

type InterviewStatus string

const (
	InterviewStatusRunning  InterviewStatus = "running"
	InterviewStatusFinished InterviewStatus = "finished"
)

func (s InterviewStatus) String() string {
	return string(s)
}

// Decision 终局录用建议
type Decision string

const (
	DecisionHire     Decision = "hire"
	DecisionConsider Decision = "consider"
	DecisionReject   Decision = "reject"
)

func (d Decision) String() string {
	return string(d)
}

// Interview 一场自动化技术面试会话
type Interview struct {
	ID int64
	// SN 对外暴露的会话序列号
	SN string

	CandidateName string
	Position      string

	YearsOfExperience float64
	SelfClaimedGrade  grading.Grade
	// ResumeGrade 简历解析给出的职级信号，可为空
	ResumeGrade grading.Grade

	StartGrade grading.Grade
	// CurrentDifficulty 下一道编程题的难度
	CurrentDifficulty adaptive.Difficulty
	Status            InterviewStatus

	// 以下字段 Finalize 之后才有值
	Decision     Decision
	FinalGrade   grading.Grade
	OverallScore float64
	TrustScore   int
	TrustStatus  string

	Stime int64
	Etime int64
}

// TaskRecord 一道编程题的完成记录
type TaskRecord struct {
	ID          int64
	InterviewID int64
	Result      adaptive.TaskResult
	// WantNext 候选人做完后是否选择了挑战下一题
	WantNext bool
	// CreatedAt 出题时间，毫秒
	CreatedAt int64
	// FirstPassedAt 第一次高通过率提交的时间，毫秒，没有则为 0
	FirstPassedAt int64
	// FinalCode 最终提交的代码
	FinalCode string
}

// Summary Finalize 产出的终局汇总
type Summary struct {
	InterviewID  int64
	CodingScore  float64
	TheoryScore  float64
	OverallScore float64
	Grade        grading.Grade
	Decision     Decision
	// ProgressPercent 距下一档的进度
	ProgressPercent float64
	PointsToNext    float64
	TrustScore      int
	TrustStatus     string
	TrustReasons    []string
}
