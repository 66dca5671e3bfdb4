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
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrNotPending 只有待作答状态才能提交或跳过
	ErrNotPending = errors.New("题目不在待作答状态")
	// ErrNotAnswered 只有已作答状态才能重做
	ErrNotAnswered = errors.New("题目不在已作答状态")
)

type AnswerStatus string

const (
	AnswerStatusPending  AnswerStatus = "pending"
	AnswerStatusAnswered AnswerStatus = "answered"
	AnswerStatusSkipped  AnswerStatus = "skipped"
)

func (s AnswerStatus) String() string {
	return string(s)
}

// 折算后依然要达到及格线对应的比例才算答对
const correctThreshold = 70.0

// Answer 一道理论题的作答记录。
// 状态机：pending --Submit--> answered --Retry--> pending，pending --Skip--> skipped（终态）。
// ScoreMultiplier 只会经由 Retry 变小，生命周期内严格不增。
type Answer struct {
	ID          int64
	BlockID     int64
	InterviewID int64
	QuestionID  int64
	Category    string
	Difficulty  string

	Status AnswerStatus
	// AttemptNumber 从 1 开始
	AttemptNumber int

	UserAnswer string
	// EvaluationScore 外部评卷给出的原始分 [0,100]
	EvaluationScore float64
	// FinalScore 原始分乘以重做衰减之后的得分
	FinalScore float64
	IsCorrect  bool
	Feedback   string
}

func NewAnswer(blockID, interviewID, questionID int64, category, difficulty string) Answer {
	return Answer{
		BlockID:       blockID,
		InterviewID:   interviewID,
		QuestionID:    questionID,
		Category:      category,
		Difficulty:    difficulty,
		Status:        AnswerStatusPending,
		AttemptNumber: 1,
	}
}

// ScoreMultiplier 第 n 次作答的得分系数 1/2^(n-1)
func (a Answer) ScoreMultiplier() float64 {
	return 1 / math.Pow(2, float64(a.AttemptNumber-1))
}

// MaxAchievablePercent 本次作答最高还能拿到的百分比
func (a Answer) MaxAchievablePercent() float64 {
	return a.ScoreMultiplier() * 100
}

// Submit 记录作答结果。eval 是外部评卷的原始分，折算和判对都乘以当前衰减系数。
func (a *Answer) Submit(userAnswer string, eval float64, feedback string) error {
	if a.Status != AnswerStatusPending {
		return errors.Wrapf(ErrNotPending, "当前状态 %s，无法提交", a.Status)
	}
	multiplier := a.ScoreMultiplier()
	a.UserAnswer = userAnswer
	a.EvaluationScore = eval
	a.FinalScore = eval * multiplier
	a.IsCorrect = a.FinalScore >= correctThreshold*multiplier
	a.Feedback = feedback
	a.Status = AnswerStatusAnswered
	return nil
}

// Skip 放弃本题，零分记录，不可撤销
func (a *Answer) Skip() error {
	if a.Status != AnswerStatusPending {
		return errors.Wrapf(ErrNotPending, "当前状态 %s，无法跳过", a.Status)
	}
	a.FinalScore = 0
	a.EvaluationScore = 0
	a.IsCorrect = false
	a.Status = AnswerStatusSkipped
	return nil
}

// Retry 重做。清空上一轮的作答痕迹，题目回到待作答池，得分系数减半。
func (a *Answer) Retry() error {
	if a.Status != AnswerStatusAnswered {
		return errors.Wrapf(ErrNotAnswered, "当前状态 %s，无法重做", a.Status)
	}
	a.AttemptNumber++
	a.UserAnswer = ""
	a.EvaluationScore = 0
	a.FinalScore = 0
	a.IsCorrect = false
	a.Feedback = ""
	a.Status = AnswerStatusPending
	return nil
}
