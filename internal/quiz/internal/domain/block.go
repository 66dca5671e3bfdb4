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

// Block 一组理论题，隶属一场面试
type Block struct {
	ID          int64
	InterviewID int64
	Title       string
	// TotalQuestions 组内题目总数
	TotalQuestions int
	// AnsweredCount 已有最终作答（answered 或 skipped）的题目数。
	// Retry 会把题目放回待作答池，所以这个计数可以回退。
	AnsweredCount int
}

func (b Block) Completed() bool {
	return b.TotalQuestions > 0 && b.AnsweredCount >= b.TotalQuestions
}

// BlockStats 由作答记录全量推导，不做增量维护
type BlockStats struct {
	Total    int
	Answered int
	Skipped  int
	Pending  int
	Correct  int
	// AvgScore 已作答题目的平均折算得分，无已作答题目时为 0
	AvgScore float64
	// ByCategory 分类目的平均折算得分
	ByCategory map[string]float64
	// ByDifficulty 分难度的平均折算得分
	ByDifficulty map[string]float64
}

// Stats 对一组作答记录做一次全量统计
func Stats(answers []Answer) BlockStats {
	res := BlockStats{
		Total:        len(answers),
		ByCategory:   make(map[string]float64),
		ByDifficulty: make(map[string]float64),
	}
	var sum float64
	catSum := make(map[string]float64)
	catCnt := make(map[string]int)
	diffSum := make(map[string]float64)
	diffCnt := make(map[string]int)

	for _, ans := range answers {
		switch ans.Status {
		case AnswerStatusAnswered:
			res.Answered++
			sum += ans.FinalScore
			if ans.IsCorrect {
				res.Correct++
			}
			catSum[ans.Category] += ans.FinalScore
			catCnt[ans.Category]++
			diffSum[ans.Difficulty] += ans.FinalScore
			diffCnt[ans.Difficulty]++
		case AnswerStatusSkipped:
			res.Skipped++
		case AnswerStatusPending:
			res.Pending++
		}
	}
	if res.Answered > 0 {
		res.AvgScore = sum / float64(res.Answered)
	}
	for cat, cnt := range catCnt {
		res.ByCategory[cat] = catSum[cat] / float64(cnt)
	}
	for diff, cnt := range diffCnt {
		res.ByDifficulty[diff] = diffSum[diff] / float64(cnt)
	}
	return res
}
