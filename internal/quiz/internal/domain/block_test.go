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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	t.Parallel()
	t.Run("空题组", func(t *testing.T) {
		t.Parallel()
		stats := Stats(nil)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0.0, stats.AvgScore)
	})

	t.Run("按状态分桶并分维度求均值", func(t *testing.T) {
		t.Parallel()
		answers := []Answer{
			{Status: AnswerStatusAnswered, FinalScore: 80, IsCorrect: true, Category: "go", Difficulty: "easy"},
			{Status: AnswerStatusAnswered, FinalScore: 40, IsCorrect: false, Category: "go", Difficulty: "middle"},
			{Status: AnswerStatusAnswered, FinalScore: 90, IsCorrect: true, Category: "db", Difficulty: "middle"},
			{Status: AnswerStatusSkipped},
			{Status: AnswerStatusPending},
		}
		stats := Stats(answers)
		assert.Equal(t, 5, stats.Total)
		assert.Equal(t, 3, stats.Answered)
		assert.Equal(t, 1, stats.Skipped)
		assert.Equal(t, 1, stats.Pending)
		assert.Equal(t, 2, stats.Correct)
		assert.InDelta(t, 70.0, stats.AvgScore, 0.001)
		assert.InDelta(t, 60.0, stats.ByCategory["go"], 0.001)
		assert.InDelta(t, 90.0, stats.ByCategory["db"], 0.001)
		assert.InDelta(t, 80.0, stats.ByDifficulty["easy"], 0.001)
		assert.InDelta(t, 65.0, stats.ByDifficulty["middle"], 0.001)
	})

	t.Run("跳过的题不进均值", func(t *testing.T) {
		t.Parallel()
		answers := []Answer{
			{Status: AnswerStatusAnswered, FinalScore: 100, Category: "go", Difficulty: "easy"},
			{Status: AnswerStatusSkipped, Category: "go", Difficulty: "easy"},
		}
		stats := Stats(answers)
		assert.Equal(t, 100.0, stats.AvgScore)
	})
}

func TestBlock_Completed(t *testing.T) {
	t.Parallel()
	assert.False(t, Block{TotalQuestions: 0, AnsweredCount: 0}.Completed())
	assert.False(t, Block{TotalQuestions: 3, AnsweredCount: 2}.Completed())
	assert.True(t, Block{TotalQuestions: 3, AnsweredCount: 3}.Completed())
}
