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
	"github.com/stretchr/testify/require"
)

func TestAnswer_Submit(t *testing.T) {
	t.Parallel()
	t.Run("首次作答不打折", func(t *testing.T) {
		t.Parallel()
		ans := NewAnswer(1, 1, 100, "go", "middle")
		err := ans.Submit("用 channel", 85, "答得不错")
		require.NoError(t, err)
		assert.Equal(t, AnswerStatusAnswered, ans.Status)
		assert.Equal(t, 85.0, ans.FinalScore)
		assert.True(t, ans.IsCorrect)
	})

	t.Run("低于及格线判错", func(t *testing.T) {
		t.Parallel()
		ans := NewAnswer(1, 1, 100, "go", "middle")
		err := ans.Submit("不知道", 60, "")
		require.NoError(t, err)
		assert.False(t, ans.IsCorrect)
	})

	t.Run("判对线随衰减系数一起缩放", func(t *testing.T) {
		t.Parallel()
		ans := NewAnswer(1, 1, 100, "go", "middle")
		require.NoError(t, ans.Submit("第一版", 50, ""))
		require.NoError(t, ans.Retry())
		// 第二次作答：原始 80 分折算成 40，判对线也降到 35
		require.NoError(t, ans.Submit("第二版", 80, ""))
		assert.Equal(t, 40.0, ans.FinalScore)
		assert.True(t, ans.IsCorrect)
	})

	t.Run("已作答状态不能重复提交", func(t *testing.T) {
		t.Parallel()
		ans := NewAnswer(1, 1, 100, "go", "middle")
		require.NoError(t, ans.Submit("答案", 85, ""))
		err := ans.Submit("再来一次", 90, "")
		assert.ErrorIs(t, err, ErrNotPending)
	})
}

func TestAnswer_Skip(t *testing.T) {
	t.Parallel()
	t.Run("跳过后零分终态", func(t *testing.T) {
		t.Parallel()
		ans := NewAnswer(1, 1, 100, "go", "easy")
		require.NoError(t, ans.Skip())
		assert.Equal(t, AnswerStatusSkipped, ans.Status)
		assert.Equal(t, 0.0, ans.FinalScore)
		assert.False(t, ans.IsCorrect)
	})

	t.Run("跳过不可撤销", func(t *testing.T) {
		t.Parallel()
		ans := NewAnswer(1, 1, 100, "go", "easy")
		require.NoError(t, ans.Skip())
		assert.ErrorIs(t, ans.Submit("反悔了", 90, ""), ErrNotPending)
		assert.ErrorIs(t, ans.Retry(), ErrNotAnswered)
	})
}

func TestAnswer_Retry(t *testing.T) {
	t.Parallel()
	t.Run("待作答状态不能重做", func(t *testing.T) {
		t.Parallel()
		ans := NewAnswer(1, 1, 100, "go", "middle")
		assert.ErrorIs(t, ans.Retry(), ErrNotAnswered)
	})

	t.Run("重做清空上一轮痕迹", func(t *testing.T) {
		t.Parallel()
		ans := NewAnswer(1, 1, 100, "go", "middle")
		require.NoError(t, ans.Submit("答案", 85, "评语"))
		require.NoError(t, ans.Retry())
		assert.Equal(t, AnswerStatusPending, ans.Status)
		assert.Empty(t, ans.UserAnswer)
		assert.Empty(t, ans.Feedback)
		assert.Equal(t, 0.0, ans.FinalScore)
		assert.False(t, ans.IsCorrect)
	})

	t.Run("第三次作答原始 80 分折算成 20", func(t *testing.T) {
		t.Parallel()
		ans := NewAnswer(1, 1, 100, "go", "middle")
		require.NoError(t, ans.Submit("v1", 50, ""))
		require.NoError(t, ans.Retry())
		require.NoError(t, ans.Submit("v2", 50, ""))
		require.NoError(t, ans.Retry())
		assert.Equal(t, 3, ans.AttemptNumber)
		assert.Equal(t, 0.25, ans.ScoreMultiplier())
		require.NoError(t, ans.Submit("v3", 80, ""))
		assert.Equal(t, 20.0, ans.FinalScore)
	})
}

// 衰减系数序列固定为 1, 0.5, 0.25, ...，与中间得了多少分无关
func TestAnswer_MultiplierSequence(t *testing.T) {
	t.Parallel()
	ans := NewAnswer(1, 1, 100, "go", "hard")
	scores := []float64{10, 99, 42, 77}
	want := []float64{1, 0.5, 0.25, 0.125}
	for i, eval := range scores {
		assert.Equal(t, want[i], ans.ScoreMultiplier())
		assert.Equal(t, want[i]*100, ans.MaxAchievablePercent())
		require.NoError(t, ans.Submit("答案", eval, ""))
		require.NoError(t, ans.Retry())
	}
}
