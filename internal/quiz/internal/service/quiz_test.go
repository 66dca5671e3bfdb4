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

package service

import (
	"context"
	"testing"

	aimocks "github.com/ecodeclub/vibecode/internal/ai/mocks"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/domain"
	quizmocks "github.com/ecodeclub/vibecode/internal/quiz/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuizService_Submit(t *testing.T) {
	t.Parallel()
	t.Run("评卷后定稿并累加题组计数", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := quizmocks.NewMockQuizRepository(ctrl)
		theorySvc := aimocks.NewMockTheoryExamineService(ctrl)

		pending := domain.NewAnswer(10, 1, 100, "go", "middle")
		pending.ID = 5
		repo.EXPECT().Answer(gomock.Any(), int64(5)).Return(pending, nil)
		theorySvc.EXPECT().Examine(gomock.Any(), "什么是 GMP", "G M P 三个角色").Return(85.0, nil)
		repo.EXPECT().UpdateAnswer(gomock.Any(), gomock.Any(), domain.AnswerStatusPending).
			DoAndReturn(func(ctx context.Context, ans domain.Answer, from domain.AnswerStatus) error {
				assert.Equal(t, domain.AnswerStatusAnswered, ans.Status)
				assert.Equal(t, 85.0, ans.FinalScore)
				assert.True(t, ans.IsCorrect)
				return nil
			})
		repo.EXPECT().IncrAnswered(gomock.Any(), int64(10), 1).Return(nil)

		svc := NewQuizService(repo, theorySvc)
		ans, err := svc.Submit(context.Background(), 5, "什么是 GMP", "G M P 三个角色")
		require.NoError(t, err)
		assert.Equal(t, domain.AnswerStatusAnswered, ans.Status)
	})

	t.Run("已作答的题再次提交返回状态错误", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := quizmocks.NewMockQuizRepository(ctrl)
		theorySvc := aimocks.NewMockTheoryExamineService(ctrl)

		answered := domain.NewAnswer(10, 1, 100, "go", "middle")
		answered.ID = 5
		require.NoError(t, answered.Submit("旧答案", 90, ""))
		repo.EXPECT().Answer(gomock.Any(), int64(5)).Return(answered, nil)
		theorySvc.EXPECT().Examine(gomock.Any(), gomock.Any(), gomock.Any()).Return(70.0, nil)

		svc := NewQuizService(repo, theorySvc)
		_, err := svc.Submit(context.Background(), 5, "题目", "新答案")
		assert.ErrorIs(t, err, domain.ErrNotPending)
	})

	t.Run("评卷失败不落库", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := quizmocks.NewMockQuizRepository(ctrl)
		theorySvc := aimocks.NewMockTheoryExamineService(ctrl)

		pending := domain.NewAnswer(10, 1, 100, "go", "middle")
		pending.ID = 5
		repo.EXPECT().Answer(gomock.Any(), int64(5)).Return(pending, nil)
		theorySvc.EXPECT().Examine(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0.0, assert.AnError)

		svc := NewQuizService(repo, theorySvc)
		_, err := svc.Submit(context.Background(), 5, "题目", "答案")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestQuizService_Retry(t *testing.T) {
	t.Parallel()
	t.Run("重做回退题组计数", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := quizmocks.NewMockQuizRepository(ctrl)
		theorySvc := aimocks.NewMockTheoryExamineService(ctrl)

		answered := domain.NewAnswer(10, 1, 100, "go", "middle")
		answered.ID = 5
		require.NoError(t, answered.Submit("答案", 85, ""))
		repo.EXPECT().Answer(gomock.Any(), int64(5)).Return(answered, nil)
		repo.EXPECT().UpdateAnswer(gomock.Any(), gomock.Any(), domain.AnswerStatusAnswered).Return(nil)
		repo.EXPECT().IncrAnswered(gomock.Any(), int64(10), -1).Return(nil)

		svc := NewQuizService(repo, theorySvc)
		ans, err := svc.Retry(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, domain.AnswerStatusPending, ans.Status)
		assert.Equal(t, 2, ans.AttemptNumber)
	})

	t.Run("待作答的题不能重做", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := quizmocks.NewMockQuizRepository(ctrl)
		theorySvc := aimocks.NewMockTheoryExamineService(ctrl)

		pending := domain.NewAnswer(10, 1, 100, "go", "middle")
		pending.ID = 5
		repo.EXPECT().Answer(gomock.Any(), int64(5)).Return(pending, nil)

		svc := NewQuizService(repo, theorySvc)
		_, err := svc.Retry(context.Background(), 5)
		assert.ErrorIs(t, err, domain.ErrNotAnswered)
	})
}

func TestQuizService_Skip(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := quizmocks.NewMockQuizRepository(ctrl)
	theorySvc := aimocks.NewMockTheoryExamineService(ctrl)

	pending := domain.NewAnswer(10, 1, 100, "go", "easy")
	pending.ID = 7
	repo.EXPECT().Answer(gomock.Any(), int64(7)).Return(pending, nil)
	repo.EXPECT().UpdateAnswer(gomock.Any(), gomock.Any(), domain.AnswerStatusPending).Return(nil)
	repo.EXPECT().IncrAnswered(gomock.Any(), int64(10), 1).Return(nil)

	svc := NewQuizService(repo, theorySvc)
	ans, err := svc.Skip(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerStatusSkipped, ans.Status)
}

func TestQuizService_BlockStats(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := quizmocks.NewMockQuizRepository(ctrl)
	theorySvc := aimocks.NewMockTheoryExamineService(ctrl)

	repo.EXPECT().BlockAnswers(gomock.Any(), int64(10)).Return([]domain.Answer{
		{Status: domain.AnswerStatusAnswered, FinalScore: 80, IsCorrect: true, Category: "go", Difficulty: "easy"},
		{Status: domain.AnswerStatusPending},
	}, nil)

	svc := NewQuizService(repo, theorySvc)
	stats, err := svc.BlockStats(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Answered)
	assert.Equal(t, 80.0, stats.AvgScore)
}
