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
	"fmt"

	"github.com/ecodeclub/vibecode/internal/ai"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/domain"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// QuizService 理论题作答。
// 状态流转的合法性由 domain.Answer 把关，这里负责评卷、
// 持久化和题组计数的联动。
//
//go:generate mockgen -source=./quiz.go -destination=../../mocks/svc.mock.go -package=quizmocks -typed=true QuizService
type QuizService interface {
	CreateBlock(ctx context.Context, block domain.Block) (int64, error)
	AddQuestion(ctx context.Context, ans domain.Answer) (int64, error)
	// Submit 评卷并定稿本轮作答，返回更新后的记录
	Submit(ctx context.Context, answerID int64, question, userAnswer string) (domain.Answer, error)
	Skip(ctx context.Context, answerID int64) (domain.Answer, error)
	// Retry 把已作答的题放回待作答池，得分系数减半
	Retry(ctx context.Context, answerID int64) (domain.Answer, error)
	BlockStats(ctx context.Context, blockID int64) (domain.BlockStats, error)
	InterviewAnswers(ctx context.Context, interviewID int64) ([]domain.Answer, error)
}

var _ QuizService = &quizService{}

type quizService struct {
	repo      repository.QuizRepository
	theorySvc ai.TheoryExamineService
	logger    *elog.Component
}

func NewQuizService(repo repository.QuizRepository, theorySvc ai.TheoryExamineService) QuizService {
	return &quizService{
		repo:      repo,
		theorySvc: theorySvc,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("QuizService")),
	}
}

func (s *quizService) CreateBlock(ctx context.Context, block domain.Block) (int64, error) {
	return s.repo.CreateBlock(ctx, block)
}

func (s *quizService) AddQuestion(ctx context.Context, ans domain.Answer) (int64, error) {
	return s.repo.CreateAnswer(ctx, domain.NewAnswer(
		ans.BlockID, ans.InterviewID, ans.QuestionID, ans.Category, ans.Difficulty))
}

func (s *quizService) Submit(ctx context.Context, answerID int64, question, userAnswer string) (domain.Answer, error) {
	ans, err := s.repo.Answer(ctx, answerID)
	if err != nil {
		return domain.Answer{}, err
	}
	eval, err := s.theorySvc.Examine(ctx, question, userAnswer)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("评卷失败: %w", err)
	}
	from := ans.Status
	if err = ans.Submit(userAnswer, eval, ""); err != nil {
		return domain.Answer{}, err
	}
	if err = s.repo.UpdateAnswer(ctx, ans, from); err != nil {
		return domain.Answer{}, err
	}
	if err = s.repo.IncrAnswered(ctx, ans.BlockID, 1); err != nil {
		// 计数和统计都能从作答记录重算，失败只记日志
		s.logger.Error("更新题组定稿计数失败",
			elog.FieldErr(err), elog.Int64("blockID", ans.BlockID))
	}
	return ans, nil
}

func (s *quizService) Skip(ctx context.Context, answerID int64) (domain.Answer, error) {
	ans, err := s.repo.Answer(ctx, answerID)
	if err != nil {
		return domain.Answer{}, err
	}
	from := ans.Status
	if err = ans.Skip(); err != nil {
		return domain.Answer{}, err
	}
	if err = s.repo.UpdateAnswer(ctx, ans, from); err != nil {
		return domain.Answer{}, err
	}
	if err = s.repo.IncrAnswered(ctx, ans.BlockID, 1); err != nil {
		s.logger.Error("更新题组定稿计数失败",
			elog.FieldErr(err), elog.Int64("blockID", ans.BlockID))
	}
	return ans, nil
}

func (s *quizService) Retry(ctx context.Context, answerID int64) (domain.Answer, error) {
	ans, err := s.repo.Answer(ctx, answerID)
	if err != nil {
		return domain.Answer{}, err
	}
	from := ans.Status
	if err = ans.Retry(); err != nil {
		return domain.Answer{}, err
	}
	if err = s.repo.UpdateAnswer(ctx, ans, from); err != nil {
		return domain.Answer{}, err
	}
	// 题目回到待作答池，把先前定稿时加上的计数退回去
	if err = s.repo.IncrAnswered(ctx, ans.BlockID, -1); err != nil {
		s.logger.Error("回退题组定稿计数失败",
			elog.FieldErr(err), elog.Int64("blockID", ans.BlockID))
	}
	return ans, nil
}

func (s *quizService) BlockStats(ctx context.Context, blockID int64) (domain.BlockStats, error) {
	answers, err := s.repo.BlockAnswers(ctx, blockID)
	if err != nil {
		return domain.BlockStats{}, err
	}
	return domain.Stats(answers), nil
}

func (s *quizService) InterviewAnswers(ctx context.Context, interviewID int64) ([]domain.Answer, error) {
	return s.repo.InterviewAnswers(ctx, interviewID)
}
