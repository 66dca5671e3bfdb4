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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/domain"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/repository/dao"
)

//go:generate mockgen -source=./quiz.go -destination=../../mocks/quiz.mock.go -package=quizmocks -typed=true QuizRepository
type QuizRepository interface {
	CreateBlock(ctx context.Context, block domain.Block) (int64, error)
	Block(ctx context.Context, id int64) (domain.Block, error)
	CreateAnswer(ctx context.Context, ans domain.Answer) (int64, error)
	Answer(ctx context.Context, id int64) (domain.Answer, error)
	BlockAnswers(ctx context.Context, blockID int64) ([]domain.Answer, error)
	InterviewAnswers(ctx context.Context, interviewID int64) ([]domain.Answer, error)
	// UpdateAnswer 带原状态前置条件的保存
	UpdateAnswer(ctx context.Context, ans domain.Answer, from domain.AnswerStatus) error
	// IncrAnswered 维护题组的定稿计数，delta 可为负
	IncrAnswered(ctx context.Context, blockID int64, delta int) error
}

var _ QuizRepository = &quizRepository{}

type quizRepository struct {
	answerDAO dao.AnswerDAO
	blockDAO  dao.BlockDAO
}

func NewQuizRepository(answerDAO dao.AnswerDAO, blockDAO dao.BlockDAO) QuizRepository {
	return &quizRepository{
		answerDAO: answerDAO,
		blockDAO:  blockDAO,
	}
}

func (r *quizRepository) CreateBlock(ctx context.Context, block domain.Block) (int64, error) {
	return r.blockDAO.Create(ctx, dao.QuizBlock{
		InterviewID:    block.InterviewID,
		Title:          block.Title,
		TotalQuestions: block.TotalQuestions,
		AnsweredCount:  block.AnsweredCount,
	})
}

func (r *quizRepository) Block(ctx context.Context, id int64) (domain.Block, error) {
	entity, err := r.blockDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Block{}, err
	}
	return domain.Block{
		ID:             entity.Id,
		InterviewID:    entity.InterviewID,
		Title:          entity.Title,
		TotalQuestions: entity.TotalQuestions,
		AnsweredCount:  entity.AnsweredCount,
	}, nil
}

func (r *quizRepository) CreateAnswer(ctx context.Context, ans domain.Answer) (int64, error) {
	return r.answerDAO.Create(ctx, r.toEntity(ans))
}

func (r *quizRepository) Answer(ctx context.Context, id int64) (domain.Answer, error) {
	entity, err := r.answerDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Answer{}, err
	}
	return r.toDomain(entity), nil
}

func (r *quizRepository) BlockAnswers(ctx context.Context, blockID int64) ([]domain.Answer, error) {
	entities, err := r.answerDAO.ListByBlock(ctx, blockID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Answer) domain.Answer {
		return r.toDomain(src)
	}), nil
}

func (r *quizRepository) InterviewAnswers(ctx context.Context, interviewID int64) ([]domain.Answer, error) {
	entities, err := r.answerDAO.ListByInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Answer) domain.Answer {
		return r.toDomain(src)
	}), nil
}

func (r *quizRepository) UpdateAnswer(ctx context.Context, ans domain.Answer, from domain.AnswerStatus) error {
	return r.answerDAO.UpdateFromStatus(ctx, r.toEntity(ans), from.String())
}

func (r *quizRepository) IncrAnswered(ctx context.Context, blockID int64, delta int) error {
	return r.blockDAO.IncrAnswered(ctx, blockID, delta)
}

func (r *quizRepository) toEntity(ans domain.Answer) dao.Answer {
	return dao.Answer{
		Id:              ans.ID,
		BlockID:         ans.BlockID,
		InterviewID:     ans.InterviewID,
		QuestionID:      ans.QuestionID,
		Category:        ans.Category,
		Difficulty:      ans.Difficulty,
		Status:          ans.Status.String(),
		AttemptNumber:   ans.AttemptNumber,
		UserAnswer:      ans.UserAnswer,
		EvaluationScore: ans.EvaluationScore,
		FinalScore:      ans.FinalScore,
		IsCorrect:       ans.IsCorrect,
		Feedback:        ans.Feedback,
	}
}

func (r *quizRepository) toDomain(entity dao.Answer) domain.Answer {
	return domain.Answer{
		ID:              entity.Id,
		BlockID:         entity.BlockID,
		InterviewID:     entity.InterviewID,
		QuestionID:      entity.QuestionID,
		Category:        entity.Category,
		Difficulty:      entity.Difficulty,
		Status:          domain.AnswerStatus(entity.Status),
		AttemptNumber:   entity.AttemptNumber,
		UserAnswer:      entity.UserAnswer,
		EvaluationScore: entity.EvaluationScore,
		FinalScore:      entity.FinalScore,
		IsCorrect:       entity.IsCorrect,
		Feedback:        entity.Feedback,
	}
}
