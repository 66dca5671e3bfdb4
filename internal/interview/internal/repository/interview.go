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
	"github.com/ecodeclub/vibecode/internal/adaptive"
	"github.com/ecodeclub/vibecode/internal/grading"
	"github.com/ecodeclub/vibecode/internal/interview/internal/domain"
	"github.com/ecodeclub/vibecode/internal/interview/internal/repository/dao"
)

//go:generate mockgen -source=./interview.go -destination=../../mocks/repo.mock.go -package=interviewmocks -typed=true InterviewRepository
type InterviewRepository interface {
	Create(ctx context.Context, iv domain.Interview) error
	ByID(ctx context.Context, id int64) (domain.Interview, error)
	BySN(ctx context.Context, sn string) (domain.Interview, error)
	UpdateDifficulty(ctx context.Context, id int64, difficulty adaptive.Difficulty) error
	Finish(ctx context.Context, iv domain.Interview) error
	AddTask(ctx context.Context, record domain.TaskRecord) (int64, error)
	Tasks(ctx context.Context, interviewID int64) ([]domain.TaskRecord, error)
}

var _ InterviewRepository = &interviewRepository{}

type interviewRepository struct {
	interviewDAO dao.InterviewDAO
	taskDAO      dao.TaskRecordDAO
}

func NewInterviewRepository(interviewDAO dao.InterviewDAO, taskDAO dao.TaskRecordDAO) InterviewRepository {
	return &interviewRepository{
		interviewDAO: interviewDAO,
		taskDAO:      taskDAO,
	}
}

func (r *interviewRepository) Create(ctx context.Context, iv domain.Interview) error {
	return r.interviewDAO.Insert(ctx, r.toEntity(iv))
}

func (r *interviewRepository) ByID(ctx context.Context, id int64) (domain.Interview, error) {
	entity, err := r.interviewDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(entity), nil
}

func (r *interviewRepository) BySN(ctx context.Context, sn string) (domain.Interview, error) {
	entity, err := r.interviewDAO.FindBySN(ctx, sn)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(entity), nil
}

func (r *interviewRepository) UpdateDifficulty(ctx context.Context, id int64, difficulty adaptive.Difficulty) error {
	return r.interviewDAO.UpdateDifficulty(ctx, id, difficulty.String())
}

func (r *interviewRepository) Finish(ctx context.Context, iv domain.Interview) error {
	return r.interviewDAO.Finish(ctx, r.toEntity(iv))
}

func (r *interviewRepository) AddTask(ctx context.Context, record domain.TaskRecord) (int64, error) {
	return r.taskDAO.Insert(ctx, dao.TaskRecord{
		InterviewID:   record.InterviewID,
		Difficulty:    record.Result.Difficulty.String(),
		VisiblePassed: record.Result.VisiblePassed,
		VisibleTotal:  record.Result.VisibleTotal,
		HiddenPassed:  record.Result.HiddenPassed,
		HiddenTotal:   record.Result.HiddenTotal,
		HintsSoft:     record.Result.HintsSoft,
		HintsMedium:   record.Result.HintsMedium,
		HintsHard:     record.Result.HintsHard,
		TimeSec:       record.Result.TimeSec,
		WantNext:      record.WantNext,
		TaskCreatedAt: record.CreatedAt,
		FirstPassedAt: record.FirstPassedAt,
		FinalCode:     record.FinalCode,
	})
}

func (r *interviewRepository) Tasks(ctx context.Context, interviewID int64) ([]domain.TaskRecord, error) {
	entities, err := r.taskDAO.ListByInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.TaskRecord) domain.TaskRecord {
		return domain.TaskRecord{
			ID:          src.Id,
			InterviewID: src.InterviewID,
			Result: adaptive.TaskResult{
				Difficulty:    adaptive.Difficulty(src.Difficulty),
				VisiblePassed: src.VisiblePassed,
				VisibleTotal:  src.VisibleTotal,
				HiddenPassed:  src.HiddenPassed,
				HiddenTotal:   src.HiddenTotal,
				HintsSoft:     src.HintsSoft,
				HintsMedium:   src.HintsMedium,
				HintsHard:     src.HintsHard,
				TimeSec:       src.TimeSec,
			},
			WantNext:      src.WantNext,
			CreatedAt:     src.TaskCreatedAt,
			FirstPassedAt: src.FirstPassedAt,
			FinalCode:     src.FinalCode,
		}
	}), nil
}

func (r *interviewRepository) toEntity(iv domain.Interview) dao.Interview {
	return dao.Interview{
		Id:                iv.ID,
		SN:                iv.SN,
		CandidateName:     iv.CandidateName,
		Position:          iv.Position,
		YearsOfExperience: iv.YearsOfExperience,
		SelfClaimedGrade:  iv.SelfClaimedGrade.String(),
		ResumeGrade:       iv.ResumeGrade.String(),
		StartGrade:        iv.StartGrade.String(),
		CurrentDifficulty: iv.CurrentDifficulty.String(),
		Status:            iv.Status.String(),
		Decision:          iv.Decision.String(),
		FinalGrade:        iv.FinalGrade.String(),
		OverallScore:      iv.OverallScore,
		TrustScore:        iv.TrustScore,
		TrustStatus:       iv.TrustStatus,
		Stime:             iv.Stime,
		Etime:             iv.Etime,
	}
}

func (r *interviewRepository) toDomain(entity dao.Interview) domain.Interview {
	return domain.Interview{
		ID:                entity.Id,
		SN:                entity.SN,
		CandidateName:     entity.CandidateName,
		Position:          entity.Position,
		YearsOfExperience: entity.YearsOfExperience,
		SelfClaimedGrade:  grading.Grade(entity.SelfClaimedGrade),
		ResumeGrade:       grading.Grade(entity.ResumeGrade),
		StartGrade:        grading.Grade(entity.StartGrade),
		CurrentDifficulty: adaptive.Difficulty(entity.CurrentDifficulty),
		Status:            domain.InterviewStatus(entity.Status),
		Decision:          domain.Decision(entity.Decision),
		FinalGrade:        grading.Grade(entity.FinalGrade),
		OverallScore:      entity.OverallScore,
		TrustScore:        entity.TrustScore,
		TrustStatus:       entity.TrustStatus,
		Stime:             entity.Stime,
		Etime:             entity.Etime,
	}
}
