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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/vibecode/internal/adaptive"
	"github.com/ecodeclub/vibecode/internal/grading"
	"github.com/ecodeclub/vibecode/internal/interview/internal/domain"
	"github.com/ecodeclub/vibecode/internal/interview/internal/event"
	"github.com/ecodeclub/vibecode/internal/interview/internal/repository"
	"github.com/ecodeclub/vibecode/internal/pkg/sequencenumber"
	"github.com/ecodeclub/vibecode/internal/pkg/snowflake"
	"github.com/ecodeclub/vibecode/internal/proctor"
	"github.com/ecodeclub/vibecode/internal/quiz"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	interviewAppID uint = 0

	// 录用建议的分数线
	hireScoreLine     = 75.0
	considerScoreLine = 50.0
)

//go:generate mockgen -source=./interview.go -destination=../../mocks/svc.mock.go -package=interviewmocks -typed=true InterviewService
type InterviewService interface {
	// Start 开场：定级、选定首题难度、建立会话
	Start(ctx context.Context, iv domain.Interview) (domain.Interview, error)
	Interview(ctx context.Context, id int64) (domain.Interview, error)
	InterviewBySN(ctx context.Context, sn string) (domain.Interview, error)
	// RecordTask 落库一道编程题的结果并推进难度，返回推进后的难度
	RecordTask(ctx context.Context, interviewID int64, record domain.TaskRecord) (adaptive.Difficulty, error)
	// Finalize 终局结算：编码分、理论分、信任报告、定级与录用建议。
	// 重复调用重新结算并覆盖旧结果
	Finalize(ctx context.Context, interviewID int64) (domain.Summary, error)
}

var _ InterviewService = &interviewService{}

type interviewService struct {
	repo     repository.InterviewRepository
	gradeSvc grading.GradeService
	quizSvc  quiz.QuizService
	trustSvc proctor.TrustService
	engine   adaptive.EngineService
	strategy *adaptive.HintGatedStrategy
	idGen    *snowflake.CustomSnowFlake
	snGen    *sequencenumber.Generator
	producer event.FinishedEventProducer
	logger   *elog.Component
}

func NewInterviewService(
	repo repository.InterviewRepository,
	gradeSvc grading.GradeService,
	quizSvc quiz.QuizService,
	trustSvc proctor.TrustService,
	engine adaptive.EngineService,
	strategy *adaptive.HintGatedStrategy,
	idGen *snowflake.CustomSnowFlake,
	snGen *sequencenumber.Generator,
	producer event.FinishedEventProducer,
) InterviewService {
	return &interviewService{
		repo:     repo,
		gradeSvc: gradeSvc,
		quizSvc:  quizSvc,
		trustSvc: trustSvc,
		engine:   engine,
		strategy: strategy,
		idGen:    idGen,
		snGen:    snGen,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *interviewService) Start(ctx context.Context, iv domain.Interview) (domain.Interview, error) {
	id, err := s.idGen.Generate(interviewAppID)
	if err != nil {
		return domain.Interview{}, errors.Wrap(err, "生成面试 ID 失败")
	}
	sn, err := s.snGen.Generate(id.Int64())
	if err != nil {
		return domain.Interview{}, errors.Wrap(err, "生成面试 SN 失败")
	}
	iv.ID = id.Int64()
	iv.SN = sn
	iv.StartGrade = s.gradeSvc.StartGrade(iv.YearsOfExperience, iv.SelfClaimedGrade, iv.ResumeGrade)
	iv.CurrentDifficulty = adaptive.PoolLevel(iv.StartGrade.String()).ToDifficulty()
	iv.Status = domain.InterviewStatusRunning
	iv.Stime = time.Now().UnixMilli()
	err = s.repo.Create(ctx, iv)
	if err != nil {
		return domain.Interview{}, err
	}
	return iv, nil
}

func (s *interviewService) Interview(ctx context.Context, id int64) (domain.Interview, error) {
	return s.repo.ByID(ctx, id)
}

func (s *interviewService) InterviewBySN(ctx context.Context, sn string) (domain.Interview, error) {
	return s.repo.BySN(ctx, sn)
}

func (s *interviewService) RecordTask(ctx context.Context, interviewID int64, record domain.TaskRecord) (adaptive.Difficulty, error) {
	iv, err := s.repo.ByID(ctx, interviewID)
	if err != nil {
		return "", err
	}
	if iv.Status != domain.InterviewStatusRunning {
		return "", errors.Wrapf(domain.ErrInterviewFinished, "interviewID %d", interviewID)
	}
	record.InterviewID = interviewID
	// 结果里的难度以会话当前难度为准，调用方不许自己指定
	record.Result.Difficulty = iv.CurrentDifficulty
	_, err = s.repo.AddTask(ctx, record)
	if err != nil {
		return "", err
	}
	next := s.strategy.NextLevel(iv.CurrentDifficulty, record.Result, record.WantNext)
	if next != iv.CurrentDifficulty {
		err = s.repo.UpdateDifficulty(ctx, interviewID, next)
		if err != nil {
			return "", err
		}
	}
	return next, nil
}

func (s *interviewService) Finalize(ctx context.Context, interviewID int64) (domain.Summary, error) {
	iv, err := s.repo.ByID(ctx, interviewID)
	if err != nil {
		return domain.Summary{}, err
	}

	var eg errgroup.Group
	var tasks []domain.TaskRecord
	var answers []quiz.Answer
	eg.Go(func() error {
		var err error
		tasks, err = s.repo.Tasks(ctx, interviewID)
		return err
	})
	eg.Go(func() error {
		var err error
		answers, err = s.quizSvc.InterviewAnswers(ctx, interviewID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Summary{}, err
	}

	codingScore := s.engine.CodingScore(slice.Map(tasks, func(idx int, src domain.TaskRecord) adaptive.TaskResult {
		return src.Result
	}))
	theoryScore := s.gradeSvc.TheoryScore(s.theoryRatios(answers))
	overallScore := s.gradeSvc.OverallScore(codingScore, theoryScore)

	report, err := s.trustSvc.Report(ctx, interviewID, s.solves(tasks), s.finalCode(tasks))
	if err != nil {
		return domain.Summary{}, err
	}

	grade := s.gradeSvc.FinalGrade(overallScore, iv.YearsOfExperience, iv.SelfClaimedGrade)
	decision := s.decide(overallScore)
	// 信任降级：高风险直接不录用，可疑的封顶 middle 且最多给 consider
	switch report.Status {
	case proctor.TrustStatusHighRisk:
		decision = domain.DecisionReject
	case proctor.TrustStatusSuspicious:
		if grade.Index() > grading.GradeMiddle.Index() {
			grade = grading.GradeMiddle
		}
		if decision == domain.DecisionHire {
			decision = domain.DecisionConsider
		}
	}

	percent, pointsToNext := s.gradeSvc.Progress(overallScore, grade)
	err = s.gradeSvc.SaveCalculation(ctx, grading.GradeCalculation{
		InterviewID:       interviewID,
		YearsOfExperience: iv.YearsOfExperience,
		SelfClaimedGrade:  iv.SelfClaimedGrade,
		CodingScore:       codingScore,
		TheoryScore:       theoryScore,
		OverallScore:      overallScore,
		GradeIndex:        grade.Index(),
		Grade:             grade,
		ProgressPercent:   percent,
		PointsToNext:      pointsToNext,
	})
	if err != nil {
		return domain.Summary{}, err
	}

	iv.Status = domain.InterviewStatusFinished
	iv.Decision = decision
	iv.FinalGrade = grade
	iv.OverallScore = overallScore
	iv.TrustScore = report.Score
	iv.TrustStatus = report.Status.String()
	iv.Etime = time.Now().UnixMilli()
	err = s.repo.Finish(ctx, iv)
	if err != nil {
		return domain.Summary{}, err
	}

	// 广播失败不影响结算结果
	err = s.producer.Produce(ctx, event.InterviewFinishedEvent{
		InterviewID:  interviewID,
		SN:           iv.SN,
		OverallScore: overallScore,
		Grade:        grade.String(),
		Decision:     decision.String(),
		TrustStatus:  report.Status.String(),
	})
	if err != nil {
		s.logger.Warn("发送面试结束事件失败",
			elog.FieldErr(err),
			elog.Int64("interviewID", interviewID))
	}

	return domain.Summary{
		InterviewID:     interviewID,
		CodingScore:     codingScore,
		TheoryScore:     theoryScore,
		OverallScore:    overallScore,
		Grade:           grade,
		Decision:        decision,
		ProgressPercent: percent,
		PointsToNext:    pointsToNext,
		TrustScore:      report.Score,
		TrustStatus:     report.Status.String(),
		TrustReasons:    report.Reasons,
	}, nil
}

// theoryRatios 已作答的按终分折算 [0,1]，跳过的记 0，待作答的不计入
func (s *interviewService) theoryRatios(answers []quiz.Answer) []float64 {
	ratios := make([]float64, 0, len(answers))
	for _, ans := range answers {
		switch ans.Status {
		case quiz.AnswerStatusAnswered:
			ratios = append(ratios, ans.FinalScore/100.0)
		case quiz.AnswerStatusSkipped:
			ratios = append(ratios, 0)
		}
	}
	return ratios
}

func (s *interviewService) solves(tasks []domain.TaskRecord) []proctor.TaskSolve {
	return slice.Map(tasks, func(idx int, src domain.TaskRecord) proctor.TaskSolve {
		return proctor.TaskSolve{
			Difficulty:    src.Result.Difficulty.String(),
			CreatedAt:     src.CreatedAt,
			FirstPassedAt: src.FirstPassedAt,
		}
	})
}

// finalCode 取最后一道题的最终代码做 AI 风格检测
func (s *interviewService) finalCode(tasks []domain.TaskRecord) string {
	for i := len(tasks) - 1; i >= 0; i-- {
		if tasks[i].FinalCode != "" {
			return tasks[i].FinalCode
		}
	}
	return ""
}

func (s *interviewService) decide(overallScore float64) domain.Decision {
	switch {
	case overallScore >= hireScoreLine:
		return domain.DecisionHire
	case overallScore >= considerScoreLine:
		return domain.DecisionConsider
	default:
		return domain.DecisionReject
	}
}
