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

	"github.com/ecodeclub/vibecode/internal/adaptive"
	"github.com/ecodeclub/vibecode/internal/grading"
	gradingmocks "github.com/ecodeclub/vibecode/internal/grading/mocks"
	"github.com/ecodeclub/vibecode/internal/interview/internal/domain"
	"github.com/ecodeclub/vibecode/internal/interview/internal/event"
	interviewmocks "github.com/ecodeclub/vibecode/internal/interview/mocks"
	"github.com/ecodeclub/vibecode/internal/pkg/sequencenumber"
	"github.com/ecodeclub/vibecode/internal/pkg/snowflake"
	"github.com/ecodeclub/vibecode/internal/proctor"
	proctormocks "github.com/ecodeclub/vibecode/internal/proctor/mocks"
	"github.com/ecodeclub/vibecode/internal/quiz"
	quizmocks "github.com/ecodeclub/vibecode/internal/quiz/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo     *interviewmocks.MockInterviewRepository
	gradeSvc *gradingmocks.MockGradeService
	quizSvc  *quizmocks.MockQuizService
	trustSvc *proctormocks.MockTrustService
	producer *fakeProducer
}

// fakeProducer 记录广播出去的事件
type fakeProducer struct {
	events []event.InterviewFinishedEvent
}

func (p *fakeProducer) Produce(ctx context.Context, evt event.InterviewFinishedEvent) error {
	p.events = append(p.events, evt)
	return nil
}

func newTestService(t *testing.T, ctrl *gomock.Controller) (InterviewService, testDeps) {
	t.Helper()
	deps := testDeps{
		repo:     interviewmocks.NewMockInterviewRepository(ctrl),
		gradeSvc: gradingmocks.NewMockGradeService(ctrl),
		quizSvc:  quizmocks.NewMockQuizService(ctrl),
		trustSvc: proctormocks.NewMockTrustService(ctrl),
		producer: &fakeProducer{},
	}
	engine := adaptive.NewEngineService()
	idGen, err := snowflake.NewCustomSnowFlake(0, 1)
	require.NoError(t, err)
	svc := NewInterviewService(
		deps.repo,
		deps.gradeSvc,
		deps.quizSvc,
		deps.trustSvc,
		engine,
		adaptive.NewHintGatedStrategy(engine),
		idGen,
		sequencenumber.NewGenerator(),
		deps.producer,
	)
	return svc, deps
}

func TestInterviewService_Start(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		startGrade     grading.Grade
		wantDifficulty adaptive.Difficulty
	}{
		{
			name:           "定级junior_首题easy",
			startGrade:     grading.GradeJunior,
			wantDifficulty: adaptive.DifficultyEasy,
		},
		{
			name:           "定级middle+_首题middle",
			startGrade:     grading.GradeMiddlePlus,
			wantDifficulty: adaptive.DifficultyMiddle,
		},
		{
			name:           "定级senior_首题hard",
			startGrade:     grading.GradeSenior,
			wantDifficulty: adaptive.DifficultyHard,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc, deps := newTestService(t, ctrl)

			deps.gradeSvc.EXPECT().
				StartGrade(5.0, grading.GradeMiddle, grading.Grade("")).
				Return(tc.startGrade)
			var created domain.Interview
			deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, iv domain.Interview) error {
					created = iv
					return nil
				})

			iv, err := svc.Start(context.Background(), domain.Interview{
				CandidateName:     "张三",
				Position:          "后端工程师",
				YearsOfExperience: 5.0,
				SelfClaimedGrade:  grading.GradeMiddle,
			})
			require.NoError(t, err)
			assert.True(t, iv.ID > 0)
			assert.Len(t, iv.SN, 32)
			assert.Equal(t, tc.startGrade, iv.StartGrade)
			assert.Equal(t, tc.wantDifficulty, iv.CurrentDifficulty)
			assert.Equal(t, domain.InterviewStatusRunning, iv.Status)
			assert.True(t, iv.Stime > 0)
			assert.Equal(t, iv, created)
		})
	}
}

func TestInterviewService_RecordTask(t *testing.T) {
	t.Parallel()

	runningAt := func(d adaptive.Difficulty) domain.Interview {
		return domain.Interview{
			ID:                1001,
			Status:            domain.InterviewStatusRunning,
			CurrentDifficulty: d,
		}
	}

	t.Run("强通过升档", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(t, ctrl)

		deps.repo.EXPECT().ByID(gomock.Any(), int64(1001)).
			Return(runningAt(adaptive.DifficultyMiddle), nil)
		deps.repo.EXPECT().AddTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, record domain.TaskRecord) (int64, error) {
				assert.Equal(t, int64(1001), record.InterviewID)
				assert.Equal(t, adaptive.DifficultyMiddle, record.Result.Difficulty)
				return int64(1), nil
			})
		deps.repo.EXPECT().
			UpdateDifficulty(gomock.Any(), int64(1001), adaptive.DifficultyHard).
			Return(nil)

		next, err := svc.RecordTask(context.Background(), 1001, domain.TaskRecord{
			Result: adaptive.TaskResult{
				VisiblePassed: 4, VisibleTotal: 4,
				HiddenPassed: 6, HiddenTotal: 6,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, adaptive.DifficultyHard, next)
	})

	t.Run("失败且要求下一题才降档", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(t, ctrl)

		deps.repo.EXPECT().ByID(gomock.Any(), int64(1001)).
			Return(runningAt(adaptive.DifficultyMiddle), nil)
		deps.repo.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		deps.repo.EXPECT().
			UpdateDifficulty(gomock.Any(), int64(1001), adaptive.DifficultyEasy).
			Return(nil)

		next, err := svc.RecordTask(context.Background(), 1001, domain.TaskRecord{
			Result: adaptive.TaskResult{
				VisiblePassed: 1, VisibleTotal: 4,
				HiddenPassed: 1, HiddenTotal: 6,
			},
			WantNext: true,
		})
		require.NoError(t, err)
		assert.Equal(t, adaptive.DifficultyEasy, next)
	})

	t.Run("失败但没要求下一题保持原档", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(t, ctrl)

		deps.repo.EXPECT().ByID(gomock.Any(), int64(1001)).
			Return(runningAt(adaptive.DifficultyMiddle), nil)
		deps.repo.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		// 难度没变，不应该有 UpdateDifficulty 调用

		next, err := svc.RecordTask(context.Background(), 1001, domain.TaskRecord{
			Result: adaptive.TaskResult{
				VisiblePassed: 1, VisibleTotal: 4,
				HiddenPassed: 1, HiddenTotal: 6,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, adaptive.DifficultyMiddle, next)
	})

	t.Run("已结束的面试拒绝记录", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(t, ctrl)

		deps.repo.EXPECT().ByID(gomock.Any(), int64(1001)).
			Return(domain.Interview{
				ID:     1001,
				Status: domain.InterviewStatusFinished,
			}, nil)

		_, err := svc.RecordTask(context.Background(), 1001, domain.TaskRecord{})
		assert.True(t, errors.Is(err, domain.ErrInterviewFinished))
	})
}

func TestInterviewService_Finalize(t *testing.T) {
	t.Parallel()

	const interviewID = int64(2001)
	baseInterview := domain.Interview{
		ID:                interviewID,
		Status:            domain.InterviewStatusRunning,
		YearsOfExperience: 5.0,
		SelfClaimedGrade:  grading.GradeMiddle,
	}
	// easy 题全对不看提示，真实引擎算出来编码分 100
	perfectEasyTask := domain.TaskRecord{
		ID:          1,
		InterviewID: interviewID,
		Result: adaptive.TaskResult{
			Difficulty:    adaptive.DifficultyEasy,
			VisiblePassed: 4, VisibleTotal: 4,
			HiddenPassed: 6, HiddenTotal: 6,
		},
		CreatedAt:     1000,
		FirstPassedAt: 500_000,
		FinalCode:     "def solve(): ...",
	}

	t.Run("正常结算_可信_建议录用", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(t, ctrl)

		deps.repo.EXPECT().ByID(gomock.Any(), interviewID).Return(baseInterview, nil)
		deps.repo.EXPECT().Tasks(gomock.Any(), interviewID).
			Return([]domain.TaskRecord{perfectEasyTask}, nil)
		deps.quizSvc.EXPECT().InterviewAnswers(gomock.Any(), interviewID).
			Return([]quiz.Answer{
				{Status: quiz.AnswerStatusAnswered, FinalScore: 80},
				{Status: quiz.AnswerStatusSkipped},
				{Status: quiz.AnswerStatusPending},
			}, nil)
		// 已作答折算 0.8，跳过记 0，待作答不计入
		deps.gradeSvc.EXPECT().TheoryScore([]float64{0.8, 0}).Return(40.0)
		deps.gradeSvc.EXPECT().OverallScore(100.0, 40.0).Return(82.0)
		deps.trustSvc.EXPECT().
			Report(gomock.Any(), interviewID, []proctor.TaskSolve{
				{Difficulty: "easy", CreatedAt: 1000, FirstPassedAt: 500_000},
			}, "def solve(): ...").
			Return(proctor.TrustReport{
				Score:   95,
				Status:  proctor.TrustStatusOK,
				Reasons: []string{"未发现行为异常"},
			}, nil)
		deps.gradeSvc.EXPECT().
			FinalGrade(82.0, 5.0, grading.GradeMiddle).
			Return(grading.GradeMiddlePlus)
		deps.gradeSvc.EXPECT().
			Progress(82.0, grading.GradeMiddlePlus).
			Return(46.67, 8.0)
		deps.gradeSvc.EXPECT().SaveCalculation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, calc grading.GradeCalculation) error {
				assert.Equal(t, interviewID, calc.InterviewID)
				assert.Equal(t, 100.0, calc.CodingScore)
				assert.Equal(t, 40.0, calc.TheoryScore)
				assert.Equal(t, 82.0, calc.OverallScore)
				assert.Equal(t, grading.GradeMiddlePlus, calc.Grade)
				return nil
			})
		deps.repo.EXPECT().Finish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, iv domain.Interview) error {
				assert.Equal(t, domain.InterviewStatusFinished, iv.Status)
				assert.Equal(t, domain.DecisionHire, iv.Decision)
				assert.Equal(t, grading.GradeMiddlePlus, iv.FinalGrade)
				assert.Equal(t, 95, iv.TrustScore)
				assert.True(t, iv.Etime > 0)
				return nil
			})

		sum, err := svc.Finalize(context.Background(), interviewID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, sum.CodingScore)
		assert.Equal(t, 40.0, sum.TheoryScore)
		assert.Equal(t, 82.0, sum.OverallScore)
		assert.Equal(t, grading.GradeMiddlePlus, sum.Grade)
		assert.Equal(t, domain.DecisionHire, sum.Decision)
		assert.Equal(t, "ok", sum.TrustStatus)
		require.Len(t, deps.producer.events, 1)
		assert.Equal(t, "hire", deps.producer.events[0].Decision)
		assert.Equal(t, interviewID, deps.producer.events[0].InterviewID)
	})

	t.Run("可疑_职级封顶middle_录用降为consider", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(t, ctrl)

		deps.repo.EXPECT().ByID(gomock.Any(), interviewID).Return(baseInterview, nil)
		deps.repo.EXPECT().Tasks(gomock.Any(), interviewID).
			Return([]domain.TaskRecord{perfectEasyTask}, nil)
		deps.quizSvc.EXPECT().InterviewAnswers(gomock.Any(), interviewID).
			Return([]quiz.Answer{}, nil)
		deps.gradeSvc.EXPECT().TheoryScore([]float64{}).Return(0.0)
		deps.gradeSvc.EXPECT().OverallScore(100.0, 0.0).Return(80.0)
		deps.trustSvc.EXPECT().
			Report(gomock.Any(), interviewID, gomock.Any(), gomock.Any()).
			Return(proctor.TrustReport{
				Score:   60,
				Status:  proctor.TrustStatusSuspicious,
				Reasons: []string{"检测到 2 次大段粘贴"},
			}, nil)
		deps.gradeSvc.EXPECT().
			FinalGrade(80.0, 5.0, grading.GradeMiddle).
			Return(grading.GradeSenior)
		deps.gradeSvc.EXPECT().
			Progress(80.0, grading.GradeMiddle).
			Return(100.0, 0.0)
		deps.gradeSvc.EXPECT().SaveCalculation(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().Finish(gomock.Any(), gomock.Any()).Return(nil)

		sum, err := svc.Finalize(context.Background(), interviewID)
		require.NoError(t, err)
		assert.Equal(t, grading.GradeMiddle, sum.Grade)
		assert.Equal(t, domain.DecisionConsider, sum.Decision)
		assert.Equal(t, []string{"检测到 2 次大段粘贴"}, sum.TrustReasons)
	})

	t.Run("高风险_直接不录用", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(t, ctrl)

		deps.repo.EXPECT().ByID(gomock.Any(), interviewID).Return(baseInterview, nil)
		deps.repo.EXPECT().Tasks(gomock.Any(), interviewID).
			Return([]domain.TaskRecord{perfectEasyTask}, nil)
		deps.quizSvc.EXPECT().InterviewAnswers(gomock.Any(), interviewID).
			Return([]quiz.Answer{}, nil)
		deps.gradeSvc.EXPECT().TheoryScore([]float64{}).Return(0.0)
		deps.gradeSvc.EXPECT().OverallScore(100.0, 0.0).Return(90.0)
		deps.trustSvc.EXPECT().
			Report(gomock.Any(), interviewID, gomock.Any(), gomock.Any()).
			Return(proctor.TrustReport{
				Score:  20,
				Status: proctor.TrustStatusHighRisk,
			}, nil)
		deps.gradeSvc.EXPECT().
			FinalGrade(90.0, 5.0, grading.GradeMiddle).
			Return(grading.GradeSenior)
		deps.gradeSvc.EXPECT().
			Progress(90.0, grading.GradeSenior).
			Return(100.0, 0.0)
		deps.gradeSvc.EXPECT().SaveCalculation(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().Finish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, iv domain.Interview) error {
				assert.Equal(t, domain.DecisionReject, iv.Decision)
				return nil
			})

		sum, err := svc.Finalize(context.Background(), interviewID)
		require.NoError(t, err)
		assert.Equal(t, domain.DecisionReject, sum.Decision)
		// 高风险只否决录用，不改职级
		assert.Equal(t, grading.GradeSenior, sum.Grade)
	})

	t.Run("信任报告失败_结算失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(t, ctrl)

		deps.repo.EXPECT().ByID(gomock.Any(), interviewID).Return(baseInterview, nil)
		deps.repo.EXPECT().Tasks(gomock.Any(), interviewID).
			Return([]domain.TaskRecord{perfectEasyTask}, nil)
		deps.quizSvc.EXPECT().InterviewAnswers(gomock.Any(), interviewID).
			Return([]quiz.Answer{}, nil)
		deps.gradeSvc.EXPECT().TheoryScore([]float64{}).Return(0.0)
		deps.gradeSvc.EXPECT().OverallScore(100.0, 0.0).Return(70.0)
		deps.trustSvc.EXPECT().
			Report(gomock.Any(), interviewID, gomock.Any(), gomock.Any()).
			Return(proctor.TrustReport{}, assert.AnError)

		_, err := svc.Finalize(context.Background(), interviewID)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
