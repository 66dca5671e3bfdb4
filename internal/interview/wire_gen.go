// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package interview

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/vibecode/internal/adaptive"
	"github.com/ecodeclub/vibecode/internal/grading"
	"github.com/ecodeclub/vibecode/internal/interview/internal/event"
	"github.com/ecodeclub/vibecode/internal/interview/internal/repository"
	"github.com/ecodeclub/vibecode/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/vibecode/internal/interview/internal/service"
	"github.com/ecodeclub/vibecode/internal/interview/internal/web"
	"github.com/ecodeclub/vibecode/internal/pkg/sequencenumber"
	"github.com/ecodeclub/vibecode/internal/pkg/snowflake"
	"github.com/ecodeclub/vibecode/internal/proctor"
	"github.com/ecodeclub/vibecode/internal/quiz"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, q mq.MQ, adaptiveModule *adaptive.Module, gradingModule *grading.Module, quizModule *quiz.Module, proctorModule *proctor.Module) (*Module, error) {
	interviewDAO := initInterviewDAO(db)
	taskRecordDAO := dao.NewGORMTaskRecordDAO(db)
	interviewRepository := repository.NewInterviewRepository(interviewDAO, taskRecordDAO)
	v := initService(interviewRepository, q, adaptiveModule, gradingModule, quizModule, proctorModule)
	v2 := web.NewHandler(v)
	module := &Module{
		Svc: v,
		Hdl: v2,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func initInterviewDAO(db *egorm.Component) dao.InterviewDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMInterviewDAO(db)
}

func initService(
	repo repository.InterviewRepository,
	q mq.MQ,
	adaptiveModule *adaptive.Module,
	gradingModule *grading.Module,
	quizModule *quiz.Module,
	proctorModule *proctor.Module,
) InterviewService {
	idGen, err := snowflake.NewCustomSnowFlake(0, 1)
	if err != nil {
		panic(err)
	}
	producer, err := event.NewFinishedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return service.NewInterviewService(
		repo,
		gradingModule.Svc,
		quizModule.Svc,
		proctorModule.Svc,
		adaptiveModule.Svc,
		adaptiveModule.HintGated,
		idGen, sequencenumber.NewGenerator(), producer,
	)
}
