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

//go:build wireinject

package interview

import (
	"sync"

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
	"github.com/google/wire"
)

func InitModule(
	db *egorm.Component,
	q mq.MQ,
	adaptiveModule *adaptive.Module,
	gradingModule *grading.Module,
	quizModule *quiz.Module,
	proctorModule *proctor.Module,
) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		initInterviewDAO,
		dao.NewGORMTaskRecordDAO,
		repository.NewInterviewRepository,
		initService,
		web.NewHandler,
	)
	return new(Module), nil
}

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
		idGen,
		sequencenumber.NewGenerator(),
		producer,
	)
}
