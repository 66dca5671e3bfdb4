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

package quiz

import (
	"sync"

	"github.com/ecodeclub/vibecode/internal/ai"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/repository"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/repository/dao"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/service"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, aiModule *ai.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		initAnswerDAO,
		dao.NewGORMBlockDAO,
		repository.NewQuizRepository,
		initService,
		web.NewHandler,
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initAnswerDAO(db *egorm.Component) dao.AnswerDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMAnswerDAO(db)
}

func initService(repo repository.QuizRepository, aiModule *ai.Module) QuizService {
	return service.NewQuizService(repo, aiModule.TheorySvc)
}
