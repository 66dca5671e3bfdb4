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

package proctor

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/vibecode/internal/ai"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/event"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/repository"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/repository/cache"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/repository/dao"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/service"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, aiModule *ai.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		initDAO,
		cache.NewTrustReportCache,
		repository.NewProctorRepository,
		initService,
		initConsumer,
		web.NewHandler,
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.BehaviorEventDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMBehaviorEventDAO(db)
}

func initService(repo repository.ProctorRepository, aiModule *ai.Module) TrustService {
	return service.NewTrustService(repo, aiModule.LikenessSvc)
}

func initConsumer(svc TrustService, q mq.MQ) *event.BehaviorEventConsumer {
	c, err := event.NewBehaviorEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
