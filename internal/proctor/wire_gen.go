// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package proctor

import (
	"context"
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
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, aiModule *ai.Module) (*Module, error) {
	behaviorEventDAO := initDAO(db)
	trustReportCache := cache.NewTrustReportCache(ec)
	proctorRepository := repository.NewProctorRepository(behaviorEventDAO, trustReportCache)
	v := initService(proctorRepository, aiModule)
	v2 := web.NewHandler(v)
	behaviorEventConsumer := initConsumer(v, q)
	module := &Module{
		Svc: v,
		Hdl: v2,
		C:   behaviorEventConsumer,
	}
	return module, nil
}

// wire.go:

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
