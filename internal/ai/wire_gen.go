// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ai

import (
	"github.com/ecodeclub/vibecode/internal/ai/internal/service"
	"github.com/ecodeclub/vibecode/internal/ai/internal/service/llm"
	"github.com/ecodeclub/vibecode/internal/ai/internal/service/llm/zhipu"
	"github.com/gotomicro/ego/core/econf"
)

// Injectors from wire.go:

func InitModule() (*Module, error) {
	v := initPlatform()
	v2 := service.NewAILikenessService(v)
	v3 := service.NewTheoryExamineService(v)
	module := &Module{
		Svc:         v,
		LikenessSvc: v2,
		TheorySvc:   v3,
	}
	return module, nil
}

// wire.go:

func initPlatform() llm.Service {
	hdl, err := zhipu.NewHandler(econf.GetString("ai.apikey"))
	if err != nil {
		panic(err)
	}
	return hdl
}
