// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package adaptive

import (
	"github.com/ecodeclub/vibecode/internal/adaptive/internal/service"
)

// Injectors from wire.go:

func InitModule() *Module {
	v := service.NewEngineService()
	v2 := service.NewHintGatedStrategy(v)
	v3 := service.NewPoolStrategy()
	module := &Module{
		Svc:       v,
		HintGated: v2,
		Pool:      v3,
	}
	return module
}
