//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/vibecode/internal/adaptive"
	"github.com/ecodeclub/vibecode/internal/ai"
	"github.com/ecodeclub/vibecode/internal/grading"
	"github.com/ecodeclub/vibecode/internal/interview"
	"github.com/ecodeclub/vibecode/internal/proctor"
	"github.com/ecodeclub/vibecode/internal/quiz"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ai.InitModule,
		adaptive.InitModule,
		grading.InitModule,
		quiz.InitModule,
		proctor.InitModule,
		interview.InitModule,
		wire.FieldsOf(new(*interview.Module), "Hdl"),
		wire.FieldsOf(new(*quiz.Module), "Hdl"),
		wire.FieldsOf(new(*proctor.Module), "Hdl"),
		wire.FieldsOf(new(*grading.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
