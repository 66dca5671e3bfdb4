// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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

// Injectors from wire.go:

func InitApp() (*App, error) {
	v := InitDB()
	mq := InitMQ()
	module := adaptive.InitModule()
	gradingModule, err := grading.InitModule(v)
	if err != nil {
		return nil, err
	}
	aiModule, err := ai.InitModule()
	if err != nil {
		return nil, err
	}
	quizModule, err := quiz.InitModule(v, aiModule)
	if err != nil {
		return nil, err
	}
	cmdable := InitRedis()
	cache := InitCache(cmdable)
	proctorModule, err := proctor.InitModule(v, cache, mq, aiModule)
	if err != nil {
		return nil, err
	}
	interviewModule, err := interview.InitModule(v, mq, module, gradingModule, quizModule, proctorModule)
	if err != nil {
		return nil, err
	}
	v2 := interviewModule.Hdl
	v3 := quizModule.Hdl
	v4 := proctorModule.Hdl
	v5 := gradingModule.Hdl
	component := initGinxServer(v2, v3, v4, v5)
	app := &App{
		Web: component,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)
