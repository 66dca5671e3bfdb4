// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package quiz

import (
	"github.com/ecodeclub/vibecode/internal/ai"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/repository"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/repository/dao"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/service"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/web"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, aiModule *ai.Module) (*Module, error) {
	answerDAO := initAnswerDAO(db)
	blockDAO := dao.NewGORMBlockDAO(db)
	quizRepository := repository.NewQuizRepository(answerDAO, blockDAO)
	v := initService(quizRepository, aiModule)
	v2 := web.NewHandler(v)
	module := &Module{
		Svc: v,
		Hdl: v2,
	}
	return module, nil
}

// wire.go:

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
