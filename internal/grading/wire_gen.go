// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package grading

import (
	"github.com/ecodeclub/vibecode/internal/grading/internal/repository"
	"github.com/ecodeclub/vibecode/internal/grading/internal/repository/dao"
	"github.com/ecodeclub/vibecode/internal/grading/internal/service"
	"github.com/ecodeclub/vibecode/internal/grading/internal/web"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	gradeCalculationDAO := initDAO(db)
	gradeRepository := repository.NewGradeRepository(gradeCalculationDAO)
	v := service.NewGradeService(gradeRepository)
	v2 := web.NewHandler(v)
	module := &Module{
		Svc: v,
		Hdl: v2,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.GradeCalculationDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMGradeCalculationDAO(db)
}
