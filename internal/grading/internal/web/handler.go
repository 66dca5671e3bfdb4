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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/vibecode/internal/grading/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.GradeService
	logger *elog.Component
}

func NewHandler(svc service.GradeService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/grading/calculation", ginx.B[CalculationReq](h.Calculation))
	server.POST("/grading/start-grade", ginx.B[StartGradeReq](h.StartGrade))
}

func (h *Handler) Calculation(ctx *ginx.Context, req CalculationReq) (ginx.Result, error) {
	calc, err := h.svc.Calculation(ctx, req.InterviewID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCalculationVO(calc)}, nil
}

func (h *Handler) StartGrade(ctx *ginx.Context, req StartGradeReq) (ginx.Result, error) {
	grade := h.svc.StartGrade(req.YearsOfExperience, toGrade(req.SelfClaimedGrade), toGrade(req.ResumeGrade))
	return ginx.Result{
		Data: StartGradeVO{
			Grade:      grade.String(),
			GradeIndex: grade.Index(),
		},
	}, nil
}
