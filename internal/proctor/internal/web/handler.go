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
	"github.com/ecodeclub/vibecode/internal/proctor/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.TrustService
	logger *elog.Component
}

func NewHandler(svc service.TrustService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 前端埋点批量上报，考试页面断网重试后会带重复批次，重放时天然幂等
	server.POST("/proctor/events", ginx.B[ReportEventsReq](h.ReportEvents))
	server.POST("/proctor/report", ginx.B[TrustReportReq](h.LastReport))
}

func (h *Handler) ReportEvents(ctx *ginx.Context, req ReportEventsReq) (ginx.Result, error) {
	for _, evt := range req.Events {
		err := h.svc.ReportEvent(ctx, req.InterviewID, evt.toDomain())
		if err != nil {
			return systemErrorResult, err
		}
	}
	return ginx.Result{}, nil
}

func (h *Handler) LastReport(ctx *ginx.Context, req TrustReportReq) (ginx.Result, error) {
	report, err := h.svc.LastReport(ctx, req.InterviewID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newTrustReportVO(report),
	}, nil
}
