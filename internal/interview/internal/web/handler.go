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
	"github.com/ecodeclub/vibecode/internal/interview/internal/domain"
	"github.com/ecodeclub/vibecode/internal/interview/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

type Handler struct {
	svc    service.InterviewService
	logger *elog.Component
}

func NewHandler(svc service.InterviewService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/interview/start", ginx.B[StartReq](h.Start))
	server.POST("/interview/task/record", ginx.B[RecordTaskReq](h.RecordTask))
	server.POST("/interview/finalize", ginx.B[InterviewIDReq](h.Finalize))
	server.POST("/interview/detail", ginx.B[InterviewIDReq](h.Detail))
	server.POST("/interview/detail/sn", ginx.B[InterviewSNReq](h.DetailBySN))
}

func (h *Handler) Start(ctx *ginx.Context, req StartReq) (ginx.Result, error) {
	iv, err := h.svc.Start(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newInterviewVO(iv)}, nil
}

func (h *Handler) RecordTask(ctx *ginx.Context, req RecordTaskReq) (ginx.Result, error) {
	next, err := h.svc.RecordTask(ctx, req.InterviewID, req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrInterviewFinished) {
			return interviewFinishedResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: RecordTaskResp{NextDifficulty: next.String()}}, nil
}

func (h *Handler) Finalize(ctx *ginx.Context, req InterviewIDReq) (ginx.Result, error) {
	sum, err := h.svc.Finalize(ctx, req.InterviewID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSummaryVO(sum)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req InterviewIDReq) (ginx.Result, error) {
	iv, err := h.svc.Interview(ctx, req.InterviewID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newInterviewVO(iv)}, nil
}

func (h *Handler) DetailBySN(ctx *ginx.Context, req InterviewSNReq) (ginx.Result, error) {
	iv, err := h.svc.InterviewBySN(ctx, req.SN)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newInterviewVO(iv)}, nil
}
