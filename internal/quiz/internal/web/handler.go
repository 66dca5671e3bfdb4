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
	"github.com/ecodeclub/vibecode/internal/quiz/internal/domain"
	"github.com/ecodeclub/vibecode/internal/quiz/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

type Handler struct {
	svc    service.QuizService
	logger *elog.Component
}

func NewHandler(svc service.QuizService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/quiz/answer/submit", ginx.B[SubmitReq](h.Submit))
	server.POST("/quiz/answer/skip", ginx.B[AnswerIDReq](h.Skip))
	server.POST("/quiz/answer/retry", ginx.B[AnswerIDReq](h.Retry))
	server.POST("/quiz/block/stats", ginx.B[BlockStatsReq](h.BlockStats))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq) (ginx.Result, error) {
	ans, err := h.svc.Submit(ctx, req.AnswerID, req.Question, req.UserAnswer)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: newAnswerVO(ans)}, nil
}

func (h *Handler) Skip(ctx *ginx.Context, req AnswerIDReq) (ginx.Result, error) {
	ans, err := h.svc.Skip(ctx, req.AnswerID)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: newAnswerVO(ans)}, nil
}

func (h *Handler) Retry(ctx *ginx.Context, req AnswerIDReq) (ginx.Result, error) {
	ans, err := h.svc.Retry(ctx, req.AnswerID)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: newAnswerVO(ans)}, nil
}

func (h *Handler) BlockStats(ctx *ginx.Context, req BlockStatsReq) (ginx.Result, error) {
	stats, err := h.svc.BlockStats(ctx, req.BlockID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newBlockStatsVO(stats)}, nil
}

func (h *Handler) errResult(err error) ginx.Result {
	if errors.Is(err, domain.ErrNotPending) || errors.Is(err, domain.ErrNotAnswered) {
		return invalidTransitionResult
	}
	return systemErrorResult
}
