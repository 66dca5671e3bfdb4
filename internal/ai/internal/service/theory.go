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

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/vibecode/internal/ai/internal/domain"
	"github.com/ecodeclub/vibecode/internal/ai/internal/service/llm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/lithammer/shortuuid/v4"
)

// TheoryExamineService 评估理论题回答，返回 [0,100] 的原始评估分。
// 重试衰减、最终聚合都在 quiz/grading 里做，这里只出原始分。
//
//go:generate mockgen -source=./theory.go -destination=../../mocks/theory.mock.go -package=aimocks -typed=true TheoryExamineService
type TheoryExamineService interface {
	Examine(ctx context.Context, question, answer string) (float64, error)
}

var _ TheoryExamineService = &llmTheoryExamineService{}

type llmTheoryExamineService struct {
	svc llm.Service
}

func NewTheoryExamineService(svc llm.Service) TheoryExamineService {
	return &llmTheoryExamineService{svc: svc}
}

func (s *llmTheoryExamineService) Examine(ctx context.Context, question, answer string) (float64, error) {
	resp, err := s.svc.Invoke(ctx, domain.LLMRequest{
		Tid:          shortuuid.New() + "_theory",
		Model:        econf.GetString("ai.model"),
		SystemPrompt: "你是技术面试官。给候选人的回答打分，只回复一个 0 到 100 的数字。",
		Prompt:       fmt.Sprintf("题目：%s\n候选人回答：%s", question, answer),
	})
	if err != nil {
		return 0, fmt.Errorf("调用理论题评估失败: %w", err)
	}
	score, err := parseScore(resp.Answer)
	if err != nil {
		return 0, err
	}
	if score <= 1.0 {
		score *= 100
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}
