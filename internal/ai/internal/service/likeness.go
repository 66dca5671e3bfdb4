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
	"strconv"
	"strings"

	"github.com/ecodeclub/vibecode/internal/ai/internal/domain"
	"github.com/ecodeclub/vibecode/internal/ai/internal/service/llm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/lithammer/shortuuid/v4"
)

// AILikenessService 判断一段代码像不像 LLM 生成的。
// 返回值统一归一到 [0,100]，全系统只用这一个刻度。
// 调用失败时调用方应当把该信号当作缺失，而不是 0 分或满分。
//
//go:generate mockgen -source=./likeness.go -destination=../../mocks/likeness.mock.go -package=aimocks -typed=true AILikenessService
type AILikenessService interface {
	CheckCode(ctx context.Context, code string) (float64, error)
}

var _ AILikenessService = &llmAILikenessService{}

type llmAILikenessService struct {
	svc llm.Service
}

func NewAILikenessService(svc llm.Service) AILikenessService {
	return &llmAILikenessService{svc: svc}
}

func (s *llmAILikenessService) CheckCode(ctx context.Context, code string) (float64, error) {
	resp, err := s.svc.Invoke(ctx, domain.LLMRequest{
		Tid:          shortuuid.New() + "_likeness",
		Model:        econf.GetString("ai.model"),
		SystemPrompt: "你是代码审查助手。判断下面这段代码由大模型生成的可能性，只回复一个 0 到 100 的数字。",
		Prompt:       code,
	})
	if err != nil {
		return 0, fmt.Errorf("调用 AI 风格检测失败: %w", err)
	}
	score, err := parseScore(resp.Answer)
	if err != nil {
		return 0, err
	}
	// 个别模型会按 0-1 回复，统一归一到 0-100
	if score <= 1.0 {
		score *= 100
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}

// parseScore 从模型回复里解析第一个数字
func parseScore(answer string) (float64, error) {
	for _, field := range strings.Fields(strings.ReplaceAll(answer, "%", " ")) {
		field = strings.Trim(field, ".,:：，。")
		score, err := strconv.ParseFloat(field, 64)
		if err == nil && score >= 0 {
			return score, nil
		}
	}
	return 0, fmt.Errorf("无法从模型回复中解析分数: %q", answer)
}
