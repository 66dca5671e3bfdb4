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

package zhipu

import (
	"context"

	llmsvc "github.com/ecodeclub/vibecode/internal/ai/internal/service/llm"

	"github.com/ecodeclub/vibecode/internal/ai/internal/domain"
	"github.com/yankeguo/zhipu"
)

var _ llmsvc.Service = &Handler{}

// Handler 智谱出口。如果后续要接别的平台，再提供别的实现
type Handler struct {
	client *zhipu.Client
}

func NewHandler(apikey string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	return &Handler{client: client}, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	chatReq := h.buildReq(req)
	completion, err := chatReq.Do(ctx)
	if err != nil {
		return domain.LLMResponse{}, err
	}
	resp := domain.LLMResponse{
		Tid:    req.Tid,
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (h *Handler) buildReq(req domain.LLMRequest) *zhipu.ChatCompletionService {
	svc := h.client.ChatCompletion(req.Model)
	chatReq := svc.AddMessage(zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Prompt,
	})
	if req.Temperature > 0 {
		chatReq = chatReq.SetTemperature(req.Temperature)
	}
	if req.SystemPrompt != "" {
		chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: req.SystemPrompt,
		})
	}
	return chatReq
}
