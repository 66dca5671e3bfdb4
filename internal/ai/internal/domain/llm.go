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

package domain

// LLMRequest 一次 LLM 调用
type LLMRequest struct {
	// Tid 本次调用的唯一凭证，用于排查和对账
	Tid          string
	Prompt       string
	SystemPrompt string
	Model        string
	Temperature  float64
}

type LLMResponse struct {
	Tid    string
	Answer string
	Tokens int64
}
