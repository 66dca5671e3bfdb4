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
	"github.com/ecodeclub/vibecode/internal/adaptive/internal/domain"
)

// HintGatedStrategy 三档流程的难度推进策略：
// 强通过立刻升档；失败且考生主动点了下一题才降档；其余情况保持不变。
// 强通过的判定优先于失败。纯函数，调用方负责持久化新难度并选题。
type HintGatedStrategy struct {
	engine EngineService
}

func NewHintGatedStrategy(engine EngineService) *HintGatedStrategy {
	return &HintGatedStrategy{engine: engine}
}

func (s *HintGatedStrategy) NextLevel(
	current domain.Difficulty,
	result domain.TaskResult,
	wantNext bool,
) domain.Difficulty {
	if s.engine.IsStrongPass(result) {
		return current.Up()
	}
	if s.engine.IsFail(result) && wantNext {
		return current.Down()
	}
	return current.Normalize()
}

const (
	poolLevelUpScore   = 70.0
	poolLevelDownScore = 30.0
	// AI 风格分（0-100）低于该值才允许升档
	poolAIStyleGate = 50.0
)

// PoolStrategy 题池流程（五档刻度）的推进策略，
// 按任务得分走：>= 70 升档、<= 30 降档，升档额外要求 AI 风格分过关。
// 阈值与 HintGatedStrategy 相互独立，两套策略不许合并。
type PoolStrategy struct{}

func NewPoolStrategy() *PoolStrategy {
	return &PoolStrategy{}
}

// NextLevel score 取值 [0,100]，aiStyle 取值 [0,100]
func (s *PoolStrategy) NextLevel(
	current domain.PoolLevel,
	score float64,
	aiStyle float64,
) domain.PoolLevel {
	if score >= poolLevelUpScore && aiStyle < poolAIStyleGate {
		return current.Up()
	}
	if score <= poolLevelDownScore {
		return current.Down()
	}
	return current
}
