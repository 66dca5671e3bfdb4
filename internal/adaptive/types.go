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

package adaptive

import (
	"github.com/ecodeclub/vibecode/internal/adaptive/internal/domain"
	"github.com/ecodeclub/vibecode/internal/adaptive/internal/service"
)

type TaskResult = domain.TaskResult
type Difficulty = domain.Difficulty
type PoolLevel = domain.PoolLevel

type EngineService = service.EngineService
type HintGatedStrategy = service.HintGatedStrategy
type PoolStrategy = service.PoolStrategy

func NewEngineService() EngineService {
	return service.NewEngineService()
}

func NewHintGatedStrategy(engine EngineService) *HintGatedStrategy {
	return service.NewHintGatedStrategy(engine)
}

func NewPoolStrategy() *PoolStrategy {
	return service.NewPoolStrategy()
}

const (
	DifficultyEasy   = domain.DifficultyEasy
	DifficultyMiddle = domain.DifficultyMiddle
	DifficultyHard   = domain.DifficultyHard

	PoolLevelJunior     = domain.PoolLevelJunior
	PoolLevelJuniorPlus = domain.PoolLevelJuniorPlus
	PoolLevelMiddle     = domain.PoolLevelMiddle
	PoolLevelMiddlePlus = domain.PoolLevelMiddlePlus
	PoolLevelSenior     = domain.PoolLevelSenior
)
