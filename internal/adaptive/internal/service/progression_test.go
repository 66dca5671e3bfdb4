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
	"testing"

	"github.com/ecodeclub/vibecode/internal/adaptive/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHintGatedStrategy_NextLevel(t *testing.T) {
	strongPass := domain.TaskResult{
		Difficulty:    domain.DifficultyEasy,
		VisiblePassed: 3,
		VisibleTotal:  3,
		HiddenPassed:  9,
		HiddenTotal:   10,
		HintsMedium:   1,
	}
	fail := domain.TaskResult{
		Difficulty:    domain.DifficultyMiddle,
		VisiblePassed: 1,
		VisibleTotal:  3,
	}
	soso := domain.TaskResult{
		Difficulty:    domain.DifficultyMiddle,
		VisiblePassed: 2,
		VisibleTotal:  3,
		HiddenPassed:  8,
		HiddenTotal:   10,
	}

	strategy := NewHintGatedStrategy(NewEngineService())
	testCases := []struct {
		name     string
		current  domain.Difficulty
		result   domain.TaskResult
		wantNext bool
		wantRes  domain.Difficulty
	}{
		{
			name:    "强通过升档",
			current: domain.DifficultyEasy,
			result:  strongPass,
			wantRes: domain.DifficultyMiddle,
		},
		{
			name:    "hard强通过仍是hard",
			current: domain.DifficultyHard,
			result: domain.TaskResult{
				Difficulty:    domain.DifficultyHard,
				VisiblePassed: 2,
				VisibleTotal:  2,
				HiddenPassed:  3,
				HiddenTotal:   4,
			},
			wantRes: domain.DifficultyHard,
		},
		{
			name:     "失败且主动跳题才降档",
			current:  domain.DifficultyMiddle,
			result:   fail,
			wantNext: true,
			wantRes:  domain.DifficultyEasy,
		},
		{
			name:    "失败但没跳题保持原档",
			current: domain.DifficultyMiddle,
			result:  fail,
			wantRes: domain.DifficultyMiddle,
		},
		{
			name:     "easy失败跳题保底easy",
			current:  domain.DifficultyEasy,
			result:   fail,
			wantNext: true,
			wantRes:  domain.DifficultyEasy,
		},
		{
			name:     "普通通过保持不变",
			current:  domain.DifficultyMiddle,
			result:   soso,
			wantNext: true,
			wantRes:  domain.DifficultyMiddle,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := strategy.NextLevel(tc.current, tc.result, tc.wantNext)
			assert.Equal(t, tc.wantRes, res)
			// 纯函数，重复调用结果一致
			assert.Equal(t, res, strategy.NextLevel(tc.current, tc.result, tc.wantNext))
		})
	}
}

func TestPoolStrategy_NextLevel(t *testing.T) {
	strategy := NewPoolStrategy()
	testCases := []struct {
		name    string
		current domain.PoolLevel
		score   float64
		aiStyle float64
		wantRes domain.PoolLevel
	}{
		{
			name:    "高分升档",
			current: domain.PoolLevelMiddle,
			score:   85,
			aiStyle: 10,
			wantRes: domain.PoolLevelMiddlePlus,
		},
		{
			name:    "高分但AI风格分过高不升档",
			current: domain.PoolLevelMiddle,
			score:   85,
			aiStyle: 60,
			wantRes: domain.PoolLevelMiddle,
		},
		{
			name:    "低分降档",
			current: domain.PoolLevelJuniorPlus,
			score:   20,
			aiStyle: 0,
			wantRes: domain.PoolLevelJunior,
		},
		{
			name:    "junior保底",
			current: domain.PoolLevelJunior,
			score:   0,
			aiStyle: 0,
			wantRes: domain.PoolLevelJunior,
		},
		{
			name:    "senior封顶",
			current: domain.PoolLevelSenior,
			score:   100,
			aiStyle: 0,
			wantRes: domain.PoolLevelSenior,
		},
		{
			name:    "中间分数保持",
			current: domain.PoolLevelMiddle,
			score:   50,
			aiStyle: 0,
			wantRes: domain.PoolLevelMiddle,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, strategy.NextLevel(tc.current, tc.score, tc.aiStyle))
		})
	}
}
