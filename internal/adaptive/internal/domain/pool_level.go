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

// PoolLevel 题池流程使用的五档级别。
// 它和三档的 Difficulty 是两套互不兼容的刻度，
// 只能通过 ToDifficulty 显式转换，禁止拿序号互相顶替。
type PoolLevel string

const (
	PoolLevelJunior     PoolLevel = "junior"
	PoolLevelJuniorPlus PoolLevel = "junior+"
	PoolLevelMiddle     PoolLevel = "middle"
	PoolLevelMiddlePlus PoolLevel = "middle+"
	PoolLevelSenior     PoolLevel = "senior"
)

var poolLevelOrder = []PoolLevel{
	PoolLevelJunior,
	PoolLevelJuniorPlus,
	PoolLevelMiddle,
	PoolLevelMiddlePlus,
	PoolLevelSenior,
}

func (l PoolLevel) index() int {
	for i, lv := range poolLevelOrder {
		if lv == l {
			return i
		}
	}
	// 未知级别按 middle 处理
	return 2
}

func (l PoolLevel) String() string {
	return string(l)
}

// Up 升一级，senior 封顶
func (l PoolLevel) Up() PoolLevel {
	idx := l.index()
	if idx >= len(poolLevelOrder)-1 {
		return PoolLevelSenior
	}
	return poolLevelOrder[idx+1]
}

// Down 降一级，junior 保底
func (l PoolLevel) Down() PoolLevel {
	idx := l.index()
	if idx <= 0 {
		return PoolLevelJunior
	}
	return poolLevelOrder[idx-1]
}

// ToDifficulty 把五档级别映射到三档任务难度
func (l PoolLevel) ToDifficulty() Difficulty {
	switch l {
	case PoolLevelJunior:
		return DifficultyEasy
	case PoolLevelSenior:
		return DifficultyHard
	default:
		return DifficultyMiddle
	}
}
