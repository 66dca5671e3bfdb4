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

// Difficulty 编码任务的三档难度刻度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMiddle Difficulty = "middle"
	DifficultyHard   Difficulty = "hard"
)

// Normalize 归一化外部传入的难度。
// 历史数据里存在 medium 的写法，未知难度一律按 middle 处理，
// 打错标签的会话不能让整个聚合流程崩掉。
func (d Difficulty) Normalize() Difficulty {
	switch d {
	case DifficultyEasy, DifficultyMiddle, DifficultyHard:
		return d
	case "medium":
		return DifficultyMiddle
	default:
		return DifficultyMiddle
	}
}

func (d Difficulty) String() string {
	return string(d)
}

// Weight 难度权重，easy:1 middle:2 hard:3，用于编码得分的加权
func (d Difficulty) Weight() float64 {
	switch d.Normalize() {
	case DifficultyEasy:
		return 1.0
	case DifficultyMiddle:
		return 2.0
	default:
		return 3.0
	}
}

// Up 升一档，hard 封顶
func (d Difficulty) Up() Difficulty {
	switch d.Normalize() {
	case DifficultyEasy:
		return DifficultyMiddle
	default:
		return DifficultyHard
	}
}

// Down 降一档，easy 保底
func (d Difficulty) Down() Difficulty {
	switch d.Normalize() {
	case DifficultyHard:
		return DifficultyMiddle
	default:
		return DifficultyEasy
	}
}

// TaskResult 单个编码任务的原始结果，不可变值对象。
// 上游（沙箱）不保证 passed <= total，这里的通过率统一用 max(1, total) 兜底，
// 0/0 的任务得到 0 分而不是除零。
type TaskResult struct {
	Difficulty    Difficulty
	VisiblePassed int
	VisibleTotal  int
	HiddenPassed  int
	HiddenTotal   int
	// 三档提示的使用次数
	HintsSoft   int
	HintsMedium int
	HintsHard   int
	TimeSec     float64
}

// VisibleRate 可见用例通过率
func (r TaskResult) VisibleRate() float64 {
	return float64(r.VisiblePassed) / float64(max(1, r.VisibleTotal))
}

// TotalRate 全部用例（可见+隐藏）通过率
func (r TaskResult) TotalRate() float64 {
	return float64(r.VisiblePassed+r.HiddenPassed) /
		float64(max(1, r.VisibleTotal+r.HiddenTotal))
}
