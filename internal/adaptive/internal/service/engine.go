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

const (
	// 强通过判定
	strongPassTotalRate     = 0.90
	strongPassTotalRateHard = 0.75
	// 失败判定
	failVisibleRate = 0.60
	failTotalRate   = 0.50

	// 提示扣分
	hintPenaltySoft   = 0.10
	hintPenaltyMedium = 0.20
	hintPenaltyHard   = 0.35
	hintPenaltyCap    = 0.70
)

// EngineService 任务结果判定与编码得分计算。
// 纯计算，无 IO，同一输入永远得到同一输出，保证评分可复算可审计。
//
//go:generate mockgen -source=./engine.go -destination=../../mocks/engine.mock.go -package=adaptivemocks -typed=true EngineService
type EngineService interface {
	// IsStrongPass 判定是否强通过，强通过触发升档
	IsStrongPass(result domain.TaskResult) bool
	// IsFail 判定是否失败，与强通过相互独立
	IsFail(result domain.TaskResult) bool
	// TaskScore 单任务加权得分，取值 [0, 难度权重]
	TaskScore(result domain.TaskResult) float64
	// CodingScore 全部任务的编码得分，取值 [0, 100]，空列表返回 0
	CodingScore(results []domain.TaskResult) float64
}

var _ EngineService = &engineService{}

type engineService struct{}

func NewEngineService() EngineService {
	return &engineService{}
}

// IsStrongPass 的口径：
// - easy/middle：可见用例全过，总通过率 >= 90%，没用过 hard 提示，medium 提示至多一次
// - hard：可见用例全过，总通过率 >= 75%，不看提示
func (s *engineService) IsStrongPass(result domain.TaskResult) bool {
	visibleRate := result.VisibleRate()
	totalRate := result.TotalRate()
	if result.Difficulty.Normalize() == domain.DifficultyHard {
		return visibleRate == 1.0 && totalRate >= strongPassTotalRateHard
	}
	return visibleRate == 1.0 &&
		totalRate >= strongPassTotalRate &&
		result.HintsHard == 0 &&
		result.HintsMedium <= 1
}

// IsFail 可见通过率 < 60% 或总通过率 < 50% 即失败
func (s *engineService) IsFail(result domain.TaskResult) bool {
	return result.VisibleRate() < failVisibleRate ||
		result.TotalRate() < failTotalRate
}

func (s *engineService) TaskScore(result domain.TaskResult) float64 {
	penalty := hintPenaltySoft*float64(result.HintsSoft) +
		hintPenaltyMedium*float64(result.HintsMedium) +
		hintPenaltyHard*float64(result.HintsHard)
	if penalty > hintPenaltyCap {
		penalty = hintPenaltyCap
	}
	effectiveRate := result.TotalRate() * (1.0 - penalty)
	if effectiveRate < 0 {
		effectiveRate = 0
	}
	return effectiveRate * result.Difficulty.Weight()
}

func (s *engineService) CodingScore(results []domain.TaskResult) float64 {
	if len(results) == 0 {
		return 0.0
	}
	var totalScore, totalWeight float64
	for _, r := range results {
		totalScore += s.TaskScore(r)
		totalWeight += r.Difficulty.Weight()
	}
	if totalWeight < 1 {
		totalWeight = 1
	}
	score := totalScore / totalWeight * 100.0
	if score > 100.0 {
		return 100.0
	}
	if score < 0.0 {
		return 0.0
	}
	return score
}
