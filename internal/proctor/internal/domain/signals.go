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

// Signals 一场面试聚合出来的作弊信号。
// 只在一次计算里临时存在，每次都从完整事件历史重放得到，不做增量更新。
type Signals struct {
	// 大段粘贴次数
	BigPastesCount int
	// 长时间离开页面后紧接着粘贴的次数
	PastesAfterLongBlur int
	// 中高难度题目可疑秒解次数
	SuspiciouslyFastSolutions int
	// 是否开过开发者工具，一旦置位不再清除
	DevtoolsOpened bool
	// 失焦（切屏）次数
	FocusLostCount int
	// AI 风格分，0-100。外部子系统出错时为 nil，表示信号缺失，
	// 缺失不等于 0 分，也不等于满分信任
	AILikenessScore *float64
}

// TaskSolve 一道已完成任务的解题时序，用于识别可疑秒解
type TaskSolve struct {
	// 三档难度刻度 easy/middle/hard
	Difficulty string
	// 任务下发时间，毫秒
	CreatedAt int64
	// 第一次达到 80% 通过率的提交时间，毫秒；没有这样的提交则为 0
	FirstPassedAt int64
}

// TrustStatus 信任档位
type TrustStatus string

const (
	TrustStatusOK         TrustStatus = "ok"
	TrustStatusSuspicious TrustStatus = "suspicious"
	TrustStatusHighRisk   TrustStatus = "high_risk"
)

func (s TrustStatus) String() string {
	return string(s)
}

// TrustReport 对外暴露的信任报告。
// Reasons 完全由 Signals 推导，不携带额外信息，给定同样的信号必然得到同样的文案。
type TrustReport struct {
	Score   int
	Status  TrustStatus
	Reasons []string
	Signals Signals
}
