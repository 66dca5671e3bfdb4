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

	"github.com/ecodeclub/vibecode/internal/proctor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newTestService() *trustService {
	return &trustService{}
}

func pasteEvt(ts int64, length int) domain.Event {
	return domain.Event{
		Type:      domain.EventTypePaste,
		Timestamp: ts,
		Paste:     &domain.PasteMeta{Length: length},
	}
}

func blurEvt(ts int64) domain.Event {
	return domain.Event{Type: domain.EventTypeBlur, Timestamp: ts}
}

func focusEvt(ts int64) domain.Event {
	return domain.Event{Type: domain.EventTypeFocus, Timestamp: ts}
}

func TestTrustService_BuildSignals(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		events []domain.Event
		solves []domain.TaskSolve
		want   domain.Signals
	}{
		{
			name: "大段粘贴计数只统计超过阈值的",
			events: []domain.Event{
				pasteEvt(1000, 149),
				pasteEvt(2000, 150),
				pasteEvt(3000, 600),
			},
			want: domain.Signals{BigPastesCount: 2},
		},
		{
			name: "长时间失焦后的粘贴",
			events: []domain.Event{
				blurEvt(10_000),
				pasteEvt(80_000, 10),
			},
			want: domain.Signals{
				PastesAfterLongBlur: 1,
				FocusLostCount:      1,
			},
		},
		{
			name: "失焦后很快回来再粘贴不算可疑",
			events: []domain.Event{
				blurEvt(10_000),
				focusEvt(15_000),
				pasteEvt(200_000, 10),
			},
			want: domain.Signals{FocusLostCount: 1},
		},
		{
			name: "visibility 变化等价于失焦和聚焦",
			events: []domain.Event{
				{
					Type:       domain.EventTypeVisibilityChange,
					Timestamp:  10_000,
					Visibility: &domain.VisibilityMeta{Visible: false},
				},
				{
					Type:       domain.EventTypeVisibilityChange,
					Timestamp:  20_000,
					Visibility: &domain.VisibilityMeta{Visible: true},
				},
				blurEvt(30_000),
			},
			want: domain.Signals{FocusLostCount: 2},
		},
		{
			name: "DevTools 打开",
			events: []domain.Event{
				{
					Type:      domain.EventTypeDevtools,
					Timestamp: 1000,
					Devtools:  &domain.DevtoolsMeta{Opened: true},
				},
			},
			want: domain.Signals{DevtoolsOpened: true},
		},
		{
			name: "中高难度秒解才算可疑",
			solves: []domain.TaskSolve{
				// 简单题秒解不算
				{Difficulty: "easy", CreatedAt: 0, FirstPassedAt: 5_000},
				{Difficulty: "middle", CreatedAt: 0, FirstPassedAt: 30_000},
				{Difficulty: "hard", CreatedAt: 0, FirstPassedAt: 59_999},
				// 没通过的不算
				{Difficulty: "hard", CreatedAt: 0, FirstPassedAt: 0},
				{Difficulty: "hard", CreatedAt: 0, FirstPassedAt: 600_000},
			},
			want: domain.Signals{SuspiciouslyFastSolutions: 2},
		},
	}
	svc := newTestService()
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, svc.buildSignals(tc.events, tc.solves))
		})
	}
}

func TestTrustService_CalcScore(t *testing.T) {
	t.Parallel()
	aiScore := func(v float64) *float64 { return &v }
	testCases := []struct {
		name    string
		signals domain.Signals
		want    int
	}{
		{
			name: "无异常满分",
			want: 100,
		},
		{
			name:    "两次大段粘贴加 DevTools",
			signals: domain.Signals{BigPastesCount: 2, DevtoolsOpened: true},
			want:    70,
		},
		{
			name:    "大段粘贴扣分封顶三次",
			signals: domain.Signals{BigPastesCount: 10},
			want:    70,
		},
		{
			name:    "秒解扣分封顶两次",
			signals: domain.Signals{SuspiciouslyFastSolutions: 5},
			want:    70,
		},
		{
			name:    "失焦后粘贴一次性扣 15",
			signals: domain.Signals{PastesAfterLongBlur: 3, FocusLostCount: 1},
			want:    85,
		},
		{
			name:    "AI 风格分高于 80 重罚",
			signals: domain.Signals{AILikenessScore: aiScore(85)},
			want:    75,
		},
		{
			name:    "AI 风格分 60 到 80 轻罚",
			signals: domain.Signals{AILikenessScore: aiScore(65)},
			want:    90,
		},
		{
			name:    "AI 风格分缺失不扣分",
			signals: domain.Signals{AILikenessScore: nil},
			want:    100,
		},
		{
			name:    "第一次切屏只警告",
			signals: domain.Signals{FocusLostCount: 1},
			want:    100,
		},
		{
			name: "切屏逐次加重",
			// 第 2、3、4 次分别扣 8、10、12
			signals: domain.Signals{FocusLostCount: 4},
			want:    70,
		},
		{
			name:    "切屏总罚分封顶 50",
			signals: domain.Signals{FocusLostCount: 100},
			want:    50,
		},
		{
			name: "所有信号叠加也不会低于 0",
			signals: domain.Signals{
				BigPastesCount:            10,
				PastesAfterLongBlur:       5,
				SuspiciouslyFastSolutions: 5,
				DevtoolsOpened:            true,
				FocusLostCount:            100,
				AILikenessScore:           aiScore(99),
			},
			want: 0,
		},
	}
	svc := newTestService()
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, svc.calcScore(tc.signals))
		})
	}
}

// 任何单项信号变严重，分数都不应该变高
func TestTrustService_CalcScore_Monotonic(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	base := domain.Signals{
		BigPastesCount: 1,
		FocusLostCount: 2,
	}
	baseScore := svc.calcScore(base)

	worse := []domain.Signals{
		{BigPastesCount: 2, FocusLostCount: 2},
		{BigPastesCount: 1, FocusLostCount: 3},
		{BigPastesCount: 1, FocusLostCount: 2, DevtoolsOpened: true},
		{BigPastesCount: 1, FocusLostCount: 2, PastesAfterLongBlur: 1},
		{BigPastesCount: 1, FocusLostCount: 2, SuspiciouslyFastSolutions: 1},
	}
	for _, signals := range worse {
		assert.LessOrEqual(t, svc.calcScore(signals), baseScore)
	}
}

func TestTrustService_Status(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	testCases := []struct {
		score int
		want  domain.TrustStatus
	}{
		{score: 100, want: domain.TrustStatusOK},
		{score: 80, want: domain.TrustStatusOK},
		{score: 79, want: domain.TrustStatusSuspicious},
		{score: 70, want: domain.TrustStatusSuspicious},
		{score: 50, want: domain.TrustStatusSuspicious},
		{score: 49, want: domain.TrustStatusHighRisk},
		{score: 0, want: domain.TrustStatusHighRisk},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, svc.status(tc.score), "score %d", tc.score)
	}
}

func TestTrustService_Reasons(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	t.Run("无异常给兜底文案", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"未发现行为异常"}, svc.reasons(domain.Signals{}))
	})

	t.Run("文案按固定顺序输出", func(t *testing.T) {
		t.Parallel()
		likeness := 85.0
		res := svc.reasons(domain.Signals{
			BigPastesCount:  2,
			DevtoolsOpened:  true,
			FocusLostCount:  3,
			AILikenessScore: &likeness,
		})
		assert.Equal(t, []string{
			"检测到 2 次大段代码粘贴",
			"解题期间打开过开发者工具（DevTools）",
			"代码高度疑似 LLM 生成（AI 风格分约 85）",
			"多次切屏（3 次），严重影响信任度",
		}, res)
	})

	t.Run("单次切屏只是警告", func(t *testing.T) {
		t.Parallel()
		res := svc.reasons(domain.Signals{FocusLostCount: 1})
		assert.Equal(t, []string{"检测到一次切屏（仅警告）"}, res)
	})
}
