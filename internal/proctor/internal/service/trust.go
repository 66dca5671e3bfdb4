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
	"context"
	"fmt"

	"github.com/ecodeclub/vibecode/internal/ai"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/domain"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

const (
	// 大段粘贴的长度阈值（字符）
	bigPasteThreshold = 150
	// 离开页面多久之后的粘贴算可疑（毫秒）
	longBlurMS = 60_000
	// 中高难度题目多快算可疑秒解（毫秒）
	fastSolveMS = 60_000
)

// TrustService 行为信任分。
// 每次计算都从会话开始重放完整事件历史，重算结果恒等，代价是 O(n)，
// 单场面试的事件量（几十到几百条）完全扛得住。
//
//go:generate mockgen -source=./trust.go -destination=../../mocks/trust.mock.go -package=proctormocks -typed=true TrustService
type TrustService interface {
	// ReportEvent 记录一条行为事件
	ReportEvent(ctx context.Context, interviewID int64, evt domain.Event) error
	// Report 计算并缓存信任报告。
	// solves 由调用方提供完整快照；finalCode 为空则跳过 AI 风格检测。
	Report(ctx context.Context, interviewID int64, solves []domain.TaskSolve, finalCode string) (domain.TrustReport, error)
	// LastReport 读取上一次算好的报告
	LastReport(ctx context.Context, interviewID int64) (domain.TrustReport, error)
}

var _ TrustService = &trustService{}

type trustService struct {
	repo        repository.ProctorRepository
	likenessSvc ai.AILikenessService
	logger      *elog.Component
}

func NewTrustService(
	repo repository.ProctorRepository,
	likenessSvc ai.AILikenessService,
) TrustService {
	return &trustService{
		repo:        repo,
		likenessSvc: likenessSvc,
		logger:      elog.DefaultLogger.With(elog.FieldComponent("TrustService")),
	}
}

func (s *trustService) ReportEvent(ctx context.Context, interviewID int64, evt domain.Event) error {
	return s.repo.SaveEvent(ctx, interviewID, evt)
}

func (s *trustService) Report(
	ctx context.Context,
	interviewID int64,
	solves []domain.TaskSolve,
	finalCode string,
) (domain.TrustReport, error) {
	events, err := s.repo.ListEvents(ctx, interviewID)
	if err != nil {
		return domain.TrustReport{}, fmt.Errorf("加载行为事件失败: %w", err)
	}
	signals := s.buildSignals(events, solves)

	if finalCode != "" {
		likeness, lerr := s.likenessSvc.CheckCode(ctx, finalCode)
		if lerr != nil {
			// 外部子系统出错，该信号按缺失处理，不是 0 也不是满分
			s.logger.Warn("AI 风格检测失败，信号按缺失处理",
				elog.FieldErr(lerr), elog.Int64("interviewID", interviewID))
		} else {
			signals.AILikenessScore = &likeness
		}
	}

	report := domain.TrustReport{
		Score:   s.calcScore(signals),
		Reasons: s.reasons(signals),
		Signals: signals,
	}
	report.Status = s.status(report.Score)

	if err = s.repo.CacheReport(ctx, interviewID, report); err != nil {
		// 缓存失败不影响报告本身
		s.logger.Warn("缓存信任报告失败",
			elog.FieldErr(err), elog.Int64("interviewID", interviewID))
	}
	return report, nil
}

func (s *trustService) LastReport(ctx context.Context, interviewID int64) (domain.TrustReport, error) {
	return s.repo.CachedReport(ctx, interviewID)
}

// buildSignals 单趟按时间序重放事件流。
// last_blur 指针在失焦时打点，重新聚焦清空，落在长失焦之后的粘贴才算可疑。
func (s *trustService) buildSignals(events []domain.Event, solves []domain.TaskSolve) domain.Signals {
	var signals domain.Signals
	var lastBlurAt int64

	for _, evt := range events {
		if evt.Type == domain.EventTypePaste {
			if evt.Paste != nil && evt.Paste.Length >= bigPasteThreshold {
				signals.BigPastesCount++
			}
			if lastBlurAt > 0 && evt.Timestamp-lastBlurAt >= longBlurMS {
				signals.PastesAfterLongBlur++
			}
		}
		if evt.Type == domain.EventTypeDevtools &&
			evt.Devtools != nil && evt.Devtools.Opened {
			signals.DevtoolsOpened = true
		}
		if evt.IsFocusLost() {
			signals.FocusLostCount++
			lastBlurAt = evt.Timestamp
		}
		if evt.IsFocusGained() {
			lastBlurAt = 0
		}
	}

	for _, solve := range solves {
		if solve.Difficulty != "middle" && solve.Difficulty != "hard" {
			continue
		}
		if solve.FirstPassedAt <= 0 || solve.CreatedAt <= 0 {
			continue
		}
		if solve.FirstPassedAt-solve.CreatedAt < fastSolveMS {
			signals.SuspiciouslyFastSolutions++
		}
	}
	return signals
}

// calcScore 100 起步逐项扣分，最后夹在 [0,100]
func (s *trustService) calcScore(signals domain.Signals) int {
	score := 100

	score -= 10 * min(signals.BigPastesCount, 3)
	if signals.PastesAfterLongBlur > 0 {
		score -= 15
	}
	score -= 15 * min(signals.SuspiciouslyFastSolutions, 2)
	if signals.DevtoolsOpened {
		score -= 10
	}
	if signals.AILikenessScore != nil {
		switch likeness := *signals.AILikenessScore; {
		case likeness >= 80:
			score -= 25
		case likeness >= 60:
			score -= 10
		}
	}
	// 第一次切屏只警告不扣分，之后逐次加重，切屏总罚分封顶 50
	if signals.FocusLostCount > 1 {
		penalty := 0
		for i := 0; i < signals.FocusLostCount-1; i++ {
			penalty += min(8+i*2, 15)
		}
		score -= min(penalty, 50)
	}

	return max(0, min(100, score))
}

func (s *trustService) status(score int) domain.TrustStatus {
	switch {
	case score >= 80:
		return domain.TrustStatusOK
	case score >= 50:
		return domain.TrustStatusSuspicious
	default:
		return domain.TrustStatusHighRisk
	}
}

// reasons 按固定优先级输出文案：粘贴 → 失焦后粘贴 → 秒解 → DevTools → AI → 切屏
func (s *trustService) reasons(signals domain.Signals) []string {
	res := make([]string, 0, 6)
	if signals.BigPastesCount > 0 {
		res = append(res, fmt.Sprintf("检测到 %d 次大段代码粘贴", signals.BigPastesCount))
	}
	if signals.PastesAfterLongBlur > 0 {
		res = append(res, "长时间离开页面后立刻粘贴了代码")
	}
	if signals.SuspiciouslyFastSolutions > 0 {
		res = append(res, fmt.Sprintf("%d 道题在高测试覆盖下解得可疑地快", signals.SuspiciouslyFastSolutions))
	}
	if signals.DevtoolsOpened {
		res = append(res, "解题期间打开过开发者工具（DevTools）")
	}
	if signals.AILikenessScore != nil {
		switch likeness := *signals.AILikenessScore; {
		case likeness >= 80:
			res = append(res, fmt.Sprintf("代码高度疑似 LLM 生成（AI 风格分约 %.0f）", likeness))
		case likeness >= 60:
			res = append(res, fmt.Sprintf("代码部分疑似 LLM 生成（AI 风格分约 %.0f）", likeness))
		}
	}
	if signals.FocusLostCount == 1 {
		res = append(res, "检测到一次切屏（仅警告）")
	} else if signals.FocusLostCount > 1 {
		res = append(res, fmt.Sprintf("多次切屏（%d 次），严重影响信任度", signals.FocusLostCount))
	}
	if len(res) == 0 {
		res = append(res, "未发现行为异常")
	}
	return res
}
