package web

import (
	"github.com/ecodeclub/vibecode/internal/proctor/internal/domain"
)

type ReportEventsReq struct {
	InterviewID int64   `json:"interview_id"`
	Events      []Event `json:"events"`
}

type Event struct {
	Type string `json:"type"`
	// Timestamp 毫秒时间戳
	Timestamp      int64 `json:"timestamp"`
	PasteLength    int   `json:"paste_length,omitempty"`
	PasteFromEmpty bool  `json:"paste_from_empty,omitempty"`
	DevtoolsOpened bool  `json:"devtools_opened,omitempty"`
	Visible        *bool `json:"visible,omitempty"`
}

func (e Event) toDomain() domain.Event {
	res := domain.Event{
		Type:      domain.EventType(e.Type),
		Timestamp: e.Timestamp,
	}
	switch res.Type {
	case domain.EventTypePaste:
		res.Paste = &domain.PasteMeta{
			Length:    e.PasteLength,
			FromEmpty: e.PasteFromEmpty,
		}
	case domain.EventTypeDevtools:
		res.Devtools = &domain.DevtoolsMeta{Opened: e.DevtoolsOpened}
	case domain.EventTypeVisibilityChange:
		if e.Visible != nil {
			res.Visibility = &domain.VisibilityMeta{Visible: *e.Visible}
		}
	}
	return res
}

type TrustReportReq struct {
	InterviewID int64 `json:"interview_id"`
}

type TrustReportVO struct {
	Score   int      `json:"score"`
	Status  string   `json:"status"`
	Reasons []string `json:"reasons"`
	Signals Signals  `json:"signals"`
}

type Signals struct {
	BigPastesCount            int      `json:"big_pastes_count"`
	PastesAfterLongBlur       int      `json:"pastes_after_long_blur"`
	SuspiciouslyFastSolutions int      `json:"suspiciously_fast_solutions"`
	DevtoolsOpened            bool     `json:"devtools_opened"`
	FocusLostCount            int      `json:"focus_lost_count"`
	AILikenessScore           *float64 `json:"ai_likeness_score,omitempty"`
}

func newTrustReportVO(report domain.TrustReport) TrustReportVO {
	return TrustReportVO{
		Score:   report.Score,
		Status:  report.Status.String(),
		Reasons: report.Reasons,
		Signals: Signals{
			BigPastesCount:            report.Signals.BigPastesCount,
			PastesAfterLongBlur:       report.Signals.PastesAfterLongBlur,
			SuspiciouslyFastSolutions: report.Signals.SuspiciouslyFastSolutions,
			DevtoolsOpened:            report.Signals.DevtoolsOpened,
			FocusLostCount:            report.Signals.FocusLostCount,
			AILikenessScore:           report.Signals.AILikenessScore,
		},
	}
}
