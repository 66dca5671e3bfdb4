package web

import (
	"github.com/ecodeclub/vibecode/internal/adaptive"
	"github.com/ecodeclub/vibecode/internal/grading"
	"github.com/ecodeclub/vibecode/internal/interview/internal/domain"
)

type StartReq struct {
	CandidateName     string  `json:"candidate_name"`
	Position          string  `json:"position"`
	YearsOfExperience float64 `json:"years_of_experience"`
	SelfClaimedGrade  string  `json:"self_claimed_grade"`
	// ResumeGrade 简历解析给出的职级信号，可以不传
	ResumeGrade string `json:"resume_grade,omitempty"`
}

func (r StartReq) toDomain() domain.Interview {
	return domain.Interview{
		CandidateName:     r.CandidateName,
		Position:          r.Position,
		YearsOfExperience: r.YearsOfExperience,
		SelfClaimedGrade:  grading.Grade(r.SelfClaimedGrade),
		ResumeGrade:       grading.Grade(r.ResumeGrade),
	}
}

type InterviewIDReq struct {
	InterviewID int64 `json:"interview_id"`
}

type InterviewSNReq struct {
	SN string `json:"sn"`
}

type RecordTaskReq struct {
	InterviewID int64 `json:"interview_id"`

	VisiblePassed int     `json:"visible_passed"`
	VisibleTotal  int     `json:"visible_total"`
	HiddenPassed  int     `json:"hidden_passed"`
	HiddenTotal   int     `json:"hidden_total"`
	HintsSoft     int     `json:"hints_soft"`
	HintsMedium   int     `json:"hints_medium"`
	HintsHard     int     `json:"hints_hard"`
	TimeSec       float64 `json:"time_sec"`

	WantNext bool `json:"want_next"`
	// CreatedAt 出题时间，毫秒
	CreatedAt int64 `json:"created_at"`
	// FirstPassedAt 第一次高通过率提交的时间，毫秒，没有传 0
	FirstPassedAt int64  `json:"first_passed_at"`
	FinalCode     string `json:"final_code"`
}

func (r RecordTaskReq) toDomain() domain.TaskRecord {
	return domain.TaskRecord{
		InterviewID: r.InterviewID,
		Result: adaptive.TaskResult{
			VisiblePassed: r.VisiblePassed,
			VisibleTotal:  r.VisibleTotal,
			HiddenPassed:  r.HiddenPassed,
			HiddenTotal:   r.HiddenTotal,
			HintsSoft:     r.HintsSoft,
			HintsMedium:   r.HintsMedium,
			HintsHard:     r.HintsHard,
			TimeSec:       r.TimeSec,
		},
		WantNext:      r.WantNext,
		CreatedAt:     r.CreatedAt,
		FirstPassedAt: r.FirstPassedAt,
		FinalCode:     r.FinalCode,
	}
}

type InterviewVO struct {
	ID                int64   `json:"id"`
	SN                string  `json:"sn"`
	CandidateName     string  `json:"candidate_name"`
	Position          string  `json:"position"`
	YearsOfExperience float64 `json:"years_of_experience"`
	StartGrade        string  `json:"start_grade"`
	CurrentDifficulty string  `json:"current_difficulty"`
	Status            string  `json:"status"`
	Decision          string  `json:"decision,omitempty"`
	FinalGrade        string  `json:"final_grade,omitempty"`
	OverallScore      float64 `json:"overall_score"`
	TrustScore        int     `json:"trust_score"`
	TrustStatus       string  `json:"trust_status,omitempty"`
	Stime             int64   `json:"stime"`
	Etime             int64   `json:"etime"`
}

func newInterviewVO(iv domain.Interview) InterviewVO {
	return InterviewVO{
		ID:                iv.ID,
		SN:                iv.SN,
		CandidateName:     iv.CandidateName,
		Position:          iv.Position,
		YearsOfExperience: iv.YearsOfExperience,
		StartGrade:        iv.StartGrade.String(),
		CurrentDifficulty: iv.CurrentDifficulty.String(),
		Status:            iv.Status.String(),
		Decision:          iv.Decision.String(),
		FinalGrade:        iv.FinalGrade.String(),
		OverallScore:      iv.OverallScore,
		TrustScore:        iv.TrustScore,
		TrustStatus:       iv.TrustStatus,
		Stime:             iv.Stime,
		Etime:             iv.Etime,
	}
}

type RecordTaskResp struct {
	// NextDifficulty 推进后的下一题难度
	NextDifficulty string `json:"next_difficulty"`
}

type SummaryVO struct {
	InterviewID     int64    `json:"interview_id"`
	CodingScore     float64  `json:"coding_score"`
	TheoryScore     float64  `json:"theory_score"`
	OverallScore    float64  `json:"overall_score"`
	Grade           string   `json:"grade"`
	Decision        string   `json:"decision"`
	ProgressPercent float64  `json:"progress_percent"`
	PointsToNext    float64  `json:"points_to_next"`
	TrustScore      int      `json:"trust_score"`
	TrustStatus     string   `json:"trust_status"`
	TrustReasons    []string `json:"trust_reasons"`
}

func newSummaryVO(sum domain.Summary) SummaryVO {
	return SummaryVO{
		InterviewID:     sum.InterviewID,
		CodingScore:     sum.CodingScore,
		TheoryScore:     sum.TheoryScore,
		OverallScore:    sum.OverallScore,
		Grade:           sum.Grade.String(),
		Decision:        sum.Decision.String(),
		ProgressPercent: sum.ProgressPercent,
		PointsToNext:    sum.PointsToNext,
		TrustScore:      sum.TrustScore,
		TrustStatus:     sum.TrustStatus,
		TrustReasons:    sum.TrustReasons,
	}
}
