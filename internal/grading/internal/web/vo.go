package web

import (
	"github.com/ecodeclub/vibecode/internal/grading/internal/domain"
)

type CalculationReq struct {
	InterviewID int64 `json:"interview_id"`
}

type StartGradeReq struct {
	YearsOfExperience float64 `json:"years_of_experience"`
	SelfClaimedGrade  string  `json:"self_claimed_grade"`
	// ResumeGrade 没有简历信号时传空
	ResumeGrade string `json:"resume_grade,omitempty"`
}

type StartGradeVO struct {
	Grade      string `json:"grade"`
	GradeIndex int    `json:"grade_index"`
}

type CalculationVO struct {
	InterviewID     int64   `json:"interview_id"`
	CodingScore     float64 `json:"coding_score"`
	TheoryScore     float64 `json:"theory_score"`
	OverallScore    float64 `json:"overall_score"`
	GradeIndex      int     `json:"grade_index"`
	Grade           string  `json:"grade"`
	ProgressPercent float64 `json:"progress_percent"`
	PointsToNext    float64 `json:"points_to_next"`
}

func newCalculationVO(calc domain.GradeCalculation) CalculationVO {
	return CalculationVO{
		InterviewID:     calc.InterviewID,
		CodingScore:     calc.CodingScore,
		TheoryScore:     calc.TheoryScore,
		OverallScore:    calc.OverallScore,
		GradeIndex:      calc.GradeIndex,
		Grade:           calc.Grade.String(),
		ProgressPercent: calc.ProgressPercent,
		PointsToNext:    calc.PointsToNext,
	}
}

func toGrade(s string) domain.Grade {
	return domain.Grade(s)
}
