package web

import (
	"github.com/ecodeclub/vibecode/internal/quiz/internal/domain"
)

type SubmitReq struct {
	AnswerID int64 `json:"answer_id"`
	// Question 题面原文，评卷要用
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
}

type AnswerIDReq struct {
	AnswerID int64 `json:"answer_id"`
}

type BlockStatsReq struct {
	BlockID int64 `json:"block_id"`
}

type AnswerVO struct {
	ID            int64   `json:"id"`
	BlockID       int64   `json:"block_id"`
	QuestionID    int64   `json:"question_id"`
	Status        string  `json:"status"`
	AttemptNumber int     `json:"attempt_number"`
	// MaxAchievablePercent 本轮还能拿到的最高百分比
	MaxAchievablePercent float64 `json:"max_achievable_percent"`
	FinalScore           float64 `json:"final_score"`
	IsCorrect            bool    `json:"is_correct"`
	Feedback             string  `json:"feedback,omitempty"`
}

func newAnswerVO(ans domain.Answer) AnswerVO {
	return AnswerVO{
		ID:                   ans.ID,
		BlockID:              ans.BlockID,
		QuestionID:           ans.QuestionID,
		Status:               ans.Status.String(),
		AttemptNumber:        ans.AttemptNumber,
		MaxAchievablePercent: ans.MaxAchievablePercent(),
		FinalScore:           ans.FinalScore,
		IsCorrect:            ans.IsCorrect,
		Feedback:             ans.Feedback,
	}
}

type BlockStatsVO struct {
	Total        int                `json:"total"`
	Answered     int                `json:"answered"`
	Skipped      int                `json:"skipped"`
	Pending      int                `json:"pending"`
	Correct      int                `json:"correct"`
	AvgScore     float64            `json:"avg_score"`
	ByCategory   map[string]float64 `json:"by_category"`
	ByDifficulty map[string]float64 `json:"by_difficulty"`
}

func newBlockStatsVO(stats domain.BlockStats) BlockStatsVO {
	return BlockStatsVO{
		Total:        stats.Total,
		Answered:     stats.Answered,
		Skipped:      stats.Skipped,
		Pending:      stats.Pending,
		Correct:      stats.Correct,
		AvgScore:     stats.AvgScore,
		ByCategory:   stats.ByCategory,
		ByDifficulty: stats.ByDifficulty,
	}
}
