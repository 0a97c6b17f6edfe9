package engine

import (
	"math"

	"github.com/wastenot/wastenot-cli/internal/model"
)

// Neutral prior returned when there is no history to score.
const baselineScore = 50

type SDGMetrics struct {
	Score         int `json:"sdg_score"`
	SuccessRate   int `json:"success_rate"`
	WastedCount   int `json:"wasted_count"`
	ConsumedCount int `json:"consumed_count"`
	TotalItems    int `json:"total_items"`
}

// CalculateSDGScore scores sustainable behavior from the log. The score is
// the consumption rate itself, not a weighted composite: simple and
// auditable. An empty log yields the neutral baseline, not an error.
func CalculateSDGScore(log []model.LogEntry) SDGMetrics {
	m := SDGMetrics{TotalItems: len(log)}
	for _, e := range log {
		switch e.Status {
		case model.StatusConsumed:
			m.ConsumedCount++
		case model.StatusWasted:
			m.WastedCount++
		}
	}
	if m.TotalItems == 0 {
		m.Score = baselineScore
		return m
	}
	m.SuccessRate = int(math.Round(float64(m.ConsumedCount) / float64(m.TotalItems) * 100))
	m.Score = m.SuccessRate
	return m
}

// SDGBand returns the user-facing label for a score. Labels never feed back
// into any numeric computation.
func SDGBand(score int) string {
	switch {
	case score >= 85:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "needs improvement"
	}
}
