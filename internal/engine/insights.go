package engine

import (
	"fmt"

	"github.com/wastenot/wastenot-cli/internal/model"
)

type WeeklyInsights struct {
	CurrentScore     int      `json:"current_score"`
	PreviousScore    int      `json:"previous_score"`
	ScoreImprovement int      `json:"score_improvement"`
	WasteReduction   int      `json:"waste_reduction"`
	Insights         []string `json:"insights"`
}

// GenerateWeeklyInsights compares current metrics against a baseline
// recomputed over the earlier half of the log, split at the midpoint index.
// The split approximates week-over-week with whatever history exists; it is
// not calendar-aligned. Callers needing true calendar weeks must pre-filter
// the log. Entries must already be in chronological order.
func GenerateWeeklyInsights(log []model.LogEntry, current SDGMetrics) WeeklyInsights {
	mid := (len(log) + 1) / 2
	baseline := CalculateSDGScore(log[:mid])

	out := WeeklyInsights{
		CurrentScore:     current.Score,
		PreviousScore:    baseline.Score,
		ScoreImprovement: current.Score - baseline.Score,
		WasteReduction:   baseline.WastedCount - current.WastedCount,
	}

	switch {
	case out.ScoreImprovement > 0:
		out.Insights = append(out.Insights, fmt.Sprintf("Your sustainability score improved by %d points.", out.ScoreImprovement))
	case out.ScoreImprovement < 0:
		out.Insights = append(out.Insights, fmt.Sprintf("Your sustainability score dropped by %d points.", -out.ScoreImprovement))
	default:
		out.Insights = append(out.Insights, "Your sustainability score held steady.")
	}

	if out.WasteReduction > 0 {
		out.Insights = append(out.Insights, fmt.Sprintf("You wasted %d fewer items than before.", out.WasteReduction))
	} else if out.WasteReduction < 0 {
		out.Insights = append(out.Insights, fmt.Sprintf("You wasted %d more items than before.", -out.WasteReduction))
	}

	if current.ConsumedCount > baseline.ConsumedCount {
		out.Insights = append(out.Insights, "You are consuming more of what you buy. Keep it up.")
	}

	return out
}
