package engine

import (
	"time"

	"github.com/wastenot/wastenot-cli/internal/model"
)

// SDGProfile is the aggregate output of one engine call. It is rebuilt from
// scratch every time; nothing in this package caches between calls.
type SDGProfile struct {
	Score             int               `json:"sdg_score"`
	Band              string            `json:"band"`
	Waste             WasteReport       `json:"waste"`
	SDG               SDGMetrics        `json:"sdg"`
	Nutrition         NutritionMetrics  `json:"nutrition"`
	Weekly            WeeklyInsights    `json:"weekly_insights"`
	Recommendations   RecommendationSet `json:"recommendations"`
	EstimatedNewScore int               `json:"estimated_new_score"`
}

// BuildProfile is the engine's public entry point: it validates the
// snapshots once, runs each calculator with consistent inputs, and stitches
// the results together. Assemble, do not compute.
func BuildProfile(log []model.LogEntry, inventory []model.InventoryItem, ref time.Time) (*SDGProfile, error) {
	if err := ValidateLog(log); err != nil {
		return nil, err
	}
	if err := ValidateInventory(inventory); err != nil {
		return nil, err
	}

	sdg := CalculateSDGScore(log)
	nutrition := CalculateNutritionScore(log)
	recommendations := GenerateRecommendations(sdg, nutrition)

	return &SDGProfile{
		Score:             sdg.Score,
		Band:              SDGBand(sdg.Score),
		Waste:             AnalyzeWaste(log, inventory, ref),
		SDG:               sdg,
		Nutrition:         nutrition,
		Weekly:            GenerateWeeklyInsights(log, sdg),
		Recommendations:   recommendations,
		EstimatedNewScore: recommendations.EstimatedNewScore,
	}, nil
}
