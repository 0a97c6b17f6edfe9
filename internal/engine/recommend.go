package engine

import (
	"fmt"
	"math"
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
)

type Recommendation struct {
	Action      string   `json:"action"`
	Description string   `json:"description"`
	Impact      int      `json:"impact"`
	Priority    Priority `json:"priority"`
	Steps       []string `json:"steps"`
}

type RecommendationSet struct {
	Recommendations      []Recommendation `json:"recommendations"`
	PotentialImprovement int              `json:"potential_improvement"`
	EstimatedNewScore    int              `json:"estimated_new_score"`
}

const (
	maxRecommendations       = 3
	maxPotentialImprovement  = 30
	wasteImpactFraction      = 0.25
	nutritionImpactFraction  = 0.30
	nutritionGapThreshold    = 15
	lowCategoryCount         = 2
	vegetableImpact          = 10
	proteinImpact            = 15
	proteinImprovementWeight = 5
)

// GenerateRecommendations ranks improvement actions from the SDG and
// nutrition metrics. Candidates are generated in a fixed order and earlier
// candidates always win the three available slots. The running improvement
// total is capped so the projected score stays realistic.
func GenerateRecommendations(sdg SDGMetrics, nutrition NutritionMetrics) RecommendationSet {
	recs := make([]Recommendation, 0, maxRecommendations+1)
	potential := 0.0

	if wastePotential := math.Min(float64(sdg.WastedCount*10), float64(100-sdg.Score)); wastePotential > 0 {
		impact := wastePotential * wasteImpactFraction
		recs = append(recs, Recommendation{
			Action:      "Reduce food waste",
			Description: fmt.Sprintf("You logged %d wasted items. Cutting waste is the fastest way to raise your score.", sdg.WastedCount),
			Impact:      int(math.Round(impact)),
			Priority:    PriorityHigh,
			Steps: []string{
				"Cook items closest to expiry first",
				"Freeze portions you will not eat in time",
				"Buy smaller quantities of perishables",
			},
		})
		potential += impact
	}

	if gap := 100 - nutrition.Score; gap > nutritionGapThreshold {
		impact := float64(gap) * nutritionImpactFraction
		recs = append(recs, Recommendation{
			Action:      "Diversify your diet",
			Description: "Your meals lean on a few food groups. Spreading across all five lifts your nutrition score.",
			Impact:      int(math.Round(impact)),
			Priority:    PriorityMedium,
			Steps: []string{
				"Cover at least three food groups per day",
				"Rotate proteins and grains through the week",
			},
		})
		potential += impact
	}

	if nutrition.Categories.Vegetables < lowCategoryCount {
		recs = append(recs, Recommendation{
			Action:      "Eat more vegetables",
			Description: "Vegetables are nearly absent from your recent meals.",
			Impact:      vegetableImpact,
			Priority:    PriorityMedium,
			Steps: []string{
				"Add one vegetable side to lunch or dinner",
				"Keep frozen vegetables on hand as a fallback",
			},
		})
		potential += vegetableImpact
	}

	if nutrition.Categories.Proteins < lowCategoryCount {
		recs = append(recs, Recommendation{
			Action:      "Add protein sources",
			Description: "Protein shows up rarely in your recent meals.",
			Impact:      proteinImpact,
			Priority:    PriorityMedium,
			Steps: []string{
				"Plan one egg, bean, or fish dish this week",
				"Pair grains with lentils or tofu",
			},
		})
		// Displayed impact overstates confidence here; weight the
		// running total lower than the shown estimate.
		potential += proteinImprovementWeight
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	potential = math.Min(potential, maxPotentialImprovement)
	rounded := int(math.Round(potential))

	estimated := sdg.Score + rounded
	if estimated > 100 {
		estimated = 100
	}
	return RecommendationSet{
		Recommendations:      recs,
		PotentialImprovement: rounded,
		EstimatedNewScore:    estimated,
	}
}
