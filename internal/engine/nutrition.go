package engine

import (
	"math"
	"strings"

	"github.com/wastenot/wastenot-cli/internal/model"
)

type NutritionCategories struct {
	Fruits     int `json:"fruits"`
	Vegetables int `json:"vegetables"`
	Proteins   int `json:"proteins"`
	Grains     int `json:"grains"`
	Dairy      int `json:"dairy"`
}

type NutritionMetrics struct {
	Score         int                 `json:"nutrition_score"`
	Categories    NutritionCategories `json:"categories"`
	TotalConsumed int                 `json:"total_consumed"`
	Suggestions   []string            `json:"suggestions"`
}

const (
	catFruits     = "fruits"
	catVegetables = "vegetables"
	catProteins   = "proteins"
	catGrains     = "grains"
	catDairy      = "dairy"
)

// Keyword classifiers, checked in this fixed order; the first category
// whose keyword appears in the item name wins. Substring matching is
// deliberately coarse ("eggs", "egg curry" both hit "egg"); items that
// match nothing are excluded from every category.
var nutritionKeywords = []struct {
	category string
	words    []string
}{
	{catFruits, []string{
		"apple", "banana", "orange", "mango", "grape", "berry", "strawberry",
		"melon", "pineapple", "peach", "pear", "kiwi", "lemon", "papaya",
	}},
	{catVegetables, []string{
		"tomato", "potato", "onion", "carrot", "spinach", "broccoli",
		"cabbage", "lettuce", "pepper", "cucumber", "cauliflower",
		"eggplant", "pumpkin", "zucchini", "pea",
	}},
	{catProteins, []string{
		"chicken", "beef", "fish", "egg", "meat", "pork", "lamb", "tofu",
		"lentil", "bean", "shrimp", "turkey",
	}},
	{catGrains, []string{
		"rice", "bread", "pasta", "oat", "wheat", "noodle", "cereal",
		"quinoa", "flour", "tortilla",
	}},
	{catDairy, []string{
		"milk", "cheese", "yogurt", "butter", "cream", "curd", "paneer",
	}},
}

var nutritionSuggestionText = map[string]string{
	catFruits:     "Add more fruit: apples, bananas, or whatever is in season.",
	catVegetables: "Work more vegetables into your meals, fresh or frozen.",
	catProteins:   "Include a protein source like eggs, beans, or fish more often.",
	catGrains:     "Add whole grains such as rice, oats, or whole-wheat bread.",
	catDairy:      "Consider some dairy or a fortified alternative now and then.",
}

const nutritionPositiveSuggestion = "Nice balance across food groups. Keep eating this way."

func defaultNutritionSuggestions() []string {
	return []string{
		"Log what you eat to get a personal nutrition breakdown.",
		"Aim to cover fruits, vegetables, proteins, grains, and dairy through the week.",
	}
}

// CalculateNutritionScore scores dietary diversity over consumed entries.
// The score rewards an even spread across the five food groups: each group
// is graded against an even fifth of consumption and capped at full credit,
// so one over-represented group cannot mask missing variety.
func CalculateNutritionScore(log []model.LogEntry) NutritionMetrics {
	m := NutritionMetrics{}
	counts := map[string]int{}
	for _, e := range log {
		if e.Status != model.StatusConsumed {
			continue
		}
		m.TotalConsumed++
		if category, ok := classifyFood(e.Name); ok {
			counts[category]++
		}
	}
	m.Categories = NutritionCategories{
		Fruits:     counts[catFruits],
		Vegetables: counts[catVegetables],
		Proteins:   counts[catProteins],
		Grains:     counts[catGrains],
		Dairy:      counts[catDairy],
	}

	if m.TotalConsumed == 0 {
		m.Score = baselineScore
		m.Suggestions = defaultNutritionSuggestions()
		return m
	}

	maxPerCategory := int(math.Ceil(float64(m.TotalConsumed) / 5))
	sum := 0.0
	for _, group := range nutritionKeywords {
		score := float64(counts[group.category]) / float64(maxPerCategory) * 100
		sum += math.Min(score, 100)
	}
	m.Score = int(math.Round(sum / 5))
	m.Suggestions = nutritionSuggestions(counts, maxPerCategory)
	return m
}

func classifyFood(name string) (string, bool) {
	lowered := strings.ToLower(name)
	for _, group := range nutritionKeywords {
		for _, word := range group.words {
			if strings.Contains(lowered, word) {
				return group.category, true
			}
		}
	}
	return "", false
}

// Dairy uses a looser threshold than the other groups since smaller daily
// quantities are expected.
func nutritionSuggestions(counts map[string]int, maxPerCategory int) []string {
	out := make([]string, 0)
	for _, group := range nutritionKeywords {
		threshold := float64(maxPerCategory) / 2
		if group.category == catDairy {
			threshold = float64(maxPerCategory) / 3
		}
		if float64(counts[group.category]) < threshold {
			out = append(out, nutritionSuggestionText[group.category])
		}
	}
	if len(out) == 0 {
		out = append(out, nutritionPositiveSuggestion)
	}
	return out
}
