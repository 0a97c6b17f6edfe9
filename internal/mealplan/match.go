package mealplan

import (
	"math"
	"strings"

	"github.com/wastenot/wastenot-cli/internal/model"
)

// RecipeMatch pairs a catalog recipe with how well current inventory covers
// it. Matched and missing ingredients always partition the recipe's
// ingredient list.
type RecipeMatch struct {
	Recipe             model.Recipe `json:"recipe"`
	MatchScore         int          `json:"match_score"`
	MatchedIngredients []string     `json:"matched_ingredients"`
	MissingIngredients []string     `json:"missing_ingredients"`
	Urgency            int          `json:"urgency"`
	FocusItem          string       `json:"focus_item"`
}

// ScoreRecipeMatch scores a recipe against the full inventory. Matching is
// a case-insensitive substring test in both directions, so the ingredient
// "egg" is covered by the pantry item "eggs" and vice versa.
func ScoreRecipeMatch(recipe model.Recipe, inventory []model.InventoryItem) RecipeMatch {
	match := RecipeMatch{
		Recipe:             recipe,
		MatchedIngredients: make([]string, 0, len(recipe.Ingredients)),
		MissingIngredients: make([]string, 0),
	}
	for _, ingredient := range recipe.Ingredients {
		if inventoryHas(inventory, ingredient) {
			match.MatchedIngredients = append(match.MatchedIngredients, ingredient)
		} else {
			match.MissingIngredients = append(match.MissingIngredients, ingredient)
		}
	}
	if len(recipe.Ingredients) > 0 {
		ratio := float64(len(match.MatchedIngredients)) / float64(len(recipe.Ingredients))
		match.MatchScore = int(math.Round(ratio * 100))
	}
	return match
}

func inventoryHas(inventory []model.InventoryItem, ingredient string) bool {
	want := strings.ToLower(ingredient)
	for _, item := range inventory {
		have := strings.ToLower(item.Name)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	return false
}
