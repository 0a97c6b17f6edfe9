package mealplan

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wastenot/wastenot-cli/internal/engine"
	"github.com/wastenot/wastenot-cli/internal/model"
)

const (
	// A recipe must cover at least half its ingredients to be suggested.
	minMatchScore = 50

	maxPlanRecommendations = 5
	weeklyMealCount        = 7
)

type MealPlan struct {
	Recommendations []RecipeMatch `json:"recommendations"`
	Count           int           `json:"count"`
	Summary         string        `json:"summary"`
}

type DayMeal struct {
	Day   string      `json:"day"`
	Match RecipeMatch `json:"match"`
}

type ShoppingItem struct {
	Ingredient string `json:"ingredient"`
	NeededFor  int    `json:"needed_for"`
}

type WeeklyPlan struct {
	Days         []DayMeal      `json:"days"`
	ShoppingList []ShoppingItem `json:"shopping_list"`
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// GeneratePlan recommends recipes focused on the soonest-expiring pantry
// items. The catalog maps lower-cased primary ingredients to candidate
// recipes and is treated as read-only.
func GeneratePlan(inventory []model.InventoryItem, catalog map[string][]model.Recipe, prefs []model.Preference, ref time.Time) (*MealPlan, error) {
	ranked, err := rankMatches(inventory, catalog, prefs, ref)
	if err != nil {
		return nil, err
	}
	top := ranked
	if len(top) > maxPlanRecommendations {
		top = top[:maxPlanRecommendations]
	}
	return &MealPlan{
		Recommendations: top,
		Count:           len(top),
		Summary:         planSummary(len(top), len(inventory)),
	}, nil
}

// GenerateWeeklyPlan assigns the top-ranked matches to named weekdays in
// order and aggregates their missing ingredients into a shopping list. It
// draws from the full ranked list, not the trimmed daily recommendations,
// so a week can hold more meals than GeneratePlan shows.
func GenerateWeeklyPlan(inventory []model.InventoryItem, catalog map[string][]model.Recipe, prefs []model.Preference, ref time.Time) (*WeeklyPlan, error) {
	ranked, err := rankMatches(inventory, catalog, prefs, ref)
	if err != nil {
		return nil, err
	}
	if len(ranked) > weeklyMealCount {
		ranked = ranked[:weeklyMealCount]
	}

	plan := &WeeklyPlan{Days: make([]DayMeal, 0, len(ranked))}
	for i, match := range ranked {
		plan.Days = append(plan.Days, DayMeal{Day: weekdays[i], Match: match})
	}
	plan.ShoppingList = buildShoppingList(ranked)
	return plan, nil
}

func rankMatches(inventory []model.InventoryItem, catalog map[string][]model.Recipe, prefs []model.Preference, ref time.Time) ([]RecipeMatch, error) {
	if err := engine.ValidateInventory(inventory); err != nil {
		return nil, err
	}

	byExpiry := make([]model.InventoryItem, len(inventory))
	copy(byExpiry, inventory)
	sort.SliceStable(byExpiry, func(i, j int) bool {
		return byExpiry[i].ExpiresOn.Before(byExpiry[j].ExpiresOn)
	})

	matches := make([]RecipeMatch, 0)
	for _, item := range byExpiry {
		for _, recipe := range catalog[strings.ToLower(item.Name)] {
			match := ScoreRecipeMatch(recipe, inventory)
			if match.MatchScore < minMatchScore {
				continue
			}
			match.Urgency = engine.Urgency(item.DaysLeft(ref))
			match.FocusItem = item.Name
			matches = append(matches, match)
		}
	}

	// Two-key stable sort; ties keep discovery order.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Urgency != matches[j].Urgency {
			return matches[i].Urgency > matches[j].Urgency
		}
		return matches[i].MatchScore > matches[j].MatchScore
	})

	return filterByPreferences(matches, prefs), nil
}

// filterByPreferences drops recipes by coarse ingredient-token checks:
// Vegetarian excludes the literal token "meat", Vegan additionally "dairy".
// This is not a nutritional classification, and GlutenFree currently
// enforces nothing. Known limitations, kept as-is.
func filterByPreferences(matches []RecipeMatch, prefs []model.Preference) []RecipeMatch {
	excluded := map[string]bool{}
	for _, pref := range prefs {
		switch pref {
		case model.PrefVegetarian:
			excluded["meat"] = true
		case model.PrefVegan:
			excluded["meat"] = true
			excluded["dairy"] = true
		}
	}
	if len(excluded) == 0 {
		return matches
	}

	out := make([]RecipeMatch, 0, len(matches))
	for _, match := range matches {
		if hasExcludedIngredient(match.Recipe, excluded) {
			continue
		}
		out = append(out, match)
	}
	return out
}

func hasExcludedIngredient(recipe model.Recipe, excluded map[string]bool) bool {
	for _, ingredient := range recipe.Ingredients {
		if excluded[strings.ToLower(ingredient)] {
			return true
		}
	}
	return false
}

func buildShoppingList(matches []RecipeMatch) []ShoppingItem {
	counts := map[string]int{}
	order := make([]string, 0)
	for _, match := range matches {
		for _, ingredient := range match.MissingIngredients {
			key := strings.ToLower(ingredient)
			if counts[key] == 0 {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	out := make([]ShoppingItem, 0, len(order))
	for _, ingredient := range order {
		out = append(out, ShoppingItem{Ingredient: ingredient, NeededFor: counts[ingredient]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].NeededFor != out[j].NeededFor {
			return out[i].NeededFor > out[j].NeededFor
		}
		return out[i].Ingredient < out[j].Ingredient
	})
	return out
}

func planSummary(matched, pantrySize int) string {
	if matched == 0 {
		return fmt.Sprintf("No recipe covers enough of your %d pantry items. Restock staples or log more items.", pantrySize)
	}
	return fmt.Sprintf("%d recipes matched against %d pantry items. Cook the most urgent first.", matched, pantrySize)
}
