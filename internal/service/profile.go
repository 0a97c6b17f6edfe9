package service

import (
	"database/sql"
	"time"

	"github.com/wastenot/wastenot-cli/internal/engine"
	"github.com/wastenot/wastenot-cli/internal/mealplan"
	"github.com/wastenot/wastenot-cli/internal/model"
)

// BuildProfile loads the current snapshots and hands them to the engine.
// The reference date comes from the caller so reports are reproducible.
func BuildProfile(db *sql.DB, ref time.Time) (*engine.SDGProfile, error) {
	log, err := LogSnapshot(db)
	if err != nil {
		return nil, err
	}
	inventory, err := InventorySnapshot(db)
	if err != nil {
		return nil, err
	}
	return engine.BuildProfile(log, inventory, ref)
}

func BuildMealPlan(db *sql.DB, catalog map[string][]model.Recipe, prefs []model.Preference, ref time.Time) (*mealplan.MealPlan, error) {
	inventory, err := InventorySnapshot(db)
	if err != nil {
		return nil, err
	}
	return mealplan.GeneratePlan(inventory, catalog, prefs, ref)
}

func BuildWeeklyMealPlan(db *sql.DB, catalog map[string][]model.Recipe, prefs []model.Preference, ref time.Time) (*mealplan.WeeklyPlan, error) {
	inventory, err := InventorySnapshot(db)
	if err != nil {
		return nil, err
	}
	return mealplan.GenerateWeeklyPlan(inventory, catalog, prefs, ref)
}
