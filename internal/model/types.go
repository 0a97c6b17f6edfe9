package model

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is fixed when an entry is recorded; entries are never
// re-classified afterwards.
type EntryStatus string

const (
	StatusConsumed EntryStatus = "consumed"
	StatusWasted   EntryStatus = "wasted"
)

func (s EntryStatus) Valid() bool {
	return s == StatusConsumed || s == StatusWasted
}

type LogEntry struct {
	ID         int64
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Status     EntryStatus
	OccurredAt time.Time
	CreatedAt  time.Time
}

type InventoryItem struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Quantity    int
	Unit        string
	ExpiresOn   time.Time
	PurchasedOn time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DaysLeft reports whole days until expiry relative to ref, rounding any
// partial day up. Expired items yield zero or negative values.
func (i InventoryItem) DaysLeft(ref time.Time) int {
	return int(math.Ceil(i.ExpiresOn.Sub(ref).Hours() / 24))
}

// Recipe is a static catalog entry. The catalog owns recipes; nothing in
// the engine mutates them after load.
type Recipe struct {
	Name         string   `json:"name" validate:"required"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
	PrepMinutes  int      `json:"prep_minutes" validate:"gte=0"`
	Difficulty   string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Instructions string   `json:"instructions"`
}

type Preference string

const (
	PrefVegetarian Preference = "vegetarian"
	PrefVegan      Preference = "vegan"
	PrefGlutenFree Preference = "gluten-free"
)

func ParsePreference(s string) (Preference, bool) {
	switch Preference(strings.TrimSpace(strings.ToLower(s))) {
	case PrefVegetarian:
		return PrefVegetarian, true
	case PrefVegan:
		return PrefVegan, true
	case PrefGlutenFree:
		return PrefGlutenFree, true
	}
	return "", false
}
