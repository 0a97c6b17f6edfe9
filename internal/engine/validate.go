package engine

import (
	"fmt"
	"strings"

	"github.com/wastenot/wastenot-cli/internal/model"
)

// ValidateLog checks a log snapshot before it reaches any calculator.
func ValidateLog(log []model.LogEntry) error {
	for i, e := range log {
		if strings.TrimSpace(e.Name) == "" {
			return &InvalidInputError{Field: fmt.Sprintf("log[%d].name", i), Reason: "is required"}
		}
		if e.Price.IsNegative() {
			return &InvalidInputError{Field: fmt.Sprintf("log[%d].price", i), Reason: "must be >= 0"}
		}
		if e.Quantity < 1 {
			return &InvalidInputError{Field: fmt.Sprintf("log[%d].quantity", i), Reason: "must be >= 1"}
		}
		if !e.Status.Valid() {
			return &InvalidInputError{Field: fmt.Sprintf("log[%d].status", i), Reason: `must be "consumed" or "wasted"`}
		}
		if e.OccurredAt.IsZero() {
			return &InvalidInputError{Field: fmt.Sprintf("log[%d].occurred_at", i), Reason: "is required"}
		}
	}
	return nil
}

// ValidateInventory checks an inventory snapshot before it reaches any
// calculator or the meal planner.
func ValidateInventory(items []model.InventoryItem) error {
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return &InvalidInputError{Field: fmt.Sprintf("inventory[%d].name", i), Reason: "is required"}
		}
		if item.Price.IsNegative() {
			return &InvalidInputError{Field: fmt.Sprintf("inventory[%d].price", i), Reason: "must be >= 0"}
		}
		if item.Quantity < 1 {
			return &InvalidInputError{Field: fmt.Sprintf("inventory[%d].quantity", i), Reason: "must be >= 1"}
		}
		if item.ExpiresOn.IsZero() {
			return &InvalidInputError{Field: fmt.Sprintf("inventory[%d].expires_on", i), Reason: "is required"}
		}
	}
	return nil
}
