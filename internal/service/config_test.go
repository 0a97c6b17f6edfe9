package service_test

import (
	"testing"

	"github.com/wastenot/wastenot-cli/internal/service"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, found, err := service.GetConfig(db, service.ConfigDietPreference); err != nil || found {
		t.Fatalf("expected no value before set, found=%v err=%v", found, err)
	}

	if err := service.SetConfig(db, service.ConfigDietPreference, "vegetarian"); err != nil {
		t.Fatalf("set config: %v", err)
	}
	value, found, err := service.GetConfig(db, service.ConfigDietPreference)
	if err != nil || !found || value != "vegetarian" {
		t.Fatalf("get config: value=%q found=%v err=%v", value, found, err)
	}

	// Upsert replaces the previous value.
	if err := service.SetConfig(db, service.ConfigDietPreference, "vegan"); err != nil {
		t.Fatalf("update config: %v", err)
	}
	all, err := service.ListConfig(db)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if all[service.ConfigDietPreference] != "vegan" {
		t.Fatalf("expected updated value, got %v", all)
	}
}
