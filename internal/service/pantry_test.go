package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/wastenot/wastenot-cli/internal/model"
	"github.com/wastenot/wastenot-cli/internal/service"
)

func TestAddAndListInventorySortedByExpiry(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	later := time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)
	sooner := time.Date(2026, 8, 12, 0, 0, 0, 0, time.Local)

	if _, err := service.AddInventoryItem(db, service.AddInventoryItemInput{
		Name: "rice", Price: "2.00", Quantity: 1, Unit: "kg", ExpiresOn: later,
	}); err != nil {
		t.Fatalf("add rice: %v", err)
	}
	if _, err := service.AddInventoryItem(db, service.AddInventoryItemInput{
		Name: "milk", Price: "1.50", Quantity: 2, ExpiresOn: sooner,
	}); err != nil {
		t.Fatalf("add milk: %v", err)
	}

	items, err := service.ListInventory(db)
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "milk" {
		t.Fatalf("expected soonest-expiring item first, got %s", items[0].Name)
	}
	if items[0].Unit != "pcs" {
		t.Fatalf("unit must default to pcs, got %q", items[0].Unit)
	}
	if !items[0].ExpiresOn.Equal(sooner) {
		t.Fatalf("expiry round-trip mismatch: %s", items[0].ExpiresOn)
	}
}

func TestAddInventoryItemRejectsBadInput(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	expiry := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	cases := []struct {
		name string
		in   service.AddInventoryItemInput
		want string
	}{
		{"empty name", service.AddInventoryItemInput{Price: "1.00", Quantity: 1, ExpiresOn: expiry}, "name is required"},
		{"bad price", service.AddInventoryItemInput{Name: "milk", Price: "cheap", Quantity: 1, ExpiresOn: expiry}, "parse price"},
		{"zero quantity", service.AddInventoryItemInput{Name: "milk", Price: "1.00", Quantity: 0, ExpiresOn: expiry}, "quantity must be"},
		{"missing expiry", service.AddInventoryItemInput{Name: "milk", Price: "1.00", Quantity: 1}, "expiry date is required"},
	}
	for _, c := range cases {
		_, err := service.AddInventoryItem(db, c.in)
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%s: expected error containing %q, got %v", c.name, c.want, err)
		}
	}
}

func TestUseInventoryItemPartial(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.AddInventoryItem(db, service.AddInventoryItemInput{
		Name: "eggs", Price: "0.30", Quantity: 6, ExpiresOn: time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("add eggs: %v", err)
	}

	if err := service.UseInventoryItem(db, service.UseInventoryItemInput{
		ID: id, Quantity: 2, Status: model.StatusConsumed,
	}); err != nil {
		t.Fatalf("use eggs: %v", err)
	}

	items, err := service.ListInventory(db)
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 4 {
		t.Fatalf("expected 4 eggs remaining, got %+v", items)
	}

	entries, err := service.ListLogEntries(db, service.ListLogEntriesFilter{})
	if err != nil {
		t.Fatalf("list log: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry from using the item, got %d", len(entries))
	}
	if entries[0].Status != model.StatusConsumed || entries[0].Quantity != 2 || entries[0].Name != "eggs" {
		t.Fatalf("unexpected log entry: %+v", entries[0])
	}
}

func TestUseInventoryItemExhaustsRow(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.AddInventoryItem(db, service.AddInventoryItemInput{
		Name: "yogurt", Price: "0.80", Quantity: 1, ExpiresOn: time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("add yogurt: %v", err)
	}

	if err := service.UseInventoryItem(db, service.UseInventoryItemInput{
		ID: id, Quantity: 1, Status: model.StatusWasted,
	}); err != nil {
		t.Fatalf("use yogurt: %v", err)
	}

	items, err := service.ListInventory(db)
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected the exhausted row removed, got %+v", items)
	}
}

func TestUseInventoryItemOverdraw(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := service.AddInventoryItem(db, service.AddInventoryItemInput{
		Name: "milk", Price: "1.50", Quantity: 1, ExpiresOn: time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("add milk: %v", err)
	}

	err = service.UseInventoryItem(db, service.UseInventoryItemInput{
		ID: id, Quantity: 3, Status: model.StatusConsumed,
	})
	if err == nil || !strings.Contains(err.Error(), "only 1 left") {
		t.Fatalf("expected overdraw error, got %v", err)
	}

	entries, err := service.ListLogEntries(db, service.ListLogEntriesFilter{})
	if err != nil {
		t.Fatalf("list log: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("failed use must not leave a log entry, got %d", len(entries))
	}
}
