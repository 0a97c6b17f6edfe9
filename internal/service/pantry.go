package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/wastenot/wastenot-cli/internal/model"
)

type AddInventoryItemInput struct {
	Name        string
	Price       string
	Quantity    int
	Unit        string
	ExpiresOn   time.Time
	PurchasedOn time.Time
}

func AddInventoryItem(db *sql.DB, in AddInventoryItemInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("item name is required")
	}
	price, err := parsePrice("price", in.Price)
	if err != nil {
		return 0, err
	}
	if price.IsNegative() {
		return 0, fmt.Errorf("price must be >= 0")
	}
	if in.Quantity < 1 {
		return 0, fmt.Errorf("quantity must be >= 1")
	}
	if strings.TrimSpace(in.Unit) == "" {
		in.Unit = "pcs"
	}
	if in.ExpiresOn.IsZero() {
		return 0, fmt.Errorf("expiry date is required")
	}
	if in.PurchasedOn.IsZero() {
		in.PurchasedOn = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO inventory_items(name, price, quantity, unit, expires_on, purchased_on)
VALUES(?, ?, ?, ?, ?, ?)
`, in.Name, price.String(), in.Quantity, strings.TrimSpace(in.Unit), in.ExpiresOn.Format(dateLayout), in.PurchasedOn.Format(dateLayout))
	if err != nil {
		return 0, fmt.Errorf("insert inventory item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted inventory id: %w", err)
	}
	return id, nil
}

// ListInventory returns pantry items soonest-expiring first.
func ListInventory(db *sql.DB) ([]model.InventoryItem, error) {
	rows, err := db.Query(`
SELECT id, name, price, quantity, unit, expires_on, purchased_on, created_at, updated_at
FROM inventory_items
ORDER BY expires_on ASC, id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	items := make([]model.InventoryItem, 0)
	for rows.Next() {
		var item model.InventoryItem
		var price, expiresOn, purchasedOn string
		if err := rows.Scan(&item.ID, &item.Name, &price, &item.Quantity, &item.Unit, &expiresOn, &purchasedOn, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		parsedPrice, err := parsePrice("stored price", price)
		if err != nil {
			return nil, err
		}
		parsedExpiry, err := parseStoredDate("stored expires_on", expiresOn)
		if err != nil {
			return nil, err
		}
		parsedPurchase, err := parseStoredDate("stored purchased_on", purchasedOn)
		if err != nil {
			return nil, err
		}
		item.Price = parsedPrice
		item.ExpiresOn = parsedExpiry
		item.PurchasedOn = parsedPurchase
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}
	return items, nil
}

// InventorySnapshot loads the full pantry for the engine.
func InventorySnapshot(db *sql.DB) ([]model.InventoryItem, error) {
	return ListInventory(db)
}

func RemoveInventoryItem(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("inventory item %d not found", id)
	}
	return nil
}

type UseInventoryItemInput struct {
	ID         int64
	Quantity   int
	Status     model.EntryStatus
	OccurredAt time.Time
}

// UseInventoryItem records that part of a pantry item was consumed or
// wasted: it appends a matching log entry and decrements the remaining
// quantity in one transaction, deleting the row when it reaches zero.
func UseInventoryItem(db *sql.DB, in UseInventoryItemInput) error {
	if in.Quantity < 1 {
		return fmt.Errorf("quantity must be >= 1")
	}
	if !in.Status.Valid() {
		return fmt.Errorf("status must be %q or %q", model.StatusConsumed, model.StatusWasted)
	}
	if in.OccurredAt.IsZero() {
		in.OccurredAt = time.Now()
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin use-item tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var name, price string
	var have int
	err = tx.QueryRow(`SELECT name, price, quantity FROM inventory_items WHERE id = ?`, in.ID).Scan(&name, &price, &have)
	if err == sql.ErrNoRows {
		return fmt.Errorf("inventory item %d not found", in.ID)
	}
	if err != nil {
		return fmt.Errorf("load inventory item %d: %w", in.ID, err)
	}
	if in.Quantity > have {
		return fmt.Errorf("cannot use %d of %q: only %d left", in.Quantity, name, have)
	}

	if _, err := tx.Exec(`
INSERT INTO log_entries(name, price, quantity, status, occurred_at)
VALUES(?, ?, ?, ?, ?)
`, name, price, in.Quantity, string(in.Status), in.OccurredAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("record %s entry for %q: %w", in.Status, name, err)
	}

	remaining := have - in.Quantity
	if remaining == 0 {
		if _, err := tx.Exec(`DELETE FROM inventory_items WHERE id = ?`, in.ID); err != nil {
			return fmt.Errorf("remove exhausted item %q: %w", name, err)
		}
	} else {
		if _, err := tx.Exec(`
UPDATE inventory_items SET quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`, remaining, in.ID); err != nil {
			return fmt.Errorf("update remaining quantity for %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit use-item tx: %w", err)
	}
	return nil
}
