package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/wastenot/wastenot-cli/internal/model"
)

type CreateLogEntryInput struct {
	Name       string
	Price      string
	Quantity   int
	Status     model.EntryStatus
	OccurredAt time.Time
}

type ListLogEntriesFilter struct {
	Status model.EntryStatus
	Limit  int
}

func CreateLogEntry(db *sql.DB, in CreateLogEntryInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("entry name is required")
	}
	price, err := parsePrice("price", in.Price)
	if err != nil {
		return 0, err
	}
	if price.IsNegative() {
		return 0, fmt.Errorf("price must be >= 0")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return 0, fmt.Errorf("quantity must be >= 1")
	}
	if !in.Status.Valid() {
		return 0, fmt.Errorf("status must be %q or %q", model.StatusConsumed, model.StatusWasted)
	}
	if in.OccurredAt.IsZero() {
		in.OccurredAt = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO log_entries(name, price, quantity, status, occurred_at)
VALUES(?, ?, ?, ?, ?)
`, in.Name, price.String(), in.Quantity, string(in.Status), in.OccurredAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert log entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted log entry id: %w", err)
	}
	return id, nil
}

// ListLogEntries returns entries in chronological order; the weekly insight
// bisection depends on earlier entries preceding later ones.
func ListLogEntries(db *sql.DB, filter ListLogEntriesFilter) ([]model.LogEntry, error) {
	query := `
SELECT id, name, price, quantity, status, occurred_at, created_at
FROM log_entries
`
	args := make([]any, 0, 2)
	if filter.Status != "" {
		query += `WHERE status = ?
`
		args = append(args, string(filter.Status))
	}
	query += `ORDER BY occurred_at ASC, id ASC
`
	if filter.Limit > 0 {
		query += `LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.LogEntry, 0)
	for rows.Next() {
		entry, err := scanLogEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate log entries: %w", err)
	}
	return items, nil
}

// LogSnapshot loads the full log in chronological order for the engine.
func LogSnapshot(db *sql.DB) ([]model.LogEntry, error) {
	return ListLogEntries(db, ListLogEntriesFilter{})
}

func DeleteLogEntry(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM log_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete log entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("log entry %d not found", id)
	}
	return nil
}

func scanLogEntry(rows *sql.Rows) (model.LogEntry, error) {
	var e model.LogEntry
	var price, status, occurredAt string
	if err := rows.Scan(&e.ID, &e.Name, &price, &e.Quantity, &status, &occurredAt, &e.CreatedAt); err != nil {
		return model.LogEntry{}, fmt.Errorf("scan log entry: %w", err)
	}
	parsedPrice, err := parsePrice("stored price", price)
	if err != nil {
		return model.LogEntry{}, err
	}
	parsedAt, err := time.Parse(time.RFC3339, occurredAt)
	if err != nil {
		return model.LogEntry{}, fmt.Errorf("parse stored occurred_at %q: %w", occurredAt, err)
	}
	e.Price = parsedPrice
	e.Status = model.EntryStatus(status)
	e.OccurredAt = parsedAt
	return e, nil
}
