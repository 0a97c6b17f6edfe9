package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type DoctorReport struct {
	BadLogPrices       int `json:"bad_log_prices"`
	BadInventoryPrices int `json:"bad_inventory_prices"`
	BadInventoryDates  int `json:"bad_inventory_dates"`
	ExpiredItems       int `json:"expired_items"`
}

func (r DoctorReport) Clean() bool {
	return r.BadLogPrices == 0 && r.BadInventoryPrices == 0 && r.BadInventoryDates == 0
}

// RunDoctor scans stored rows for values the engine would reject. The
// schema constrains status and quantity, but prices and dates are TEXT and
// can be corrupted by external edits to the database file.
func RunDoctor(db *sql.DB, ref time.Time) (DoctorReport, error) {
	report := DoctorReport{}

	rows, err := db.Query(`SELECT price FROM log_entries`)
	if err != nil {
		return report, fmt.Errorf("scan log prices: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return report, fmt.Errorf("scan log price: %w", err)
		}
		if _, err := decimal.NewFromString(raw); err != nil {
			report.BadLogPrices++
		}
	}
	if err := rows.Err(); err != nil {
		return report, fmt.Errorf("iterate log prices: %w", err)
	}

	invRows, err := db.Query(`SELECT price, expires_on, purchased_on FROM inventory_items`)
	if err != nil {
		return report, fmt.Errorf("scan inventory rows: %w", err)
	}
	defer invRows.Close()
	for invRows.Next() {
		var price, expiresOn, purchasedOn string
		if err := invRows.Scan(&price, &expiresOn, &purchasedOn); err != nil {
			return report, fmt.Errorf("scan inventory row: %w", err)
		}
		if _, err := decimal.NewFromString(price); err != nil {
			report.BadInventoryPrices++
		}
		expiry, expErr := time.ParseInLocation(dateLayout, expiresOn, time.Local)
		if expErr != nil {
			report.BadInventoryDates++
		} else if !expiry.After(ref) {
			report.ExpiredItems++
		}
		if _, err := time.ParseInLocation(dateLayout, purchasedOn, time.Local); err != nil {
			report.BadInventoryDates++
		}
	}
	if err := invRows.Err(); err != nil {
		return report, fmt.Errorf("iterate inventory rows: %w", err)
	}

	return report, nil
}
