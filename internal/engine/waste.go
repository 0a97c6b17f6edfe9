package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wastenot/wastenot-cli/internal/model"
)

// Items expiring within this many days count toward projected risk.
const riskWindowDays = 2

type RiskItem struct {
	Name      string          `json:"name"`
	DaysLeft  int             `json:"days_left"`
	RiskValue decimal.Decimal `json:"risk_value"`
}

type WasteReport struct {
	TotalWastedMoney decimal.Decimal `json:"total_wasted_money"`
	RiskValue        decimal.Decimal `json:"risk_value"`
	RiskItems        []RiskItem      `json:"risk_items"`
}

// AnalyzeWaste computes realized waste cost from the log and at-risk value
// from the inventory. Historical loss sums unit price only; quantity scales
// projected risk, never realized waste. Already-expired items (daysLeft <= 0)
// are outside the risk window: their money is treated as lost, not at risk.
func AnalyzeWaste(log []model.LogEntry, inventory []model.InventoryItem, ref time.Time) WasteReport {
	wasted := decimal.Zero
	for _, e := range log {
		if e.Status == model.StatusWasted {
			wasted = wasted.Add(e.Price)
		}
	}

	risk := decimal.Zero
	riskItems := make([]RiskItem, 0)
	for _, item := range inventory {
		daysLeft := item.DaysLeft(ref)
		if daysLeft <= 0 || daysLeft > riskWindowDays {
			continue
		}
		value := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		risk = risk.Add(value)
		riskItems = append(riskItems, RiskItem{
			Name:      item.Name,
			DaysLeft:  daysLeft,
			RiskValue: value,
		})
	}

	return WasteReport{
		TotalWastedMoney: wasted.Round(2),
		RiskValue:        risk.Round(2),
		RiskItems:        riskItems,
	}
}
