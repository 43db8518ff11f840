package analysis

import (
	"sort"

	"silver_site/models"
)

// PurchaseSummary holds the sales-insight metrics. Total and Average are
// truncated to whole kilograms for display.
type PurchaseSummary struct {
	TotalKg   int    `json:"total_kg"`
	AverageKg int    `json:"average_kg"`
	TopState  string `json:"top_state"`
}

// SummarizePurchases computes the total, the per-state mean, and the top
// consuming state. Ties on the maximum keep the first state in input order.
func SummarizePurchases(rows []models.PurchaseRecord) PurchaseSummary {
	if len(rows) == 0 {
		return PurchaseSummary{}
	}
	var sum float64
	top := 0
	for i, r := range rows {
		sum += r.SilverPurchasedKg
		if r.SilverPurchasedKg > rows[top].SilverPurchasedKg {
			top = i
		}
	}
	return PurchaseSummary{
		TotalKg:   int(sum),
		AverageKg: int(sum / float64(len(rows))),
		TopState:  rows[top].State,
	}
}

// TopPurchasers returns the n largest rows in descending order. Equal
// values keep their original relative order.
func TopPurchasers(rows []models.PurchaseRecord, n int) []models.PurchaseRecord {
	out := make([]models.PurchaseRecord, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SilverPurchasedKg > out[j].SilverPurchasedKg
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
