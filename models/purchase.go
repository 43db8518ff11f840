package models

// PurchaseRecord is one row of the state-wise silver purchases table.
type PurchaseRecord struct {
	State             string  `json:"state"`
	SilverPurchasedKg float64 `json:"silver_purchased_kg"`
}
