package models

// PriceRecord is one row of the historical price table. Month uses the
// 3-letter form found in the source file ("Jan", "Feb", ...).
type PriceRecord struct {
	Year                int     `json:"year"`
	Month               string  `json:"month"`
	SilverPriceINRPerKg float64 `json:"silver_price_inr_per_kg"`
}
