package analysis

import "silver_site/models"

// PriceBucket selects a band of the historical price table.
type PriceBucket string

const (
	BucketLow  PriceBucket = "low"  // at or below 20,000 INR/kg
	BucketMid  PriceBucket = "mid"  // strictly between 20,000 and 30,000
	BucketHigh PriceBucket = "high" // at or above 30,000 INR/kg
)

const (
	lowPriceCeiling = 20000
	highPriceFloor  = 30000
)

// ValidBucket reports whether s names a known price bucket.
func ValidBucket(s string) bool {
	switch PriceBucket(s) {
	case BucketLow, BucketMid, BucketHigh:
		return true
	}
	return false
}

// FilterByBucket returns the rows whose price falls in the bucket,
// preserving input order. The middle bucket is open on both ends, so the
// exact values 20,000 and 30,000 classify as low and high respectively.
func FilterByBucket(rows []models.PriceRecord, bucket PriceBucket) []models.PriceRecord {
	out := make([]models.PriceRecord, 0, len(rows))
	for _, r := range rows {
		v := r.SilverPriceINRPerKg
		switch bucket {
		case BucketLow:
			if v <= lowPriceCeiling {
				out = append(out, r)
			}
		case BucketMid:
			if v > lowPriceCeiling && v < highPriceFloor {
				out = append(out, r)
			}
		case BucketHigh:
			if v >= highPriceFloor {
				out = append(out, r)
			}
		}
	}
	return out
}

// FilterByMonth returns the rows for a 3-letter month, preserving input
// order. Unknown months simply match nothing.
func FilterByMonth(rows []models.PriceRecord, month string) []models.PriceRecord {
	out := make([]models.PriceRecord, 0, len(rows))
	for _, r := range rows {
		if r.Month == month {
			out = append(out, r)
		}
	}
	return out
}
