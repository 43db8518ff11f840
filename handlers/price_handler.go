package handlers

import (
	"log"
	"net/http"

	"silver_site/analysis"
	"silver_site/config"
	"silver_site/models"
	"silver_site/render"
)

func bucketParam(r *http.Request) (analysis.PriceBucket, bool) {
	bucket := r.URL.Query().Get("bucket")
	if bucket == "" {
		bucket = string(analysis.BucketLow)
	}
	if !analysis.ValidBucket(bucket) {
		return "", false
	}
	return analysis.PriceBucket(bucket), true
}

// GetPriceHistory returns the price rows in the selected bucket, in file
// order. An empty match is a normal 200 with zero rows.
func GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	bucket, ok := bucketParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "bucket must be one of low, mid, high")
		return
	}

	rows, err := loadPrices()
	if err != nil {
		log.Printf("Error loading price history: %v", err)
		respondError(w, http.StatusInternalServerError, "price history unavailable")
		return
	}

	filtered := analysis.FilterByBucket(rows, bucket)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"bucket": bucket,
		"count":  len(filtered),
		"rows":   filtered,
	})
}

// GetPriceHistoryChart renders the selected bucket as a line chart PNG
// indexed by year.
func GetPriceHistoryChart(w http.ResponseWriter, r *http.Request) {
	bucket, ok := bucketParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "bucket must be one of low, mid, high")
		return
	}

	key := config.GetCacheKey("chart:prices", bucket)
	if cached, found := config.ChartCache.Get(key); found {
		respondPNG(w, cached.([]byte))
		return
	}

	rows, err := loadPrices()
	if err != nil {
		log.Printf("Error loading price history: %v", err)
		respondError(w, http.StatusInternalServerError, "price history unavailable")
		return
	}

	png, err := render.PriceLine("Historical Silver Price (INR per kg)",
		analysis.FilterByBucket(rows, bucket))
	if err != nil {
		log.Printf("Error rendering price chart: %v", err)
		respondError(w, http.StatusInternalServerError, "chart rendering failed")
		return
	}
	config.ChartCache.SetDefault(key, png)
	respondPNG(w, png)
}

func januaryPrices() ([]models.PriceRecord, error) {
	rows, err := loadPrices()
	if err != nil {
		return nil, err
	}
	return analysis.FilterByMonth(rows, "Jan"), nil
}
