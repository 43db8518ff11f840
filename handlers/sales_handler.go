package handlers

import (
	"log"
	"net/http"
	"strconv"

	"silver_site/analysis"
	"silver_site/config"
	"silver_site/render"
)

const defaultTopStates = 5

// GetSalesSummary returns total, per-state mean and the top consuming
// state.
func GetSalesSummary(w http.ResponseWriter, r *http.Request) {
	rows, err := loadPurchases()
	if err != nil {
		log.Printf("Error loading purchases: %v", err)
		respondError(w, http.StatusInternalServerError, "purchase data unavailable")
		return
	}
	respondJSON(w, http.StatusOK, analysis.SummarizePurchases(rows))
}

// GetTopStates returns the top consuming states, descending, ties in file
// order. Defaults to 5.
func GetTopStates(w http.ResponseWriter, r *http.Request) {
	n := defaultTopStates
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		n = v
	}

	rows, err := loadPurchases()
	if err != nil {
		log.Printf("Error loading purchases: %v", err)
		respondError(w, http.StatusInternalServerError, "purchase data unavailable")
		return
	}

	top := analysis.TopPurchasers(rows, n)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(top),
		"rows":  top,
	})
}

// GetTopStatesChart renders the top-5 states as a bar chart PNG.
func GetTopStatesChart(w http.ResponseWriter, r *http.Request) {
	key := config.GetCacheKey("chart:sales", "top", defaultTopStates)
	if cached, found := config.ChartCache.Get(key); found {
		respondPNG(w, cached.([]byte))
		return
	}

	rows, err := loadPurchases()
	if err != nil {
		log.Printf("Error loading purchases: %v", err)
		respondError(w, http.StatusInternalServerError, "purchase data unavailable")
		return
	}

	png, err := render.PurchaseBars("Top 5 States by Silver Purchase",
		analysis.TopPurchasers(rows, defaultTopStates))
	if err != nil {
		log.Printf("Error rendering sales chart: %v", err)
		respondError(w, http.StatusInternalServerError, "chart rendering failed")
		return
	}
	config.ChartCache.SetDefault(key, png)
	respondPNG(w, png)
}

// GetJanuaryTrendChart renders the January price rows year-wise as a line
// chart PNG.
func GetJanuaryTrendChart(w http.ResponseWriter, r *http.Request) {
	key := config.GetCacheKey("chart:sales", "january")
	if cached, found := config.ChartCache.Get(key); found {
		respondPNG(w, cached.([]byte))
		return
	}

	rows, err := januaryPrices()
	if err != nil {
		log.Printf("Error loading price history: %v", err)
		respondError(w, http.StatusInternalServerError, "price history unavailable")
		return
	}

	png, err := render.PriceLine("January Silver Price Trend (Year-wise)", rows)
	if err != nil {
		log.Printf("Error rendering January trend: %v", err)
		respondError(w, http.StatusInternalServerError, "chart rendering failed")
		return
	}
	config.ChartCache.SetDefault(key, png)
	respondPNG(w, png)
}
