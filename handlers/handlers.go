package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"silver_site/config"
	"silver_site/dataset"
	"silver_site/models"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func respondPNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=30")
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing chart: %v", err)
	}
}

// Dataset access for all views. Parsed tables are cached briefly so a
// burst of renders does not re-read the files on every request; once an
// entry expires the next render reloads from disk.

func loadPurchases() ([]models.PurchaseRecord, error) {
	if cached, found := config.DatasetCache.Get("purchases"); found {
		return cached.([]models.PurchaseRecord), nil
	}
	rows, err := dataset.LoadPurchases(config.PurchasesPath())
	if err != nil {
		return nil, err
	}
	config.DatasetCache.SetDefault("purchases", rows)
	return rows, nil
}

func loadPrices() ([]models.PriceRecord, error) {
	if cached, found := config.DatasetCache.Get("prices"); found {
		return cached.([]models.PriceRecord), nil
	}
	rows, err := dataset.LoadPrices(config.PricesPath())
	if err != nil {
		return nil, err
	}
	config.DatasetCache.SetDefault("prices", rows)
	return rows, nil
}

func loadShapes() ([]models.StateShape, error) {
	if cached, found := config.DatasetCache.Get("shapes"); found {
		return cached.([]models.StateShape), nil
	}
	shapes, err := dataset.LoadStateShapes(config.ShapefilePath)
	if err != nil {
		return nil, err
	}
	config.DatasetCache.SetDefault("shapes", shapes)
	return shapes, nil
}
