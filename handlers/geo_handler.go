package handlers

import (
	"errors"
	"log"
	"net/http"

	"silver_site/analysis"
	"silver_site/config"
	"silver_site/dataset"
	"silver_site/models"
	"silver_site/render"
)

// geoStatus maps a shapefile error to the right status. A recognized
// boundary file without any known name column is a client-visible data
// problem, not a server fault, and halts the view.
func geoStatus(err error) (int, string) {
	if errors.Is(err, dataset.ErrNoStateColumn) {
		return http.StatusUnprocessableEntity, err.Error()
	}
	return http.StatusInternalServerError, "boundary data unavailable"
}

// GetShapefileColumns lists the attribute columns found in the boundary
// file.
func GetShapefileColumns(w http.ResponseWriter, r *http.Request) {
	columns, err := dataset.ShapefileColumns(config.ShapefilePath)
	if err != nil {
		log.Printf("Error reading shapefile columns: %v", err)
		status, msg := geoStatus(err)
		respondError(w, status, msg)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"columns": columns})
}

func joinedStates() ([]models.JoinedState, error) {
	shapes, err := loadShapes()
	if err != nil {
		return nil, err
	}
	purchases, err := loadPurchases()
	if err != nil {
		return nil, err
	}
	return analysis.JoinPurchases(shapes, purchases), nil
}

// GetGeoSummary returns every boundary record joined to its purchase
// value. Unmatched states stay in the output with a null value.
func GetGeoSummary(w http.ResponseWriter, r *http.Request) {
	joined, err := joinedStates()
	if err != nil {
		log.Printf("Error joining geographic data: %v", err)
		status, msg := geoStatus(err)
		respondError(w, status, msg)
		return
	}

	type geoRow struct {
		State      string   `json:"state"`
		PurchaseKg *float64 `json:"purchase_kg"`
		Matched    bool     `json:"matched"`
	}
	rows := make([]geoRow, len(joined))
	for i, j := range joined {
		rows[i] = geoRow{State: j.Name, PurchaseKg: j.PurchaseKg, Matched: j.PurchaseKg != nil}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(rows),
		"rows":  rows,
	})
}

// GetChoropleth renders the state-wise purchase map as a PNG. Nothing is
// rendered when the name column is missing.
func GetChoropleth(w http.ResponseWriter, r *http.Request) {
	key := config.GetCacheKey("chart:geo", "choropleth")
	if cached, found := config.ChartCache.Get(key); found {
		respondPNG(w, cached.([]byte))
		return
	}

	joined, err := joinedStates()
	if err != nil {
		log.Printf("Error joining geographic data: %v", err)
		status, msg := geoStatus(err)
		respondError(w, status, msg)
		return
	}

	png, err := render.Choropleth("State-wise Silver Purchases in India (kg)", joined)
	if err != nil {
		log.Printf("Error rendering choropleth: %v", err)
		respondError(w, http.StatusInternalServerError, "map rendering failed")
		return
	}
	config.ChartCache.SetDefault(key, png)
	respondPNG(w, png)
}
