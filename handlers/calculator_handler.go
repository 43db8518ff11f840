package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"silver_site/analysis"
)

// CalculateCost prices a quantity of silver from the calculator inputs.
// The price-per-gram slider bounds are enforced here; the analysis
// function rejects the rest.
func CalculateCost(w http.ResponseWriter, r *http.Request) {
	var req analysis.CostInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.PricePerGram < analysis.MinPricePerGram || req.PricePerGram > analysis.MaxPricePerGram {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(
			"price_per_gram must be between %d and %d",
			analysis.MinPricePerGram, analysis.MaxPricePerGram))
		return
	}

	res, err := analysis.CalculateCost(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("Calculated cost: %v %s at %v INR/g -> %s",
		req.Weight, req.Unit, req.PricePerGram, res.Display)
	respondJSON(w, http.StatusOK, res)
}
