package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	shp "github.com/jonas-p/go-shp"

	"silver_site/config"
)

// setupData points the config at a fixture directory and resets the
// caches so tests never see each other's entries.
func setupData(t *testing.T) {
	t.Helper()
	dir := t.TempDir()

	purchases := "State,Silver_Purchased_kg\nA,10\nB,30\nC,30\n"
	prices := "Year,Month,Silver_Price_INR_per_kg\n" +
		"2019,Jan,15000\n2020,Jan,20000\n2021,Jul,25000\n2022,Jan,35000\n"

	if err := os.WriteFile(filepath.Join(dir, "state_wise_silver_purchased_kg.csv"), []byte(purchases), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "historical_silver_price.csv"), []byte(prices), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	config.DataDir = dir
	config.ShapefilePath = filepath.Join(dir, "India_State_Boundary.shp")
	config.InitCache()
}

func TestCalculateCost_Handler(t *testing.T) {
	body := `{"weight": 2, "unit": "kilograms", "price_per_gram": 75, "currency": "INR"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculator", strings.NewReader(body))
	w := httptest.NewRecorder()

	CalculateCost(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res struct {
		WeightGrams float64 `json:"weight_grams"`
		Display     string  `json:"display"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.WeightGrams != 2000 {
		t.Errorf("Expected 2000 grams, got %v", res.WeightGrams)
	}
	if res.Display != "₹ 150,000.00" {
		t.Errorf("Expected '₹ 150,000.00', got %q", res.Display)
	}
}

func TestCalculateCost_Handler_Rejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"negative weight", `{"weight": -1, "unit": "grams", "price_per_gram": 75, "currency": "INR"}`},
		{"price below slider", `{"weight": 1, "unit": "grams", "price_per_gram": 10, "currency": "INR"}`},
		{"price above slider", `{"weight": 1, "unit": "grams", "price_per_gram": 500, "currency": "INR"}`},
		{"unknown unit", `{"weight": 1, "unit": "ounces", "price_per_gram": 75, "currency": "INR"}`},
		{"unknown currency", `{"weight": 1, "unit": "grams", "price_per_gram": 75, "currency": "EUR"}`},
		{"garbage body", `{{`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/calculator", strings.NewReader(tc.body))
		w := httptest.NewRecorder()
		CalculateCost(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, w.Code)
		}
	}
}

func TestGetSalesSummary(t *testing.T) {
	setupData(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/summary", nil)
	w := httptest.NewRecorder()
	GetSalesSummary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res struct {
		TotalKg   int    `json:"total_kg"`
		AverageKg int    `json:"average_kg"`
		TopState  string `json:"top_state"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.TotalKg != 70 || res.AverageKg != 23 || res.TopState != "B" {
		t.Errorf("Unexpected summary: %+v", res)
	}
}

func TestGetSalesSummary_MissingFile(t *testing.T) {
	setupData(t)
	config.DataDir = filepath.Join(config.DataDir, "gone")
	config.ClearAllCaches()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/summary", nil)
	w := httptest.NewRecorder()
	GetSalesSummary(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}
}

func TestGetPriceHistory(t *testing.T) {
	setupData(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/history?bucket=low", nil)
	w := httptest.NewRecorder()
	GetPriceHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res struct {
		Count int `json:"count"`
		Rows  []struct {
			Year int `json:"year"`
		} `json:"rows"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// 15000 and the boundary value 20000 land in the low bucket
	if res.Count != 2 {
		t.Fatalf("Expected 2 low-bucket rows, got %d", res.Count)
	}
	if res.Rows[0].Year != 2019 || res.Rows[1].Year != 2020 {
		t.Errorf("Expected file order preserved, got %+v", res.Rows)
	}
}

func TestGetPriceHistory_UnknownBucket(t *testing.T) {
	setupData(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/history?bucket=everything", nil)
	w := httptest.NewRecorder()
	GetPriceHistory(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
}

func TestGetTopStates_BadLimit(t *testing.T) {
	setupData(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/top?limit=zero", nil)
	w := httptest.NewRecorder()
	GetTopStates(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
}

func writeBoundaries(t *testing.T, nameField string, names ...string) {
	t.Helper()
	w, err := shp.Create(config.ShapefilePath, shp.POLYGON)
	if err != nil {
		t.Fatalf("creating shapefile fixture: %v", err)
	}
	w.SetFields([]shp.Field{shp.StringField(nameField, 30)})
	for i, name := range names {
		off := float64(i) * 2
		w.Write(&shp.Polygon{
			Box:       shp.Box{MinX: off, MinY: 0, MaxX: off + 1, MaxY: 1},
			NumParts:  1,
			NumPoints: 5,
			Parts:     []int32{0},
			Points: []shp.Point{
				{X: off, Y: 0}, {X: off, Y: 1}, {X: off + 1, Y: 1},
				{X: off + 1, Y: 0}, {X: off, Y: 0},
			},
		})
		w.WriteAttribute(i, 0, name)
	}
	w.Close()

	// the go-shp writer drops the dot when naming the dbf sidecar, but
	// the reader opens <base>.dbf
	base := strings.TrimSuffix(config.ShapefilePath, ".shp")
	if err := os.Rename(base+"dbf", base+".dbf"); err != nil {
		t.Fatalf("renaming attribute table: %v", err)
	}
}

func TestGetGeoSummary(t *testing.T) {
	setupData(t)
	writeBoundaries(t, "st_nm", "A", "B", "Z")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geo/summary", nil)
	rec := httptest.NewRecorder()
	GetGeoSummary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Count int `json:"count"`
		Rows  []struct {
			State      string   `json:"state"`
			PurchaseKg *float64 `json:"purchase_kg"`
			Matched    bool     `json:"matched"`
		} `json:"rows"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Count != 3 {
		t.Fatalf("Expected every boundary kept, got %d rows", res.Count)
	}
	if !res.Rows[0].Matched || res.Rows[0].PurchaseKg == nil || *res.Rows[0].PurchaseKg != 10 {
		t.Errorf("Expected A matched with 10, got %+v", res.Rows[0])
	}
	if res.Rows[2].Matched || res.Rows[2].PurchaseKg != nil {
		t.Errorf("Expected Z unmatched with null value, got %+v", res.Rows[2])
	}
}

func TestGetGeoSummary_NoNameColumn(t *testing.T) {
	setupData(t)

	// a readable boundary file without any recognized name column halts
	// the geographic view
	writeBoundaries(t, "region_id", "Goa")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geo/summary", nil)
	rec := httptest.NewRecorder()
	GetGeoSummary(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.Contains(res.Error, "no state name column") {
		t.Errorf("Expected explicit missing-column message, got %q", res.Error)
	}
}

func TestGetChoropleth(t *testing.T) {
	setupData(t)
	writeBoundaries(t, "st_nm", "A", "B", "Z")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geo/choropleth", nil)
	rec := httptest.NewRecorder()
	GetChoropleth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("Expected map bytes")
	}
}

func TestGetGeoSummary_MissingAttributeTable(t *testing.T) {
	setupData(t)
	writeBoundaries(t, "st_nm", "A")
	if err := os.Remove(strings.TrimSuffix(config.ShapefilePath, ".shp") + ".dbf"); err != nil {
		t.Fatalf("removing attribute table: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geo/summary", nil)
	rec := httptest.NewRecorder()
	GetGeoSummary(rec, req)

	// an unreadable sidecar is the file-unavailable class, not the
	// missing-column one
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetGeoSummary_MissingShapefile(t *testing.T) {
	setupData(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geo/summary", nil)
	w := httptest.NewRecorder()
	GetGeoSummary(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 for missing boundary file, got %d", w.Code)
	}
	var res struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Error == "" {
		t.Error("Expected an error message")
	}
}
