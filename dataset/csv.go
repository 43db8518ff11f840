package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"silver_site/models"
)

// readTable loads a delimited file and resolves the required column
// positions from its header row.
func readTable(path string, columns ...string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file", path)
	}

	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[strings.TrimSpace(name)] = i
	}
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, nil, fmt.Errorf("%s: missing column %s", path, c)
		}
	}
	return records[1:], idx, nil
}

// LoadPurchases reads the state-wise purchases table. Row order follows
// the file.
func LoadPurchases(path string) ([]models.PurchaseRecord, error) {
	rows, idx, err := readTable(path, "State", "Silver_Purchased_kg")
	if err != nil {
		return nil, err
	}

	out := make([]models.PurchaseRecord, 0, len(rows))
	for i, row := range rows {
		kg, err := strconv.ParseFloat(strings.TrimSpace(row[idx["Silver_Purchased_kg"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad Silver_Purchased_kg: %w", path, i+2, err)
		}
		out = append(out, models.PurchaseRecord{
			State:             strings.TrimSpace(row[idx["State"]]),
			SilverPurchasedKg: kg,
		})
	}
	return out, nil
}

// LoadPrices reads the historical price table. Row order follows the file;
// duplicate (Year, Month) pairs are kept as-is.
func LoadPrices(path string) ([]models.PriceRecord, error) {
	rows, idx, err := readTable(path, "Year", "Month", "Silver_Price_INR_per_kg")
	if err != nil {
		return nil, err
	}

	out := make([]models.PriceRecord, 0, len(rows))
	for i, row := range rows {
		year, err := strconv.Atoi(strings.TrimSpace(row[idx["Year"]]))
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad Year: %w", path, i+2, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[idx["Silver_Price_INR_per_kg"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad Silver_Price_INR_per_kg: %w", path, i+2, err)
		}
		out = append(out, models.PriceRecord{
			Year:                year,
			Month:               strings.TrimSpace(row[idx["Month"]]),
			SilverPriceINRPerKg: price,
		})
	}
	return out, nil
}
