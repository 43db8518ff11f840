package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"silver_site/models"
)

// Name-attribute labels probed in order. Boundary files from different
// sources label the state column differently.
var stateColumnCandidates = []string{"State_Name", "st_nm", "STATE", "NAME_1", "NAME"}

// ErrNoStateColumn reports a boundary file whose attribute table has none
// of the recognized state-name columns. The geographic view must not
// render without one.
var ErrNoStateColumn = errors.New("no state name column found in shapefile")

// DetectStateColumn returns the first candidate label present in columns.
func DetectStateColumn(columns []string) (string, error) {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	for _, c := range stateColumnCandidates {
		if present[c] {
			return c, nil
		}
	}
	return "", ErrNoStateColumn
}

// checkAttributeTable verifies the .dbf sidecar is present. The reader
// swallows a failed dbf open and reports no fields at all, which would
// masquerade as a missing name column; an absent attribute table is an
// unreadable-input failure, not a schema one.
func checkAttributeTable(path string) error {
	dbf := strings.TrimSuffix(path, filepath.Ext(path)) + ".dbf"
	if _, err := os.Stat(dbf); err != nil {
		return fmt.Errorf("reading attribute table for %s: %w", path, err)
	}
	return nil
}

// ShapefileColumns lists the attribute columns of a boundary file.
func ShapefileColumns(path string) ([]string, error) {
	if err := checkAttributeTable(path); err != nil {
		return nil, err
	}
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer r.Close()

	names := fieldNames(r.Fields())
	if len(names) == 0 {
		return nil, fmt.Errorf("attribute table for %s is unreadable", path)
	}
	return names, nil
}

func fieldNames(fields []shp.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = strings.TrimRight(f.String(), "\x00")
	}
	return names
}

// LoadStateShapes reads every polygon record and its state name from the
// boundary file's auto-detected name column, preserving record order.
func LoadStateShapes(path string) ([]models.StateShape, error) {
	if err := checkAttributeTable(path); err != nil {
		return nil, err
	}
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer r.Close()

	names := fieldNames(r.Fields())
	if len(names) == 0 {
		return nil, fmt.Errorf("attribute table for %s is unreadable", path)
	}
	column, err := DetectStateColumn(names)
	if err != nil {
		return nil, err
	}
	colIdx := 0
	for i, n := range names {
		if n == column {
			colIdx = i
			break
		}
	}

	var shapes []models.StateShape
	for r.Next() {
		row, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		shapes = append(shapes, models.StateShape{
			Name:  strings.TrimSpace(r.ReadAttribute(row, colIdx)),
			Rings: polygonRings(poly),
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile %s: %w", path, err)
	}
	return shapes, nil
}

func polygonRings(poly *shp.Polygon) [][]models.Point {
	rings := make([][]models.Point, 0, len(poly.Parts))
	for p, start := range poly.Parts {
		end := int32(len(poly.Points))
		if p+1 < len(poly.Parts) {
			end = poly.Parts[p+1]
		}
		ring := make([]models.Point, 0, end-start)
		for _, pt := range poly.Points[start:end] {
			ring = append(ring, models.Point{X: pt.X, Y: pt.Y})
		}
		rings = append(rings, ring)
	}
	return rings
}
