package models

// Point is a single boundary vertex in the shapefile's projection.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StateShape is one state boundary with its name attribute. Rings holds
// the polygon parts in file order.
type StateShape struct {
	Name  string    `json:"name"`
	Rings [][]Point `json:"-"`
}

// JoinedState is a StateShape extended with the purchase value matched by
// normalized name. PurchaseKg is nil when no purchase row matched, which
// the map renders as a distinct no-data category rather than zero.
type JoinedState struct {
	StateShape
	PurchaseKg *float64 `json:"purchase_kg"`
}
