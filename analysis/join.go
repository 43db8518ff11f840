package analysis

import (
	"strings"

	"silver_site/models"
)

// NormalizeStateName canonicalizes a region name so independently authored
// sources agree on a join key: lowercase, "&" spelled out as "and", every
// space dropped, surrounding whitespace trimmed. Total and idempotent over
// any input.
func NormalizeStateName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, " ", "")
	return strings.TrimSpace(s)
}

// JoinPurchases left-joins purchase rows onto state shapes by normalized
// name. Every shape appears exactly once, in shape order; shapes without a
// matching purchase row carry a nil PurchaseKg. When two purchase rows
// normalize to the same key the first one wins.
func JoinPurchases(shapes []models.StateShape, purchases []models.PurchaseRecord) []models.JoinedState {
	byKey := make(map[string]float64, len(purchases))
	for _, p := range purchases {
		key := NormalizeStateName(p.State)
		if _, ok := byKey[key]; !ok {
			byKey[key] = p.SilverPurchasedKg
		}
	}

	joined := make([]models.JoinedState, 0, len(shapes))
	for _, s := range shapes {
		j := models.JoinedState{StateShape: s}
		if kg, ok := byKey[NormalizeStateName(s.Name)]; ok {
			v := kg
			j.PurchaseKg = &v
		}
		joined = append(joined, j)
	}
	return joined
}
