package analysis

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Units accepted by the calculator.
const (
	UnitGrams     = "grams"
	UnitKilograms = "kilograms"
)

// Display currencies.
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

// USDPerINR is the fixed conversion rate applied when displaying in USD.
const USDPerINR = 0.012

// Bounds of the price-per-gram input.
const (
	MinPricePerGram = 50
	MaxPricePerGram = 120
)

type CostInput struct {
	Weight       float64 `json:"weight"`
	Unit         string  `json:"unit"`
	PricePerGram float64 `json:"price_per_gram"`
	Currency     string  `json:"currency"`
}

type CostResult struct {
	WeightGrams float64 `json:"weight_grams"`
	TotalINR    float64 `json:"total_inr"`
	Displayed   float64 `json:"displayed"`
	Currency    string  `json:"currency"`
	Display     string  `json:"display"`
}

var printer = message.NewPrinter(language.English)

// CalculateCost converts the weight to grams, prices it at the given rate,
// and formats the total in the requested currency.
func CalculateCost(in CostInput) (CostResult, error) {
	if in.Weight < 0 {
		return CostResult{}, fmt.Errorf("weight must be non-negative, got %v", in.Weight)
	}
	switch in.Unit {
	case UnitGrams, UnitKilograms:
	default:
		return CostResult{}, fmt.Errorf("unknown unit %q", in.Unit)
	}
	switch in.Currency {
	case CurrencyINR, CurrencyUSD:
	default:
		return CostResult{}, fmt.Errorf("unknown currency %q", in.Currency)
	}

	grams := in.Weight
	if in.Unit == UnitKilograms {
		grams *= 1000
	}
	total := grams * in.PricePerGram

	res := CostResult{
		WeightGrams: grams,
		TotalINR:    total,
		Currency:    in.Currency,
	}
	if in.Currency == CurrencyUSD {
		res.Displayed = total * USDPerINR
		res.Display = printer.Sprintf("%.2f", res.Displayed)
	} else {
		res.Displayed = total
		res.Display = printer.Sprintf("₹ %.2f", res.Displayed)
	}
	return res, nil
}
