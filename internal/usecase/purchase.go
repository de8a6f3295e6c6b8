package usecase

import (
	"fmt"
	"math"
)

// DefaultDiscountThreshold is the basket total at which the discount
// kicks in.
const DefaultDiscountThreshold = 5000.0

const discountRate = 0.10

// PurchaseSummary is the result of one basket analysis.
type PurchaseSummary struct {
	Total           float64
	Average         float64
	MostExpensive   string
	DiscountApplied bool
	FinalTotal      float64
}

// AnalyzePurchases totals a basket of named items and applies a 10%
// discount when the total reaches the threshold. Items and prices must
// be non-empty, matched in length, with no negative price.
func AnalyzePurchases(items []string, prices []float64, discountThreshold float64) (PurchaseSummary, error) {
	if len(items) == 0 || len(prices) == 0 {
		return PurchaseSummary{}, fmt.Errorf("%w: items and prices cannot be empty", ErrInvalidInput)
	}
	if len(items) != len(prices) {
		return PurchaseSummary{}, fmt.Errorf("%w: items and prices length mismatch", ErrInvalidInput)
	}

	total := 0.0
	maxPrice := prices[0]
	mostExpensive := items[0]
	for i, price := range prices {
		if price < 0 {
			return PurchaseSummary{}, fmt.Errorf("%w: prices cannot be negative", ErrInvalidInput)
		}
		total += price
		if price > maxPrice {
			maxPrice = price
			mostExpensive = items[i]
		}
	}

	summary := PurchaseSummary{
		Total:           total,
		Average:         math.Round(total/float64(len(prices))*100) / 100,
		MostExpensive:   mostExpensive,
		DiscountApplied: total >= discountThreshold,
		FinalTotal:      total,
	}
	if summary.DiscountApplied {
		summary.FinalTotal = math.Round(total*(1-discountRate)*100) / 100
	}

	return summary, nil
}
