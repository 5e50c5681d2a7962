// Package currency carries monetary amounts as integer minor units end to
// end. Formatting happens only at the presentation boundary; formatted
// strings are never parsed back into computations.
package currency

import "github.com/shopspring/decimal"

// Pence is a sterling amount in minor units.
type Pence int64

var hundred = decimal.NewFromInt(100)

// Mul returns the amount for qty units at this unit price.
func (p Pence) Mul(qty int) Pence {
	return p * Pence(qty)
}

// Pounds returns the amount as an exact decimal number of pounds.
func (p Pence) Pounds() decimal.Decimal {
	return decimal.NewFromInt(int64(p)).Div(hundred)
}

// String formats the amount for display, e.g. 250 -> "£2.50".
func (p Pence) String() string {
	if p < 0 {
		return "-£" + (-p).Pounds().StringFixed(2)
	}
	return "£" + p.Pounds().StringFixed(2)
}

// Sum totals a slice of amounts.
func Sum(amounts ...Pence) Pence {
	var total Pence
	for _, a := range amounts {
		total += a
	}
	return total
}
