// Package pricing computes order totals. All currency math runs on
// decimals and is rounded half away from zero to cents; float64 only
// appears at the package boundary.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/MounsifEd/storefront-checkout-service/internal/models"
)

var gstRate = decimal.RequireFromString("0.05")

// qstRates maps a province to its provincial sales tax rate. Provinces
// without an entry are taxed GST-only.
var qstRates = map[string]decimal.Decimal{
	"Quebec": decimal.RequireFromString("0.09975"),
}

// Round2 rounds a currency amount to cents, half away from zero.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// LineTotal prices a quantity of units at the given unit price.
func LineTotal(unitPrice float64, quantity int) float64 {
	return decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

// ComputeTotals builds the tax breakdown for a cart subtotal shipped to
// the given province. GST always applies; QST applies only to provinces
// in the rate table. Each term is rounded to cents before the total is
// formed, and the total is the rounded sum of the rounded terms.
//
// A negative or non-finite subtotal is clamped to zero; callers are
// expected to have validated the subtotal already.
func ComputeTotals(subtotal float64, province string) models.TotalsBreakdown {
	if subtotal < 0 || math.IsNaN(subtotal) || math.IsInf(subtotal, 0) {
		subtotal = 0
	}

	sub := decimal.NewFromFloat(subtotal).Round(2)
	gst := sub.Mul(gstRate).Round(2)

	qst := decimal.Zero
	if rate, ok := qstRates[province]; ok {
		qst = sub.Mul(rate).Round(2)
	}

	total := sub.Add(gst).Add(qst).Round(2)

	return models.TotalsBreakdown{
		Subtotal: sub.InexactFloat64(),
		GST:      gst.InexactFloat64(),
		QST:      qst.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
