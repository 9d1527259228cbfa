package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		province string
		gst      float64
		qst      float64
		total    float64
	}{
		{"quebec applies both taxes", 100, "Quebec", 5.00, 9.98, 114.98},
		{"ontario is gst only", 100, "Ontario", 5.00, 0, 105.00},
		{"unknown province is gst only", 100, "Other", 5.00, 0, 105.00},
		{"zero subtotal", 0, "Quebec", 0, 0, 0},
		{"qst half cent rounds up", 20, "Quebec", 1.00, 2.00, 23.00},
		{"fractional subtotal", 33.33, "Quebec", 1.67, 3.32, 38.32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.subtotal, tt.province)
			assert.Equal(t, tt.subtotal, got.Subtotal)
			assert.Equal(t, tt.gst, got.GST)
			assert.Equal(t, tt.qst, got.QST)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}

// Per-term rounding is part of the contract: for a 0.05 subtotal in
// Quebec, gst (0.0025) and qst (0.0049875) each round to zero, so the
// total stays 0.05 — rounding the raw sum once would give 0.06.
func TestComputeTotalsRoundsPerTerm(t *testing.T) {
	got := ComputeTotals(0.05, "Quebec")
	assert.Equal(t, 0.00, got.GST)
	assert.Equal(t, 0.00, got.QST)
	assert.Equal(t, 0.05, got.Total)

	rawSumRounded := Round2(0.05 + 0.05*0.05 + 0.05*0.09975)
	assert.Equal(t, 0.06, rawSumRounded)
	assert.NotEqual(t, rawSumRounded, got.Total)
}

func TestComputeTotalsTotalIsRoundedSumOfRoundedTerms(t *testing.T) {
	for _, subtotal := range []float64{0.01, 0.05, 9.99, 33.33, 100, 249.95, 1234.56} {
		for _, province := range []string{"Quebec", "Ontario"} {
			got := ComputeTotals(subtotal, province)
			assert.Equal(t, Round2(got.Subtotal+got.GST+got.QST), got.Total,
				"subtotal=%v province=%s", subtotal, province)
		}
	}
}

func TestComputeTotalsClampsInvalidSubtotal(t *testing.T) {
	got := ComputeTotals(-10, "Quebec")
	assert.Equal(t, 0.0, got.Subtotal)
	assert.Equal(t, 0.0, got.Total)
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 9.98, Round2(9.975))
	assert.Equal(t, 5.01, Round2(5.005))
	assert.Equal(t, 1.67, Round2(1.6665))
	assert.Equal(t, 10.00, Round2(10))
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 20.00, LineTotal(10.00, 2))
	assert.Equal(t, 5.01, LineTotal(5.005, 1))
	assert.Equal(t, 0.00, LineTotal(19.99, 0))
}
