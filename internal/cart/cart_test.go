package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/models"
)

func TestAddItemValidation(t *testing.T) {
	tests := []struct {
		name string
		item models.CartLineItem
	}{
		{"missing id", models.CartLineItem{Quantity: 1, UnitPrice: 10}},
		{"zero quantity", models.CartLineItem{ID: "p1", Quantity: 0, UnitPrice: 10}},
		{"negative quantity", models.CartLineItem{ID: "p1", Quantity: -1, UnitPrice: 10}},
		{"negative price", models.CartLineItem{ID: "p1", Quantity: 1, UnitPrice: -5}},
		{"discount above price", models.CartLineItem{ID: "p1", Quantity: 1, UnitPrice: 5, DiscountedUnitPrice: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(zap.NewNop())
			err := s.AddItem(tt.item)

			var verr *models.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.True(t, s.IsEmpty())
		})
	}
}

func TestAddItemMergesQuantities(t *testing.T) {
	s := NewService(zap.NewNop())

	require.NoError(t, s.AddItem(models.CartLineItem{ID: "p1", Title: "Mug", Quantity: 1, UnitPrice: 10}))
	require.NoError(t, s.AddItem(models.CartLineItem{ID: "p1", Title: "Mug", Quantity: 2, UnitPrice: 10}))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestEffectivePrice(t *testing.T) {
	s := NewService(zap.NewNop())

	discounted := models.CartLineItem{ID: "p1", Quantity: 1, UnitPrice: 20, DiscountedUnitPrice: 15}
	full := models.CartLineItem{ID: "p2", Quantity: 1, UnitPrice: 20}

	assert.Equal(t, 15.0, s.EffectivePrice(discounted))
	assert.Equal(t, 20.0, s.EffectivePrice(full))
}

func TestSubtotalUsesEffectivePrices(t *testing.T) {
	s := NewService(zap.NewNop())

	require.NoError(t, s.AddItem(models.CartLineItem{ID: "p1", Quantity: 2, UnitPrice: 12, DiscountedUnitPrice: 10}))
	require.NoError(t, s.AddItem(models.CartLineItem{ID: "p2", Quantity: 1, UnitPrice: 5.005}))

	// 2 x 10.00 = 20.00, plus round2(5.005) = 5.01
	assert.Equal(t, 25.01, s.Subtotal())
}

func TestClear(t *testing.T) {
	s := NewService(zap.NewNop())

	require.NoError(t, s.AddItem(models.CartLineItem{ID: "p1", Quantity: 1, UnitPrice: 10}))
	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0.0, s.Subtotal())
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewService(zap.NewNop())
	require.NoError(t, s.AddItem(models.CartLineItem{ID: "p1", Quantity: 1, UnitPrice: 10}))

	items := s.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, s.Items()[0].Quantity)
}
