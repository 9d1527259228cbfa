// Package cart holds the active shopping cart. The storefront targets
// a single session, so the cart is one in-memory value; the mutex only
// guards against overlapping HTTP requests.
package cart

import (
	"sync"

	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/models"
	"github.com/MounsifEd/storefront-checkout-service/internal/pricing"
)

// Service is the cart collaborator consumed by checkout.
type Service struct {
	mu     sync.Mutex
	items  []models.CartLineItem
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// AddItem puts a line in the cart. Adding an id already present merges
// into the existing line by summing quantities; the price fields of the
// first add win.
func (s *Service) AddItem(item models.CartLineItem) error {
	if item.ID == "" {
		return models.NewValidationError("id", "item id is required")
	}
	if item.Quantity <= 0 {
		return models.NewValidationError("quantity", "quantity must be positive")
	}
	if item.UnitPrice < 0 {
		return models.NewValidationError("unitPrice", "unit price cannot be negative")
	}
	if item.DiscountedUnitPrice > item.UnitPrice {
		return models.NewValidationError("discountedUnitPrice", "discounted price cannot exceed unit price")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			s.logger.Debug("cart line merged",
				zap.String("item_id", item.ID),
				zap.Int("quantity", s.items[i].Quantity))
			return nil
		}
	}

	s.items = append(s.items, item)
	s.logger.Debug("cart line added",
		zap.String("item_id", item.ID),
		zap.Int("quantity", item.Quantity))
	return nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Service) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// IsEmpty reports whether the cart has no lines.
func (s *Service) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// EffectivePrice resolves the discounted unit price for a line.
func (s *Service) EffectivePrice(item models.CartLineItem) float64 {
	return item.EffectivePrice()
}

// Subtotal sums the effective line totals, each rounded to cents.
func (s *Service) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal float64
	for _, item := range s.items {
		subtotal += pricing.LineTotal(item.EffectivePrice(), item.Quantity)
	}
	return pricing.Round2(subtotal)
}

// Clear empties the cart.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.logger.Debug("cart cleared")
}
