// Package checkout turns the active cart into a persisted order and
// serves the confirmation-side read.
package checkout

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/events"
	"github.com/MounsifEd/storefront-checkout-service/internal/models"
	"github.com/MounsifEd/storefront-checkout-service/internal/pricing"
	"github.com/MounsifEd/storefront-checkout-service/internal/store"
)

// ErrEmptyCart is returned when checkout is attempted with no cart
// lines. Callers are expected to short-circuit before reaching the
// service; this is the backstop.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// Cart is the cart collaborator consumed during checkout.
type Cart interface {
	Items() []models.CartLineItem
	EffectivePrice(item models.CartLineItem) float64
	Subtotal() float64
	Clear()
}

// PlaceOrderRequest carries the checkout form input.
type PlaceOrderRequest struct {
	Address       models.ShippingAddress
	PaymentMethod string
}

// Service builds, persists and retrieves orders.
type Service struct {
	cart      Cart
	store     store.SlotStore
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(cart Cart, slots store.SlotStore, publisher events.Publisher, logger *zap.Logger) *Service {
	return &Service{
		cart:      cart,
		store:     slots,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrder snapshots the cart into an immutable order, persists it to
// the last-order slot (overwriting any previous order) and then clears
// the cart. The cart is only cleared after the order is safely stored:
// a persistence failure fails the checkout and leaves the cart intact.
//
// The returned order is the in-memory handoff for the confirmation
// step; the stored copy exists for reloads.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := ValidateShippingAddress(req.Address); err != nil {
		return nil, err
	}

	method, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, models.NewValidationError("paymentMethod",
			"payment method must be one of credit, paypal, bank")
	}

	subtotal := s.cart.Subtotal()
	totals := pricing.ComputeTotals(subtotal, req.Address.Province)

	orderItems := make([]models.OrderLineItem, len(items))
	for i, item := range items {
		price := s.cart.EffectivePrice(item)
		orderItems[i] = models.OrderLineItem{
			ID:        item.ID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: price,
			LineTotal: pricing.LineTotal(price, item.Quantity),
		}
	}

	order := &models.Order{
		ID:            generateOrderID(),
		Items:         orderItems,
		Address:       trimAddress(req.Address),
		PaymentMethod: method,
		Totals:        totals,
		CreatedAt:     time.Now().UTC(),
	}

	data, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyLastOrder, data); err != nil {
		s.logger.Error("order persist failed",
			zap.String("order_id", order.ID),
			zap.Error(err))
		return nil, fmt.Errorf("persist order: %w", err)
	}

	s.cart.Clear()

	if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil {
		// Best-effort; the order is already placed.
		s.logger.Error("order event publish failed",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("item_count", len(order.Items)),
		zap.Float64("total", order.Totals.Total))

	return order, nil
}

// LastOrder returns the order for the confirmation view. A non-nil
// handoff (the order just returned by PlaceOrder) wins; otherwise the
// persisted slot is read. A missing or malformed slot yields nil — the
// caller renders the "no order found" state, it is not an error.
func (s *Service) LastOrder(ctx context.Context, handoff *models.Order) *models.Order {
	if handoff != nil {
		return handoff
	}

	data, err := s.store.Get(ctx, store.KeyLastOrder)
	if err != nil {
		if !errors.Is(err, store.ErrSlotEmpty) {
			s.logger.Error("last order read failed", zap.Error(err))
		}
		return nil
	}

	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		s.logger.Warn("stored order is malformed, treating slot as empty",
			zap.Error(err))
		return nil
	}

	return &order
}

func trimAddress(a models.ShippingAddress) models.ShippingAddress {
	return models.ShippingAddress{
		Name:        trim(a.Name),
		AddressLine: trim(a.AddressLine),
		City:        trim(a.City),
		Province:    trim(a.Province),
		PostalCode:  trim(a.PostalCode),
	}
}

func generateOrderID() string {
	suffix := make([]byte, 4)
	rand.Read(suffix)
	return fmt.Sprintf("ord_%d_%s", time.Now().UnixNano(), hex.EncodeToString(suffix))
}
