package models

import (
	"errors"
	"time"
)

// PaymentMethod identifies how the customer chose to pay. All methods
// are simulated; the value is recorded on the order and nothing else.
type PaymentMethod string

const (
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodBank   PaymentMethod = "bank"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

func (m PaymentMethod) String() string {
	return string(m)
}

// ParsePaymentMethod validates a raw payment method value.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case PaymentMethodCredit.String():
		return PaymentMethodCredit, nil
	case PaymentMethodPayPal.String():
		return PaymentMethodPayPal, nil
	case PaymentMethodBank.String():
		return PaymentMethodBank, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// TotalsBreakdown is the tax breakdown for an order. Every amount is
// rounded to cents independently; total is the rounded sum of the
// already-rounded terms, so per-term rounding error is kept, not
// corrected globally.
type TotalsBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	QST      float64 `json:"qst"`
	Total    float64 `json:"total"`
}

// OrderLineItem is a cart line frozen at order time. UnitPrice is the
// effective (discounted) price the customer actually paid; later
// catalog price changes do not touch it.
type OrderLineItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// ShippingAddress holds the destination for an order. All fields are
// required non-blank at order creation.
type ShippingAddress struct {
	Name        string `json:"name"`
	AddressLine string `json:"address"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`
}

// Order is an immutable record of a completed checkout.
type Order struct {
	ID            string          `json:"id"`
	Items         []OrderLineItem `json:"items"`
	Address       ShippingAddress `json:"address"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Totals        TotalsBreakdown `json:"totals"`
	CreatedAt     time.Time       `json:"createdAt"`
}
