package models

// CartLineItem is a line in the active cart. DiscountedUnitPrice is the
// current promotional price and is never above UnitPrice; a zero value
// means no discount applies.
type CartLineItem struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unitPrice"`
	DiscountedUnitPrice float64 `json:"discountedUnitPrice,omitempty"`
}

// EffectivePrice is the price a unit of this line actually sells for.
func (i CartLineItem) EffectivePrice() float64 {
	if i.DiscountedUnitPrice > 0 && i.DiscountedUnitPrice < i.UnitPrice {
		return i.DiscountedUnitPrice
	}
	return i.UnitPrice
}
