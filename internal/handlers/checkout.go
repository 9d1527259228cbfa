package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/checkout"
	"github.com/MounsifEd/storefront-checkout-service/internal/models"
)

type checkoutRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
	PaymentMethod string `json:"paymentMethod"`
}

// Checkout handles POST /api/v1/checkout. An empty cart short-circuits
// before any totals or order construction happens.
func (h *Handlers) Checkout(c *gin.Context) {
	if h.cartService.IsEmpty() {
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("checkout bind failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.checkoutService.PlaceOrder(c.Request.Context(), checkout.PlaceOrderRequest{
		Address: models.ShippingAddress{
			Name:        req.Name,
			AddressLine: req.Address,
			City:        req.City,
			Province:    req.Province,
			PostalCode:  req.PostalCode,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	h.metrics.OrdersPlaced.Inc()
	h.metrics.OrderAmount.Add(order.Totals.Total)

	c.JSON(http.StatusCreated, order)
}

// LastOrder handles GET /api/v1/orders/last, the confirmation-side
// read. No stored order is a normal state, not a server error.
func (h *Handlers) LastOrder(c *gin.Context) {
	order := h.checkoutService.LastOrder(c.Request.Context(), nil)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no order found"})
		return
	}

	c.JSON(http.StatusOK, order)
}
