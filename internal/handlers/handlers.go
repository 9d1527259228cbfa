// Package handlers holds the gin HTTP handlers for the storefront API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/cart"
	"github.com/MounsifEd/storefront-checkout-service/internal/checkout"
	"github.com/MounsifEd/storefront-checkout-service/internal/clients"
	"github.com/MounsifEd/storefront-checkout-service/internal/metrics"
	"github.com/MounsifEd/storefront-checkout-service/internal/models"
	"github.com/MounsifEd/storefront-checkout-service/internal/reviews"
)

// Handlers bundles the services behind the HTTP API.
type Handlers struct {
	checkoutService *checkout.Service
	cartService     *cart.Service
	reviewService   *reviews.Service
	productClient   clients.ProductAPI
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// New creates the handler set.
func New(
	checkoutService *checkout.Service,
	cartService *cart.Service,
	reviewService *reviews.Service,
	productClient clients.ProductAPI,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		checkoutService: checkoutService,
		cartService:     cartService,
		reviewService:   reviewService,
		productClient:   productClient,
		metrics:         m,
		logger:          logger,
	}
}

// handleError maps service errors to HTTP responses. Validation
// problems surface their message to the user; everything else is a
// generic 500.
func handleError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}
	if errors.Is(err, checkout.ErrEmptyCart) {
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
