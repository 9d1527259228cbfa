package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MounsifEd/storefront-checkout-service/internal/models"
	"github.com/MounsifEd/storefront-checkout-service/internal/pricing"
)

// defaultProvince matches the checkout form default.
const defaultProvince = "Quebec"

// GetCart handles GET /api/v1/cart. The response includes a live
// totals breakdown for the province given in the query (so the UI can
// preview taxes before checkout).
func (h *Handlers) GetCart(c *gin.Context) {
	province := c.DefaultQuery("province", defaultProvince)
	subtotal := h.cartService.Subtotal()

	c.JSON(http.StatusOK, gin.H{
		"items":  h.cartService.Items(),
		"totals": pricing.ComputeTotals(subtotal, province),
	})
}

// AddCartItem handles POST /api/v1/cart/items.
func (h *Handlers) AddCartItem(c *gin.Context) {
	var item models.CartLineItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.cartService.AddItem(item); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"items": h.cartService.Items()})
}

// ClearCart handles DELETE /api/v1/cart.
func (h *Handlers) ClearCart(c *gin.Context) {
	h.cartService.Clear()
	c.Status(http.StatusNoContent)
}
