package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/models"
)

type addReviewRequest struct {
	Author  string `json:"author" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// GetProductReviews handles GET /api/v1/products/:id/reviews. API
// reviews come first, user reviews follow. A product API failure
// degrades to user reviews only.
func (h *Handlers) GetProductReviews(c *gin.Context) {
	productID := c.Param("id")

	apiReviews, err := h.productClient.GetProductReviews(c.Request.Context(), productID)
	if err != nil {
		h.logger.Warn("product api unavailable, serving user reviews only",
			zap.String("product_id", productID),
			zap.Error(err))
		apiReviews = nil
	}

	merged := h.reviewService.AllForProduct(c.Request.Context(), productID, apiReviews)

	c.JSON(http.StatusOK, gin.H{
		"productId": productID,
		"reviews":   merged,
	})
}

// AddProductReview handles POST /api/v1/products/:id/reviews.
func (h *Handlers) AddProductReview(c *gin.Context) {
	productID := c.Param("id")

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review body"})
		return
	}

	review := models.Review{
		Author:    req.Author,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.reviewService.Add(c.Request.Context(), productID, review); err != nil {
		h.logger.Error("review add failed",
			zap.String("product_id", productID),
			zap.Error(err))
		handleError(c, err)
		return
	}

	h.metrics.ReviewsSubmitted.Inc()

	c.JSON(http.StatusCreated, review)
}
