// Package clients holds HTTP clients for external collaborators.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/config"
	"github.com/MounsifEd/storefront-checkout-service/internal/models"
)

// Product is the product record returned by the external catalog API.
// The storefront treats it as opaque input: no validation, no mutation.
type Product struct {
	ID                 json.Number     `json:"id"`
	Title              string          `json:"title"`
	Price              float64         `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage"`
	Reviews            []models.Review `json:"reviews"`
}

// ProductAPI fetches catalog data from the external product service.
type ProductAPI interface {
	GetProduct(ctx context.Context, productID string) (*Product, error)
	GetProductReviews(ctx context.Context, productID string) ([]models.Review, error)
}

// HTTPProductClient implements ProductAPI over HTTP.
type HTTPProductClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPProductClient creates a product API client.
func NewHTTPProductClient(cfg config.ServiceConfig, logger *zap.Logger) *HTTPProductClient {
	return &HTTPProductClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GetProduct retrieves a product by id. An unknown product returns
// (nil, nil) rather than an error.
func (c *HTTPProductClient) GetProduct(ctx context.Context, productID string) (*Product, error) {
	url := fmt.Sprintf("%s/products/%s", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("product fetch failed",
			zap.String("product_id", productID),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product api returned status %d", resp.StatusCode)
	}

	var product Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, err
	}

	return &product, nil
}

// GetProductReviews retrieves the API-side reviews for a product. An
// unknown product yields an empty list.
func (c *HTTPProductClient) GetProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	product, err := c.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return product.Reviews, nil
}
