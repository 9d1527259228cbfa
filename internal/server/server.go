package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MounsifEd/storefront-checkout-service/internal/config"
	"github.com/MounsifEd/storefront-checkout-service/internal/handlers"
	"github.com/MounsifEd/storefront-checkout-service/internal/metrics"
)

// Server owns the gin router and the underlying http.Server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
}

// New builds the router and wires all routes.
func New(h *handlers.Handlers, m *metrics.Metrics, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(m.GinMiddleware())

	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/cart", h.GetCart)
		v1.POST("/cart/items", h.AddCartItem)
		v1.DELETE("/cart", h.ClearCart)

		v1.POST("/checkout", h.Checkout)
		v1.GET("/orders/last", h.LastOrder)

		v1.GET("/products/:id/reviews", h.GetProductReviews)
		v1.POST("/products/:id/reviews", h.AddProductReview)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		router: router,
	}
}

// Start blocks serving HTTP until Shutdown or failure.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
