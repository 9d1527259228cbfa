// Package reviews keeps user-submitted product reviews on top of the
// reviews slot, merging them with reviews served by the product API.
package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/models"
	"github.com/MounsifEd/storefront-checkout-service/internal/store"
)

// Service appends and reads user reviews. The whole productID -> reviews
// map is persisted on every mutation; a malformed or absent slot reads
// as an empty map, never as an error.
type Service struct {
	store  store.SlotStore
	logger *zap.Logger
}

func NewService(slots store.SlotStore, logger *zap.Logger) *Service {
	return &Service{store: slots, logger: logger}
}

// Add appends a review to the product's sequence, creating the
// sequence if absent, and persists the entire store.
func (s *Service) Add(ctx context.Context, productID string, review models.Review) error {
	all := s.load(ctx)
	all[productID] = append(all[productID], review)

	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode reviews: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyReviews, data); err != nil {
		return fmt.Errorf("persist reviews: %w", err)
	}

	s.logger.Info("review added",
		zap.String("product_id", productID),
		zap.Int("product_review_count", len(all[productID])))
	return nil
}

// AllForProduct returns the API-sourced reviews followed by the user
// reviews for the product, relative order preserved within each group.
func (s *Service) AllForProduct(ctx context.Context, productID string, apiReviews []models.Review) []models.Review {
	user := s.load(ctx)[productID]

	merged := make([]models.Review, 0, len(apiReviews)+len(user))
	merged = append(merged, apiReviews...)
	merged = append(merged, user...)
	return merged
}

func (s *Service) load(ctx context.Context) map[string][]models.Review {
	data, err := s.store.Get(ctx, store.KeyReviews)
	if err != nil {
		if !errors.Is(err, store.ErrSlotEmpty) {
			s.logger.Error("reviews read failed", zap.Error(err))
		}
		return map[string][]models.Review{}
	}

	var all map[string][]models.Review
	if err := json.Unmarshal(data, &all); err != nil || all == nil {
		s.logger.Warn("stored reviews are malformed, starting empty",
			zap.Error(err))
		return map[string][]models.Review{}
	}
	return all
}
