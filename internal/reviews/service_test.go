package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/models"
	"github.com/MounsifEd/storefront-checkout-service/internal/store"
)

func newTestService(t *testing.T) (*Service, store.SlotStore) {
	t.Helper()
	fileStore, err := store.NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return NewService(fileStore, zap.NewNop()), fileStore
}

func review(author string) models.Review {
	return models.Review{Author: author, Rating: 4, Comment: "solid"}
}

func TestAllForProductMergesAPIFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	apiReviews := []models.Review{review("api-a"), review("api-b")}

	require.NoError(t, svc.Add(ctx, "p1", review("user-c")))
	require.NoError(t, svc.Add(ctx, "p1", review("user-d")))

	got := svc.AllForProduct(ctx, "p1", apiReviews)

	require.Len(t, got, 4)
	assert.Equal(t, "api-a", got[0].Author)
	assert.Equal(t, "api-b", got[1].Author)
	assert.Equal(t, "user-c", got[2].Author)
	assert.Equal(t, "user-d", got[3].Author)
}

func TestAllForProductNoUserReviews(t *testing.T) {
	svc, _ := newTestService(t)

	apiReviews := []models.Review{review("api-a")}
	got := svc.AllForProduct(context.Background(), "p1", apiReviews)

	require.Len(t, got, 1)
	assert.Equal(t, "api-a", got[0].Author)
}

func TestReviewsAreScopedByProduct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "p1", review("for-p1")))

	assert.Empty(t, svc.AllForProduct(ctx, "p2", nil))
}

func TestReviewsPersistAcrossInstances(t *testing.T) {
	fileStore, err := store.NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	first := NewService(fileStore, zap.NewNop())
	require.NoError(t, first.Add(ctx, "p1", review("user-a")))

	second := NewService(fileStore, zap.NewNop())
	got := second.AllForProduct(ctx, "p1", nil)

	require.Len(t, got, 1)
	assert.Equal(t, "user-a", got[0].Author)
}

func TestMalformedSlotReadsAsEmpty(t *testing.T) {
	svc, slots := newTestService(t)
	ctx := context.Background()

	require.NoError(t, slots.Set(ctx, store.KeyReviews, []byte("not json at all")))

	assert.Empty(t, svc.AllForProduct(ctx, "p1", nil))

	// A mutation on top of a corrupt slot starts from empty and
	// replaces it with a well-formed store.
	require.NoError(t, svc.Add(ctx, "p1", review("user-a")))
	got := svc.AllForProduct(ctx, "p1", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "user-a", got[0].Author)
}
