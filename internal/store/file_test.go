package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestFileStoreEmptySlot(t *testing.T) {
	s := newTestFileStore(t)

	_, err := s.Get(context.Background(), KeyLastOrder)
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	want := []byte(`{"id":"ord_1"}`)
	require.NoError(t, s.Set(ctx, KeyLastOrder, want))

	got, err := s.Get(ctx, KeyLastOrder)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreOverwrite(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyLastOrder, []byte(`{"id":"ord_1"}`)))
	require.NoError(t, s.Set(ctx, KeyLastOrder, []byte(`{"id":"ord_2"}`)))

	got, err := s.Get(ctx, KeyLastOrder)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"ord_2"}`), got)
}

func TestFileStoreSlotsAreIndependent(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyLastOrder, []byte(`{"id":"ord_1"}`)))

	_, err := s.Get(ctx, KeyReviews)
	assert.ErrorIs(t, err, ErrSlotEmpty)
}
