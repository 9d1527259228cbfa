// Package store provides the durable key-value slots backing the
// storefront: one slot holds the last completed order, one holds the
// user review map. Slots are whole-value reads and writes with
// last-write-wins semantics; there is no locking or merge.
package store

import (
	"context"
	"errors"
)

const (
	// KeyLastOrder is the slot holding the most recent order. Every
	// checkout overwrites it; no order history is kept.
	KeyLastOrder = "lastOrder"
	// KeyReviews is the slot holding the productID -> reviews map.
	KeyReviews = "reviews"
)

// ErrSlotEmpty is returned by Get when a slot has never been written.
var ErrSlotEmpty = errors.New("store: slot is empty")

// SlotStore reads and writes named slots of opaque serialized data.
type SlotStore interface {
	// Get returns the current value of a slot, or ErrSlotEmpty.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value of a slot.
	Set(ctx context.Context, key string, value []byte) error
}
