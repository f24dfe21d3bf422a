package store

import (
	"context"
	"errors"
)

// Keys under which the storefront persists its state.
const (
	KeyCart   = "cart"
	KeyOrders = "orders"
)

// ErrKeyNotFound is returned by Load when the key has never been saved.
// Callers treat it as "start empty".
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value persistence contract: whole-value load at session
// start, whole-value overwrite on every mutation.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
