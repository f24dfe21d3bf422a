// Package order owns the append-only ledger of completed orders.
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"medrental/internal/domain"
	"medrental/internal/store"
)

// Ledger is the append-only order history. Orders are immutable once
// appended; the ledger is persisted whole on every append.
type Ledger struct {
	mu     sync.Mutex
	kv     store.Store
	logger *log.Logger
	orders []domain.Order
}

func NewLedger(kv store.Store, logger *log.Logger) *Ledger {
	return &Ledger{kv: kv, logger: logger}
}

// Load restores the ledger from the store. A missing key means no orders yet.
func (l *Ledger) Load(ctx context.Context) error {
	data, err := l.kv.Load(ctx, store.KeyOrders)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return fmt.Errorf("decode orders: %w", err)
	}

	l.mu.Lock()
	l.orders = orders
	l.mu.Unlock()
	return nil
}

// Append adds the order to the ledger and persists it. On persistence failure
// the in-memory ledger is rolled back and the order is not recorded.
func (l *Ledger) Append(ctx context.Context, o domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = append(l.orders, o)
	data, err := json.Marshal(l.orders)
	if err != nil {
		l.orders = l.orders[:len(l.orders)-1]
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := l.kv.Save(ctx, store.KeyOrders, data); err != nil {
		l.orders = l.orders[:len(l.orders)-1]
		return fmt.Errorf("persist orders: %w", err)
	}
	l.logger.Printf("order %s appended (%d total)", o.ID, len(l.orders))
	return nil
}

// Orders returns a copy of the ledger in append order.
func (l *Ledger) Orders() []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len returns the number of completed orders.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}
