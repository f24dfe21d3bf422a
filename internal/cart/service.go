// Package cart owns the active rental cart for the session.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"medrental/internal/domain"
	"medrental/internal/order"
	"medrental/internal/store"
)

// ErrInvalidQuantity and ErrInvalidMonths flag caller misuse; the storefront
// controls keep these off any reachable path.
var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidMonths   = errors.New("invalid rental months")
)

type orderLedger interface {
	Append(ctx context.Context, o domain.Order) error
}

// Service owns the cart lines and persists them on every mutation. Lines keep
// insertion order and hold at most one entry per product id.
type Service struct {
	mu     sync.Mutex
	lines  []domain.CartLine
	kv     store.Store
	ledger orderLedger
	logger *log.Logger
}

func New(kv store.Store, ledger *order.Ledger, logger *log.Logger) *Service {
	return &Service{kv: kv, ledger: ledger, logger: logger}
}

// Load restores the persisted cart. A missing key means an empty cart.
func (s *Service) Load(ctx context.Context) error {
	data, err := s.kv.Load(ctx, store.KeyCart)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return fmt.Errorf("decode cart: %w", err)
	}

	s.mu.Lock()
	s.lines = cart.Lines
	s.mu.Unlock()
	return nil
}

// AddItem puts the product in the cart. Adding a product already present
// accumulates quantity but replaces months with the newly requested value.
func (s *Service) AddItem(ctx context.Context, product domain.Product, quantity, months int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if !domain.MonthsAllowed(months) {
		return ErrInvalidMonths
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			s.lines[i].Months = months
			return s.persist(ctx)
		}
	}
	s.lines = append(s.lines, domain.CartLine{Product: product, Quantity: quantity, Months: months})
	return s.persist(ctx)
}

// RemoveItem deletes the line for the product; no-op when absent.
func (s *Service) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity sets the line quantity exactly; zero or less removes the
// line.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			return s.persist(ctx)
		}
	}
	return nil
}

// UpdateMonths sets the line's rental duration; no-op when the line is absent.
func (s *Service) UpdateMonths(ctx context.Context, productID string, months int) error {
	if !domain.MonthsAllowed(months) {
		return ErrInvalidMonths
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Months = months
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	return s.persist(ctx)
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Service) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalCents sums price x quantity x months over all lines.
func (s *Service) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, line := range s.lines {
		total += line.TotalCents()
	}
	return total
}

// ItemCount sums line quantities.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Finalize snapshots the cart into a new order, appends it to the ledger and
// empties the cart. Exactly one order results from a successful call; when
// the ledger append fails the cart is left untouched.
func (s *Service) Finalize(ctx context.Context, method domain.PaymentMethod) (*domain.Order, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("unknown payment method %q", method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.CartLine, len(s.lines))
	copy(items, s.lines)
	var total int64
	for _, line := range items {
		total += line.TotalCents()
	}

	o := domain.Order{
		ID:            order.NewID(),
		Items:         items,
		PaymentMethod: method,
		TotalCents:    total,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.ledger.Append(ctx, o); err != nil {
		return nil, err
	}

	s.lines = nil
	if err := s.persist(ctx); err != nil {
		// The order is committed; a stale persisted cart heals on the next
		// successful save.
		s.logger.Printf("persist cleared cart after order %s: %v", o.ID, err)
	}
	return &o, nil
}

// persist writes the current lines under the cart key. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) error {
	data, err := json.Marshal(domain.Cart{Lines: s.lines})
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Save(ctx, store.KeyCart, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
