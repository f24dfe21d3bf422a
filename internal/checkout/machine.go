// Package checkout drives the cart -> checkout -> confirmation flow.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"medrental/internal/domain"
	"medrental/internal/validation"
)

// Step is the checkout flow position.
type Step string

const (
	StepCart         Step = "cart"
	StepCheckout     Step = "checkout"
	StepConfirmation Step = "confirmation"
)

// allowedTransitions maps each step to the steps reachable from it.
var allowedTransitions = map[Step][]Step{
	StepCart:         {StepCheckout},
	StepCheckout:     {StepCart, StepConfirmation},
	StepConfirmation: {StepCart},
}

func canTransition(from, to Step) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ErrInvalidTransition flags an operation invoked out of step order. The
// storefront disables the controls that would trigger it.
var ErrInvalidTransition = errors.New("invalid checkout transition")

type cartStore interface {
	Lines() []domain.CartLine
	TotalCents() int64
	Finalize(ctx context.Context, method domain.PaymentMethod) (*domain.Order, error)
}

// Machine holds the flow state for one session. Entered customer/card data
// survives back-navigation and is cleared only on ContinueShopping or Reset.
type Machine struct {
	mu         sync.Mutex
	step       Step
	processing bool

	cart      cartStore
	processor PaymentProcessor
	logger    *log.Logger

	customer  domain.CustomerData
	card      domain.CardData
	method    domain.PaymentMethod
	completed *domain.Order
}

func NewMachine(cart cartStore, processor PaymentProcessor, logger *log.Logger) *Machine {
	return &Machine{
		cart:      cart,
		processor: processor,
		logger:    logger,
		step:      StepCart,
		method:    domain.PaymentPix,
	}
}

// Step returns the current flow position.
func (m *Machine) Step() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

// Processing reports whether a confirm is in flight; the storefront disables
// the confirm action while true.
func (m *Machine) Processing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.processing
}

// Customer returns the customer data entered so far.
func (m *Machine) Customer() domain.CustomerData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.customer
}

// Method returns the selected payment method.
func (m *Machine) Method() domain.PaymentMethod {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.method
}

// CompletedOrder returns the order of the current confirmation, nil outside
// StepConfirmation.
func (m *Machine) CompletedOrder() *domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completed
}

// Proceed moves from the cart view into checkout. The cart must not be empty.
func (m *Machine) Proceed() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !canTransition(m.step, StepCheckout) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.step, StepCheckout)
	}
	if len(m.cart.Lines()) == 0 {
		return domain.ErrEmptyCart
	}
	m.step = StepCheckout
	return nil
}

// Back returns from checkout to the cart view, keeping entered data.
func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != StepCheckout || m.processing {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.step, StepCart)
	}
	m.step = StepCart
	return nil
}

// ConfirmResult reports the outcome of a confirm attempt. FieldErrors is
// non-empty when validation blocked the attempt; Order is set on success.
type ConfirmResult struct {
	FieldErrors map[string]string
	Order       *domain.Order
}

// Confirm validates the entered data, runs the payment processor and, on
// success, finalizes the cart into an order and enters confirmation.
// Validation failures keep the machine in checkout with no side effects.
// A declined or cancelled payment also stays in checkout with no order
// created. At most one confirm runs at a time.
func (m *Machine) Confirm(ctx context.Context, customer domain.CustomerData, card domain.CardData, method domain.PaymentMethod) (ConfirmResult, error) {
	m.mu.Lock()
	if m.step != StepCheckout {
		m.mu.Unlock()
		return ConfirmResult{}, fmt.Errorf("%w: confirm outside checkout (%s)", ErrInvalidTransition, m.step)
	}
	if m.processing {
		m.mu.Unlock()
		return ConfirmResult{}, domain.ErrProcessingInFlight
	}
	if !method.Valid() {
		m.mu.Unlock()
		return ConfirmResult{}, fmt.Errorf("unknown payment method %q", method)
	}

	customer = maskCustomer(customer)
	card = maskCard(card)
	m.customer = customer
	m.card = card
	m.method = method

	fieldErrs := validation.ValidateCustomer(customer)
	for field, msg := range validation.ValidateCard(method, card) {
		fieldErrs[field] = msg
	}
	if len(fieldErrs) > 0 {
		m.mu.Unlock()
		return ConfirmResult{FieldErrors: fieldErrs}, nil
	}

	m.processing = true
	total := m.cart.TotalCents()
	m.mu.Unlock()

	err := m.processor.Process(ctx, method, total)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.processing = false

	if err != nil {
		m.logger.Printf("payment processing failed: %v", err)
		return ConfirmResult{}, err
	}

	o, err := m.cart.Finalize(ctx, method)
	if err != nil {
		return ConfirmResult{}, err
	}
	m.completed = o
	m.step = StepConfirmation
	m.logger.Printf("checkout confirmed, order %s (%s)", o.ID, method)
	return ConfirmResult{Order: o}, nil
}

// ContinueShopping leaves the confirmation screen, clearing all transient
// checkout data.
func (m *Machine) ContinueShopping() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != StepConfirmation {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.step, StepCart)
	}
	m.reset()
	return nil
}

// Reset unconditionally returns the machine to the cart step with all
// transient data cleared. Used when the session leaves the checkout flow.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// reset clears transient state. Callers hold m.mu.
func (m *Machine) reset() {
	m.step = StepCart
	m.customer = domain.CustomerData{}
	m.card = domain.CardData{}
	m.method = domain.PaymentPix
	m.completed = nil
}

// maskCustomer applies the storefront input masks so validation sees the same
// values the forms would submit.
func maskCustomer(c domain.CustomerData) domain.CustomerData {
	c.CPF = validation.FormatCPF(c.CPF)
	c.Phone = validation.FormatPhone(c.Phone)
	c.ZipCode = validation.FormatCEP(c.ZipCode)
	return c
}

func maskCard(c domain.CardData) domain.CardData {
	c.CardNumber = validation.FormatCardNumber(c.CardNumber)
	c.ExpiryDate = validation.FormatExpiry(c.ExpiryDate)
	return c
}
