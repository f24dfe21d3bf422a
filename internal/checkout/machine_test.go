package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"medrental/internal/cart"
	"medrental/internal/domain"
	"medrental/internal/order"
	"medrental/internal/store"
)

var wheelchair = domain.Product{ID: "1", SKU: "CEN-CR-001", Name: "Cadeira de Rodas", PriceCents: 18990}

func validCustomer() domain.CustomerData {
	return domain.CustomerData{
		Name:         "João Silva",
		Email:        "joao@example.com",
		Phone:        "11999999999",
		CPF:          "123.456.789-01",
		Address:      "Rua das Flores",
		Number:       "100",
		Neighborhood: "Centro",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01310-100",
	}
}

func validCard() domain.CardData {
	return domain.CardData{
		CardNumber:   "4111 1111 1111 1111",
		CardName:     "JOAO SILVA",
		ExpiryDate:   "12/28",
		CVV:          "123",
		Installments: "1",
	}
}

type instantProcessor struct{}

func (instantProcessor) Process(_ context.Context, _ domain.PaymentMethod, _ int64) error {
	return nil
}

type decliningProcessor struct{}

func (decliningProcessor) Process(_ context.Context, _ domain.PaymentMethod, _ int64) error {
	return domain.ErrPaymentDeclined
}

type blockingProcessor struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingProcessor) Process(_ context.Context, _ domain.PaymentMethod, _ int64) error {
	close(p.started)
	<-p.release
	return nil
}

func newTestMachine(t *testing.T, p PaymentProcessor) (*Machine, *cart.Service, *order.Ledger) {
	t.Helper()
	kv := store.NewMemory()
	logger := log.New(io.Discard, "", 0)
	ledger := order.NewLedger(kv, logger)
	cartSvc := cart.New(kv, ledger, logger)
	return NewMachine(cartSvc, p, logger), cartSvc, ledger
}

func fillCart(t *testing.T, cartSvc *cart.Service) {
	t.Helper()
	if err := cartSvc.AddItem(context.Background(), wheelchair, 1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProceedEmptyCart(t *testing.T) {
	m, _, _ := newTestMachine(t, instantProcessor{})
	if err := m.Proceed(); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if m.Step() != StepCart {
		t.Fatalf("expected to stay in cart, got %s", m.Step())
	}
}

func TestProceedWithLines(t *testing.T) {
	m, cartSvc, _ := newTestMachine(t, instantProcessor{})
	fillCart(t, cartSvc)
	if err := m.Proceed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Step() != StepCheckout {
		t.Fatalf("expected checkout, got %s", m.Step())
	}
}

func TestBackKeepsEnteredData(t *testing.T) {
	m, cartSvc, _ := newTestMachine(t, instantProcessor{})
	fillCart(t, cartSvc)
	if err := m.Proceed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A failed confirm stores the entered data.
	customer := validCustomer()
	customer.Email = "broken"
	if _, err := m.Confirm(context.Background(), customer, domain.CardData{}, domain.PaymentPix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.Back(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Step() != StepCart {
		t.Fatalf("expected cart, got %s", m.Step())
	}
	if m.Customer().Name != customer.Name {
		t.Fatalf("entered data lost on back navigation")
	}
}

func TestConfirmValidationFailureStaysInCheckout(t *testing.T) {
	m, cartSvc, ledger := newTestMachine(t, instantProcessor{})
	fillCart(t, cartSvc)
	if err := m.Proceed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	customer := validCustomer()
	customer.Name = ""
	res, err := m.Confirm(context.Background(), customer, domain.CardData{}, domain.PaymentPix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.FieldErrors) != 1 || res.FieldErrors["name"] == "" {
		t.Fatalf("expected only name error, got %v", res.FieldErrors)
	}
	if m.Step() != StepCheckout {
		t.Fatalf("expected to stay in checkout, got %s", m.Step())
	}
	if ledger.Len() != 0 {
		t.Fatalf("no order may be created on validation failure")
	}
	if len(cartSvc.Lines()) != 1 {
		t.Fatalf("cart must stay intact")
	}
}

func TestConfirmPixSkipsCardValidation(t *testing.T) {
	m, cartSvc, ledger := newTestMachine(t, instantProcessor{})
	fillCart(t, cartSvc)
	if err := m.Proceed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := m.Confirm(context.Background(), validCustomer(), domain.CardData{}, domain.PaymentPix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order == nil {
		t.Fatalf("expected order, got %+v", res)
	}
	if res.Order.PaymentMethod != domain.PaymentPix {
		t.Fatalf("unexpected method: %s", res.Order.PaymentMethod)
	}
	if m.Step() != StepConfirmation {
		t.Fatalf("expected confirmation, got %s", m.Step())
	}
	if ledger.Len() != 1 {
		t.Fatalf("expected exactly one order, got %d", ledger.Len())
	}
	if len(cartSvc.Lines()) != 0 {
		t.Fatalf("cart must be empty after confirm")
	}
}

func TestConfirmCardRequiresCardData(t *testing.T) {
	m, cartSvc, _ := newTestMachine(t, instantProcessor{})
	fillCart(t, cartSvc)
	if err := m.Proceed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := m.Confirm(context.Background(), validCustomer(), domain.CardData{}, domain.PaymentCard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FieldErrors["cardNumber"] == "" {
		t.Fatalf("expected card errors, got %v", res.FieldErrors)
	}

	res, err = m.Confirm(context.Background(), validCustomer(), validCard(), domain.PaymentCard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order == nil || res.Order.PaymentMethod != domain.PaymentCard {
		t.Fatalf("expected card order, got %+v", res)
	}
}

func TestConfirmDeclinedPaymentCreatesNoOrder(t *testing.T) {
	m, cartSvc, ledger := newTestMachine(t, decliningProcessor{})
	fillCart(t, cartSvc)
	if err := m.Proceed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := m.Confirm(context.Background(), validCustomer(), domain.CardData{}, domain.PaymentPix)
	if !errors.Is(err, domain.ErrPaymentDeclined) {
		t.Fatalf("expected ErrPaymentDeclined, got %v", err)
	}
	if m.Step() != StepCheckout {
		t.Fatalf("expected to stay in checkout, got %s", m.Step())
	}
	if ledger.Len() != 0 {
		t.Fatalf("no order may exist after decline")
	}
	if len(cartSvc.Lines()) != 1 {
		t.Fatalf("cart must stay intact after decline")
	}
	if m.Processing() {
		t.Fatalf("processing flag stuck")
	}
}

func TestConfirmCancelledContext(t *testing.T) {
	m, cartSvc, ledger := newTestMachine(t, NewSimulatedProcessor(time.Minute))
	fillCart(t, cartSvc)
	if err := m.Proceed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.Confirm(ctx, validCustomer(), domain.CardData{}, domain.PaymentPix)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.Step() != StepCheckout || ledger.Len() != 0 {
		t.Fatalf("cancel must leave checkout unchanged")
	}
}

func TestConcurrentConfirmRejected(t *testing.T) {
	proc := &blockingProcessor{started: make(chan struct{}), release: make(chan struct{})}
	m, cartSvc, ledger := newTestMachine(t, proc)
	fillCart(t, cartSvc)
	if err := m.Proceed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := m.Confirm(context.Background(), validCustomer(), domain.CardData{}, domain.PaymentPix)
		done <- err
	}()

	<-proc.started
	if !m.Processing() {
		t.Fatalf("expected processing flag while in flight")
	}
	_, err := m.Confirm(context.Background(), validCustomer(), domain.CardData{}, domain.PaymentPix)
	if !errors.Is(err, domain.ErrProcessingInFlight) {
		t.Fatalf("expected ErrProcessingInFlight, got %v", err)
	}

	close(proc.release)
	if err := <-done; err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("expected exactly one order, got %d", ledger.Len())
	}
}

func TestConfirmOutsideCheckout(t *testing.T) {
	m, cartSvc, _ := newTestMachine(t, instantProcessor{})
	fillCart(t, cartSvc)
	_, err := m.Confirm(context.Background(), validCustomer(), domain.CardData{}, domain.PaymentPix)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestContinueShoppingClearsTransientData(t *testing.T) {
	m, cartSvc, _ := newTestMachine(t, instantProcessor{})
	fillCart(t, cartSvc)
	if err := m.Proceed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Confirm(context.Background(), validCustomer(), domain.CardData{}, domain.PaymentPix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.ContinueShopping(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Step() != StepCart {
		t.Fatalf("expected cart, got %s", m.Step())
	}
	if m.CompletedOrder() != nil {
		t.Fatalf("completed order must be cleared")
	}
	if m.Customer().Name != "" {
		t.Fatalf("customer data must be cleared")
	}
	if m.Method() != domain.PaymentPix {
		t.Fatalf("method must reset to pix")
	}
}

func TestContinueShoppingOutsideConfirmation(t *testing.T) {
	m, _, _ := newTestMachine(t, instantProcessor{})
	if err := m.ContinueShopping(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSimulatedProcessorSucceedsAfterDelay(t *testing.T) {
	p := NewSimulatedProcessor(time.Millisecond)
	if err := p.Process(context.Background(), domain.PaymentPix, 1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
