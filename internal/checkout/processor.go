package checkout

import (
	"context"
	"time"

	"medrental/internal/domain"
)

// PaymentProcessor confirms the payment before an order is committed. The
// three outcomes are success (nil), decline (domain.ErrPaymentDeclined) and
// cancellation (the context error).
type PaymentProcessor interface {
	Process(ctx context.Context, method domain.PaymentMethod, amountCents int64) error
}

// SimulatedProcessor approves every payment after a fixed delay, standing in
// for the real gateway.
type SimulatedProcessor struct {
	delay time.Duration
}

func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{delay: delay}
}

func (p *SimulatedProcessor) Process(ctx context.Context, _ domain.PaymentMethod, _ int64) error {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
