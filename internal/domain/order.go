package domain

import "time"

// Order is an immutable snapshot of a finalized cart.
type Order struct {
	ID            string        `json:"id"`
	Items         []CartLine    `json:"items"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TotalCents    int64         `json:"totalCents"`
	CreatedAt     time.Time     `json:"createdAt"`
}
