package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart is returned when checkout is attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrPaymentDeclined is returned by the payment processor when the charge
	// is refused; no order is created.
	ErrPaymentDeclined = errors.New("payment declined")
	// ErrProcessingInFlight is returned when a confirm is attempted while a
	// previous one is still processing.
	ErrProcessingInFlight = errors.New("payment already processing")
)
