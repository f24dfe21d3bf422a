package domain

// PaymentMethod enumerates the offered payment methods.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentBoleto PaymentMethod = "boleto"
	PaymentPix    PaymentMethod = "pix"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentBoleto, PaymentPix:
		return true
	}
	return false
}

// Label returns the customer-facing name of the payment method.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCard:
		return "Cartão de Crédito"
	case PaymentBoleto:
		return "Boleto Bancário"
	case PaymentPix:
		return "PIX"
	}
	return string(m)
}
