package domain

// CustomerData holds the buyer and delivery-address fields collected during
// checkout. It lives only for the duration of the checkout step and is never
// persisted on the resulting order.
type CustomerData struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CPF          string `json:"cpf"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// CardData holds card fields, required only when paying by card. Never
// persisted.
type CardData struct {
	CardNumber   string `json:"cardNumber"`
	CardName     string `json:"cardName"`
	ExpiryDate   string `json:"expiryDate"`
	CVV          string `json:"cvv"`
	Installments string `json:"installments"`
}
