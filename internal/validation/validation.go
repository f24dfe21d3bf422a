// Package validation holds the stateless field rules for checkout data.
// Validators return a field -> message map; an empty map means valid.
package validation

import (
	"regexp"
	"strings"

	"medrental/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)

// ValidateCustomer checks every buyer/address field. Complement is optional.
func ValidateCustomer(data domain.CustomerData) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(data.Name) == "" {
		errs["name"] = "Nome é obrigatório"
	}
	switch email := strings.TrimSpace(data.Email); {
	case email == "":
		errs["email"] = "E-mail é obrigatório"
	case !emailRe.MatchString(email):
		errs["email"] = "E-mail inválido"
	}
	switch phone := Digits(data.Phone); {
	case phone == "":
		errs["phone"] = "Telefone é obrigatório"
	case len(phone) < 10:
		errs["phone"] = "Telefone inválido"
	}
	switch cpf := Digits(data.CPF); {
	case cpf == "":
		errs["cpf"] = "CPF é obrigatório"
	case len(cpf) != 11:
		errs["cpf"] = "CPF inválido"
	}
	if strings.TrimSpace(data.Address) == "" {
		errs["address"] = "Rua é obrigatória"
	}
	if strings.TrimSpace(data.Number) == "" {
		errs["number"] = "Número é obrigatório"
	}
	if strings.TrimSpace(data.Neighborhood) == "" {
		errs["neighborhood"] = "Bairro é obrigatório"
	}
	if strings.TrimSpace(data.City) == "" {
		errs["city"] = "Cidade é obrigatória"
	}
	if strings.TrimSpace(data.State) == "" {
		errs["state"] = "Estado é obrigatório"
	}
	switch zip := Digits(data.ZipCode); {
	case zip == "":
		errs["zipCode"] = "CEP é obrigatório"
	case len(zip) != 8:
		errs["zipCode"] = "CEP inválido"
	}

	return errs
}

// ValidateCard checks card fields. For any method other than card the result
// is always empty, whatever the card data contains.
func ValidateCard(method domain.PaymentMethod, data domain.CardData) map[string]string {
	errs := make(map[string]string)
	if method != domain.PaymentCard {
		return errs
	}

	switch number := Digits(data.CardNumber); {
	case number == "":
		errs["cardNumber"] = "Número do cartão é obrigatório"
	case len(number) < 13:
		errs["cardNumber"] = "Número do cartão inválido"
	}
	if strings.TrimSpace(data.CardName) == "" {
		errs["cardName"] = "Nome no cartão é obrigatório"
	}
	switch expiry := strings.TrimSpace(data.ExpiryDate); {
	case expiry == "":
		errs["expiryDate"] = "Validade é obrigatória"
	case !expiryRe.MatchString(expiry):
		errs["expiryDate"] = "Validade inválida"
	}
	switch cvv := strings.TrimSpace(data.CVV); {
	case cvv == "":
		errs["cvv"] = "CVV é obrigatório"
	case len(cvv) < 3:
		errs["cvv"] = "CVV inválido"
	}

	return errs
}

// Digits strips every non-digit rune.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
