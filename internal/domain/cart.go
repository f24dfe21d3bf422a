package domain

// AllowedMonths are the rental durations the storefront offers.
var AllowedMonths = []int{1, 2, 3, 6, 12}

// MonthsAllowed reports whether months is one of the offered rental durations.
func MonthsAllowed(months int) bool {
	for _, m := range AllowedMonths {
		if m == months {
			return true
		}
	}
	return false
}

// CartLine is one product entry in the cart. At most one line exists per
// product ID; Quantity is always >= 1.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Months   int     `json:"months"`
}

// TotalCents is the line subtotal: monthly price x quantity x rental months.
func (l CartLine) TotalCents() int64 {
	return l.Product.PriceCents * int64(l.Quantity) * int64(l.Months)
}

// Cart is the persisted shape of the cart: lines in order of first addition.
type Cart struct {
	Lines []CartLine `json:"lines"`
}
