package domain

// Product is an immutable catalog entry. Identity is ID.
type Product struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category"`
}
