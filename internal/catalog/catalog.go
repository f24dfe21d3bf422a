package catalog

import (
	"strings"

	"medrental/internal/domain"
)

// DefaultPageSize matches the storefront grid.
const DefaultPageSize = 8

// Catalog is the fixed, ordered product list the storefront rents out.
// Products are immutable; lookup is by ID.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// New builds a Catalog over the given products, preserving their order.
func New(products []domain.Product) *Catalog {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the catalog seeded with the rental line-up.
func Default() *Catalog {
	return New(seedProducts)
}

// Get returns the product with the given ID or domain.ErrNotFound.
func (c *Catalog) Get(id string) (domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

// List returns all products in catalog order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// SearchResult is one page of matching products.
type SearchResult struct {
	Products   []domain.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// Search filters by a case-insensitive term over name, description, SKU and
// category, then paginates. An empty term matches everything. Pages are
// 1-based; out-of-range pages return an empty slice with the counts intact.
func (c *Catalog) Search(term string, page, perPage int) SearchResult {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	term = strings.ToLower(strings.TrimSpace(term))
	var matched []domain.Product
	for _, p := range c.products {
		if term == "" || matches(p, term) {
			matched = append(matched, p)
		}
	}

	totalPages := (len(matched) + perPage - 1) / perPage
	start := (page - 1) * perPage
	end := start + perPage
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return SearchResult{
		Products:   matched[start:end],
		Total:      len(matched),
		Page:       page,
		TotalPages: totalPages,
	}
}

func matches(p domain.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.SKU), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}
