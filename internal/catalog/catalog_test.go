package catalog

import (
	"errors"
	"testing"

	"medrental/internal/domain"
)

func TestGetKnownProduct(t *testing.T) {
	c := Default()
	p, err := c.Get("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SKU != "CEN-CR-001" {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestGetUnknownProduct(t *testing.T) {
	c := Default()
	_, err := c.Get("999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPreservesOrder(t *testing.T) {
	c := New([]domain.Product{{ID: "b"}, {ID: "a"}, {ID: "c"}})
	got := c.List()
	if len(got) != 3 || got[0].ID != "b" || got[1].ID != "a" || got[2].ID != "c" {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestSearchEmptyTermReturnsAll(t *testing.T) {
	c := Default()
	res := c.Search("", 1, 100)
	if res.Total != len(c.List()) {
		t.Fatalf("expected all products, got %d", res.Total)
	}
}

func TestSearchMatchesNameCaseInsensitive(t *testing.T) {
	c := Default()
	res := c.Search("cpap", 1, 0)
	if res.Total != 1 {
		t.Fatalf("expected 1 match, got %d", res.Total)
	}
	if res.Products[0].SKU != "CEN-CP-001" {
		t.Fatalf("unexpected match: %+v", res.Products[0])
	}
}

func TestSearchMatchesCategory(t *testing.T) {
	c := Default()
	res := c.Search("ortopedia", 1, 0)
	if res.Total != 2 {
		t.Fatalf("expected 2 matches, got %d", res.Total)
	}
}

func TestSearchPagination(t *testing.T) {
	c := Default()
	page1 := c.Search("", 1, 8)
	page2 := c.Search("", 2, 8)
	if len(page1.Products) != 8 || len(page2.Products) != 8 {
		t.Fatalf("expected two full pages, got %d and %d", len(page1.Products), len(page2.Products))
	}
	if page1.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", page1.TotalPages)
	}
	if page1.Products[0].ID == page2.Products[0].ID {
		t.Fatalf("pages overlap")
	}
}

func TestSearchPageOutOfRange(t *testing.T) {
	c := Default()
	res := c.Search("", 5, 8)
	if len(res.Products) != 0 {
		t.Fatalf("expected empty page, got %d products", len(res.Products))
	}
	if res.Total != 16 {
		t.Fatalf("expected total preserved, got %d", res.Total)
	}
}
