package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medrental/internal/catalog"
	"medrental/internal/domain"
)

type productResponse struct {
	ID             string `json:"id"`
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PriceCents     int64  `json:"priceCents"`
	PriceFormatted string `json:"priceFormatted"`
	ImageURL       string `json:"imageUrl"`
	Category       string `json:"category"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		PriceCents:     p.PriceCents,
		PriceFormatted: formatBRL(p.PriceCents),
		ImageURL:       p.ImageURL,
		Category:       p.Category,
	}
}

type productListResponse struct {
	Products   []productResponse `json:"products"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

func listProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		res := cat.Search(c.Query("search"), page, catalog.DefaultPageSize)

		products := make([]productResponse, 0, len(res.Products))
		for _, p := range res.Products {
			products = append(products, toProductResponse(p))
		}
		c.JSON(http.StatusOK, productListResponse{
			Products:   products,
			Total:      res.Total,
			Page:       res.Page,
			TotalPages: res.TotalPages,
		})
	}
}

func getProductHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toProductResponse(p))
	}
}
