package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medrental/internal/cart"
	"medrental/internal/catalog"
	"medrental/internal/domain"
)

type cartLineResponse struct {
	Product        productResponse `json:"product"`
	Quantity       int             `json:"quantity"`
	Months         int             `json:"months"`
	TotalCents     int64           `json:"totalCents"`
	TotalFormatted string          `json:"totalFormatted"`
}

type cartResponse struct {
	Items          []cartLineResponse `json:"items"`
	ItemCount      int                `json:"itemCount"`
	TotalCents     int64              `json:"totalCents"`
	TotalFormatted string             `json:"totalFormatted"`
}

func toCartResponse(svc *cart.Service) cartResponse {
	lines := svc.Lines()
	items := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, cartLineResponse{
			Product:        toProductResponse(line.Product),
			Quantity:       line.Quantity,
			Months:         line.Months,
			TotalCents:     line.TotalCents(),
			TotalFormatted: formatBRL(line.TotalCents()),
		})
	}
	total := svc.TotalCents()
	return cartResponse{
		Items:          items,
		ItemCount:      svc.ItemCount(),
		TotalCents:     total,
		TotalFormatted: formatBRL(total),
	}
}

func getCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(svc))
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Months    int    `json:"months"`
}

func addCartItemHandler(svc *cart.Service, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if req.Months == 0 {
			req.Months = 1
		}

		product, err := cat.Get(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		if err := svc.AddItem(c.Request.Context(), product, req.Quantity, req.Months); err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(svc))
	}
}

type updateItemRequest struct {
	Quantity *int `json:"quantity"`
	Months   *int `json:"months"`
}

func updateCartItemHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || (req.Quantity == nil && req.Months == nil) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity or months is required"})
			return
		}
		productID := c.Param("productId")

		if req.Quantity != nil {
			if err := svc.UpdateQuantity(c.Request.Context(), productID, *req.Quantity); err != nil {
				writeCartError(c, err)
				return
			}
		}
		if req.Months != nil {
			if err := svc.UpdateMonths(c.Request.Context(), productID, *req.Months); err != nil {
				writeCartError(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, toCartResponse(svc))
	}
}

func removeCartItemHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveItem(c.Request.Context(), c.Param("productId")); err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(svc))
	}
}

func writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity), errors.Is(err, cart.ErrInvalidMonths):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
