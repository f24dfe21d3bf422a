package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medrental/internal/cart"
	"medrental/internal/checkout"
	"medrental/internal/domain"
	"medrental/internal/order"
)

type orderResponse struct {
	ID             string             `json:"id"`
	Items          []cartLineResponse `json:"items"`
	PaymentMethod  string             `json:"paymentMethod"`
	PaymentLabel   string             `json:"paymentLabel"`
	TotalCents     int64              `json:"totalCents"`
	TotalFormatted string             `json:"totalFormatted"`
	CreatedAt      string             `json:"createdAt"`
	PixCode        string             `json:"pixCode,omitempty"`
	BoletoBarcode  string             `json:"boletoBarcode,omitempty"`
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]cartLineResponse, 0, len(o.Items))
	for _, line := range o.Items {
		items = append(items, cartLineResponse{
			Product:        toProductResponse(line.Product),
			Quantity:       line.Quantity,
			Months:         line.Months,
			TotalCents:     line.TotalCents(),
			TotalFormatted: formatBRL(line.TotalCents()),
		})
	}
	res := orderResponse{
		ID:             o.ID,
		Items:          items,
		PaymentMethod:  string(o.PaymentMethod),
		PaymentLabel:   o.PaymentMethod.Label(),
		TotalCents:     o.TotalCents,
		TotalFormatted: formatBRL(o.TotalCents),
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
	}
	switch o.PaymentMethod {
	case domain.PaymentPix:
		res.PixCode = order.PixCode(o)
	case domain.PaymentBoleto:
		res.BoletoBarcode = order.BoletoBarcode(o)
	}
	return res
}

type checkoutStateResponse struct {
	Step          string              `json:"step"`
	Processing    bool                `json:"processing"`
	PaymentMethod string              `json:"paymentMethod"`
	Customer      domain.CustomerData `json:"customer"`
	Cart          cartResponse        `json:"cart"`
	Order         *orderResponse      `json:"order,omitempty"`
}

func getCheckoutHandler(m *checkout.Machine, cartSvc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := checkoutStateResponse{
			Step:          string(m.Step()),
			Processing:    m.Processing(),
			PaymentMethod: string(m.Method()),
			Customer:      m.Customer(),
			Cart:          toCartResponse(cartSvc),
		}
		if o := m.CompletedOrder(); o != nil {
			or := toOrderResponse(*o)
			res.Order = &or
		}
		c.JSON(http.StatusOK, res)
	}
}

func proceedHandler(m *checkout.Machine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.Proceed(); err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": string(m.Step())})
	}
}

func backHandler(m *checkout.Machine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.Back(); err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": string(m.Step())})
	}
}

type confirmRequest struct {
	Customer      domain.CustomerData `json:"customer"`
	Card          domain.CardData     `json:"card"`
	PaymentMethod string              `json:"paymentMethod" binding:"required"`
}

func confirmHandler(m *checkout.Machine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req confirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "paymentMethod is required"})
			return
		}

		method := domain.PaymentMethod(req.PaymentMethod)
		if !method.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment method"})
			return
		}

		res, err := m.Confirm(c.Request.Context(), req.Customer, req.Card, method)
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		if len(res.FieldErrors) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"fieldErrors": res.FieldErrors})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": string(m.Step()), "order": toOrderResponse(*res.Order)})
	}
}

func continueShoppingHandler(m *checkout.Machine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.ContinueShopping(); err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": string(m.Step())})
	}
}

func listOrdersHandler(ledger *order.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := ledger.Orders()
		out := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, gin.H{"orders": out})
	}
}

func writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
	case errors.Is(err, domain.ErrProcessingInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "payment already processing"})
	case errors.Is(err, checkout.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment declined"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
