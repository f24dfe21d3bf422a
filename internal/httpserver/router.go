package httpserver

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"medrental/internal/auth"
	"medrental/internal/cart"
	"medrental/internal/catalog"
	"medrental/internal/checkout"
	"medrental/internal/order"
)

// Deps carries the services the routes depend on.
type Deps struct {
	Catalog  *catalog.Catalog
	Cart     *cart.Service
	Checkout *checkout.Machine
	Ledger   *order.Ledger
	Auth     *auth.Service
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, corsOrigins []string, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/login", loginHandler(deps.Auth))
	router.POST("/logout", logoutHandler(deps.Auth))

	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/products/:id", getProductHandler(deps.Catalog))

	authed := router.Group("/", authMiddleware(deps.Auth))
	authed.GET("/cart", getCartHandler(deps.Cart))
	authed.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Catalog))
	authed.PATCH("/cart/items/:productId", updateCartItemHandler(deps.Cart))
	authed.DELETE("/cart/items/:productId", removeCartItemHandler(deps.Cart))

	authed.GET("/checkout", getCheckoutHandler(deps.Checkout, deps.Cart))
	authed.POST("/checkout", proceedHandler(deps.Checkout))
	authed.POST("/checkout/back", backHandler(deps.Checkout))
	authed.POST("/checkout/confirm", confirmHandler(deps.Checkout))
	authed.POST("/checkout/continue", continueShoppingHandler(deps.Checkout))

	authed.GET("/orders", listOrdersHandler(deps.Ledger))

	return router
}

// authMiddleware requires a live bearer token issued by the auth service.
func authMiddleware(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || !authSvc.IsAuthenticated(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
