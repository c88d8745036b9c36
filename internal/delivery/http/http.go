package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"yolimar/internal/usecase"
	"yolimar/pkg/prometheus"
)

func SetupRouter(cart *usecase.CartUsecase, checkout *usecase.CheckoutUsecase,
	auth *usecase.AuthUsecase, log *slog.Logger) *gin.Engine {
	router := gin.Default()

	router.Use(gin.Recovery())
	router.Use(prometheus.Middleware())

	catalogHandler := NewCatalogHandler(log)
	cartHandler := NewCartHandler(cart, checkout, log)
	authHandler := NewAuthHandler(auth, log)

	router.GET("/health", cartHandler.HealthCheck)

	router.GET("/catalog", catalogHandler.ListProducts)
	router.GET("/catalog/products/:id", catalogHandler.GetProduct)
	router.GET("/designs", catalogHandler.ListDesigns)
	router.GET("/price", catalogHandler.GetPrice)

	router.GET("/cart", cartHandler.GetCart)
	router.POST("/cart/items", cartHandler.AddItem)
	router.PATCH("/cart/items", cartHandler.UpdateQuantity)
	router.DELETE("/cart/items", cartHandler.RemoveItem)
	router.DELETE("/cart", cartHandler.ClearCart)
	router.POST("/checkout", cartHandler.Checkout)

	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", authHandler.Logout)
	router.GET("/auth/session", authHandler.Session)

	return router
}
