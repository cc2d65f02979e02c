package router

import (
	"github.com/gin-gonic/gin"

	"github.com/frbarbre/contacts-api/internal/http/handler"
	"github.com/frbarbre/contacts-api/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()

	authHandler := handler.NewAuthHandler(authService)
	AuthRouter(router.Group("/api/auth"), authHandler, authService)

	contactHandler := handler.NewContactHandler(services.Contacts())
	ContactRouter(router.Group("/api/contacts"), contactHandler, authService)
}
