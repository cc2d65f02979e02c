package router

import (
	"github.com/gin-gonic/gin"

	"github.com/frbarbre/contacts-api/internal/http/handler"
	"github.com/frbarbre/contacts-api/internal/http/middleware"
	"github.com/frbarbre/contacts-api/internal/service"
)

func ContactRouter(rg *gin.RouterGroup, h *handler.ContactHandler, auth service.AuthService) {
	rg.Use(middleware.RequireAuth(auth))

	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PATCH("/:id/favorite", h.ToggleFavorite)
}
