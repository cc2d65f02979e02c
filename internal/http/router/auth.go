package router

import (
	"github.com/gin-gonic/gin"

	"github.com/frbarbre/contacts-api/internal/http/handler"
	"github.com/frbarbre/contacts-api/internal/http/middleware"
	"github.com/frbarbre/contacts-api/internal/service"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, auth service.AuthService) {
	rg.POST("/register", h.Register)
	rg.POST("/signin", h.SignIn)
	rg.POST("/signout", middleware.RequireAuth(auth), h.SignOut)
}
