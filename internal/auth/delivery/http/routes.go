package http

import (
	"fintrack-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func MapAuthRoutes(r *gin.RouterGroup, h *Handler, mw *middleware.Middleware) {
	authGroup := r.Group("/auth")
	authGroup.POST("/sign-up", h.SignUp)
	authGroup.POST("/sign-in", h.SignIn)
	authGroup.POST("/refresh", h.Refresh)

	r.GET("/me", mw.Auth(), h.Me)
}
