package http

import (
	"github.com/gin-gonic/gin"
)

func MapCategoryRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("", h.Create)
	r.PATCH("/:id/edit", h.Update)
	r.DELETE("/:id/delete", h.Delete)
}
