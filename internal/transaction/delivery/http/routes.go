package http

import (
	"github.com/gin-gonic/gin"
)

// MapTransactionRoutes mounts transaction routes under the categories group
// and the overview on the expenses group itself.
func MapTransactionRoutes(expenses, categories *gin.RouterGroup, h *Handler) {
	categories.POST("/:id/transactions", h.Create)
	categories.GET("/:id/transactions", h.List)

	expenses.GET("", h.Overview)
}
