package http

import (
	"strings"

	pkgErrors "fintrack-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

const maxNameLen = 120

func (h Handler) processCategoryRequest(c *gin.Context) (categoryReq, error) {
	ctx := c.Request.Context()

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.category.delivery.http.processCategoryRequest.ShouldBindJSON: %v", err)
		return categoryReq{}, errBadRequest
	}

	collector := pkgErrors.NewValidationErrorCollector()
	switch n := len(strings.TrimSpace(req.Name)); {
	case n == 0:
		collector.Add(pkgErrors.NewValidationError(400, "name", "is required"))
	case n > maxNameLen:
		collector.Add(pkgErrors.NewValidationError(400, "name", "must be at most 120 characters"))
	}
	if collector.HasError() {
		return categoryReq{}, collector
	}

	return req, nil
}
