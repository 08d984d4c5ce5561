package http

import (
	"fintrack-api/internal/model"
	"fintrack-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Create adds a new expense category for the authenticated user.
func (h Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.ScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCategoryRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cat, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.Created(c, h.newCategoryResp(cat))
}

// Update renames a category or changes its icon.
func (h Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.ScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCategoryRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cat, err := h.uc.Update(ctx, sc, req.toUpdateInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, h.newCategoryResp(cat))
}

// Delete removes a category together with its transactions.
func (h Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.ScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.NoContent(c)
}
