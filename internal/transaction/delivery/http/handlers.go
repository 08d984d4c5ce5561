package http

import (
	"fintrack-api/internal/model"
	"fintrack-api/internal/transaction"
	"fintrack-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Create records a new expense under a category.
func (h Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.ScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateTransactionRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	trx, err := h.uc.Create(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.Created(c, h.newTransactionResp(trx))
}

// List returns a category's transactions within a date range, newest first.
func (h Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.ScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	start, end, err := h.processDateRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, sc, transaction.ListInput{
		CategoryID:    c.Param("id"),
		Start:         start,
		End:           end,
		PaginateQuery: h.processPaginateQuery(c),
	})
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, h.newListTransactionResp(out))
}

// Overview returns the user's daily spend and per-category aggregates for a
// date range.
func (h Handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.ScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	start, end, err := h.processDateRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	overview, err := h.uc.Overview(ctx, sc, transaction.OverviewInput{
		Start: start,
		End:   end,
	})
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, overview)
}
