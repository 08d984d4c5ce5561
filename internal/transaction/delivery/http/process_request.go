package http

import (
	"time"

	pkgErrors "fintrack-api/pkg/errors"
	"fintrack-api/pkg/paginator"

	"github.com/gin-gonic/gin"
)

func (h Handler) processCreateTransactionRequest(c *gin.Context) (createTransactionReq, error) {
	ctx := c.Request.Context()

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.transaction.delivery.http.processCreateTransactionRequest.ShouldBindJSON: %v", err)
		return createTransactionReq{}, errBadRequest
	}

	collector := pkgErrors.NewValidationErrorCollector()
	if req.Amount <= 0 {
		collector.Add(pkgErrors.NewValidationError(400, "amount", "must be greater than zero"))
	}
	if collector.HasError() {
		return createTransactionReq{}, collector
	}

	return req, nil
}

// processDateRange parses and validates the start/end query bounds shared by
// the listing and overview endpoints. Bounds are RFC 3339; the range is
// half-open, start inclusive and end exclusive.
func (h Handler) processDateRange(c *gin.Context) (time.Time, time.Time, error) {
	collector := pkgErrors.NewValidationErrorCollector()

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		collector.Add(pkgErrors.NewValidationError(400, "start", "must be an RFC 3339 timestamp"))
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		collector.Add(pkgErrors.NewValidationError(400, "end", "must be an RFC 3339 timestamp"))
	}
	if collector.HasError() {
		return time.Time{}, time.Time{}, collector
	}

	if !start.Before(end) {
		collector.Add(pkgErrors.NewValidationError(400, "start", "must be before end"))
		return time.Time{}, time.Time{}, collector
	}

	return start, end, nil
}

func (h Handler) processPaginateQuery(c *gin.Context) paginator.PaginateQuery {
	var pq paginator.PaginateQuery
	// Binding errors fall through to the defaults applied by Adjust.
	_ = c.ShouldBindQuery(&pq)
	pq.Adjust()
	return pq
}
