package http

import (
	"net/mail"
	"strings"

	pkgErrors "fintrack-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 512
)

func (h Handler) processSignUpRequest(c *gin.Context) (signUpReq, error) {
	ctx := c.Request.Context()

	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.processSignUpRequest.ShouldBindJSON: %v", err)
		return signUpReq{}, errBadRequest
	}

	collector := pkgErrors.NewValidationErrorCollector()

	if req.Email == "" {
		collector.Add(pkgErrors.NewValidationError(400, "email", "is required"))
	} else if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		collector.Add(pkgErrors.NewValidationError(400, "email", "is not a valid email address"))
	}

	if strings.TrimSpace(req.Username) == "" {
		collector.Add(pkgErrors.NewValidationError(400, "username", "is required"))
	}

	switch n := len(req.Password); {
	case n == 0:
		collector.Add(pkgErrors.NewValidationError(400, "password", "is required"))
	case n < minPasswordLen:
		collector.Add(pkgErrors.NewValidationError(400, "password", "must be at least 8 characters"))
	case n > maxPasswordLen:
		collector.Add(pkgErrors.NewValidationError(400, "password", "must be at most 512 characters"))
	}

	if collector.HasError() {
		return signUpReq{}, collector
	}

	return req, nil
}

func (h Handler) processSignInRequest(c *gin.Context) (signInReq, error) {
	ctx := c.Request.Context()

	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.processSignInRequest.ShouldBindJSON: %v", err)
		return signInReq{}, errBadRequest
	}

	collector := pkgErrors.NewValidationErrorCollector()
	if strings.TrimSpace(req.Username) == "" {
		collector.Add(pkgErrors.NewValidationError(400, "username", "is required"))
	}
	if req.Password == "" {
		collector.Add(pkgErrors.NewValidationError(400, "password", "is required"))
	}
	if collector.HasError() {
		return signInReq{}, collector
	}

	return req, nil
}

// processRefreshRequest pulls the refresh token out of the Authorization
// header. Scheme matching is case-insensitive per RFC 7235.
func (h Handler) processRefreshRequest(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errMissingToken
	}

	return parts[1], nil
}
