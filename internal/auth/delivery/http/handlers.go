package http

import (
	"fintrack-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// SignUp registers a new account and returns a token pair.
func (h Handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignUpRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SignUp(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.Created(c, h.newTokenPairResp(out))
}

// SignIn exchanges credentials for a token pair.
func (h Handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignInRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, h.newTokenPairResp(out))
}

// Refresh exchanges a refresh-scoped token for a new pair.
func (h Handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	bearerToken, err := h.processRefreshRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Refresh(ctx, bearerToken)
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, h.newTokenPairResp(out))
}

// Me is an authenticated no-op. Clients use it as a session probe: the
// auth middleware has already verified the token by the time it runs.
func (h Handler) Me(c *gin.Context) {
	response.NoContent(c)
}
