package httpserver

import (
	"fintrack-api/pkg/errors"
	"fintrack-api/pkg/response"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.Error(c, errors.NewHTTPError(503, "Database connection failed", 503))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "fintrack-api",
		"database": "connected",
	})
}

func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.Error(c, errors.NewHTTPError(503, "Database connection not available", 503))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"service":  "fintrack-api",
		"database": "connected",
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "fintrack-api",
	})
}
