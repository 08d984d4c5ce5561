package httpserver

import (
	authHTTP "fintrack-api/internal/auth/delivery/http"
	categoryHTTP "fintrack-api/internal/category/delivery/http"
	"fintrack-api/internal/middleware"
	transactionHTTP "fintrack-api/internal/transaction/delivery/http"
)

const api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.tokens)

	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	apiGroup := srv.gin.Group(api)

	authHandler := authHTTP.New(srv.l, srv.authUC)
	authHTTP.MapAuthRoutes(apiGroup, authHandler, mw)

	expenses := apiGroup.Group("/expenses", mw.Auth())
	categories := expenses.Group("/categories")

	categoryHandler := categoryHTTP.New(srv.l, srv.categoryUC)
	categoryHTTP.MapCategoryRoutes(categories, categoryHandler)

	transactionHandler := transactionHTTP.New(srv.l, srv.transactionUC)
	transactionHTTP.MapTransactionRoutes(expenses, categories, transactionHandler)

	return nil
}
