package main

import (
	"context"
	"fmt"

	"fintrack-api/config"
	"fintrack-api/config/postgre"
	authUsecase "fintrack-api/internal/auth/usecase"
	categoryPostgres "fintrack-api/internal/category/repository/postgre"
	categoryUsecase "fintrack-api/internal/category/usecase"
	"fintrack-api/internal/httpserver"
	transactionPostgres "fintrack-api/internal/transaction/repository/postgre"
	transactionUsecase "fintrack-api/internal/transaction/usecase"
	userPostgres "fintrack-api/internal/user/repository/postgre"
	"fintrack-api/pkg/hasher"
	"fintrack-api/pkg/log"
	"fintrack-api/pkg/token"
	"fintrack-api/pkg/workerpool"
)

const (
	hashWorkers   = 4
	hashQueueSize = 64
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	passwordHasher, err := hasher.New(hasher.DefaultParams(), []byte(cfg.Auth.Pepper))
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize password hasher: %v", err)
		return
	}

	tokens, err := token.New(token.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize token manager: %v", err)
		return
	}

	// Hashing runs off the request path on a bounded pool.
	pool := workerpool.New(hashWorkers, hashQueueSize)
	defer pool.Shutdown()

	userRepo := userPostgres.New(logger, postgresDB)
	categoryRepo := categoryPostgres.New(logger, postgresDB)
	transactionRepo := transactionPostgres.New(logger, postgresDB)

	authUC := authUsecase.New(logger, userRepo, passwordHasher, tokens, pool)
	categoryUC := categoryUsecase.New(logger, categoryRepo)
	transactionUC := transactionUsecase.New(logger, transactionRepo, categoryRepo)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		DB:     postgresDB,
		Tokens: tokens,

		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		TransactionUC: transactionUC,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
