package httpserver

import (
	"errors"

	"fintrack-api/internal/auth"
	"fintrack-api/internal/category"
	"fintrack-api/internal/transaction"
	pkgLog "fintrack-api/pkg/log"
	"fintrack-api/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/bun"
)

// HTTPServer carries the wired dependencies of the HTTP edge. New only
// validates the wiring; Run (httpserver.go) starts serving.
type HTTPServer struct {
	gin  *gin.Engine
	l    pkgLog.Logger
	port int
	mode string

	db     *bun.DB
	tokens *token.Manager

	authUC        auth.UseCase
	categoryUC    category.UseCase
	transactionUC transaction.UseCase
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	DB     *bun.DB
	Tokens *token.Manager

	AuthUC        auth.UseCase
	CategoryUC    category.UseCase
	TransactionUC transaction.UseCase
}

func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(ginMode(cfg.Mode))

	srv := &HTTPServer{
		gin:  gin.New(),
		l:    l,
		port: cfg.Port,
		mode: cfg.Mode,

		db:     cfg.DB,
		tokens: cfg.Tokens,

		authUC:        cfg.AuthUC,
		categoryUC:    cfg.CategoryUC,
		transactionUC: cfg.TransactionUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.tokens == nil {
		return errors.New("token manager is required")
	}
	if srv.authUC == nil || srv.categoryUC == nil || srv.transactionUC == nil {
		return errors.New("usecases are required")
	}

	return nil
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}
