package app

import (
	"context"

	"github.com/saradorri/gamecatalog/internal/http"
	"github.com/saradorri/gamecatalog/internal/http/handlers"
	"github.com/saradorri/gamecatalog/internal/http/middleware"
	"github.com/saradorri/gamecatalog/internal/infrastructure/auth"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	gameHandler *handlers.GameHandler,
	userHandler *handlers.UserHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, gameHandler, userHandler, errorHandler, log, port)
}

// RegisterServerHooks starts the HTTP server when the fx application starts.
func (a *application) RegisterServerHooks(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
	})
}
