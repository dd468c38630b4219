package app

import (
	"github.com/saradorri/gamecatalog/internal/http/middleware"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
