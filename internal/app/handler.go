package app

import (
	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/http/handlers"
	"github.com/saradorri/gamecatalog/internal/usecase/browse"
)

func (a *application) InitGameHandler(browseSvc *browse.Service, uc domain.UserUseCase) *handlers.GameHandler {
	return handlers.NewGameHandler(browseSvc, uc)
}

func (a *application) InitUserHandler(uc domain.UserUseCase) *handlers.UserHandler {
	return handlers.NewUserHandler(uc)
}
