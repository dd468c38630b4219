package app

import (
	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/infrastructure/auth"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	"github.com/saradorri/gamecatalog/internal/usecase/browse"
	"github.com/saradorri/gamecatalog/internal/usecase/user"
)

func (a *application) InitBrowseService(repo domain.Repository, log *logger.Logger) *browse.Service {
	return browse.NewService(repo, log)
}

func (a *application) InitUserUseCase(repo domain.Repository, jwt auth.JWTService, log *logger.Logger) domain.UserUseCase {
	return user.NewUseCase(repo, jwt, log)
}
