package app

import (
	"fmt"

	"github.com/saradorri/gamecatalog/internal/config"
	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/infrastructure/loader"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	"github.com/saradorri/gamecatalog/internal/infrastructure/memory"
	"github.com/saradorri/gamecatalog/internal/infrastructure/repository"
)

// InitRepository builds the catalog store named by the configuration. The
// backend is fixed for the process lifetime; the in-memory store is populated
// from the configured CSV files before it is handed out.
func (a *application) InitRepository(log *logger.Logger) (domain.Repository, error) {
	switch a.config.Store.Backend {
	case config.StoreBackendDatabase:
		db, err := a.InitDatabase()
		if err != nil {
			return nil, err
		}
		return repository.NewCatalogRepository(db), nil
	case config.StoreBackendMemory, "":
		repo := memory.NewRepository()
		if a.config.Data.GamesCSV != "" {
			if err := loader.Populate(repo, a.config.Data.GamesCSV, a.config.Data.UsersCSV, log); err != nil {
				return nil, err
			}
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", a.config.Store.Backend)
	}
}
