package loader

import (
	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Populate performs the one-shot startup load: games first, then users,
// through whichever repository implementation was selected. Insert failures
// follow the same log-and-continue policy as parse failures.
func Populate(repo domain.Repository, gamesCSV, usersCSV string, log *logger.Logger) error {
	gameReader := NewGameCSVReader(gamesCSV, log)
	if err := gameReader.Read(); err != nil {
		return err
	}
	inserted := 0
	for _, game := range gameReader.Games() {
		if err := repo.AddGame(game); err != nil {
			log.Warn("skipping game insert", zap.Int("game_id", game.ID), zap.Error(err))
			continue
		}
		inserted++
	}
	log.Info("games loaded",
		zap.Int("inserted", inserted),
		zap.Int("publishers", gameReader.PublisherCount()),
		zap.Int("genres", gameReader.GenreCount()))

	userReader := NewUserCSVReader(usersCSV, log)
	if err := userReader.Read(); err != nil {
		return err
	}
	loaded := 0
	for _, account := range userReader.Users() {
		if err := repo.AddUser(account); err != nil {
			log.Warn("skipping user insert", zap.String("username", account.Username), zap.Error(err))
			continue
		}
		loaded++
	}
	log.Info("users loaded", zap.Int("inserted", loaded))
	return nil
}
