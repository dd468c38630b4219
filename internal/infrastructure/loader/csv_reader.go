// Package loader reads the catalog's tabular sources and populates a
// repository through the contract, one row at a time. Rows that fail
// validation are logged and skipped; a bad row never aborts the load and
// never produces a partial entity.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Column headers of the games source.
const (
	colGameID      = "AppID"
	colTitle       = "Name"
	colReleaseDate = "Release date"
	colPrice       = "Price"
	colDescription = "About the game"
	colImageURL    = "Header image"
	colWebsiteURL  = "Website"
	colPublishers  = "Publishers"
	colGenres      = "Genres"
)

// Column headers of the users source.
const (
	colUsername = "Username"
	colPassword = "Password"
)

// GameCSVReader parses the games source into validated entities plus the
// distinct publishers and genres seen along the way.
type GameCSVReader struct {
	filename   string
	logger     *logger.Logger
	games      []*domain.Game
	publishers map[string]domain.Publisher
	genres     map[string]domain.Genre
}

// NewGameCSVReader creates a reader for the given file.
func NewGameCSVReader(filename string, logger *logger.Logger) *GameCSVReader {
	return &GameCSVReader{
		filename:   filename,
		logger:     logger,
		publishers: make(map[string]domain.Publisher),
		genres:     make(map[string]domain.Genre),
	}
}

// Read parses the whole file. Rows with missing or malformed required fields
// are skipped.
func (r *GameCSVReader) Read() error {
	file, err := os.Open(r.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	rows, err := headerRows(file)
	if err != nil {
		return err
	}
	for row := range rows {
		game, err := r.parseGame(rows[row])
		if err != nil {
			r.logger.Warn("skipping game row", zap.Int("row", row+2), zap.Error(err))
			continue
		}
		r.games = append(r.games, game)
	}
	return nil
}

func (r *GameCSVReader) parseGame(row map[string]string) (*domain.Game, error) {
	id, err := strconv.Atoi(strings.TrimSpace(row[colGameID]))
	if err != nil {
		return nil, domain.NewInvalidEntityError("game id is not numeric")
	}
	game, err := domain.NewGame(id, row[colTitle])
	if err != nil {
		return nil, err
	}
	if err := game.SetReleaseDate(row[colReleaseDate]); err != nil {
		return nil, err
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(row[colPrice]), 64)
	if err != nil {
		return nil, domain.NewInvalidEntityError("price is not a decimal number")
	}
	if err := game.SetPrice(price); err != nil {
		return nil, err
	}
	game.SetDescription(row[colDescription])
	game.ImageURL = strings.TrimSpace(row[colImageURL])
	game.WebsiteURL = strings.TrimSpace(row[colWebsiteURL])

	publisher := domain.NewPublisher(row[colPublishers])
	if publisher.Name != "" {
		r.publishers[publisher.Name] = publisher
	}
	game.SetPublisher(publisher)

	for _, name := range strings.Split(row[colGenres], ",") {
		genre := domain.NewGenre(name)
		if genre.Name == "" {
			continue
		}
		r.genres[genre.Name] = genre
		game.AddGenre(genre)
	}
	return game, nil
}

// Games returns the parsed games in file order.
func (r *GameCSVReader) Games() []*domain.Game {
	return r.games
}

// PublisherCount returns how many distinct publishers were seen.
func (r *GameCSVReader) PublisherCount() int {
	return len(r.publishers)
}

// GenreCount returns how many distinct genres were seen.
func (r *GameCSVReader) GenreCount() int {
	return len(r.genres)
}

// UserCSVReader parses the users source.
type UserCSVReader struct {
	filename string
	logger   *logger.Logger
	users    []*domain.User
}

// NewUserCSVReader creates a reader for the given file.
func NewUserCSVReader(filename string, logger *logger.Logger) *UserCSVReader {
	return &UserCSVReader{filename: filename, logger: logger}
}

// Read parses the whole file, skipping rows that fail user validation.
func (r *UserCSVReader) Read() error {
	file, err := os.Open(r.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	rows, err := headerRows(file)
	if err != nil {
		return err
	}
	for row := range rows {
		account, err := domain.NewUser(rows[row][colUsername], rows[row][colPassword])
		if err != nil {
			r.logger.Warn("skipping user row", zap.Int("row", row+2), zap.Error(err))
			continue
		}
		r.users = append(r.users, account)
	}
	return nil
}

// Users returns the parsed users in file order.
func (r *UserCSVReader) Users() []*domain.User {
	return r.users
}

// headerRows reads a CSV stream into one field-name→value mapping per row,
// keyed by the header line.
func headerRows(reader io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	// Strip a UTF-8 BOM the source files sometimes carry.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
