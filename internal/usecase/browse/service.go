// Package browse implements the catalog's pagination and query engine. It is
// storage-agnostic: every function works through the repository contract and
// produces the same pages whichever store backs it.
package browse

import (
	"sort"
	"strings"

	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// GenreAll is the genre filter value meaning "unfiltered".
const GenreAll = "all"

// Search criteria accepted by SearchGames.
const (
	SearchByTitle     = "title"
	SearchByPublisher = "publisher"
)

// GameSummary is the caller-visible projection of a game inside a page.
type GameSummary struct {
	ID          int     `json:"game_id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	ReleaseDate string  `json:"release_date"`
	ImageURL    string  `json:"image_url"`
}

// Page is one window of the alphabetically sorted result set. PreviousID and
// NextID are anchor ids, nil when no page exists in that direction.
type Page struct {
	Games      []GameSummary `json:"games"`
	PreviousID *int          `json:"previous_id"`
	NextID     *int          `json:"next_id"`
}

// Service answers browse queries over a repository.
type Service struct {
	repo   domain.Repository
	logger *logger.Logger
}

// NewService creates a new browse service
func NewService(repo domain.Repository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetGameCount returns the total number of games in the catalog.
func (s *Service) GetGameCount() (int, error) {
	return s.repo.GetGameCount()
}

// GetGameByID returns the game with the given id, nil when absent.
func (s *Service) GetGameByID(id int) (*domain.Game, error) {
	return s.repo.GetGameByID(id)
}

// GetPage windows the sorted candidate set around the anchor id.
//
// The candidate set is the precomputed list when one is given (search
// results), otherwise all games, optionally restricted to a genre. It is
// sorted by title ascending with ties broken by id, so the order is total and
// stable across runs. When the anchor id is not in the candidate set the
// result is an empty page with nil navigation; re-anchoring on the first
// entity is the caller's job, not the engine's.
func (s *Service) GetPage(anchorID, pageSize int, genre string, candidates []*domain.Game) (Page, error) {
	if pageSize <= 0 {
		return Page{}, domain.NewInvalidEntityError("page size must be positive")
	}
	games, err := s.candidateSet(genre, candidates)
	if err != nil {
		return Page{}, err
	}
	sortByTitle(games)

	index := -1
	for i, game := range games {
		if game.ID == anchorID {
			index = i
			break
		}
	}
	if index == -1 {
		if s.logger != nil {
			s.logger.Debug("anchor not in candidate set", zap.Int("anchor_id", anchorID))
		}
		return Page{}, nil
	}

	var page Page
	if index > 0 {
		if index >= pageSize {
			page.PreviousID = &games[index-pageSize].ID
		} else {
			page.PreviousID = &games[0].ID
		}
	}
	if index+pageSize < len(games) {
		page.NextID = &games[index+pageSize].ID
	}

	end := index + pageSize
	if end > len(games) {
		end = len(games)
	}
	for _, game := range games[index:end] {
		page.Games = append(page.Games, summarize(game))
	}
	return page, nil
}

// FirstAnchorID returns the id of the alphabetically first game of the
// candidate set, for callers re-anchoring after an empty page. ok is false
// when the candidate set is empty.
func (s *Service) FirstAnchorID(genre string, candidates []*domain.Game) (int, bool, error) {
	games, err := s.candidateSet(genre, candidates)
	if err != nil {
		return 0, false, err
	}
	if len(games) == 0 {
		return 0, false, nil
	}
	sortByTitle(games)
	return games[0].ID, true, nil
}

// SearchGames returns the games matching a free-text query, sorted by title.
// The criteria selects the field searched: title, publisher, or both when the
// criteria is anything else. An optional genre narrows the matches.
func (s *Service) SearchGames(query, criteria, genre string) ([]*domain.Game, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}
	games, err := s.repo.GetGames()
	if err != nil {
		return nil, err
	}

	var matched []*domain.Game
	for _, game := range games {
		var hit bool
		switch criteria {
		case SearchByTitle:
			hit = matchTitle(game, query)
		case SearchByPublisher:
			hit = matchPublisher(game, query)
		default:
			hit = matchTitle(game, query) || matchPublisher(game, query)
		}
		if hit {
			matched = append(matched, game)
		}
	}

	if genre != "" && genre != GenreAll {
		matched = filterByGenre(matched, genre)
	}
	sortByTitle(matched)
	return matched, nil
}

// GetGamesForGenre returns the games carrying the named genre, sorted by
// title.
func (s *Service) GetGamesForGenre(genre string) ([]*domain.Game, error) {
	games, err := s.repo.GetGames()
	if err != nil {
		return nil, err
	}
	matched := filterByGenre(games, genre)
	sortByTitle(matched)
	return matched, nil
}

// GetGenreCount returns how many games carry the named genre.
func (s *Service) GetGenreCount(genre string) (int, error) {
	games, err := s.GetGamesForGenre(genre)
	if err != nil {
		return 0, err
	}
	return len(games), nil
}

// GetGenres returns the distinct genre names in the catalog, sorted.
func (s *Service) GetGenres() ([]string, error) {
	games, err := s.repo.GetGames()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var genres []string
	for _, game := range games {
		for _, genre := range game.Genres {
			if !seen[genre.Name] {
				seen[genre.Name] = true
				genres = append(genres, genre.Name)
			}
		}
	}
	sort.Strings(genres)
	return genres, nil
}

// GetFirstGameByTitle returns the alphabetically first game, nil when the
// catalog is empty.
func (s *Service) GetFirstGameByTitle() (*domain.Game, error) {
	games, err := s.repo.GetGames()
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	sorted := copyGames(games)
	sortByTitle(sorted)
	return sorted[0], nil
}

// GetLastGameByTitle returns the alphabetically last game, nil when the
// catalog is empty.
func (s *Service) GetLastGameByTitle() (*domain.Game, error) {
	games, err := s.repo.GetGames()
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	sorted := copyGames(games)
	sortByTitle(sorted)
	return sorted[len(sorted)-1], nil
}

// candidateSet resolves the games under consideration: the precomputed list
// when given, else all games, restricted to the genre when one is named. The
// returned slice is always a copy safe to sort in place.
func (s *Service) candidateSet(genre string, candidates []*domain.Game) ([]*domain.Game, error) {
	var games []*domain.Game
	if candidates != nil {
		games = copyGames(candidates)
	} else {
		all, err := s.repo.GetGames()
		if err != nil {
			return nil, err
		}
		games = copyGames(all)
	}
	if genre != "" && genre != GenreAll {
		games = filterByGenre(games, genre)
	}
	return games, nil
}

func filterByGenre(games []*domain.Game, genre string) []*domain.Game {
	var matched []*domain.Game
	for _, game := range games {
		if game.HasGenre(genre) {
			matched = append(matched, game)
		}
	}
	return matched
}

// sortByTitle sorts by title ascending with ties broken by id, keeping the
// order deterministic when two games share a title.
func sortByTitle(games []*domain.Game) {
	sort.Slice(games, func(i, j int) bool {
		if games[i].Title != games[j].Title {
			return games[i].Title < games[j].Title
		}
		return games[i].ID < games[j].ID
	})
}

func copyGames(games []*domain.Game) []*domain.Game {
	copied := make([]*domain.Game, len(games))
	copy(copied, games)
	return copied
}

func matchTitle(game *domain.Game, query string) bool {
	return strings.Contains(strings.ToLower(game.Title), query)
}

func matchPublisher(game *domain.Game, query string) bool {
	return game.Publisher != nil && strings.Contains(strings.ToLower(game.Publisher.Name), query)
}

func summarize(game *domain.Game) GameSummary {
	return GameSummary{
		ID:          game.ID,
		Title:       game.Title,
		Price:       game.Price,
		ReleaseDate: game.ReleaseDate,
		ImageURL:    game.ImageURL,
	}
}
