package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/usecase/browse"
)

// DefaultPageSize is the window size used when the caller does not pass one.
const DefaultPageSize = 15

// GameHandler handles HTTP requests for browsing the catalog
type GameHandler struct {
	browseSvc   *browse.Service
	userUseCase domain.UserUseCase
}

// NewGameHandler creates a new game handler
func NewGameHandler(browseSvc *browse.Service, userUseCase domain.UserUseCase) *GameHandler {
	return &GameHandler{browseSvc: browseSvc, userUseCase: userUseCase}
}

// BrowseResponse is the page envelope returned by ListGames.
type BrowseResponse struct {
	Games      []browse.GameSummary `json:"games"`
	PreviousID *int                 `json:"previous_id"`
	NextID     *int                 `json:"next_id"`
	Total      int                  `json:"total"`
}

// GameDetail is the full projection returned for a single game.
type GameDetail struct {
	ID            int            `json:"game_id"`
	Title         string         `json:"title"`
	Price         float64        `json:"price"`
	ReleaseDate   string         `json:"release_date"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"image_url"`
	WebsiteURL    string         `json:"website_url"`
	Publisher     string         `json:"publisher,omitempty"`
	Genres        string         `json:"genres"`
	Reviews       []ReviewDetail `json:"reviews"`
	AverageRating *float64       `json:"average_rating,omitempty"`
}

// ReviewDetail projects one review of a game.
type ReviewDetail struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// ListGames handles browsing the catalog
// @Summary Browse games
// @Description Returns one alphabetically sorted window of the catalog anchored on a game id, with optional genre filter and free-text search
// @Tags games
// @Produce json
// @Param anchor query int false "Anchor game id; omitted or unknown re-anchors on the first game"
// @Param page_size query int false "Window size" default(15)
// @Param genre query string false "Genre filter, 'all' for unfiltered" default(all)
// @Param q query string false "Free-text search query"
// @Param criteria query string false "Search field: title, publisher or both"
// @Success 200 {object} BrowseResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	anchorID, _ := strconv.Atoi(c.DefaultQuery("anchor", "0"))
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize <= 0 {
		writeError(c, domain.NewInvalidEntityError("page_size must be a positive integer"))
		return
	}
	genre := c.DefaultQuery("genre", browse.GenreAll)

	var candidates []*domain.Game
	query := strings.TrimSpace(c.Query("q"))
	if query != "" {
		candidates, err = h.browseSvc.SearchGames(query, c.Query("criteria"), genre)
		if err != nil {
			writeError(c, err)
			return
		}
		if candidates == nil {
			candidates = []*domain.Game{}
		}
		// The search already applied the genre filter.
		genre = browse.GenreAll
	}

	page, err := h.browseSvc.GetPage(anchorID, pageSize, genre, candidates)
	if err != nil {
		writeError(c, err)
		return
	}

	// The engine returns an empty page when the anchor is unknown;
	// re-anchoring on the first entity is this caller's responsibility.
	if len(page.Games) == 0 {
		if firstID, ok, err := h.browseSvc.FirstAnchorID(genre, candidates); err != nil {
			writeError(c, err)
			return
		} else if ok {
			page, err = h.browseSvc.GetPage(firstID, pageSize, genre, candidates)
			if err != nil {
				writeError(c, err)
				return
			}
		}
	}

	total := len(candidates)
	if query == "" {
		if genre == browse.GenreAll {
			total, err = h.browseSvc.GetGameCount()
		} else {
			total, err = h.browseSvc.GetGenreCount(genre)
		}
		if err != nil {
			writeError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, BrowseResponse{
		Games:      page.Games,
		PreviousID: page.PreviousID,
		NextID:     page.NextID,
		Total:      total,
	})
}

// GetGame handles fetching one game's description
// @Summary Get game description
// @Description Returns the full projection of one game including reviews and average rating
// @Tags games
// @Produce json
// @Param id path int true "Game id"
// @Success 200 {object} GameDetail
// @Failure 404 {object} domain.ErrorResponse
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, domain.NewInvalidEntityError("game id must be an integer"))
		return
	}

	game, err := h.browseSvc.GetGameByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if game == nil {
		writeError(c, domain.NewPreconditionFailedError("game does not exist"))
		return
	}

	detail := GameDetail{
		ID:          game.ID,
		Title:       game.Title,
		Price:       game.Price,
		ReleaseDate: game.ReleaseDate,
		Description: game.Description,
		ImageURL:    game.ImageURL,
		WebsiteURL:  game.WebsiteURL,
		Genres:      joinGenres(game),
	}
	if game.Publisher != nil {
		detail.Publisher = game.Publisher.Name
	}
	for _, review := range game.Reviews {
		detail.Reviews = append(detail.Reviews, ReviewDetail{
			Username: review.Username(),
			Rating:   review.Rating,
			Comment:  review.Comment,
		})
	}
	if avg, ok, err := h.userUseCase.AverageRating(game.ID); err == nil && ok {
		detail.AverageRating = &avg
	}

	c.JSON(http.StatusOK, detail)
}

// ListGenres handles listing the catalog's genres
// @Summary List genres
// @Description Returns the distinct genre names in the catalog, sorted
// @Tags games
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /genres [get]
func (h *GameHandler) ListGenres(c *gin.Context) {
	genres, err := h.browseSvc.GetGenres()
	if err != nil {
		writeError(c, err)
		return
	}
	if genres == nil {
		genres = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

func joinGenres(game *domain.Game) string {
	names := make([]string, 0, len(game.Genres))
	for _, genre := range game.Genres {
		names = append(names, genre.Name)
	}
	return strings.Join(names, ", ")
}
