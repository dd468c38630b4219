package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/usecase/browse"
)

// UserHandler handles HTTP requests for accounts, wishlists and reviews
type UserHandler struct {
	userUseCase domain.UserUseCase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase domain.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"thorke"`
	Password string `json:"password" binding:"required" example:"cLQ^C#oFXloS"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"thorke"`
	Password string `json:"password" binding:"required" example:"cLQ^C#oFXloS"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// ChangePasswordRequest represents the change-password request body
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// ReviewRequest represents the review submission body
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"min=0,max=5"`
	Comment string `json:"comment"`
}

// Register handles account creation
// @Summary Register
// @Description Create an account; the password is hashed before storage
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewInvalidEntityError("invalid request body"))
		return
	}
	account, err := h.userUseCase.Register(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"username": account.Username})
}

// Login handles user authentication
// @Summary Login
// @Description Authenticate and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewInvalidEntityError("invalid request body"))
		return
	}
	token, err := h.userUseCase.Authenticate(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Username: domain.NormalizeUsername(req.Username),
	})
}

// ChangePassword handles password replacement
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "New password"
// @Success 204
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		writeError(c, domain.NewCatalogError(domain.ErrCodeTokenMissing, "not authenticated", nil))
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewInvalidEntityError("invalid request body"))
		return
	}
	if err := h.userUseCase.ChangePassword(username, req.NewPassword); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProfile handles fetching the authenticated account
// @Summary Get profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		writeError(c, domain.NewCatalogError(domain.ErrCodeTokenMissing, "not authenticated", nil))
		return
	}
	account, err := h.userUseCase.GetUser(username)
	if err != nil {
		writeError(c, err)
		return
	}
	if account == nil {
		writeError(c, domain.NewPreconditionFailedError("user does not exist"))
		return
	}

	reviews := make([]ReviewDetail, 0, len(account.Reviews))
	for _, review := range account.Reviews {
		reviews = append(reviews, ReviewDetail{
			Username: account.Username,
			Rating:   review.Rating,
			Comment:  review.Comment,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"username": account.Username,
		"reviews":  reviews,
	})
}

// DeleteAccount handles account removal with its cascade
// @Summary Delete account
// @Description Remove the account together with its reviews and favourites
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		writeError(c, domain.NewCatalogError(domain.ErrCodeTokenMissing, "not authenticated", nil))
		return
	}
	if err := h.userUseCase.DeleteAccount(username); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWishlist handles listing the authenticated user's favourites
// @Summary Get wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]browse.GameSummary
// @Failure 401 {object} domain.ErrorResponse
// @Router /wishlist [get]
func (h *UserHandler) GetWishlist(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		writeError(c, domain.NewCatalogError(domain.ErrCodeTokenMissing, "not authenticated", nil))
		return
	}
	games, err := h.userUseCase.GetWishlist(username)
	if err != nil {
		writeError(c, err)
		return
	}
	summaries := make([]browse.GameSummary, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, browse.GameSummary{
			ID:          game.ID,
			Title:       game.Title,
			Price:       game.Price,
			ReleaseDate: game.ReleaseDate,
			ImageURL:    game.ImageURL,
		})
	}
	c.JSON(http.StatusOK, gin.H{"games": summaries})
}

// AddToWishlist handles adding a favourite
// @Summary Add game to wishlist
// @Description Idempotent; adding a game already present changes nothing
// @Tags wishlist
// @Security BearerAuth
// @Param game_id path int true "Game id"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Router /wishlist/{game_id} [post]
func (h *UserHandler) AddToWishlist(c *gin.Context) {
	h.mutateWishlist(c, h.userUseCase.AddToWishlist)
}

// RemoveFromWishlist handles removing a favourite
// @Summary Remove game from wishlist
// @Description Idempotent; removing a game not present changes nothing
// @Tags wishlist
// @Security BearerAuth
// @Param game_id path int true "Game id"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Router /wishlist/{game_id} [delete]
func (h *UserHandler) RemoveFromWishlist(c *gin.Context) {
	h.mutateWishlist(c, h.userUseCase.RemoveFromWishlist)
}

func (h *UserHandler) mutateWishlist(c *gin.Context, op func(string, int) error) {
	username, ok := currentUsername(c)
	if !ok {
		writeError(c, domain.NewCatalogError(domain.ErrCodeTokenMissing, "not authenticated", nil))
		return
	}
	gameID, err := strconv.Atoi(c.Param("game_id"))
	if err != nil {
		writeError(c, domain.NewInvalidEntityError("game id must be an integer"))
		return
	}
	if err := op(username, gameID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddReview handles posting a review for a game
// @Summary Review a game
// @Description One review per user per game; the review lands in both the user's and the game's collections
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game id"
// @Param request body ReviewRequest true "Review"
// @Success 201 {object} ReviewDetail
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/{id}/reviews [post]
func (h *UserHandler) AddReview(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		writeError(c, domain.NewCatalogError(domain.ErrCodeTokenMissing, "not authenticated", nil))
		return
	}
	gameID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, domain.NewInvalidEntityError("game id must be an integer"))
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewInvalidEntityError("invalid request body"))
		return
	}
	review, err := h.userUseCase.AddReview(username, gameID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ReviewDetail{
		Username: review.Username(),
		Rating:   review.Rating,
		Comment:  review.Comment,
	})
}
