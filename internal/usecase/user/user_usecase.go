// Package user implements account business logic: registration,
// authentication, password changes, account deletion, wishlists and reviews.
// Password hashing happens here; the stores only ever see the opaque hash.
package user

import (
	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/infrastructure/auth"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UseCase implements domain.UserUseCase
type UseCase struct {
	repo   domain.Repository
	jwtSvc auth.JWTService
	logger *logger.Logger
}

// NewUseCase creates a new account use case
func NewUseCase(repo domain.Repository, jwtSvc auth.JWTService, logger *logger.Logger) domain.UserUseCase {
	return &UseCase{
		repo:   repo,
		jwtSvc: jwtSvc,
		logger: logger,
	}
}

// Register creates an account with a bcrypt-hashed password. The minimum
// password length is enforced here, on the raw password, before hashing.
func (uc *UseCase) Register(username, password string) (*domain.User, error) {
	existing, err := uc.repo.GetUserByName(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.logger.Warn("registration rejected, username taken", zap.String("username", domain.NormalizeUsername(username)))
		return nil, domain.NewDuplicateKeyError("username already registered")
	}
	if len(password) < domain.MinPasswordLength {
		return nil, domain.NewInvalidEntityError("password is too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewCatalogError(domain.ErrCodeInvalidCredentials, "failed to hash password", err)
	}
	account, err := domain.NewUser(username, string(hash))
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AddUser(account); err != nil {
		return nil, err
	}
	uc.logger.Info("user registered", zap.String("username", account.Username))
	return account, nil
}

// Authenticate validates credentials and returns a JWT token.
func (uc *UseCase) Authenticate(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.NewCatalogError(domain.ErrCodeInvalidCredentials, "invalid credentials", nil)
	}
	account, err := uc.repo.GetUserByName(username)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", domain.NewCatalogError(domain.ErrCodeInvalidCredentials, "invalid credentials", nil)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		uc.logger.Warn("authentication failed", zap.String("username", account.Username))
		return "", domain.NewCatalogError(domain.ErrCodeInvalidCredentials, "invalid credentials", nil)
	}

	token, err := uc.jwtSvc.GenerateToken(account.Username)
	if err != nil {
		return "", domain.NewCatalogError(domain.ErrCodeTokenInvalid, "token generation failed", err)
	}
	return token, nil
}

// GetUser returns the account for the username, case-insensitively.
func (uc *UseCase) GetUser(username string) (*domain.User, error) {
	return uc.repo.GetUserByName(username)
}

// ChangePassword re-hashes and stores the new password.
func (uc *UseCase) ChangePassword(username, newPassword string) error {
	account, err := uc.repo.GetUserByName(username)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.NewPreconditionFailedError("user does not exist")
	}
	if len(newPassword) < domain.MinPasswordLength {
		return domain.NewInvalidEntityError("password is too short")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewCatalogError(domain.ErrCodeInvalidCredentials, "failed to hash password", err)
	}
	if err := uc.repo.ChangePassword(account, string(hash)); err != nil {
		return err
	}
	uc.logger.Info("password changed", zap.String("username", account.Username))
	return nil
}

// DeleteAccount removes the user and cascades to their reviews and
// favourites.
func (uc *UseCase) DeleteAccount(username string) error {
	account, err := uc.repo.GetUserByName(username)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.NewPreconditionFailedError("user does not exist")
	}
	if err := uc.repo.RemoveUser(account); err != nil {
		return err
	}
	uc.logger.Info("account deleted", zap.String("username", account.Username))
	return nil
}

// AddReview creates a review for a game the user has not already reviewed.
func (uc *UseCase) AddReview(username string, gameID, rating int, comment string) (*domain.Review, error) {
	game, err := uc.repo.GetGameByID(gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, domain.NewPreconditionFailedError("game does not exist")
	}
	account, err := uc.repo.GetUserByName(username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.NewPreconditionFailedError("user does not exist")
	}
	for _, existing := range game.Reviews {
		if existing.Username() == account.Username {
			return nil, domain.NewDuplicateKeyError("user has already reviewed this game")
		}
	}

	review, err := domain.NewReview(account, game, rating, comment)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AddReview(review); err != nil {
		return nil, err
	}
	uc.logger.Info("review added",
		zap.String("username", account.Username),
		zap.Int("game_id", game.ID),
		zap.Int("rating", review.Rating))
	return review, nil
}

// AverageRating returns the mean rating of a game's reviews, rounded to one
// decimal. ok is false when the game has no reviews.
func (uc *UseCase) AverageRating(gameID int) (float64, bool, error) {
	game, err := uc.repo.GetGameByID(gameID)
	if err != nil {
		return 0, false, err
	}
	if game == nil {
		return 0, false, domain.NewPreconditionFailedError("game does not exist")
	}
	if len(game.Reviews) == 0 {
		return 0, false, nil
	}
	sum := 0
	for _, review := range game.Reviews {
		sum += review.Rating
	}
	avg := float64(sum) / float64(len(game.Reviews))
	return float64(int(avg*10+0.5)) / 10, true, nil
}

// AddToWishlist adds a game to the user's favourites.
func (uc *UseCase) AddToWishlist(username string, gameID int) error {
	return uc.repo.AddGameToWishlist(username, gameID)
}

// RemoveFromWishlist removes a game from the user's favourites.
func (uc *UseCase) RemoveFromWishlist(username string, gameID int) error {
	return uc.repo.RemoveGameFromWishlist(username, gameID)
}

// GetWishlist returns the user's favourite games.
func (uc *UseCase) GetWishlist(username string) ([]*domain.Game, error) {
	return uc.repo.GetWishlist(username)
}
