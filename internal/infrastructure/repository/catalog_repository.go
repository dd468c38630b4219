// Package repository provides the persistent implementation of the catalog
// repository contract, backed by Postgres through GORM. All mutating
// operations run as one unit of work each: begin, mutate, commit, with a
// deferred rollback as the terminal cleanup on every exit path.
package repository

import (
	"errors"

	"github.com/saradorri/gamecatalog/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository implements domain.Repository
type CatalogRepository struct {
	sm *SessionManager
}

// NewCatalogRepository creates a new catalog repository with one open session.
func NewCatalogRepository(db *gorm.DB) domain.Repository {
	return &CatalogRepository{sm: NewSessionManager(db)}
}

// AddGame inserts a game together with its publisher and genres. Existing
// publishers and genres are left untouched by the association upsert.
func (r *CatalogRepository) AddGame(game *domain.Game) error {
	if game == nil {
		return nil
	}
	tx, err := r.sm.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.Create(game).Error; err != nil {
		return domain.NewStorageError("add game", err)
	}
	if err := tx.Commit().Error; err != nil {
		return domain.NewStorageError("commit add game", err)
	}
	return nil
}

// GetGames returns all games in primary-key order with publisher and genres
// loaded.
func (r *CatalogRepository) GetGames() ([]*domain.Game, error) {
	var games []*domain.Game
	result := r.sm.Session().
		Preload("Publisher").
		Preload("Genres").
		Order("id ASC").
		Find(&games)
	if result.Error != nil {
		return nil, domain.NewStorageError("get games", result.Error)
	}
	return games, nil
}

// GetGameCount returns the number of games stored.
func (r *CatalogRepository) GetGameCount() (int, error) {
	var count int64
	result := r.sm.Session().Model(&domain.Game{}).Count(&count)
	if result.Error != nil {
		return 0, domain.NewStorageError("count games", result.Error)
	}
	return int(count), nil
}

// GetFirstGame returns the game with the smallest id, nil when empty.
func (r *CatalogRepository) GetFirstGame() (*domain.Game, error) {
	return r.boundaryGame("id ASC")
}

// GetLastGame returns the game with the largest id, nil when empty.
func (r *CatalogRepository) GetLastGame() (*domain.Game, error) {
	return r.boundaryGame("id DESC")
}

func (r *CatalogRepository) boundaryGame(order string) (*domain.Game, error) {
	var game domain.Game
	result := r.sm.Session().Order(order).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get boundary game", result.Error)
	}
	return &game, nil
}

// GetGameByID queries by the primary-key column and loads the game's
// publisher, genres and reviews. Returns nil when absent.
func (r *CatalogRepository) GetGameByID(id int) (*domain.Game, error) {
	var game domain.Game
	result := r.sm.Session().
		Preload("Publisher").
		Preload("Genres").
		Preload("Reviews").
		Preload("Reviews.User").
		Where("id = ?", id).
		First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get game by id", result.Error)
	}
	return &game, nil
}

// AddUser registers a user, rejecting usernames already present.
func (r *CatalogRepository) AddUser(user *domain.User) error {
	if user == nil {
		return nil
	}
	existing, err := r.GetUserByName(user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewDuplicateKeyError("username already registered")
	}

	tx, err := r.sm.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
		return domain.NewStorageError("add user", err)
	}
	if err := tx.Commit().Error; err != nil {
		return domain.NewStorageError("commit add user", err)
	}
	return nil
}

// GetUserByName queries by the indexed unique username column,
// case-insensitively via normalization. Returns nil when absent.
func (r *CatalogRepository) GetUserByName(username string) (*domain.User, error) {
	var user domain.User
	result := r.sm.Session().
		Preload("Reviews").
		Preload("Reviews.Game").
		Preload("FavouriteGames").
		Where("username = ?", domain.NormalizeUsername(username)).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get user by name", result.Error)
	}
	return &user, nil
}

// ChangePassword replaces the stored opaque password by the username key.
func (r *CatalogRepository) ChangePassword(user *domain.User, password string) error {
	if user == nil {
		return domain.NewPreconditionFailedError("user does not exist")
	}
	tx, err := r.sm.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result := tx.Model(&domain.User{}).
		Where("username = ?", domain.NormalizeUsername(user.Username)).
		Update("password", password)
	if result.Error != nil {
		return domain.NewStorageError("change password", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewPreconditionFailedError("user does not exist")
	}
	if err := tx.Commit().Error; err != nil {
		return domain.NewStorageError("commit change password", err)
	}
	return nil
}

// RemoveUser deletes the user's reviews, detaches their favourites and
// removes the user, all inside one unit of work so the cascade never
// partially completes.
func (r *CatalogRepository) RemoveUser(user *domain.User) error {
	if user == nil {
		return domain.NewPreconditionFailedError("user does not exist")
	}
	stored, err := r.GetUserByName(user.Username)
	if err != nil {
		return err
	}
	if stored == nil {
		return domain.NewPreconditionFailedError("user does not exist")
	}

	tx, err := r.sm.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.Where("user_id = ?", stored.ID).Delete(&domain.Review{}).Error; err != nil {
		return domain.NewStorageError("remove user reviews", err)
	}
	if err := tx.Model(stored).Association("FavouriteGames").Clear(); err != nil {
		return domain.NewStorageError("detach favourites", err)
	}
	if err := tx.Delete(stored).Error; err != nil {
		return domain.NewStorageError("remove user", err)
	}
	if err := tx.Commit().Error; err != nil {
		return domain.NewStorageError("commit remove user", err)
	}
	return nil
}

// AddReview stores the review row. Both back references derive from the same
// row, so the user's and the game's collections can never diverge.
func (r *CatalogRepository) AddReview(review *domain.Review) error {
	if review == nil || review.User == nil || review.Game == nil {
		return domain.NewInvalidEntityError("review requires a user and a game")
	}
	tx, err := r.sm.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var gameCount int64
	if err := tx.Model(&domain.Game{}).Where("id = ?", review.GameID).Count(&gameCount).Error; err != nil {
		return domain.NewStorageError("check game", err)
	}
	if gameCount == 0 {
		return domain.NewPreconditionFailedError("game does not exist")
	}
	var userCount int64
	if err := tx.Model(&domain.User{}).Where("id = ?", review.UserID).Count(&userCount).Error; err != nil {
		return domain.NewStorageError("check user", err)
	}
	if userCount == 0 {
		return domain.NewPreconditionFailedError("user does not exist")
	}

	if err := tx.Omit(clause.Associations).Create(review).Error; err != nil {
		return domain.NewStorageError("add review", err)
	}
	if err := tx.Commit().Error; err != nil {
		return domain.NewStorageError("commit add review", err)
	}
	review.Game.AddReview(review)
	review.User.AddReview(review)
	return nil
}

// GetReviews returns all reviews with their owning user and game loaded.
func (r *CatalogRepository) GetReviews() ([]*domain.Review, error) {
	var reviews []*domain.Review
	result := r.sm.Session().
		Preload("User").
		Preload("Game").
		Order("id ASC").
		Find(&reviews)
	if result.Error != nil {
		return nil, domain.NewStorageError("get reviews", result.Error)
	}
	return reviews, nil
}

// AddGameToWishlist appends the association row; a duplicate add is an
// idempotent no-op.
func (r *CatalogRepository) AddGameToWishlist(username string, gameID int) error {
	user, game, err := r.userAndGame(username, gameID)
	if err != nil {
		return err
	}
	if user.HasFavourite(gameID) {
		return nil
	}

	tx, err := r.sm.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.Model(user).Omit("FavouriteGames.*").Association("FavouriteGames").Append(game); err != nil {
		return domain.NewStorageError("add game to wishlist", err)
	}
	if err := tx.Commit().Error; err != nil {
		return domain.NewStorageError("commit add game to wishlist", err)
	}
	return nil
}

// RemoveGameFromWishlist deletes the association row; removing an absent game
// is an idempotent no-op.
func (r *CatalogRepository) RemoveGameFromWishlist(username string, gameID int) error {
	user, game, err := r.userAndGame(username, gameID)
	if err != nil {
		return err
	}
	if !user.HasFavourite(gameID) {
		return nil
	}

	tx, err := r.sm.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.Model(user).Association("FavouriteGames").Delete(game); err != nil {
		return domain.NewStorageError("remove game from wishlist", err)
	}
	if err := tx.Commit().Error; err != nil {
		return domain.NewStorageError("commit remove game from wishlist", err)
	}
	return nil
}

// GetWishlist returns the user's favourite games in insertion order. The join
// rows carry a sequence-assigned position, so the order matches what the
// in-memory store's insertion-ordered slice yields.
func (r *CatalogRepository) GetWishlist(username string) ([]*domain.Game, error) {
	user, err := r.GetUserByName(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewPreconditionFailedError("user does not exist")
	}

	var games []*domain.Game
	result := r.sm.Session().
		Preload("Publisher").
		Preload("Genres").
		Joins("JOIN user_favourite_games ufg ON ufg.game_id = games.id").
		Where("ufg.user_id = ?", user.ID).
		Order("ufg.position ASC").
		Find(&games)
	if result.Error != nil {
		return nil, domain.NewStorageError("get wishlist", result.Error)
	}
	return games, nil
}

func (r *CatalogRepository) userAndGame(username string, gameID int) (*domain.User, *domain.Game, error) {
	user, err := r.GetUserByName(username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.NewPreconditionFailedError("user does not exist")
	}
	game, err := r.GetGameByID(gameID)
	if err != nil {
		return nil, nil, err
	}
	if game == nil {
		return nil, nil, domain.NewPreconditionFailedError("game does not exist")
	}
	return user, game, nil
}

// Reset closes the current session and opens a fresh one.
func (r *CatalogRepository) Reset() error {
	r.sm.Reset()
	return nil
}
