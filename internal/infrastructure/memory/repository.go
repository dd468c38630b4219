// Package memory provides an in-process implementation of the catalog
// repository contract. It keeps no state across restarts and performs no
// locking: concurrent mutation from multiple goroutines must be prevented by
// the caller (confine the store to one goroutine or wrap it externally).
package memory

import (
	"sort"

	"github.com/saradorri/gamecatalog/internal/domain"
)

// Repository implements domain.Repository over ordered in-process slices.
// Games stay sorted by ascending id; users and reviews keep insertion order.
type Repository struct {
	games   []*domain.Game
	users   []*domain.User
	reviews []*domain.Review
}

// NewRepository creates an empty in-memory repository
func NewRepository() *Repository {
	return &Repository{}
}

// AddGame inserts the game at its id-sorted position. Inserting an id already
// present is the caller's responsibility to avoid; a nil game is ignored.
func (r *Repository) AddGame(game *domain.Game) error {
	if game == nil {
		return nil
	}
	i := sort.Search(len(r.games), func(i int) bool {
		return r.games[i].ID >= game.ID
	})
	r.games = append(r.games, nil)
	copy(r.games[i+1:], r.games[i:])
	r.games[i] = game
	return nil
}

// GetGames returns all games in ascending id order.
func (r *Repository) GetGames() ([]*domain.Game, error) {
	return r.games, nil
}

// GetGameCount returns the number of games held.
func (r *Repository) GetGameCount() (int, error) {
	return len(r.games), nil
}

// GetFirstGame returns the game with the smallest id, nil when empty.
func (r *Repository) GetFirstGame() (*domain.Game, error) {
	if len(r.games) == 0 {
		return nil, nil
	}
	return r.games[0], nil
}

// GetLastGame returns the game with the largest id, nil when empty.
func (r *Repository) GetLastGame() (*domain.Game, error) {
	if len(r.games) == 0 {
		return nil, nil
	}
	return r.games[len(r.games)-1], nil
}

// GetGameByID returns the game with the given id, nil when absent.
func (r *Repository) GetGameByID(id int) (*domain.Game, error) {
	i := sort.Search(len(r.games), func(i int) bool {
		return r.games[i].ID >= id
	})
	if i < len(r.games) && r.games[i].ID == id {
		return r.games[i], nil
	}
	return nil, nil
}

// AddUser appends the user, rejecting usernames already registered.
func (r *Repository) AddUser(user *domain.User) error {
	if user == nil {
		return nil
	}
	if r.findUser(user.Username) != nil {
		return domain.NewDuplicateKeyError("username already registered")
	}
	r.users = append(r.users, user)
	return nil
}

// GetUserByName looks the user up case-insensitively, nil when absent.
func (r *Repository) GetUserByName(username string) (*domain.User, error) {
	return r.findUser(domain.NormalizeUsername(username)), nil
}

func (r *Repository) findUser(normalized string) *domain.User {
	for _, user := range r.users {
		if user.Username == normalized {
			return user
		}
	}
	return nil
}

// ChangePassword replaces the stored user's opaque password.
func (r *Repository) ChangePassword(user *domain.User, password string) error {
	if user == nil {
		return domain.NewPreconditionFailedError("user does not exist")
	}
	stored := r.findUser(user.Username)
	if stored == nil {
		return domain.NewPreconditionFailedError("user does not exist")
	}
	stored.Password = password
	return nil
}

// RemoveUser cascades: every review the user authored leaves the global
// collection and both owning collections, the favourites detach, then the
// user is removed.
func (r *Repository) RemoveUser(user *domain.User) error {
	if user == nil {
		return domain.NewPreconditionFailedError("user does not exist")
	}
	stored := r.findUser(user.Username)
	if stored == nil {
		return domain.NewPreconditionFailedError("user does not exist")
	}
	for i := len(r.reviews) - 1; i >= 0; i-- {
		review := r.reviews[i]
		if review.User == nil || !review.User.Equal(stored) {
			continue
		}
		stored.RemoveReview(review)
		if review.Game != nil {
			review.Game.RemoveReview(review)
		}
		r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
	}
	stored.FavouriteGames = nil
	for i, existing := range r.users {
		if existing.Username == stored.Username {
			r.users = append(r.users[:i], r.users[i+1:]...)
			break
		}
	}
	return nil
}

// AddReview stores the review and appends it to both owning collections in
// the same operation.
func (r *Repository) AddReview(review *domain.Review) error {
	if review == nil || review.User == nil || review.Game == nil {
		return domain.NewInvalidEntityError("review requires a user and a game")
	}
	r.reviews = append(r.reviews, review)
	review.Game.AddReview(review)
	review.User.AddReview(review)
	return nil
}

// GetReviews returns all reviews in insertion order.
func (r *Repository) GetReviews() ([]*domain.Review, error) {
	return r.reviews, nil
}

// AddGameToWishlist appends the game to the user's favourites; adding a game
// already present is an idempotent no-op.
func (r *Repository) AddGameToWishlist(username string, gameID int) error {
	user, game, err := r.userAndGame(username, gameID)
	if err != nil {
		return err
	}
	user.AddFavouriteGame(game)
	return nil
}

// RemoveGameFromWishlist removes the game from the user's favourites;
// removing a game not present is an idempotent no-op.
func (r *Repository) RemoveGameFromWishlist(username string, gameID int) error {
	user, game, err := r.userAndGame(username, gameID)
	if err != nil {
		return err
	}
	user.RemoveFavouriteGame(game)
	return nil
}

// GetWishlist returns the user's favourite games in insertion order.
func (r *Repository) GetWishlist(username string) ([]*domain.Game, error) {
	user := r.findUser(domain.NormalizeUsername(username))
	if user == nil {
		return nil, domain.NewPreconditionFailedError("user does not exist")
	}
	return user.FavouriteGames, nil
}

func (r *Repository) userAndGame(username string, gameID int) (*domain.User, *domain.Game, error) {
	user := r.findUser(domain.NormalizeUsername(username))
	if user == nil {
		return nil, nil, domain.NewPreconditionFailedError("user does not exist")
	}
	game, _ := r.GetGameByID(gameID)
	if game == nil {
		return nil, nil, domain.NewPreconditionFailedError("game does not exist")
	}
	return user, game, nil
}

// Reset is a no-op; the in-memory store has no session to recycle.
func (r *Repository) Reset() error {
	return nil
}
