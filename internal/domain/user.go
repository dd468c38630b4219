package domain

import (
	"strings"
)

// MinPasswordLength is the minimum length accepted for the opaque password
// representation a user is constructed with.
const MinPasswordLength = 7

// User represents a registered account. The username is the natural key and
// is normalized (lower-cased, trimmed) at construction, which makes lookups
// case-insensitive.
type User struct {
	ID             int       `json:"user_id" gorm:"primaryKey;column:id;autoIncrement"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Password       string    `json:"-" gorm:"not null;type:varchar(128)"`
	Reviews        []*Review `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	FavouriteGames []*Game   `json:"favourite_games,omitempty" gorm:"many2many:user_favourite_games"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// NewUser creates a user with a normalized username and an opaque password
// representation. The password content is caller-supplied (hashing is not the
// model's concern); only a minimum length is enforced here.
func NewUser(username, password string) (*User, error) {
	username = NormalizeUsername(username)
	if username == "" {
		return nil, NewInvalidEntityError("username cannot be empty")
	}
	if len(password) < MinPasswordLength {
		return nil, NewInvalidEntityError("password is too short")
	}
	return &User{Username: username, Password: password}, nil
}

// NormalizeUsername applies the username normalization used by the model and
// by name lookups.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// AddReview appends a review to the user's collection, ignoring duplicates.
// Repository implementations call this together with Game.AddReview.
func (u *User) AddReview(review *Review) {
	if review == nil {
		return
	}
	for _, existing := range u.Reviews {
		if existing.Equal(review) {
			return
		}
	}
	u.Reviews = append(u.Reviews, review)
}

// RemoveReview removes a review from the user's collection; absent reviews
// are ignored.
func (u *User) RemoveReview(review *Review) {
	if review == nil {
		return
	}
	for i, existing := range u.Reviews {
		if existing.Equal(review) {
			u.Reviews = append(u.Reviews[:i], u.Reviews[i+1:]...)
			return
		}
	}
}

// AddFavouriteGame appends a game to the favourites, ignoring duplicates so
// the operation is idempotent.
func (u *User) AddFavouriteGame(game *Game) {
	if game == nil || u.HasFavourite(game.ID) {
		return
	}
	u.FavouriteGames = append(u.FavouriteGames, game)
}

// RemoveFavouriteGame removes a game from the favourites; an absent game is a
// silent no-op.
func (u *User) RemoveFavouriteGame(game *Game) {
	if game == nil {
		return
	}
	for i, existing := range u.FavouriteGames {
		if existing.ID == game.ID {
			u.FavouriteGames = append(u.FavouriteGames[:i], u.FavouriteGames[i+1:]...)
			return
		}
	}
}

// HasFavourite reports whether the game id is in the favourites collection.
func (u *User) HasFavourite(gameID int) bool {
	for _, game := range u.FavouriteGames {
		if game.ID == gameID {
			return true
		}
	}
	return false
}

// Equal reports user identity, which is the normalized username.
func (u *User) Equal(other *User) bool {
	return other != nil && u.Username == other.Username
}
