package domain

// Repository is the uniform data-access contract over the catalog. Both the
// in-memory store and the database store satisfy it with identical external
// behavior; callers never depend on the storage technique behind it.
//
// Lookup misses return (nil, nil). Operations that require the referenced
// entity to exist fail with a PRECONDITION_FAILED error instead.
type Repository interface {
	// AddGame inserts a game. Avoiding id collisions is the caller's
	// responsibility; a nil game is ignored.
	AddGame(game *Game) error

	// GetGames returns all games. The contract does not promise an order;
	// callers needing alphabetical order must sort.
	GetGames() ([]*Game, error)

	// GetGameCount returns the number of games in the store.
	GetGameCount() (int, error)

	// GetFirstGame and GetLastGame return the boundary games in the store's
	// natural id order, nil when the store is empty.
	GetFirstGame() (*Game, error)
	GetLastGame() (*Game, error)

	// GetGameByID returns the game with the given id, nil when absent.
	GetGameByID(id int) (*Game, error)

	// AddUser registers a user. Registering a username already present fails
	// with a DUPLICATE_KEY error.
	AddUser(user *User) error

	// GetUserByName looks a user up by username, case-insensitively. Returns
	// nil when absent.
	GetUserByName(username string) (*User, error)

	// ChangePassword replaces the user's stored opaque password.
	ChangePassword(user *User, password string) error

	// RemoveUser deletes the user together with the reviews they authored and
	// their favourites. The cascade never partially completes.
	RemoveUser(user *User) error

	// AddReview stores a review and appends it to both the owning user's and
	// the owning game's collections; the two appends never happen
	// independently.
	AddReview(review *Review) error

	// GetReviews returns all reviews.
	GetReviews() ([]*Review, error)

	// AddGameToWishlist and RemoveGameFromWishlist mutate the user's
	// favourites. Adding a present game and removing an absent one are
	// idempotent no-ops; a nonexistent user or game is a precondition
	// failure.
	AddGameToWishlist(username string, gameID int) error
	RemoveGameFromWishlist(username string, gameID int) error

	// GetWishlist returns the user's favourite games in insertion order.
	GetWishlist(username string) ([]*Game, error)

	// Reset closes the store's current session and opens a fresh one. It is
	// invoked by the external caller at unit-of-work boundaries and is a
	// no-op for stores without sessions.
	Reset() error
}
