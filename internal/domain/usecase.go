package domain

// UserUseCase defines the interface for account business logic
type UserUseCase interface {
	Register(username, password string) (*User, error)
	Authenticate(username, password string) (string, error)
	GetUser(username string) (*User, error)
	ChangePassword(username, newPassword string) error
	DeleteAccount(username string) error
	AddReview(username string, gameID, rating int, comment string) (*Review, error)
	AverageRating(gameID int) (float64, bool, error)
	AddToWishlist(username string, gameID int) error
	RemoveFromWishlist(username string, gameID int) error
	GetWishlist(username string) ([]*Game, error)
}
