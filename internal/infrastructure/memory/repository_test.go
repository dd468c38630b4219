package memory

import (
	"testing"

	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newGame(t *testing.T, id int, title string) *domain.Game {
	t.Helper()
	game, err := domain.NewGame(id, title)
	assert.NoError(t, err)
	return game
}

func newUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, "opaque-hash")
	assert.NoError(t, err)
	return user
}

func TestAddGameKeepsIDOrder(t *testing.T) {
	repo := NewRepository()

	assert.NoError(t, repo.AddGame(newGame(t, 30, "Charlie")))
	assert.NoError(t, repo.AddGame(newGame(t, 10, "Alpha")))
	assert.NoError(t, repo.AddGame(newGame(t, 20, "Bravo")))

	games, err := repo.GetGames()
	assert.NoError(t, err)
	assert.Len(t, games, 3)
	assert.Equal(t, []int{games[0].ID, games[1].ID, games[2].ID}, []int{10, 20, 30})

	count, err := repo.GetGameCount()
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	first, err := repo.GetFirstGame()
	assert.NoError(t, err)
	assert.Equal(t, 10, first.ID)
	last, err := repo.GetLastGame()
	assert.NoError(t, err)
	assert.Equal(t, 30, last.ID)
}

func TestGetGameByIDMissIsNilNil(t *testing.T) {
	repo := NewRepository()
	assert.NoError(t, repo.AddGame(newGame(t, 10, "Alpha")))

	game, err := repo.GetGameByID(10)
	assert.NoError(t, err)
	assert.NotNil(t, game)

	game, err = repo.GetGameByID(99)
	assert.NoError(t, err)
	assert.Nil(t, game)
}

func TestEmptyStoreLookups(t *testing.T) {
	repo := NewRepository()

	first, err := repo.GetFirstGame()
	assert.NoError(t, err)
	assert.Nil(t, first)
	last, err := repo.GetLastGame()
	assert.NoError(t, err)
	assert.Nil(t, last)
}

func TestAddUserRejectsDuplicateUsername(t *testing.T) {
	repo := NewRepository()

	assert.NoError(t, repo.AddUser(newUser(t, "thorke")))
	err := repo.AddUser(newUser(t, "thorke"))
	assert.True(t, domain.HasCode(err, domain.ErrCodeDuplicateKey))
}

func TestGetUserByNameCaseInsensitive(t *testing.T) {
	repo := NewRepository()
	assert.NoError(t, repo.AddUser(newUser(t, "ThorKe")))

	user, err := repo.GetUserByName("THORKE")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "thorke", user.Username)

	user, err = repo.GetUserByName("nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestChangePasswordUpdatesStoredUser(t *testing.T) {
	repo := NewRepository()
	assert.NoError(t, repo.AddUser(newUser(t, "thorke")))

	user, _ := repo.GetUserByName("thorke")
	assert.NoError(t, repo.ChangePassword(user, "new-opaque-hash"))

	refetched, _ := repo.GetUserByName("Thorke")
	assert.Equal(t, "new-opaque-hash", refetched.Password)
}

func TestAddReviewLandsInBothCollections(t *testing.T) {
	repo := NewRepository()
	game := newGame(t, 10, "Alpha")
	user := newUser(t, "thorke")
	assert.NoError(t, repo.AddGame(game))
	assert.NoError(t, repo.AddUser(user))

	review, err := domain.NewReview(user, game, 4, "solid")
	assert.NoError(t, err)
	assert.NoError(t, repo.AddReview(review))

	reviews, err := repo.GetReviews()
	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Len(t, game.Reviews, 1)
	assert.Len(t, user.Reviews, 1)
	assert.Same(t, reviews[0], game.Reviews[0])
	assert.Same(t, reviews[0], user.Reviews[0])
}

func TestRemoveUserCascades(t *testing.T) {
	repo := NewRepository()
	game := newGame(t, 10, "Alpha")
	user := newUser(t, "thorke")
	other := newUser(t, "fmercury")
	assert.NoError(t, repo.AddGame(game))
	assert.NoError(t, repo.AddUser(user))
	assert.NoError(t, repo.AddUser(other))

	mine, _ := domain.NewReview(user, game, 4, "mine")
	theirs, _ := domain.NewReview(other, game, 2, "theirs")
	assert.NoError(t, repo.AddReview(mine))
	assert.NoError(t, repo.AddReview(theirs))
	assert.NoError(t, repo.AddGameToWishlist("thorke", 10))

	assert.NoError(t, repo.RemoveUser(user))

	gone, err := repo.GetUserByName("thorke")
	assert.NoError(t, err)
	assert.Nil(t, gone)

	reviews, _ := repo.GetReviews()
	assert.Len(t, reviews, 1)
	assert.Equal(t, "theirs", reviews[0].Comment)
	assert.Len(t, game.Reviews, 1)
	assert.Equal(t, "theirs", game.Reviews[0].Comment)
}

func TestRemoveMissingUserFails(t *testing.T) {
	repo := NewRepository()
	err := repo.RemoveUser(newUser(t, "ghost"))
	assert.True(t, domain.HasCode(err, domain.ErrCodePreconditionFailed))
}

func TestWishlistIdempotence(t *testing.T) {
	repo := NewRepository()
	assert.NoError(t, repo.AddGame(newGame(t, 10, "Alpha")))
	assert.NoError(t, repo.AddUser(newUser(t, "thorke")))

	assert.NoError(t, repo.AddGameToWishlist("thorke", 10))
	assert.NoError(t, repo.AddGameToWishlist("thorke", 10))

	wishlist, err := repo.GetWishlist("thorke")
	assert.NoError(t, err)
	assert.Len(t, wishlist, 1)

	assert.NoError(t, repo.RemoveGameFromWishlist("thorke", 10))
	assert.NoError(t, repo.RemoveGameFromWishlist("thorke", 10))
	wishlist, err = repo.GetWishlist("thorke")
	assert.NoError(t, err)
	assert.Empty(t, wishlist)
}

func TestWishlistKeepsInsertionOrder(t *testing.T) {
	repo := NewRepository()
	assert.NoError(t, repo.AddGame(newGame(t, 30, "Charlie")))
	assert.NoError(t, repo.AddGame(newGame(t, 10, "Alpha")))
	assert.NoError(t, repo.AddGame(newGame(t, 20, "Bravo")))
	assert.NoError(t, repo.AddUser(newUser(t, "thorke")))

	assert.NoError(t, repo.AddGameToWishlist("thorke", 20))
	assert.NoError(t, repo.AddGameToWishlist("thorke", 30))
	assert.NoError(t, repo.AddGameToWishlist("thorke", 10))

	wishlist, err := repo.GetWishlist("thorke")
	assert.NoError(t, err)
	assert.Len(t, wishlist, 3)
	assert.Equal(t, []int{wishlist[0].ID, wishlist[1].ID, wishlist[2].ID}, []int{20, 30, 10})
}

func TestWishlistMissingReferences(t *testing.T) {
	repo := NewRepository()
	assert.NoError(t, repo.AddGame(newGame(t, 10, "Alpha")))
	assert.NoError(t, repo.AddUser(newUser(t, "thorke")))

	err := repo.AddGameToWishlist("ghost", 10)
	assert.True(t, domain.HasCode(err, domain.ErrCodePreconditionFailed))
	err = repo.AddGameToWishlist("thorke", 99)
	assert.True(t, domain.HasCode(err, domain.ErrCodePreconditionFailed))
}
