package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGameValidation(t *testing.T) {
	game, err := NewGame(435790, "  10 Second Ninja X  ")
	assert.NoError(t, err)
	assert.Equal(t, 435790, game.ID)
	assert.Equal(t, "10 Second Ninja X", game.Title)

	_, err = NewGame(-1, "Broken")
	assert.Error(t, err)
	assert.True(t, HasCode(err, ErrCodeInvalidEntity))
}

func TestGameSetters(t *testing.T) {
	game, _ := NewGame(1, "Test Game")

	assert.NoError(t, game.SetPrice(9.99))
	assert.Equal(t, 9.99, game.Price)
	err := game.SetPrice(-1)
	assert.True(t, HasCode(err, ErrCodeInvalidEntity))
	assert.Equal(t, 9.99, game.Price)

	assert.NoError(t, game.SetReleaseDate("Oct 21, 2008"))
	assert.Equal(t, "Oct 21, 2008", game.ReleaseDate)
	err = game.SetReleaseDate("2008-10-21")
	assert.True(t, HasCode(err, ErrCodeInvalidEntity))
	assert.Equal(t, "Oct 21, 2008", game.ReleaseDate)
}

func TestGamePublisherAttachDetach(t *testing.T) {
	game, _ := NewGame(1, "Test Game")

	game.SetPublisher(NewPublisher(" Activision "))
	assert.NotNil(t, game.Publisher)
	assert.Equal(t, "Activision", game.Publisher.Name)

	game.SetPublisher(NewPublisher("   "))
	assert.Nil(t, game.Publisher)
	assert.Nil(t, game.PublisherName)
}

func TestGameGenres(t *testing.T) {
	game, _ := NewGame(1, "Test Game")

	game.AddGenre(NewGenre("Action"))
	game.AddGenre(NewGenre("Action"))
	game.AddGenre(NewGenre(""))
	game.AddGenre(NewGenre("Indie"))
	assert.Len(t, game.Genres, 2)
	assert.True(t, game.HasGenre("Action"))
	assert.False(t, game.HasGenre("Strategy"))

	game.RemoveGenre(NewGenre("Action"))
	assert.Len(t, game.Genres, 1)
	game.RemoveGenre(NewGenre("Strategy"))
	assert.Len(t, game.Genres, 1)
}

func TestNewUserNormalization(t *testing.T) {
	user, err := NewUser("  ThorKe  ", "opaque-hash")
	assert.NoError(t, err)
	assert.Equal(t, "thorke", user.Username)

	_, err = NewUser("   ", "opaque-hash")
	assert.True(t, HasCode(err, ErrCodeInvalidEntity))

	_, err = NewUser("thorke", "short")
	assert.True(t, HasCode(err, ErrCodeInvalidEntity))
}

func TestUserFavouritesIdempotent(t *testing.T) {
	user, _ := NewUser("thorke", "opaque-hash")
	game, _ := NewGame(1, "Test Game")

	user.AddFavouriteGame(game)
	user.AddFavouriteGame(game)
	assert.Len(t, user.FavouriteGames, 1)
	assert.True(t, user.HasFavourite(1))

	user.RemoveFavouriteGame(game)
	assert.Empty(t, user.FavouriteGames)
	user.RemoveFavouriteGame(game)
	assert.Empty(t, user.FavouriteGames)
}

func TestNewReviewValidation(t *testing.T) {
	user, _ := NewUser("thorke", "opaque-hash")
	game, _ := NewGame(1, "Test Game")

	_, err := NewReview(nil, game, 3, "fine")
	assert.True(t, HasCode(err, ErrCodeInvalidEntity))
	_, err = NewReview(user, nil, 3, "fine")
	assert.True(t, HasCode(err, ErrCodeInvalidEntity))
	_, err = NewReview(user, game, 6, "fine")
	assert.True(t, HasCode(err, ErrCodeInvalidEntity))

	review, err := NewReview(user, game, 5, "  great  ")
	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "great", review.Comment)
	assert.Equal(t, "thorke", review.Username())
}

func TestReviewEqualByOwnersAndComment(t *testing.T) {
	user, _ := NewUser("thorke", "opaque-hash")
	game, _ := NewGame(1, "Test Game")

	a, _ := NewReview(user, game, 4, "good")
	b, _ := NewReview(user, game, 2, "good")
	c, _ := NewReview(user, game, 4, "different")

	assert.True(t, a.Equal(b), "rating does not participate in identity")
	assert.False(t, a.Equal(c))

	game.AddReview(a)
	game.AddReview(b)
	assert.Len(t, game.Reviews, 1)
}

func TestCatalogErrorCodes(t *testing.T) {
	err := NewDuplicateKeyError("username already registered")
	catalogErr, ok := IsCatalogError(err)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeDuplicateKey, catalogErr.Code)
	assert.True(t, HasCode(err, ErrCodeDuplicateKey))
	assert.False(t, HasCode(err, ErrCodeInvalidEntity))
}
