package user

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/gamecatalog/internal/config"
	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/domain/mocks"
	"github.com/saradorri/gamecatalog/internal/infrastructure/auth"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	"github.com/saradorri/gamecatalog/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestUseCase(t *testing.T) (domain.UserUseCase, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	return NewUseCase(repo, jwtSvc, logger.NewLogger("test", "debug")), repo
}

func seedGame(t *testing.T, repo *memory.Repository, id int, title string) *domain.Game {
	t.Helper()
	game, err := domain.NewGame(id, title)
	assert.NoError(t, err)
	assert.NoError(t, repo.AddGame(game))
	return game
}

func TestRegisterHashesPassword(t *testing.T) {
	uc, repo := newTestUseCase(t)

	account, err := uc.Register("ThorKe", "cLQ^C#oFXloS")
	assert.NoError(t, err)
	assert.Equal(t, "thorke", account.Username)
	assert.NotEqual(t, "cLQ^C#oFXloS", account.Password, "stores only see the hash")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("cLQ^C#oFXloS")))

	stored, err := repo.GetUserByName("thorke")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Register("thorke", "cLQ^C#oFXloS")
	assert.NoError(t, err)
	_, err = uc.Register("THORKE", "another-password")
	assert.True(t, domain.HasCode(err, domain.ErrCodeDuplicateKey))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Register("thorke", "short")
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidEntity))
}

func TestAuthenticate(t *testing.T) {
	uc, _ := newTestUseCase(t)
	_, err := uc.Register("thorke", "cLQ^C#oFXloS")
	assert.NoError(t, err)

	token, err := uc.Authenticate("Thorke", "cLQ^C#oFXloS")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = uc.Authenticate("thorke", "wrong-password")
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidCredentials))
	_, err = uc.Authenticate("nobody", "cLQ^C#oFXloS")
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidCredentials))
}

func TestChangePasswordVisibleThroughDifferentCaseLookup(t *testing.T) {
	uc, _ := newTestUseCase(t)
	_, err := uc.Register("thorke", "cLQ^C#oFXloS")
	assert.NoError(t, err)

	assert.NoError(t, uc.ChangePassword("THORKE", "new-password-1"))

	_, err = uc.Authenticate("ThOrKe", "new-password-1")
	assert.NoError(t, err)
	_, err = uc.Authenticate("thorke", "cLQ^C#oFXloS")
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidCredentials))
}

func TestChangePasswordMissingUser(t *testing.T) {
	uc, _ := newTestUseCase(t)
	err := uc.ChangePassword("ghost", "new-password-1")
	assert.True(t, domain.HasCode(err, domain.ErrCodePreconditionFailed))
}

func TestDeleteAccountCascades(t *testing.T) {
	uc, repo := newTestUseCase(t)
	game := seedGame(t, repo, 435790, "10 Second Ninja X")
	_, err := uc.Register("thorke", "cLQ^C#oFXloS")
	assert.NoError(t, err)
	_, err = uc.AddReview("thorke", 435790, 4, "tight controls")
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteAccount("thorke"))

	gone, err := uc.GetUser("thorke")
	assert.NoError(t, err)
	assert.Nil(t, gone)
	assert.Empty(t, game.Reviews)

	reviews, err := repo.GetReviews()
	assert.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestAddReview(t *testing.T) {
	uc, repo := newTestUseCase(t)
	game := seedGame(t, repo, 435790, "10 Second Ninja X")
	account, err := uc.Register("thorke", "cLQ^C#oFXloS")
	assert.NoError(t, err)

	review, err := uc.AddReview("Thorke", 435790, 4, "tight controls")
	assert.NoError(t, err)
	assert.Equal(t, "thorke", review.Username())
	assert.Len(t, game.Reviews, 1)
	assert.Len(t, account.Reviews, 1)
}

func TestAddReviewGuards(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedGame(t, repo, 435790, "10 Second Ninja X")
	_, err := uc.Register("thorke", "cLQ^C#oFXloS")
	assert.NoError(t, err)

	_, err = uc.AddReview("thorke", 999999, 4, "no such game")
	assert.True(t, domain.HasCode(err, domain.ErrCodePreconditionFailed))
	_, err = uc.AddReview("ghost", 435790, 4, "no such user")
	assert.True(t, domain.HasCode(err, domain.ErrCodePreconditionFailed))
	_, err = uc.AddReview("thorke", 435790, 6, "rating out of range")
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidEntity))

	_, err = uc.AddReview("thorke", 435790, 4, "first")
	assert.NoError(t, err)
	_, err = uc.AddReview("THORKE", 435790, 2, "second")
	assert.True(t, domain.HasCode(err, domain.ErrCodeDuplicateKey), "one review per user per game")
}

func TestAverageRating(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedGame(t, repo, 435790, "10 Second Ninja X")
	_, err := uc.Register("thorke", "cLQ^C#oFXloS")
	assert.NoError(t, err)
	_, err = uc.Register("fmercury", "mvNNbc1eLA$i")
	assert.NoError(t, err)

	_, ok, err := uc.AverageRating(435790)
	assert.NoError(t, err)
	assert.False(t, ok, "no reviews yet")

	_, err = uc.AddReview("thorke", 435790, 4, "good")
	assert.NoError(t, err)
	_, err = uc.AddReview("fmercury", 435790, 3, "fine")
	assert.NoError(t, err)

	avg, ok, err := uc.AverageRating(435790)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.5, avg)
}

func TestWishlistRoundTrip(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedGame(t, repo, 435790, "10 Second Ninja X")
	_, err := uc.Register("thorke", "cLQ^C#oFXloS")
	assert.NoError(t, err)

	assert.NoError(t, uc.AddToWishlist("thorke", 435790))
	assert.NoError(t, uc.AddToWishlist("thorke", 435790))

	wishlist, err := uc.GetWishlist("thorke")
	assert.NoError(t, err)
	assert.Len(t, wishlist, 1)

	assert.NoError(t, uc.RemoveFromWishlist("thorke", 435790))
	wishlist, err = uc.GetWishlist("thorke")
	assert.NoError(t, err)
	assert.Empty(t, wishlist)
}

func TestRegisterSurfacesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockRepo.EXPECT().GetUserByName("thorke").Return(nil, domain.NewStorageError("lookup user", errors.New("connection refused")))

	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	uc := NewUseCase(mockRepo, jwtSvc, logger.NewLogger("test", "debug"))

	_, err := uc.Register("thorke", "cLQ^C#oFXloS")
	assert.True(t, domain.HasCode(err, domain.ErrCodeStorageUnavailable))
}
