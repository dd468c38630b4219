package auth

import (
	"testing"
	"time"

	"github.com/saradorri/gamecatalog/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	token, err := svc.GenerateToken("thorke")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "thorke", claims.Username)
	assert.Equal(t, "game-catalog", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	other := NewJWTService(&config.JWTConfig{Secret: "another-secret", Expiry: time.Hour})

	token, err := svc.GenerateToken("thorke")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})

	token, err := svc.GenerateToken("thorke")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
