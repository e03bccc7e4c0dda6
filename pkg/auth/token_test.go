package auth_test

import (
	"strings"
	"testing"
	"time"

	"go-profile-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken("jane@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.VerifyAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", subject)
}

func TestExpiredToken(t *testing.T) {
	svc := auth.NewTokenService("test-secret", -time.Minute)

	token, err := svc.GenerateAccessToken("jane@example.com")
	assert.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTamperedToken(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken("jane@example.com")
	assert.NoError(t, err)

	// Flip a character in the signature segment
	tampered := token[:len(token)-2] + "xx"
	_, err = svc.VerifyAccessToken(tampered)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestWrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-a", time.Hour)
	verifier := auth.NewTokenService("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken("jane@example.com")
	assert.NoError(t, err)

	_, err = verifier.VerifyAccessToken(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestRejectsNonHMACAlgorithm(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	// Unsigned token claiming alg "none"
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "jane@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestRejectsMissingSubject(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = svc.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, auth.CheckPassword(hash, "secret123"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
	assert.False(t, auth.CheckPassword("", "secret123"))
}
