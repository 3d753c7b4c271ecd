package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("secret", time.Hour)
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "a@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("one", time.Hour).GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = NewHMACService("two", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_RejectsOtherTokenTypes(t *testing.T) {
	c := Claims{
		UserID:    uuid.New(),
		TokenType: "refresh",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewHMACService("secret", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_Unconfigured(t *testing.T) {
	svc := NewHMACService("", time.Hour)
	_, err := svc.GenerateAccessToken(uuid.New(), "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = svc.ValidateToken("x.y.z")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
