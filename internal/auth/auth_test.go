package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer("teszt-titok", "jobboard", "jobboard-api", 7)
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := testIssuer()

	token, expiresIn, err := issuer.Issue("user-1", "user@demo.hu", []string{"JobSeeker", "Admin"})
	require.NoError(t, err)
	assert.Greater(t, expiresIn, 0)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user@demo.hu", claims.Email)
	assert.Equal(t, []string{"JobSeeker", "Admin"}, claims.Roles)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := testIssuer()
	token, _, err := issuer.Issue("user-1", "user@demo.hu", nil)
	require.NoError(t, err)

	other := NewTokenIssuer("masik-titok", "jobboard", "jobboard-api", 7)
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuerAndAudience(t *testing.T) {
	issuer := testIssuer()
	foreign := NewTokenIssuer("teszt-titok", "valaki-mas", "jobboard-api", 7)
	token, _, err := foreign.Issue("user-1", "user@demo.hu", nil)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := testIssuer()
	claims := Claims{
		Email: "user@demo.hu",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    issuer.Issuer,
			Audience:  jwt.ClaimStrings{issuer.Audience},
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(issuer.Secret)
	require.NoError(t, err)

	_, err = issuer.Parse(expired)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := testIssuer().Parse("nem.egy.token")
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("titok123")
	require.NoError(t, err)
	assert.NotEqual(t, "titok123", hash)

	assert.True(t, CheckPassword(hash, "titok123"))
	assert.False(t, CheckPassword(hash, "rossz"))
}
