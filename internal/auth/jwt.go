package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs and verifies the bearer tokens handed out at login.
type TokenIssuer struct {
	Secret     []byte
	Issuer     string
	Audience   string
	ExpireDays int
}

type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

func NewTokenIssuer(secret, issuer, audience string, expireDays int) *TokenIssuer {
	return &TokenIssuer{
		Secret:     []byte(secret),
		Issuer:     issuer,
		Audience:   audience,
		ExpireDays: expireDays,
	}
}

// Issue returns a signed token and its lifetime in seconds. The caller's
// roles are embedded as a claim so each request carries a role snapshot
// taken at login time.
func (t *TokenIssuer) Issue(userID, email string, roles []string) (string, int, error) {
	expires := time.Now().Add(time.Duration(t.ExpireDays) * 24 * time.Hour)
	claims := Claims{
		Email: email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    t.Issuer,
			Audience:  jwt.ClaimStrings{t.Audience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.Secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int(time.Until(expires).Seconds()), nil
}

func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.Secret, nil
	},
		jwt.WithIssuer(t.Issuer),
		jwt.WithAudience(t.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
