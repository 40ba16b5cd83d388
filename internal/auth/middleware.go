package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard/internal/models"
)

const identityKey = "identity"

// Identity is the caller's id and role snapshot, taken once when the
// request's token is verified. Operations check this snapshot rather than
// re-reading roles mid-request.
type Identity struct {
	UserID string
	Email  string
	Roles  []string
}

func (i Identity) HasRole(name string) bool {
	for _, r := range i.Roles {
		if r == name {
			return true
		}
	}
	return false
}

func (i Identity) IsAdmin() bool { return i.HasRole(models.RoleAdmin) }

// IdentityFrom returns the verified caller identity, if any.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Optional verifies a bearer token when one is present but lets anonymous
// requests through. Used on public endpoints whose responses still vary by
// caller (e.g. unapproved job visibility).
func Optional(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := issuer.Parse(token); err == nil {
				c.Set(identityKey, Identity{
					UserID: claims.Subject,
					Email:  claims.Email,
					Roles:  claims.Roles,
				})
			}
		}
		c.Next()
	}
}

// Required rejects requests without a valid bearer token.
func Required(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"title": "Authentication required"})
			return
		}
		claims, err := issuer.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"title": "Invalid or expired token"})
			return
		}
		c.Set(identityKey, Identity{
			UserID: claims.Subject,
			Email:  claims.Email,
			Roles:  claims.Roles,
		})
		c.Next()
	}
}

// RequireRoles allows the request through when the caller holds any of the
// given roles (inclusive-OR, matching the route table).
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"title": "Authentication required"})
			return
		}
		for _, role := range roles {
			if ident.HasRole(role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"title": "Insufficient role"})
	}
}
