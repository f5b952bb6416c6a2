package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
)

const identityKey = "identity"

// Identity is the resolved caller placed in the gin context by RequireUser.
type Identity struct {
	Email string
	Role  string
}

// IdentityFrom returns the caller identity set by RequireUser. The second
// return is false when the middleware did not run (programming error).
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// SetIdentity injects an identity directly; exported for handler tests.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// RequireUser authenticates the bearer credential and stores the resolved
// identity in the request context. Requests without a valid token get 401.
func RequireUser(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			unauthorized(c)
			return
		}
		id, err := tokens.Verify(raw)
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(identityKey, Identity{Email: id.Email, Role: id.Role})
		c.Next()
	}
}

// RequireAdmin rejects callers whose role is not admin. Must run after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			unauthorized(c)
			return
		}
		if id.Role != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
