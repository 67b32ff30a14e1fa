package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-infinity/store"
	"hotel-infinity/utils"
)

const sessionTokenKey = "sessionToken"

// RequireAdmin rejects requests without a valid bearer token for the live
// admin session. The store re-checks the token on every mutation; this
// middleware just fails fast and stashes the token for handlers.
func RequireAdmin(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if _, ok := s.SessionByToken(token); !ok {
			utils.JSONError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// SessionToken returns the token stashed by RequireAdmin.
func SessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}
