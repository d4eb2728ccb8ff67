package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edumart/edumart-back/internal/config"
	"github.com/edumart/edumart-back/internal/db"
)

// RequireAuth checks the bearer token: a missing or malformed header is
// 401, a token the verifier rejects is 403. On success the verified
// email is attached to the request context.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			return
		}

		claims, err := ParseToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. The role comes from the
// directory, not the token: a stale token issued before a demotion
// cannot keep admin access.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		admin, err := db.IsAdmin(context.Background(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check privileges"})
			return
		}
		if !admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
