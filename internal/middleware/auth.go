// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"myflix-api/pkg/auth"
	"myflix-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UsernameKey = "username"
)

// Auth returns the authentication guard: it verifies the bearer token's
// signature and expiry and attaches the resolved username to the request
// context. On any failure it short-circuits with 401 before the handler runs.
// Each request is authenticated independently; no session state exists.
func Auth(jwtManager auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UsernameKey, claims.Username)

		c.Next()
	}
}

// GetUsername retrieves the authenticated username from the context.
// Returns empty string if not found.
func GetUsername(c *gin.Context) string {
	username, exists := c.Get(UsernameKey)
	if !exists {
		return ""
	}
	return username.(string)
}
