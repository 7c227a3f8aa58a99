package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tripforge/pkg/utils"
)

// SessionContext resolves the planning-session identity for the selection,
// search, and itinerary routes. A valid bearer token yields an
// authenticated session keyed by the verified email; otherwise a
// client-generated X-Session-Key header yields an anonymous, in-memory-only
// session. Requests carrying neither still pass through: handlers that
// need a session reject them with utils.ErrSessionRequired.
func SessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil {
				c.Set("session_key", claims.Email)
				c.Set("session_authenticated", true)
				c.Next()
				return
			}
		}

		if sessionKey := c.GetHeader("X-Session-Key"); sessionKey != "" {
			c.Set("session_key", sessionKey)
			c.Set("session_authenticated", false)
		}

		c.Next()
	}
}
