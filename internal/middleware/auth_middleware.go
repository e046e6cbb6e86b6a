package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kunstnord/gallery-api/internal/service"
)

// AuthMiddleware authenticates the opaque bearer token against the token
// store and places the resolved user into the request context. Operations
// downstream read the caller's identity from there, never from globals.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header required",
			})
			c.Abort()
			return
		}

		// 2. Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid authorization format. Use: Bearer <token>",
			})
			c.Abort()
			return
		}

		// 3. Resolve the token to its user
		user, err := authService.Authenticate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or revoked token",
			})
			c.Abort()
			return
		}

		// 4. Expose caller identity and the raw token (logout revokes it)
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("access_token", tokenString)

		c.Next()
	}
}
