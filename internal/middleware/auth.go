package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cartly-be/internal/repository"
	"cartly-be/internal/token"
)

// Context keys set by AuthMiddleware for downstream handlers
const (
	ContextUserIDKey = "user_id"
	ContextUserKey   = "user"
)

// AuthMiddleware requires a valid bearer token and resolves the caller's
// identity before the handler runs. Verification failures are reported with a
// fixed message; internal detail stays server-side.
func AuthMiddleware(tokenService *token.Service, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Not authorized, no token",
			})
			return
		}

		userID, err := tokenService.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Not authorized, invalid token",
			})
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Not authorized, invalid token",
			})
			return
		}

		// Identity carried forward without the password hash
		user.PasswordHash = ""
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)

		c.Next()
	}
}
