package middleware

import (
	"strings"

	"patrimonio-go/internal/models"
	"patrimonio-go/internal/repository"
	"patrimonio-go/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
	ctxRole     = "role"
)

// AuthMiddleware validates the bearer access token and loads the caller.
// The role comes from the database, not the token, so role changes and
// deleted accounts take effect immediately.
func AuthMiddleware(jwtManager *utils.JWTManager, userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "authentication credentials were not provided")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateTokenType(strings.TrimSpace(parts[1]), utils.TokenTypeAccess)
		if err != nil {
			utils.Unauthorized(c, "token is invalid or expired")
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil || !user.IsActive {
			utils.Unauthorized(c, "user not found or inactive")
			c.Abort()
			return
		}

		c.Set(ctxUserID, user.ID)
		c.Set(ctxUsername, user.Username)
		c.Set(ctxRole, user.Profile.Role)

		c.Next()
	}
}

// GetUserID returns the authenticated user id
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// GetUsername returns the authenticated username
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ctxUsername)
	if !exists {
		return "", false
	}
	name, ok := username.(string)
	return name, ok
}

// GetRole returns the authenticated user's role
func GetRole(c *gin.Context) models.Role {
	role, exists := c.Get(ctxRole)
	if !exists {
		return ""
	}
	r, _ := role.(models.Role)
	return r
}
