package middleware

import (
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole lets through callers whose role is at least min
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetRole(c).AtLeast(min) {
			utils.Forbidden(c, "you do not have permission to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminMiddleware administrators only
func AdminMiddleware() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// EditorMiddleware editors and administrators
func EditorMiddleware() gin.HandlerFunc {
	return RequireRole(models.RoleEditor)
}
