package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/handler/http/dto"
)

// RequireRoles rejects requests whose authenticated identity has none of the
// given roles. Must run after AuthMiddleware.
func RequireRoles(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
			return
		}
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden"})
	}
}
