package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/handler/http/dto"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

const identityKey = "identity"

// AuthMiddleware validates the bearer token and resolves it to a fresh user
// record. Role and membership checks downstream always see current values,
// not whatever was baked into the token at issue time.
func AuthMiddleware(userUseCase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization header required"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid authorization header"})
			return
		}

		user, err := userUseCase.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired token"})
			return
		}

		SetIdentity(c, entity.Identity{
			ID:               user.ID,
			Role:             user.Role,
			MembershipStatus: user.MembershipStatus,
		})
		c.Next()
	}
}

// SetIdentity stores the authenticated identity on the request context.
func SetIdentity(c *gin.Context, identity entity.Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity returns the authenticated identity set by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (entity.Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return entity.Identity{}, false
	}
	identity, ok := val.(entity.Identity)
	return identity, ok
}
