package usecase

import (
	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// JWTService abstracts token issuing and verification for the usecases.
type JWTService interface {
	GenerateAccessToken(userID string, role entity.UserRole) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ParseAccessToken(tokenStr string) (*entity.Claims, error)
	ParseRefreshToken(tokenStr string) (*entity.Claims, error)
}
