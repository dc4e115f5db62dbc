package jwt

import (
	"github.com/google/uuid"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a user.
func (a *JWTServiceAdapter) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return a.mgr.GenerateAccessToken(userID, string(role))
}

// GenerateRefreshToken issues a refresh token for a user.
func (a *JWTServiceAdapter) GenerateRefreshToken(userID string) (string, error) {
	tokenID := uuid.New().String()
	return a.mgr.GenerateRefreshToken(tokenID, userID)
}

// ParseAccessToken validates an access token and returns Claims.
func (a *JWTServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	customClaims, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		UserID:           customClaims.Subject,
		Role:             entity.UserRole(customClaims.Role),
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}

// ParseRefreshToken validates a refresh token and returns Claims.
func (a *JWTServiceAdapter) ParseRefreshToken(tokenStr string) (*entity.Claims, error) {
	registeredClaims, err := a.mgr.VerifyRefreshToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		UserID:           registeredClaims.Subject,
		RegisteredClaims: *registeredClaims,
	}, nil
}
