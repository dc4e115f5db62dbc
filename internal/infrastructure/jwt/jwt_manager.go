package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims is the access-token payload: subject plus the role at issue
// time. Role-sensitive decisions re-read the user record, so a stale role in
// the token cannot grant more than the database allows.
type CustomClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HMAC-signed tokens.
type JWTManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTManager creates a manager signing with the given secret.
func NewJWTManager(secret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken issues a short-lived access token.
func (m *JWTManager) GenerateAccessToken(userID, role string) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// GenerateRefreshToken issues a long-lived refresh token with its own id.
func (m *JWTManager) GenerateRefreshToken(tokenID, userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        tokenID,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates an access token and returns its claims.
func (m *JWTManager) VerifyToken(tokenStr string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	if err := m.parseInto(tokenStr, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// VerifyRefreshToken validates a refresh token and returns its claims.
func (m *JWTManager) VerifyRefreshToken(tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if err := m.parseInto(tokenStr, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *JWTManager) parseInto(tokenStr string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}
