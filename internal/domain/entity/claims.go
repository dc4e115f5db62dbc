package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity fields extracted from a verified token.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
