package contract

import (
	"context"
	"time"
)

// ITokenStore keeps the hash of each user's active refresh token. Logout or
// rotation replaces or removes the entry; lookups of absent entries surface
// entity.ErrNotFound.
type ITokenStore interface {
	SaveRefreshToken(ctx context.Context, userID, tokenHash string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, userID string) (string, error)
	DeleteRefreshToken(ctx context.Context, userID string) error
}
