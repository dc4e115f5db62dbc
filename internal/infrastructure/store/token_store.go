package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
)

// TokenStore keeps hashed refresh tokens in redis keyed by user id. One
// session per user: issuing a new refresh token replaces the previous one.
type TokenStore struct {
	client *redis.Client
}

var _ contract.ITokenStore = (*TokenStore)(nil)

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:user:%s", userID)
}

// SaveRefreshToken stores the hash of a refresh token with the given TTL.
func (s *TokenStore) SaveRefreshToken(ctx context.Context, userID, tokenHash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(userID), tokenHash, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken returns the stored token hash for a user, or
// entity.ErrNotFound when no session exists.
func (s *TokenStore) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	val, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("no session for user: %w", entity.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get refresh token: %w", err)
	}
	return val, nil
}

// DeleteRefreshToken removes a user's session. Deleting a missing session is
// not an error.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
