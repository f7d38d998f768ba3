package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

// SessionStore tracks revoked session tokens so logout terminates a session
// before its token expires.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisSessionStore struct {
	client *redis.Client
}

// NewSessionStore returns a Redis-backed revocation store.
func NewSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

// Revoke marks the token id revoked for the remaining token lifetime. The
// entry expires with the token, so the denylist never grows unbounded.
func (s *redisSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s.client == nil {
		return errors.New("redis client not configured")
	}
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token id has been revoked.
func (s *redisSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.client == nil {
		return false, nil
	}
	err := s.client.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
