package repositories

import (
	"errors"
	"fmt"
	"time"

	"context"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
)

// SessionRepository stores opaque session tokens in Redis.
// Redis handles both expiry (per-key TTL) and concurrent access from
// simultaneous requests.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a new repository with the given session TTL.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Save binds a token to a username for the session TTL.
func (r *SessionRepository) Save(ctx context.Context, token, username string) error {
	key := sessionKey(token)
	err := r.client.Set(ctx, key, username, r.ttl).Err()

	logger.Log.Infow("session set",
		"key", key,
		"username", username,
		"error", err,
	)

	return err
}

// Get returns the username bound to a token. An unknown or expired token
// yields an empty username and no error.
func (r *SessionRepository) Get(ctx context.Context, token string) (string, error) {
	key := sessionKey(token)

	username, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}

	logger.Log.Infow("session get",
		"key", key,
		"username", username,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return username, nil
}

// Delete invalidates a token. Deleting an absent token is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	key := sessionKey(token)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete",
		"key", key,
		"error", err,
	)

	return err
}
