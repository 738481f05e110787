package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when no live session exists for a token ID.
var ErrSessionNotFound = errors.New("session not found")

// Session is the process-external record of a signed-in admin. It is created
// on login, looked up on every authenticated request, and deleted on logout,
// so revoked tokens stop working before they expire.
type Session struct {
	UserID     int64     `json:"userId"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// SessionCache stores admin sessions in Redis keyed by JWT token ID (jti).
type SessionCache struct {
	redis *RedisClient
}

// NewSessionCache creates a new SessionCache.
func NewSessionCache(redis *RedisClient) *SessionCache {
	return &SessionCache{redis: redis}
}

func (c *SessionCache) key(tokenID string) string {
	return fmt.Sprintf("session:admin:%s", tokenID)
}

// Put stores a session with the given TTL (normally the token lifetime).
func (c *SessionCache) Put(ctx context.Context, tokenID string, s *Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return c.redis.Set(ctx, c.key(tokenID), string(data), ttl)
}

// Get returns the session for a token ID, or ErrSessionNotFound if the
// session was never created, expired, or was revoked by logout.
func (c *SessionCache) Get(ctx context.Context, tokenID string) (*Session, error) {
	raw, err := c.redis.Get(ctx, c.key(tokenID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// Delete revokes a session. Deleting a missing session is not an error.
func (c *SessionCache) Delete(ctx context.Context, tokenID string) error {
	return c.redis.Delete(ctx, c.key(tokenID))
}
