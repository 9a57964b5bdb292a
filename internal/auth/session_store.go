package auth

import (
	"context"
	"fmt"
	"time"

	"globetrotter/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the interface for session binding operations.
// Bindings only record which token a user's current session was issued with;
// token validity itself stays signature-based.
type SessionStoreInterface interface {
	Bind(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error
	Clear(ctx context.Context, userID uint) error
}

// SessionStore keeps session bindings in Redis.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, userID)
}

// Bind records the token currently bound to the user's session, expiring with
// the token itself.
func (s *SessionStore) Bind(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
	return s.cache.Set(ctx, sessionKey(userID), []byte(tokenID), ttl)
}

// Clear removes the user's session binding. Clearing an absent binding is not
// an error.
func (s *SessionStore) Clear(ctx context.Context, userID uint) error {
	return s.cache.Delete(ctx, sessionKey(userID))
}
