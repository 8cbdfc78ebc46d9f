package cache

import (
	"context"
	"fmt"
	"time"
)

// SessionStore tracks issued token ids so that logout and refresh can revoke them.
type SessionStore struct {
	cache Cache
}

func NewSessionStore(cache Cache) *SessionStore {
	return &SessionStore{cache: cache}
}

func sessionKey(kind, tokenID string) string {
	return fmt.Sprintf("%s_token:%s", kind, tokenID)
}

func (s *SessionStore) Save(ctx context.Context, kind, tokenID, userID string, ttl time.Duration) error {
	return s.cache.Set(ctx, sessionKey(kind, tokenID), []byte(userID), ttl)
}

// Owner returns the user id the token was issued to, or "" when revoked or expired.
func (s *SessionStore) Owner(ctx context.Context, kind, tokenID string) (string, error) {
	value, ok, err := s.cache.Get(ctx, sessionKey(kind, tokenID))
	if err != nil || !ok {
		return "", err
	}
	return string(value), nil
}

func (s *SessionStore) Revoke(ctx context.Context, kind string, tokenIDs ...string) error {
	keys := make([]string, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		if id != "" {
			keys = append(keys, sessionKey(kind, id))
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return s.cache.Delete(ctx, keys...)
}
