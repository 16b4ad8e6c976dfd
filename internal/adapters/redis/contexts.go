package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"arame_concierge/internal/domain"
)

// ContextStore keeps one conversation context per guest in redis. Expiry is
// enforced twice: a key TTL set on every write, and a LastUpdated check on
// read in case the stored TTL outlives a shortened idle threshold.
type ContextStore struct {
	c    *redis.Client
	idle time.Duration
	now  func() time.Time
}

func NewContextStore(c *redis.Client, idle time.Duration) *ContextStore {
	return &ContextStore{c: c, idle: idle, now: time.Now}
}

func contextKey(guestID string) string { return "ctx:" + guestID }

// Get returns the guest's context, or a fresh idle one when none exists or
// the stored one has expired.
func (s *ContextStore) Get(ctx context.Context, guestID string) (domain.ConversationContext, error) {
	now := s.now()
	b, err := s.c.Get(ctx, contextKey(guestID)).Bytes()
	if err == redis.Nil {
		return domain.NewContext(guestID, now), nil
	}
	if err != nil {
		return domain.ConversationContext{}, err
	}

	var conv domain.ConversationContext
	if err := json.Unmarshal(b, &conv); err != nil {
		// Corrupt state is unrecoverable; start over.
		return domain.NewContext(guestID, now), nil
	}
	if conv.Expired(now, s.idle) {
		// A guest returning after the idle window starts over, greeting included.
		return domain.NewContext(guestID, now), nil
	}
	return conv, nil
}

func (s *ContextStore) Put(ctx context.Context, conv domain.ConversationContext) error {
	b, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	// TTL slightly past the idle threshold so the read-side check, not the
	// eviction, decides expiry.
	ttl := s.idle + time.Minute
	return s.c.Set(ctx, contextKey(conv.GuestID), b, ttl).Err()
}

func (s *ContextStore) Clear(ctx context.Context, guestID string) error {
	return s.c.Del(ctx, contextKey(guestID)).Err()
}
