package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrFlowConflict marks a duplicate completion attempt for a flow
	// instance that already produced a record.
	ErrFlowConflict = errors.New("flow already completed")
	// ErrUpstreamUnavailable marks a degraded external signal; callers treat
	// the signal as optional, never fatal.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ContextStore persists per-guest conversational state. Get returns a fresh
// idle context when none exists or the stored one has expired. Callers must
// serialize get/put per guest; the store itself is last-writer-wins.
type ContextStore interface {
	Get(ctx context.Context, guestID string) (ConversationContext, error)
	Put(ctx context.Context, c ConversationContext) error
	Clear(ctx context.Context, guestID string) error
}

// GuestDirectory is the PMS-owned guest registry. The core reads it; only the
// check-in trigger writes.
type GuestDirectory interface {
	GetGuest(ctx context.Context, id string) (Guest, error)
	UpsertGuest(ctx context.Context, g Guest) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, o RoomServiceOrder) (int64, error)
	OrderExists(ctx context.Context, flowID string) (bool, error)
	GetOrderByFlow(ctx context.Context, flowID string) (RoomServiceOrder, error)
}

type TransportRepository interface {
	CreateRequest(ctx context.Context, r TransportRequest) (int64, error)
	RequestExists(ctx context.Context, flowID string) (bool, error)
}

// WeatherProvider and TravelProvider are the raw outbound clients; the signal
// gateway in app wraps them with caching, timeout, and fallback.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, at Coords) (Weather, error)
}

type TravelProvider interface {
	Travel(ctx context.Context, origin, dest Coords) (TravelInfo, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ContentStore serves the static hotel content: FAQ entries, room service
// menu, and the local place catalog.
type ContentStore interface {
	FaqTopics() []FaqTopic
	FaqAnswer(topic string) (string, bool)
	Menu() []MenuItem
	Places() []Place
}
