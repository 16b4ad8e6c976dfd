package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "arame_concierge/internal/adapters/redis"
	"arame_concierge/internal/domain"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestContextStore_FreshContextForUnknownGuest(t *testing.T) {
	rdb, _ := newTestClient(t)
	store := redisad.NewContextStore(rdb, 15*time.Minute)

	conv, err := store.Get(context.Background(), "g-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if conv.GuestID != "g-1" || conv.State != domain.StateIdle || conv.InFlow() {
		t.Fatalf("unexpected context: %+v", conv)
	}
}

func TestContextStore_RoundTrip(t *testing.T) {
	rdb, _ := newTestClient(t)
	store := redisad.NewContextStore(rdb, 15*time.Minute)
	ctx := context.Background()

	conv := domain.NewContext("g-1", time.Now())
	conv.Greeted = true
	conv.Flow = domain.FlowRoomService
	conv.FlowID = "flow-abc"
	conv.State = domain.StateCollecting
	conv.PendingSlot = domain.SlotItem
	conv.Items = []domain.OrderItem{{Name: "Tiramisú", Quantity: 2, Price: 18000}}

	if err := store.Put(ctx, conv); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := store.Get(ctx, "g-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FlowID != "flow-abc" || got.State != domain.StateCollecting || got.PendingSlot != domain.SlotItem {
		t.Fatalf("unexpected context: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Tiramisú" || got.Items[0].Quantity != 2 {
		t.Fatalf("items did not survive the round trip: %+v", got.Items)
	}
}

func TestContextStore_IdleExpiryReturnsFreshContext(t *testing.T) {
	rdb, mr := newTestClient(t)
	store := redisad.NewContextStore(rdb, 15*time.Minute)
	ctx := context.Background()

	conv := domain.NewContext("g-1", time.Now().Add(-20*time.Minute))
	conv.Greeted = true
	conv.Flow = domain.FlowTransport
	conv.FlowID = "flow-old"
	if err := store.Put(ctx, conv); err != nil {
		t.Fatalf("put: %v", err)
	}

	// LastUpdated is 20m old: the lazy check discards it even though the
	// redis key has not been evicted yet
	got, err := store.Get(ctx, "g-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.InFlow() || got.Greeted {
		t.Fatalf("expected fresh context, got %+v", got)
	}

	// and the key TTL eventually evicts on its own
	mr.FastForward(17 * time.Minute)
	if mr.Exists("ctx:g-1") {
		t.Fatalf("expected redis key to expire")
	}
}

func TestContextStore_Clear(t *testing.T) {
	rdb, _ := newTestClient(t)
	store := redisad.NewContextStore(rdb, 15*time.Minute)
	ctx := context.Background()

	conv := domain.NewContext("g-1", time.Now())
	conv.Greeted = true
	if err := store.Put(ctx, conv); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Clear(ctx, "g-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := store.Get(ctx, "g-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Greeted {
		t.Fatalf("expected cleared context")
	}
}

func TestCache_RoundTripAndMiss(t *testing.T) {
	rdb, _ := newTestClient(t)
	cache := redisad.NewFromClient(rdb)
	ctx := context.Background()

	var w domain.Weather
	hit, err := cache.Get(ctx, "signal:weather", &w)
	if err != nil || hit {
		t.Fatalf("expected clean miss, hit=%v err=%v", hit, err)
	}

	if err := cache.Set(ctx, "signal:weather", domain.Weather{Condition: "Rain", Temperature: 17.5}, 600); err != nil {
		t.Fatalf("set: %v", err)
	}
	hit, err = cache.Get(ctx, "signal:weather", &w)
	if err != nil || !hit {
		t.Fatalf("expected hit, hit=%v err=%v", hit, err)
	}
	if !w.Raining() || w.Temperature != 17.5 {
		t.Fatalf("unexpected cached weather: %+v", w)
	}
}
