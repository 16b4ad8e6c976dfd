package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"arame_concierge/internal/app"
	"arame_concierge/internal/content"
	"arame_concierge/internal/domain"
)

// ---- fakes ----

type memGuests struct {
	mu     sync.Mutex
	guests map[string]domain.Guest
}

func newMemGuests(gs ...domain.Guest) *memGuests {
	m := &memGuests{guests: map[string]domain.Guest{}}
	for _, g := range gs {
		m.guests[g.ID] = g
	}
	return m
}

func (m *memGuests) GetGuest(_ context.Context, id string) (domain.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.guests[id]
	if !ok {
		return domain.Guest{}, domain.ErrNotFound
	}
	return g, nil
}

func (m *memGuests) UpsertGuest(_ context.Context, g domain.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guests[g.ID] = g
	return nil
}

type memContexts struct {
	mu    sync.Mutex
	convs map[string]domain.ConversationContext
}

func newMemContexts() *memContexts {
	return &memContexts{convs: map[string]domain.ConversationContext{}}
}

func (m *memContexts) Get(_ context.Context, guestID string) (domain.ConversationContext, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conv, ok := m.convs[guestID]
	if !ok {
		return domain.NewContext(guestID, time.Now()), nil
	}
	return conv, nil
}

func (m *memContexts) Put(_ context.Context, conv domain.ConversationContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.convs[conv.GuestID] = conv
	return nil
}

func (m *memContexts) Clear(_ context.Context, guestID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.convs, guestID)
	return nil
}

// memOrders counts inserts and can inject failures, to pin down the
// exactly-once behavior.
type memOrders struct {
	mu      sync.Mutex
	byFlow  map[string]domain.RoomServiceOrder
	inserts int
	nextID  int64
	failing bool
}

func newMemOrders() *memOrders { return &memOrders{byFlow: map[string]domain.RoomServiceOrder{}} }

func (m *memOrders) CreateOrder(_ context.Context, o domain.RoomServiceOrder) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return 0, errors.New("db down")
	}
	if _, ok := m.byFlow[o.FlowID]; ok {
		return 0, domain.ErrFlowConflict
	}
	m.inserts++
	m.nextID++
	o.ID = m.nextID
	m.byFlow[o.FlowID] = o
	return o.ID, nil
}

func (m *memOrders) OrderExists(_ context.Context, flowID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byFlow[flowID]
	return ok, nil
}

func (m *memOrders) GetOrderByFlow(_ context.Context, flowID string) (domain.RoomServiceOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byFlow[flowID]
	if !ok {
		return domain.RoomServiceOrder{}, domain.ErrNotFound
	}
	return o, nil
}

type memTransport struct {
	mu      sync.Mutex
	byFlow  map[string]domain.TransportRequest
	inserts int
	nextID  int64
}

func newMemTransport() *memTransport {
	return &memTransport{byFlow: map[string]domain.TransportRequest{}}
}

func (m *memTransport) CreateRequest(_ context.Context, r domain.TransportRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byFlow[r.FlowID]; ok {
		return 0, domain.ErrFlowConflict
	}
	m.inserts++
	m.nextID++
	r.ID = m.nextID
	m.byFlow[r.FlowID] = r
	return r.ID, nil
}

func (m *memTransport) RequestExists(_ context.Context, flowID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byFlow[flowID]
	return ok, nil
}

type memCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newMemCache() *memCache { return &memCache{store: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) Set(_ context.Context, key string, v any, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *memCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

type stubWeather struct {
	w     domain.Weather
	err   error
	delay time.Duration
	calls int
}

func (s *stubWeather) CurrentWeather(ctx context.Context, _ domain.Coords) (domain.Weather, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.Weather{}, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return s.w, s.err
}

type stubTravel struct {
	info domain.TravelInfo
	err  error
}

func (s *stubTravel) Travel(_ context.Context, _, _ domain.Coords) (domain.TravelInfo, error) {
	return s.info, s.err
}

// ---- wiring helpers ----

const hotelLat, hotelLon = 6.2087, -75.5698

func newSignals(w domain.WeatherProvider, t domain.TravelProvider) *app.SignalService {
	return app.NewSignalService(w, t, newMemCache(), nil, app.SignalConfig{
		Origin:     domain.Coords{Lat: hotelLat, Lon: hotelLon},
		WeatherTTL: 10 * time.Minute,
		TravelTTL:  24 * time.Hour,
		Timeout:    100 * time.Millisecond,
	})
}

type harness struct {
	concierge *app.Concierge
	guests    *memGuests
	contexts  *memContexts
	orders    *memOrders
	transport *memTransport
}

func newHarness(weather *stubWeather, travel *stubTravel, gs ...domain.Guest) *harness {
	if weather == nil {
		weather = &stubWeather{err: domain.ErrUpstreamUnavailable}
	}
	if travel == nil {
		travel = &stubTravel{err: domain.ErrUpstreamUnavailable}
	}
	store := content.New()
	signals := newSignals(weather, travel)
	h := &harness{
		guests:    newMemGuests(gs...),
		contexts:  newMemContexts(),
		orders:    newMemOrders(),
		transport: newMemTransport(),
	}
	h.concierge = app.NewConcierge(
		h.guests, h.contexts,
		app.NewClassifier(store),
		app.NewWorkflowEngine(h.orders, h.transport, nil),
		app.NewRecommendationEngine(store, signals, 3),
		signals, store, app.NewComposer(""), nil,
	)
	return h
}
