package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"arame_concierge/internal/adapters/weather"
	"arame_concierge/internal/domain"
)

const payload = `{"weather":[{"main":"Rain","description":"light rain"}],"main":{"temp":17.4}}`

func TestClient_CurrentWeather_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_, _ = w.Write([]byte(payload))
		}
	}))
	defer ts.Close()

	cl, err := weather.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.CurrentWeather(ctx, domain.Coords{Lat: 6.2087, Lon: -75.5698})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.Raining() || got.Temperature != 17.4 {
		t.Fatalf("unexpected weather: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_CurrentWeather_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
	}))
	defer ts.Close()

	cl, err := weather.New(ts.URL, "bad-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := cl.CurrentWeather(ctx, domain.Coords{}); err != weather.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_RequiresKey(t *testing.T) {
	if _, err := weather.New("http://example.com", "", 5); err == nil {
		t.Fatalf("expected error for missing key")
	}
}
