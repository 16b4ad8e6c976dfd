package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"arame_concierge/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample per family so counters are non-zero
	observability.ObserveHTTP("/api/messages", "POST", 200, 12*time.Millisecond)
	obs := observability.Observer{}
	obs.ObserveIntent("room_service_start")
	obs.ObserveFlow("room_service", "completed")
	obs.ObserveExternal("weather", "ok", 80*time.Millisecond)
	obs.ObserveCache("travel", true)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, family := range []string{
		"concierge_http_requests_total",
		"concierge_messages_total",
		"concierge_flow_events_total",
		"concierge_external_requests_total",
		"concierge_cache_events_total",
	} {
		if !strings.Contains(out, family) {
			t.Fatalf("expected %s in output", family)
		}
	}
}
