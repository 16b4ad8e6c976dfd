package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	MessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "concierge", Name: "messages_total", Help: "Guest messages by classified intent."},
		[]string{"intent"},
	)
	FlowEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "concierge", Name: "flow_events_total", Help: "Flow lifecycle events."},
		[]string{"flow", "event"}, // event: started|completed|cancelled|duplicate_suppressed
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "concierge", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "concierge", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "concierge", Name: "external_requests_total", Help: "Outbound signal requests."},
		[]string{"service", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "concierge", Name: "external_request_duration_seconds",
			Help:    "Outbound signal request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "concierge", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(MessagesTotal, FlowEvents, HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}

// Observer satisfies the app package's metric interfaces over the package
// counters, so the services never import prometheus directly.
type Observer struct{}

func (Observer) ObserveIntent(intent string) {
	MessagesTotal.WithLabelValues(intent).Inc()
}

func (Observer) ObserveFlow(flow, event string) {
	FlowEvents.WithLabelValues(flow, event).Inc()
}

func (Observer) ObserveExternal(service, status string, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, status).Inc()
	ExternalLatency.WithLabelValues(service).Observe(dur.Seconds())
}

func (Observer) ObserveCache(cache string, hit bool) {
	event := "miss"
	if hit {
		event = "hit"
	}
	CacheEvents.WithLabelValues(cache, event).Inc()
}

// Serve starts the standalone metrics listener when addr is non-empty.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}
