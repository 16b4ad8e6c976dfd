package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"arame_concierge/internal/domain"
)

// ExternalObserver receives outbound call and cache outcomes for metrics.
type ExternalObserver interface {
	ObserveExternal(service, status string, duration time.Duration)
	ObserveCache(cache string, hit bool)
}

type nopExternalObserver struct{}

func (nopExternalObserver) ObserveExternal(string, string, time.Duration) {}
func (nopExternalObserver) ObserveCache(string, bool)                    {}

// SignalService wraps the raw weather and travel providers with caching,
// a hard per-call timeout, and degraded fallbacks. Callers never see an
// error: an unavailable signal comes back as the zero value and the caller
// decides how much to say without it.
type SignalService struct {
	weather domain.WeatherProvider
	travel  domain.TravelProvider
	cache   domain.Cache
	metrics ExternalObserver

	origin     domain.Coords
	weatherTTL time.Duration
	travelTTL  time.Duration
	timeout    time.Duration
}

type SignalConfig struct {
	Origin     domain.Coords
	WeatherTTL time.Duration
	TravelTTL  time.Duration
	Timeout    time.Duration
}

func NewSignalService(w domain.WeatherProvider, t domain.TravelProvider, cache domain.Cache, obs ExternalObserver, cfg SignalConfig) *SignalService {
	if obs == nil {
		obs = nopExternalObserver{}
	}
	return &SignalService{
		weather: w, travel: t, cache: cache, metrics: obs,
		origin: cfg.Origin, weatherTTL: cfg.WeatherTTL, travelTTL: cfg.TravelTTL, timeout: cfg.Timeout,
	}
}

const weatherCacheKey = "signal:weather"

// Weather returns the current conditions at the hotel, cached for the
// configured TTL. A zero Weather means the signal is unavailable this turn.
func (s *SignalService) Weather(ctx context.Context) domain.Weather {
	var w domain.Weather
	if hit, err := s.cache.Get(ctx, weatherCacheKey, &w); err == nil {
		s.metrics.ObserveCache("weather", hit)
		if hit {
			return w
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	w, err := s.weather.CurrentWeather(callCtx, s.origin)
	if err != nil {
		s.metrics.ObserveExternal("weather", "error", time.Since(start))
		log.Warn().Err(err).Msg("weather signal unavailable")
		return domain.Weather{}
	}
	s.metrics.ObserveExternal("weather", "ok", time.Since(start))

	if err := s.cache.Set(ctx, weatherCacheKey, w, int(s.weatherTTL.Seconds())); err != nil {
		log.Warn().Err(err).Msg("weather cache write failed")
	}
	return w
}

// Travel returns distance and ETA from the hotel to the destination, cached
// per destination name. When the provider fails or the destination has no
// coordinates, it degrades: haversine distance when coordinates exist,
// DistanceUnknown otherwise.
func (s *SignalService) Travel(ctx context.Context, destName string, dest *domain.Coords) domain.TravelInfo {
	if dest == nil {
		return domain.TravelInfo{DistanceMeters: domain.DistanceUnknown}
	}

	key := travelCacheKey(destName)
	var info domain.TravelInfo
	if hit, err := s.cache.Get(ctx, key, &info); err == nil {
		s.metrics.ObserveCache("travel", hit)
		if hit {
			return info
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	info, err := s.travel.Travel(callCtx, s.origin, *dest)
	if err != nil || !info.Available() {
		s.metrics.ObserveExternal("travel", "error", time.Since(start))
		if err != nil {
			log.Warn().Err(err).Str("destination", destName).Msg("travel signal degraded, using haversine")
		}
		return haversineFallback(s.origin, *dest)
	}
	s.metrics.ObserveExternal("travel", "ok", time.Since(start))

	if err := s.cache.Set(ctx, key, info, int(s.travelTTL.Seconds())); err != nil {
		log.Warn().Err(err).Msg("travel cache write failed")
	}
	return info
}

func travelCacheKey(destName string) string {
	return "signal:travel:" + strings.ReplaceAll(strings.ToLower(destName), " ", "_")
}

// haversineFallback estimates straight-line distance and a walking-pace ETA
// (80 m/min). Fallback values are not cached so a recovered provider takes
// over on the next call.
func haversineFallback(origin, dest domain.Coords) domain.TravelInfo {
	meters := haversineMeters(origin, dest)
	return domain.TravelInfo{
		DistanceMeters: meters,
		ETAMinutes:     int(math.Ceil(float64(meters) / 80.0)),
	}
}

const earthRadiusMeters = 6371000

func haversineMeters(a, b domain.Coords) int {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return int(2 * earthRadiusMeters * math.Asin(math.Sqrt(h)))
}

// FormatDistance renders meters for guest-facing text.
func FormatDistance(meters int) string {
	if meters <= 0 {
		return "distancia no disponible"
	}
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}
