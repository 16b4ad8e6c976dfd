package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	WeatherBase string
	WeatherKey  string
	MapsBase    string
	MapsKey     string

	HotelLat       float64
	HotelLon       float64
	ContextIdleTTL time.Duration
	WeatherTTL     time.Duration
	TravelTTL      time.Duration
	SignalTimeout  time.Duration
	RecommendLimit int
	SimWorkers     int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/concierge?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		WeatherBase: env("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherKey:  env("OPENWEATHER_API_KEY", ""),
		MapsBase:    env("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),
		MapsKey:     env("MAPS_API_KEY", ""),
		// El Poblado, Medellín
		HotelLat:       atof("HOTEL_LAT", 6.2087),
		HotelLon:       atof("HOTEL_LON", -75.5698),
		ContextIdleTTL: time.Duration(atoi("CONTEXT_IDLE_TTL_SECONDS", 900)) * time.Second,
		WeatherTTL:     time.Duration(atoi("WEATHER_TTL_SECONDS", 600)) * time.Second,
		TravelTTL:      time.Duration(atoi("TRAVEL_TTL_SECONDS", 86400)) * time.Second,
		SignalTimeout:  time.Duration(atoi("SIGNAL_TIMEOUT_MS", 3000)) * time.Millisecond,
		RecommendLimit: atoi("RECOMMEND_LIMIT", 3),
		SimWorkers:     atoi("SIM_WORKERS", 8),
	}
	if c.WeatherKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY is empty; weather signal will be degraded")
	}
	if c.MapsKey == "" {
		log.Warn().Msg("MAPS_API_KEY is empty; travel info falls back to haversine")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
