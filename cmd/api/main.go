package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	server "arame_concierge/internal/adapters/http_server"
	"arame_concierge/internal/adapters/maps"
	"arame_concierge/internal/adapters/observability"
	redisad "arame_concierge/internal/adapters/redis"
	"arame_concierge/internal/adapters/weather"
	"arame_concierge/internal/app"
	"arame_concierge/internal/content"
	"arame_concierge/internal/domain"
	"arame_concierge/internal/shared"
	mysqlrepo "arame_concierge/internal/storage/mysql"
)

// unavailableWeather and unavailableTravel stand in when no API key is
// configured; every call degrades the same way a provider outage would.
type unavailableWeather struct{}

func (unavailableWeather) CurrentWeather(context.Context, domain.Coords) (domain.Weather, error) {
	return domain.Weather{}, domain.ErrUpstreamUnavailable
}

type unavailableTravel struct{}

func (unavailableTravel) Travel(context.Context, domain.Coords, domain.Coords) (domain.TravelInfo, error) {
	return domain.TravelInfo{}, domain.ErrUpstreamUnavailable
}

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// redis: one client shared by the signal cache and the context store
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
	cache := redisad.NewFromClient(rdb)
	contexts := redisad.NewContextStore(rdb, cfg.ContextIdleTTL)

	// outbound signal providers; missing keys run degraded
	var weatherProv domain.WeatherProvider = unavailableWeather{}
	if wc, err := weather.New(cfg.WeatherBase, cfg.WeatherKey, 5); err == nil {
		weatherProv = wc
	} else {
		log.Warn().Err(err).Msg("weather client disabled")
	}
	var travelProv domain.TravelProvider = unavailableTravel{}
	if mc, err := maps.New(cfg.MapsBase, cfg.MapsKey, 5); err == nil {
		travelProv = mc
	} else {
		log.Warn().Err(err).Msg("maps client disabled")
	}

	// deps
	repo := mysqlrepo.New(db)
	store := content.New()
	obs := observability.Observer{}

	signals := app.NewSignalService(weatherProv, travelProv, cache, obs, app.SignalConfig{
		Origin:     domain.Coords{Lat: cfg.HotelLat, Lon: cfg.HotelLon},
		WeatherTTL: cfg.WeatherTTL,
		TravelTTL:  cfg.TravelTTL,
		Timeout:    cfg.SignalTimeout,
	})
	workflow := app.NewWorkflowEngine(repo, repo, obs)
	recommend := app.NewRecommendationEngine(store, signals, cfg.RecommendLimit)
	concierge := app.NewConcierge(
		repo, contexts,
		app.NewClassifier(store),
		workflow, recommend, signals,
		store, app.NewComposer(""), obs,
	)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{C: concierge})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
