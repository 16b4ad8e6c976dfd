// cmd/simulator replays scripted guest conversations against the full core
// with bounded concurrency. Useful as a smoke run against a real MySQL/redis
// pair without driving the HTTP layer.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

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

type script struct {
	guest    domain.Guest
	messages []string
}

var scripts = []script{
	{
		guest: domain.Guest{ID: "sim-001", Name: "Laura Gómez", RoomNumber: "305", ProfileTags: []string{"foodie"}},
		messages: []string{
			"Hola",
			"Quiero ordenar comida a la habitación",
			"Una hamburguesa y una limonada de coco",
			"Sí, confirmo",
		},
	},
	{
		guest: domain.Guest{ID: "sim-002", Name: "Carlos Mejía", RoomNumber: "412"},
		messages: []string{
			"Buenas tardes",
			"Necesito un taxi al aeropuerto",
			"A las 6 de la mañana",
			"Sí",
		},
	},
	{
		guest: domain.Guest{ID: "sim-003", Name: "Ana Ruiz", RoomNumber: "118", ProfileTags: []string{"art"}},
		messages: []string{
			"Hola, ¿qué me recomiendas para esta tarde?",
			"¿Cómo está el clima?",
			"¿Cuál es la clave del wifi?",
			"Gracias, hasta luego",
		},
	},
	{
		guest: domain.Guest{ID: "sim-004", Name: "Pedro Díaz", RoomNumber: "207"},
		messages: []string{
			"Hola",
			"Quiero pedir comida",
			"Mejor cancelar",
			"¿A qué hora es el desayuno?",
		},
	},
}

type unavailableWeather struct{}

func (unavailableWeather) CurrentWeather(context.Context, domain.Coords) (domain.Weather, error) {
	return domain.Weather{}, domain.ErrUpstreamUnavailable
}

type unavailableTravel struct{}

func (unavailableTravel) Travel(context.Context, domain.Coords, domain.Coords) (domain.TravelInfo, error) {
	return domain.TravelInfo{}, domain.ErrUpstreamUnavailable
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SimWorkers).Int("scripts", len(scripts)).Msg("simulator starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
	cache := redisad.NewFromClient(rdb)
	contexts := redisad.NewContextStore(rdb, cfg.ContextIdleTTL)

	var weatherProv domain.WeatherProvider = unavailableWeather{}
	if wc, err := weather.New(cfg.WeatherBase, cfg.WeatherKey, 5); err == nil {
		weatherProv = wc
	}
	var travelProv domain.TravelProvider = unavailableTravel{}
	if mc, err := maps.New(cfg.MapsBase, cfg.MapsKey, 5); err == nil {
		travelProv = mc
	}

	repo := mysqlrepo.New(db)
	store := content.New()
	obs := observability.Observer{}
	signals := app.NewSignalService(weatherProv, travelProv, cache, obs, app.SignalConfig{
		Origin:     domain.Coords{Lat: cfg.HotelLat, Lon: cfg.HotelLon},
		WeatherTTL: cfg.WeatherTTL,
		TravelTTL:  cfg.TravelTTL,
		Timeout:    cfg.SignalTimeout,
	})
	concierge := app.NewConcierge(
		repo, contexts,
		app.NewClassifier(store),
		app.NewWorkflowEngine(repo, repo, obs),
		app.NewRecommendationEngine(store, signals, cfg.RecommendLimit),
		signals, store, app.NewComposer(""), obs,
	)

	sem := semaphore.NewWeighted(int64(cfg.SimWorkers))
	var wg sync.WaitGroup

	for _, sc := range scripts {
		sc := sc

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			welcome, err := concierge.CheckIn(ctx, sc.guest)
			if err != nil {
				log.Warn().Str("guest", sc.guest.ID).Err(err).Msg("check-in failed")
				return
			}
			fmt.Printf("[%s] < (check-in) %s\n", sc.guest.ID, welcome)
			for i, msg := range sc.messages {
				reply, err := concierge.HandleMessage(ctx, sc.guest.ID, msg)
				if err != nil {
					log.Warn().Str("guest", sc.guest.ID).Int("turn", i).Err(err).Msg("turn failed")
					return
				}
				fmt.Printf("[%s] > %s\n[%s] < (%s) %s\n", sc.guest.ID, msg, sc.guest.ID, reply.Intent, reply.Text)
			}
			log.Info().Str("guest", sc.guest.ID).Msg("script completed")
		}()
	}

	wg.Wait()
	log.Info().Msg("simulation completed")
}
