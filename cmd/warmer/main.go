package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"floripa_guide/internal/adapters/aiplanner"
	"floripa_guide/internal/adapters/observability"
	redisad "floripa_guide/internal/adapters/redis"
	"floripa_guide/internal/app"
	"floripa_guide/internal/catalog"
	"floripa_guide/internal/domain"
	"floripa_guide/internal/shared"
)

func main() {
	useAI := flag.Bool("ai", false, "warm AI itineraries as well (calls the AI endpoint)")
	flag.Parse()

	shared.LoadDotenv()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.RedisAddr == "" {
		log.Fatal().Msg("REDIS_ADDR is required to warm the itinerary cache")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	var planner domain.ItineraryPlanner
	if *useAI {
		cl, err := aiplanner.New(cfg.AIBaseURL, cfg.AIKey, cfg.AIModel, cfg.AIRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize AI client")
		}
		planner = cl
	}

	cat := catalog.Default(catalog.WithAffiliateURLs(cfg.BookingURL, cfg.AirbnbURL))
	q := app.NewQueryService(cat, cache, cfg.CacheTTL, planner)

	set := app.WarmSet(cfg.WarmDays)
	log.Info().
		Int("combinations", len(set)).
		Int("workers", cfg.WarmWorkers).
		Int("days", cfg.WarmDays).
		Bool("ai", *useAI).
		Msg("warmer starting")

	start := time.Now()
	rep := q.Warm(ctx, set, cfg.WarmWorkers, *useAI)
	log.Info().
		Int("warmed", rep.Warmed).
		Int("failed", rep.Failed).
		Dur("took", time.Since(start)).
		Msg("warm completed")
}
