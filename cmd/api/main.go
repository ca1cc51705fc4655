package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"floripa_guide/internal/adapters/aiplanner"
	server "floripa_guide/internal/adapters/http_server"
	"floripa_guide/internal/adapters/observability"
	redisad "floripa_guide/internal/adapters/redis"
	"floripa_guide/internal/app"
	"floripa_guide/internal/catalog"
	"floripa_guide/internal/domain"
	"floripa_guide/internal/shared"
	"floripa_guide/internal/storage/memory"
	mysqlrepo "floripa_guide/internal/storage/mysql"
)

func main() {
	shared.LoadDotenv()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	metricsSrv := observability.Serve(cfg.MetricsAddr, reg)

	// partners
	var repo domain.PartnerRepository = memory.New()
	if cfg.MySQLDSN != "" {
		dsn, err := mysqlrepo.NormalizeDSN(cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid MYSQL_DSN")
		}
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	} else {
		log.Warn().Msg("MYSQL_DSN is empty, partners are kept in memory")
	}

	// cache and sessions
	var cache domain.Cache
	var sessions domain.SessionStore = memory.NewSessions()
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("redis ping failed")
		}
		cache = rc
		sessions = redisad.NewSessions(rc.Client())
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis connection ok")
	} else {
		log.Warn().Msg("REDIS_ADDR is empty, itineraries are not cached and sessions are in memory")
	}

	var planner domain.ItineraryPlanner
	if cfg.AIKey != "" {
		cl, err := aiplanner.New(cfg.AIBaseURL, cfg.AIKey, cfg.AIModel, cfg.AIRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize AI client")
		}
		planner = cl
	}

	cat := catalog.Default(catalog.WithAffiliateURLs(cfg.BookingURL, cfg.AirbnbURL))
	q := app.NewQueryService(cat, cache, cfg.CacheTTL, planner)
	p := app.NewPartnerService(repo, sessions, cfg.SessionTTL)

	// http
	srv := server.New(cfg.CORSOrigins)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, P: p})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
}
