package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RaafaGarcia/smartadmin-api/internal/api"
	"github.com/RaafaGarcia/smartadmin-api/internal/infrastructure/config"
	mongodb "github.com/RaafaGarcia/smartadmin-api/internal/infrastructure/db/mongo"
	"github.com/RaafaGarcia/smartadmin-api/internal/infrastructure/db/postgres"
	redisdb "github.com/RaafaGarcia/smartadmin-api/internal/infrastructure/db/redis"
	"github.com/RaafaGarcia/smartadmin-api/internal/infrastructure/queue"
	"github.com/RaafaGarcia/smartadmin-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        SmartAdmin API
// @version      2.0.0
// @description  Admin dashboard backend: auth, users, projects, and metrics.
// @BasePath     /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Storage is a serving dependency: unreachable at startup is fatal.
	pg, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pg.Close()

	if err := postgres.Migrate(ctx, pg); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	mongoClient, mongoDB, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Seeding is optional demo data; failures are logged, not fatal.
	if cfg.SeedData {
		if err := postgres.Seed(ctx, pg, log); err != nil {
			log.Warn().Err(err).Msg("seeding failed, continuing without sample data")
		}
	}

	dispatcher := queue.NewDispatcher(0, mongodb.NewActivityRepository(mongoDB), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Config:     cfg,
		PG:         pg,
		Mongo:      mongoDB,
		Redis:      rdb,
		Activities: dispatcher,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
