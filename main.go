package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"hotel-infinity/config"
	"hotel-infinity/payment"
	"hotel-infinity/routes"
	"hotel-infinity/storage"
	"hotel-infinity/store"
)

func initLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func buildSlotStore(cfg *config.Config) (storage.SlotStore, error) {
	switch cfg.Storage.Backend {
	case "mysql":
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return nil, err
		}
		zlog.Info().Str("backend", "mysql").Msg("slot storage ready")
		return storage.NewGormStore(db), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		zlog.Info().Str("backend", "redis").Str("host", cfg.Redis.Host).Msg("slot storage ready")
		return storage.NewRedisStore(client, cfg.Storage.RedisPrefix), nil

	case "memory":
		zlog.Warn().Msg("memory storage selected; data will not survive a restart")
		return storage.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func main() {
	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		zlog.Debug().Msg(".env not found; continuing with environment variables")
	}

	cfg := config.Get()
	initLogger(cfg.Server.LogLevel)

	slots, err := buildSlotStore(cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("slot storage init failed")
	}

	gateway := payment.NewSimulatedGateway(
		time.Duration(cfg.Payment.DelayMS)*time.Millisecond,
		cfg.Payment.DeclineRate,
	)

	s, err := store.New(context.Background(), slots, gateway, store.Config{
		AdminEmail:    cfg.Admin.Email,
		AdminPassword: cfg.Admin.Password,
		AdminName:     cfg.Admin.Name,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("store init failed")
	}

	router := routes.SetupRouter(cfg, s)

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	zlog.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal().Err(err).Msg("forced shutdown")
	}

	zlog.Info().Msg("server stopped")
}
