// Command api runs the commerce HTTP server.
//
// @title        Babies Shop Commerce API
// @version      1.0
// @description  User accounts, goods catalog, per-user cart and favorites, and checkout.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/babies-shop/commerce-api/internal/api"
	"github.com/babies-shop/commerce-api/internal/core/ports"
	"github.com/babies-shop/commerce-api/internal/infrastructure/config"
	mongodb "github.com/babies-shop/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/babies-shop/commerce-api/internal/infrastructure/db/redis"
	"github.com/babies-shop/commerce-api/internal/infrastructure/googleauth"
	"github.com/babies-shop/commerce-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; config failures go straight to stderr.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewGoodsRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("goods indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	var verifier ports.IdentityVerifier
	if cfg.GoogleClientID != "" {
		verifier = googleauth.NewVerifier(cfg.GoogleClientID)
	} else {
		log.Warn().Msg("GOOGLE_CLIENT_ID not set, Google sign-in disabled")
	}

	e := api.NewRouter(db, rdb, api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		Verifier:  verifier,
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
