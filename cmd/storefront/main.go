// Command storefront serves the course storefront API.
//
//	@title                       Storefront API
//	@version                     1.0
//	@description                 Accounts, role-based access and referral codes for the course storefront.
//	@BasePath                    /
//	@securityDefinitions.apikey  BearerAuth
//	@in                          header
//	@name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coursehub/storefront/internal/api"
	"github.com/coursehub/storefront/internal/api/handler"
	"github.com/coursehub/storefront/internal/core/service"
	"github.com/coursehub/storefront/internal/infrastructure/config"
	"github.com/coursehub/storefront/internal/infrastructure/db/mongo"
	"github.com/coursehub/storefront/internal/infrastructure/db/redis"
	"github.com/coursehub/storefront/internal/infrastructure/queue"
	"github.com/coursehub/storefront/pkg/logger"

	_ "github.com/coursehub/storefront/docs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("disconnect mongodb")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	userRepo := mongo.NewUserRepository(db)
	referralRepo := mongo.NewReferralRepository(db)
	if err := mongo.EnsureIndexes(ctx, userRepo, referralRepo); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	authService := service.NewAuthService(userRepo, redis.NewRevocationStore(rdb), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	sessionService := service.NewSessionService(userRepo, cfg.Session.ResolveTimeout, log)
	userService := service.NewUserService(userRepo, log)
	referralService := service.NewReferralService(referralRepo, log)

	visits := queue.NewDispatcher(cfg.HTTP.VisitWorkers, referralService, log)
	// Workers outlive the signal context so buffered visits are drained
	// after the server stops taking requests.
	visits.Start(context.Background())

	e := api.NewRouter(api.Dependencies{
		Log:       log,
		Auth:      authService,
		Sessions:  sessionService,
		Users:     userService,
		Referrals: referralService,
		Visits:    visits,
		Health: map[string]handler.Check{
			"mongodb": mongo.Ping(mongoClient),
			"redis":   redis.Ping(rdb),
		},

		LoginPath:      cfg.HTTP.LoginPath,
		LoginRateLimit: cfg.Auth.LoginRateLimit,
		SecureCookies:  cfg.IsProduction(),
		EnableSwagger:  cfg.HTTP.EnableSwagger,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := visits.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("visit queue not drained before shutdown deadline")
	}
}
