package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"marina-guard-backend/internal/api/handlers"
	"marina-guard-backend/internal/api/routes"
	"marina-guard-backend/internal/auth"
	"marina-guard-backend/internal/config"
	"marina-guard-backend/internal/database"
	"marina-guard-backend/internal/events"
	"marina-guard-backend/internal/logger"
	"marina-guard-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "marina-guard-backend/docs" // This is needed for swag
)

// version is stamped at build time with -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 15 * time.Second

//	@title			Marina Guard Backend API
//	@version		1.0
//	@description	Backend API for marina security staff: duty sessions, shift scheduling, incident logs and messaging.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, cfg.IsDevelopment())

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := routes.Dependencies{
		DB:           db,
		Config:       cfg,
		Version:      version,
		Metrics:      metrics.New(),
		HealthChecks: make(map[string]handlers.HealthCheck),
	}

	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logrus.WithError(err).Warn("Redis unreachable, continuing with in-memory token store and no rate limiting")
			_ = rdb.Close()
		} else {
			deps.Redis = rdb
			deps.HealthChecks["redis"] = func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}
			defer rdb.Close()
		}
	}

	if cfg.NATSURL != "" {
		publisher, nc, err := events.Connect(cfg.NATSURL, cfg.NATSSubjectPrefix)
		if err != nil {
			logrus.WithError(err).Warn("NATS unreachable, domain events are disabled")
		} else {
			deps.Events = publisher
			deps.HealthChecks["nats"] = func(context.Context) error {
				if !nc.IsConnected() {
					return errors.New(nc.Status().String())
				}
				return nil
			}
			defer func() {
				if err := nc.Drain(); err != nil {
					logrus.WithError(err).Warn("Failed to drain NATS connection")
				}
			}()
		}
	}

	if cfg.OAuthEnabled() {
		provider, err := auth.NewOAuthProvider(auth.NewAuthConfig(cfg).Provider)
		if err != nil {
			logrus.Fatal("Failed to configure identity provider: ", err)
		}
		deps.Provider = provider
	}

	router, err := routes.SetupRoutes(deps)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithFields(logrus.Fields{"port": port, "version": version}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}
