// Command server runs the meal planner HTTP API.
//
// @title                       Meal Planner API
// @version                     1.0
// @description                 Registration wizard, profiles, meal generation and admin statistics.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson"

	_ "github.com/mealwise/mealplanner/docs"
	"github.com/mealwise/mealplanner/internal/api"
	"github.com/mealwise/mealplanner/internal/api/handler"
	"github.com/mealwise/mealplanner/internal/core/service"
	mongodb "github.com/mealwise/mealplanner/internal/infrastructure/db/mongo"
	redisdb "github.com/mealwise/mealplanner/internal/infrastructure/db/redis"
	"github.com/mealwise/mealplanner/internal/infrastructure/llm"
	"github.com/mealwise/mealplanner/internal/infrastructure/queue"
	"github.com/mealwise/mealplanner/internal/pkg/config"
	"github.com/mealwise/mealplanner/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "mealplanner",
	})

	sentryEnabled := false
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Env,
			AttachStacktrace: true,
		}); err != nil {
			log.Warn().Err(err).Msg("sentry disabled: init failed")
		} else {
			sentryEnabled = true
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create mongodb indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Adapters ---
	accounts := mongodb.NewAccountRepository(db)
	profiles := mongodb.NewProfileRepository(db)
	changes := mongodb.NewProfileChangeStream(db, logger.Component("change-stream"))
	schema := mongodb.NewSchemaRegistry(db)
	generations := mongodb.NewGenerationLog(db)
	gateway := llm.NewGateway(llm.Config{
		APIKey:     cfg.OpenAI.APIKey,
		Model:      cfg.OpenAI.Model,
		ImageModel: cfg.OpenAI.ImageModel,
		BaseURL:    cfg.OpenAI.BaseURL,
		Timeout:    cfg.OpenAI.Timeout,
	}, logger.Component("llm"))
	if cfg.OpenAI.APIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set; generation requests will fail")
	}

	// --- Services ---
	sessions := service.NewSessionService(
		accounts, profiles, changes,
		redisdb.NewRateLimiter(rdb),
		redisdb.NewTokenRevoker(rdb),
		service.SessionConfig{
			JWTSecret:    cfg.Auth.JWTSecret,
			TokenTTL:     cfg.Auth.TokenTTL,
			SignupLimit:  cfg.Auth.SignupLimit,
			SignupWindow: cfg.Auth.SignupWindow,
			AdminEmails:  cfg.Auth.AdminEmails,
		},
		logger.Component("sessions"),
	)

	writeBack := queue.NewDispatcher(sessions, queue.Options{
		Workers:     cfg.WriteBack.Workers,
		MaxAttempts: cfg.WriteBack.MaxAttempts,
		Backoff:     cfg.WriteBack.Backoff,
	}, logger.Component("write-back"))
	writeBack.Start(ctx)

	wizards := service.NewWizardService(
		redisdb.NewWizardStore(rdb, cfg.Auth.DraftTTL),
		sessions,
		writeBack,
		logger.Component("wizard"),
	)
	meals := service.NewMealService(gateway, generations, logger.Component("meals"))
	admin := service.NewAdminService(sessions, profiles, generations, schema, logger.Component("admin"))

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Sessions: sessions,
		Wizards:  wizards,
		Meals:    meals,
		Admin:    admin,
		Checks: map[string]handler.DependencyCheck{
			"mongodb": func(ctx context.Context) error {
				return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
			},
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},
	}, api.Options{
		ServiceKey:            cfg.API.ServiceKey,
		PublicAPIKey:          cfg.API.PublicAPIKey,
		CORSOrigins:           cfg.API.CORSOrigins,
		GenerateRatePerMinute: cfg.API.GenerateRatePerMinute,
		GenerateBurst:         cfg.API.GenerateBurst,
		LoginRatePerMinute:    cfg.API.LoginRatePerMinute,
		LoginBurst:            cfg.API.LoginBurst,
		Sentry:                sentryEnabled,
	}, logger.Component("http"))

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
