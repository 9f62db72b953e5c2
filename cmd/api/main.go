package main

import (
	"context"
	"log"

	"bga-backend/config"
	"bga-backend/internal/auth"
	"bga-backend/internal/handler"
	"bga-backend/internal/redis"
	"bga-backend/internal/repository"
	"bga-backend/internal/server"
	"bga-backend/internal/services"
	"bga-backend/pkg/database"
	"bga-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logMode := logger.DevelopmentMode
	if cfg.AppMode == config.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	defer l.Sync()

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		l.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.MigrateUp(ctx, pool); err != nil {
		l.Logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(pool)
	contactRepo := repository.NewContactRepository(pool)

	tokens := auth.NewTokenCodec([]byte(cfg.JWTSecret), cfg.JWTExpiresIn)

	authService := services.NewAuthService(userRepo, tokens, cfg.BcryptCost)
	contactService := services.NewContactService(contactRepo)

	deps := server.Deps{Verifier: tokens}
	if cfg.RateLimitEnabled {
		client, err := redis.NewClient(ctx, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			l.Logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer client.Close()

		deps.Limiter = redis.NewRateLimiter(client, redis.RateLimitConfig{
			Limit:  cfg.RateLimitRequests,
			Window: cfg.RateLimitWindow,
		})
		l.Info("Rate limiting enabled",
			zap.Int("requests", cfg.RateLimitRequests),
			zap.Duration("window", cfg.RateLimitWindow),
		)
	}

	srv, err := server.New(cfg, l)
	if err != nil {
		l.Logger.Fatal("Failed to build server", zap.Error(err))
	}
	srv.SetupRoutes(&server.Handlers{
		Auth:    handler.NewAuthHandler(authService, l),
		Contact: handler.NewContactHandler(contactService, l),
		Health:  handler.NewHealthHandler(pool),
	}, deps)

	if err := srv.Start(); err != nil {
		l.Error("Server exited with error", zap.Error(err))
	}
}
