package main

// @title Cultural Sites Service API
// @version 1.0.0
// @description REST backend for a map-based cultural-sites directory. Exposes CRUD
// @description endpoints for cultural sites imported from an OpenStreetMap GeoJSON
// @description export, user registration and login with JWT sessions, and per-user
// @description favorites.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/cultural-sites-service/docs"
	"github.com/cultural-sites-service/internal/auth"
	"github.com/cultural-sites-service/internal/config"
	httpDelivery "github.com/cultural-sites-service/internal/delivery/http"
	"github.com/cultural-sites-service/internal/delivery/http/handler"
	"github.com/cultural-sites-service/internal/pkg/logger"
	"github.com/cultural-sites-service/internal/repository/cache"
	"github.com/cultural-sites-service/internal/repository/postgres"
	"github.com/cultural-sites-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Cultural Sites Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	siteRepo := postgres.NewSiteRepository(db)
	userRepo := postgres.NewUserRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize auth gate
	jwtManager, err := auth.NewJWTManager(&cfg.Auth)
	if err != nil {
		log.Fatal("Failed to initialize JWT manager", zap.Error(err))
	}

	// 8. Initialize use cases
	siteUC := usecase.NewSiteUseCase(siteRepo, cacheRepo, log, cfg.Cache.SitesCacheTTL)
	authUC := usecase.NewAuthUseCase(userRepo, jwtManager, log)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, siteRepo, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	siteHandler := handler.NewSiteHandler(siteUC, log)
	authHandler := handler.NewAuthHandler(authUC, log)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, log)

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		jwtManager,
		siteHandler,
		authHandler,
		favoriteHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
