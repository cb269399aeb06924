package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/config"
	"github.com/cultural-sites-service/internal/domain/repository"
	"github.com/cultural-sites-service/internal/pkg/logger"
	"github.com/cultural-sites-service/internal/repository/cache"
	"github.com/cultural-sites-service/internal/repository/postgres"
	"github.com/cultural-sites-service/internal/usecase"
)

// One-shot CLI for the GeoJSON import pipeline. Not meant to run while
// the API is serving traffic: readers may observe the window between
// the old collection and the new one.
func main() {
	importFlag := flag.Bool("i", false, "import sites from the configured GeoJSON file")
	deleteFlag := flag.Bool("d", false, "delete all sites")
	flag.Parse()

	if *importFlag == *deleteFlag {
		fmt.Fprintln(os.Stderr, "Please use -i to import data or -d to delete data.")
		flag.Usage()
		os.Exit(2)
	}

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Error("Failed to connect to PostgreSQL", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// 4. Connect to Redis for cache invalidation; the pipeline still
	// runs without it
	var cacheRepo repository.CacheRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, skipping cache invalidation", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	siteRepo := postgres.NewSiteRepository(db)
	importUC := usecase.NewImportUseCase(siteRepo, cacheRepo, log, cfg.Import.FallbackAddress)

	ctx := context.Background()

	switch {
	case *importFlag:
		result, err := importUC.Run(ctx, cfg.Import.FilePath)
		if err != nil {
			if result != nil {
				for _, importErr := range result.Errors {
					log.Error("Invalid record",
						zap.Int("index", importErr.Index),
						zap.String("name", importErr.Name),
						zap.String("errors", importErr.Message),
					)
				}
			}
			log.Error("Import failed", zap.Error(err))
			os.Exit(1)
		}
		log.Info("Import succeeded",
			zap.Int("imported", result.Imported),
			zap.Int("rejected", result.Rejected),
		)

	case *deleteFlag:
		if err := importUC.DeleteAll(ctx); err != nil {
			log.Error("Delete failed", zap.Error(err))
			os.Exit(1)
		}
	}
}
