package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mediplus/geosearch/internal/config"
	"github.com/mediplus/geosearch/internal/domain/repository"
	"github.com/mediplus/geosearch/internal/infrastructure/overpass"
	"github.com/mediplus/geosearch/internal/pkg/logger"
	"github.com/mediplus/geosearch/internal/repository/cache"
	"github.com/mediplus/geosearch/internal/repository/postgres"
	redisRepo "github.com/mediplus/geosearch/internal/repository/redis"
	"github.com/mediplus/geosearch/internal/usecase"
	"github.com/mediplus/geosearch/internal/worker"
	"github.com/mediplus/geosearch/internal/worker/nearby"
)

const serviceName = "mediplus-geosearch-worker"

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, serviceName)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Establishment Nearby Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_results", cfg.Worker.MaxResults),
		zap.Int("batch_size", cfg.Worker.BatchSize))

	// 3. Connect to Redis (стримы обязательны, кеш опционален)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	var cacheRepo repository.CacheRepository
	if cfg.Cache.Enabled {
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	// 4. Connect to PostgreSQL (только если включен журнал поиска)
	var searchLogRepo repository.SearchLogRepository
	if cfg.Search.LogEnabled {
		db, err := postgres.New(cfg, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = db.Migrate(migrateCtx)
		migrateCancel()
		if err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}

		searchLogRepo = postgres.NewSearchLogRepository(db, log)
	}

	// 5. Initialize repositories
	overpassRepo := overpass.NewOverpassClient(&cfg.Overpass, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	establishmentUC := usecase.NewEstablishmentUseCase(
		overpassRepo,
		cacheRepo,
		searchLogRepo,
		nil,
		log,
		usecase.EstablishmentUseCaseConfig{
			DefaultRadius: cfg.Search.DefaultRadius,
			NameRadius:    cfg.Search.NameRadius,
			CacheTTL:      cfg.Cache.SearchCacheTTL,
		},
	)

	// 7. Initialize workers
	nearbyWorker := nearby.NewNearbyWorker(streamRepo, establishmentUC, cfg.Worker, log)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(nearbyWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Stop worker manager, затем отменяем контекст для незавершенных запросов
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
