package main

// @title MediPlus Geo-Search API
// @version 1.0.0
// @description Поиск медицинских учреждений (больницы, клиники, аптеки, лаборатории, стоматологи, врачи, кинезитерапевты) рядом с пациентом по данным OpenStreetMap через Overpass API.
// @description
// @description Основные возможности:
// @description - Поиск учреждений в радиусе от точки с сортировкой по расстоянию
// @description - Поиск по названию в расширенном радиусе
// @description - Получение исходного элемента OSM по идентификатору
// @description - Расстояние между двумя точками
// @description - Статистика поисковых запросов

// @contact.name MediPlus Platform Team
// @contact.email platform@mediplus.fr

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/mediplus/geosearch/docs/swagger"
	"github.com/mediplus/geosearch/internal/config"
	httpDelivery "github.com/mediplus/geosearch/internal/delivery/http"
	"github.com/mediplus/geosearch/internal/delivery/http/handler"
	"github.com/mediplus/geosearch/internal/domain/repository"
	"github.com/mediplus/geosearch/internal/infrastructure/overpass"
	"github.com/mediplus/geosearch/internal/pkg/logger"
	"github.com/mediplus/geosearch/internal/repository/cache"
	"github.com/mediplus/geosearch/internal/repository/postgres"
	"github.com/mediplus/geosearch/internal/usecase"
)

const serviceName = "mediplus-geosearch-api"

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, serviceName)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting MediPlus Geo-Search")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("overpass_url", cfg.Overpass.BaseURL),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("search_log_enabled", cfg.Search.LogEnabled),
	)

	var healthChecks []httpDelivery.HealthCheck

	// 3. Connect to Redis (только если включен кеш)
	var cacheRepo repository.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		cacheRepo = cache.NewCacheRepository(redisClient)
		healthChecks = append(healthChecks, httpDelivery.HealthCheck{Name: "redis", Check: redisClient.Health})
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

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = db.Migrate(ctx)
		cancel()
		if err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}

		searchLogRepo = postgres.NewSearchLogRepository(db, log)
		healthChecks = append(healthChecks, httpDelivery.HealthCheck{Name: "postgres", Check: db.Health})
	}

	// 5. Initialize Repositories
	overpassRepo := overpass.NewOverpassClient(&cfg.Overpass, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	establishmentUC := usecase.NewEstablishmentUseCase(
		overpassRepo,
		cacheRepo,
		searchLogRepo,
		nil, // таксономия по умолчанию
		log,
		usecase.EstablishmentUseCaseConfig{
			DefaultRadius: cfg.Search.DefaultRadius,
			NameRadius:    cfg.Search.NameRadius,
			CacheTTL:      cfg.Cache.SearchCacheTTL,
		},
	)

	statsUC := usecase.NewStatsUseCase(
		searchLogRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	establishmentHandler := handler.NewEstablishmentHandler(establishmentUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		establishmentHandler,
		statsHandler,
		healthChecks...,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
