package usecase

import (
	"context"
	"time"

	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/domain/repository"
	"github.com/mediplus/geosearch/internal/pkg/errors"
	"go.uber.org/zap"
)

// StatsUseCase обрабатывает бизнес-логику для статистики поиска
type StatsUseCase struct {
	searchLogRepo repository.SearchLogRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	cacheTTL      time.Duration
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	searchLogRepo repository.SearchLogRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		searchLogRepo: searchLogRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		cacheTTL:      cacheTTL,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	if uc.searchLogRepo == nil {
		return nil, errors.ErrStatsUnavailable
	}

	// 1. Проверяем кеш
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetStats(ctx)
		if err == nil && cached != nil {
			uc.logger.Debug("Statistics fetched from cache")
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
		}
	}

	// 2. Получаем из БД
	stats, err := uc.searchLogRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to get statistics from db", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	// 3. Кешируем
	if uc.cacheRepo != nil && uc.cacheTTL > 0 {
		if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return stats, nil
}
