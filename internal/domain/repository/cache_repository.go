package repository

import (
	"context"
	"time"

	"github.com/mediplus/geosearch/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil, nil - промах)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetElements получает закешированный ответ Overpass для запроса
	GetElements(ctx context.Context, query string) ([]domain.RawElement, bool, error)

	// SetElements кеширует ответ Overpass для запроса
	SetElements(ctx context.Context, query string, elements []domain.RawElement, ttl time.Duration) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
