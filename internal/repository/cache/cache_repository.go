package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/domain/repository"
)

const (
	elementsKeyPrefix = "overpass:"
	statsKey          = "stats:search"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return newCacheRepository(r.Client(), r.logger)
}

func newCacheRepository(client *redis.Client, logger *zap.Logger) *cacheRepository {
	return &cacheRepository{
		client: client,
		logger: logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// evict удаляет битую запись, чтобы следующий запрос сходил в источник
func (r *cacheRepository) evict(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetElements получает закешированный ответ Overpass; ok=false - промах
func (r *cacheRepository) GetElements(ctx context.Context, query string) ([]domain.RawElement, bool, error) {
	data, err := r.Get(ctx, ElementsKey(query))
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	var elements []domain.RawElement
	if err := json.Unmarshal(data, &elements); err != nil {
		r.logger.Error("Failed to unmarshal overpass elements from cache", zap.Error(err))
		_ = r.evict(ctx, ElementsKey(query))
		return nil, false, fmt.Errorf("unmarshal elements: %w", err)
	}

	return elements, true, nil
}

// SetElements кеширует ответ Overpass под ключом от хеша запроса
func (r *cacheRepository) SetElements(ctx context.Context, query string, elements []domain.RawElement, ttl time.Duration) error {
	if elements == nil {
		elements = []domain.RawElement{}
	}

	data, err := json.Marshal(elements)
	if err != nil {
		return fmt.Errorf("marshal elements: %w", err)
	}

	return r.Set(ctx, ElementsKey(query), data, ttl)
}

// GetStats получает статистику из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	data, err := r.Get(ctx, statsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.Statistics
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		_ = r.evict(ctx, statsKey)
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SetStats сохраняет статистику в кеше
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, statsKey, data, ttl)
}

// ElementsKey - ключ кеша для текста Overpass запроса
func ElementsKey(query string) string {
	sum := sha1.Sum([]byte(query))
	return elementsKeyPrefix + hex.EncodeToString(sum[:])
}
