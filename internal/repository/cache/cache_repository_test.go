package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mediplus/geosearch/internal/domain"
)

func getTestRepository(t *testing.T) *cacheRepository {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return newCacheRepository(client, zap.NewNop())
}

func TestElementsKey(t *testing.T) {
	a := ElementsKey("[out:json];node(1);out center;")
	b := ElementsKey("[out:json];node(2);out center;")

	assert.Len(t, a, len(elementsKeyPrefix)+40)
	assert.Equal(t, a, ElementsKey("[out:json];node(1);out center;"))
	assert.NotEqual(t, a, b)
}

func TestCacheRepository_Elements(t *testing.T) {
	repo := getTestRepository(t)
	ctx := context.Background()
	query := "test-query-" + time.Now().Format(time.RFC3339Nano)
	t.Cleanup(func() { _ = repo.evict(context.Background(), ElementsKey(query)) })

	_, ok, err := repo.GetElements(ctx, query)
	require.NoError(t, err)
	assert.False(t, ok)

	lat, lon := 48.85, 2.35
	elements := []domain.RawElement{
		{Type: domain.ElementNode, ID: 1, Lat: &lat, Lon: &lon, Tags: map[string]string{"amenity": "pharmacy"}},
		{Type: domain.ElementWay, ID: 2, Center: &domain.ElementCenter{Lat: lat, Lon: lon}},
	}
	require.NoError(t, repo.SetElements(ctx, query, elements, time.Minute))

	cached, ok, err := repo.GetElements(ctx, query)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, elements, cached)
}

func TestCacheRepository_Stats(t *testing.T) {
	repo := getTestRepository(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = repo.evict(context.Background(), statsKey) })

	stats := &domain.Statistics{
		TotalSearches: 3,
		ByType:        map[string]int{"dentist": 2},
		LastUpdated:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.SetStats(ctx, stats, time.Minute))

	cached, err := repo.GetStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 3, cached.TotalSearches)
	assert.Equal(t, 2, cached.ByType["dentist"])
}

func TestCacheRepository_CorruptElementsEvicted(t *testing.T) {
	repo := getTestRepository(t)
	ctx := context.Background()
	query := "corrupt-query-" + time.Now().Format(time.RFC3339Nano)
	key := ElementsKey(query)
	t.Cleanup(func() { _ = repo.evict(context.Background(), key) })

	require.NoError(t, repo.Set(ctx, key, []byte("{not json"), time.Minute))

	_, ok, err := repo.GetElements(ctx, query)
	require.Error(t, err)
	assert.False(t, ok)

	exists, err := repo.client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	_, ok, err = repo.GetElements(ctx, query)
	require.NoError(t, err)
	assert.False(t, ok)
}
