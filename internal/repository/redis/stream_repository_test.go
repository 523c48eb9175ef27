package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mediplus/geosearch/internal/domain"
	redisRepo "github.com/mediplus/geosearch/internal/repository/redis"
)

const (
	testRequestStream = "test:stream:establishment:nearby"
	testDoneStream    = "test:stream:establishment:nearby:done"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testRequestStream, testDoneStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testRequestStream, testDoneStream)
		_ = client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	err := repo.CreateConsumerGroup(ctx, testRequestStream, "test-group")
	require.NoError(t, err)

	groups, err := client.XInfoGroups(ctx, testRequestStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testRequestStream, "test-group"))
}

func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	requestID := uuid.New()
	event := &domain.NearbyDoneEvent{
		RequestID: requestID,
		Establishments: []domain.Establishment{
			{ID: "node-1", Name: "Pharmacie Centrale", Type: domain.EstablishmentPharmacy, Distance: 0.42},
		},
		Total: 1,
	}

	require.NoError(t, repo.PublishToStream(ctx, testDoneStream, event))

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testDoneStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	dataStr, ok := messages[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.NearbyDoneEvent
	require.NoError(t, json.Unmarshal([]byte(dataStr), &received))
	assert.Equal(t, requestID, received.RequestID)
	assert.Equal(t, 1, received.Total)
	assert.Equal(t, "Pharmacie Centrale", received.Establishments[0].Name)
}

func TestStreamRepository_ConsumeBatch(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testRequestStream, "test-consumer-group"))

	// пустая очередь не блокирует
	messages, err := repo.ConsumeBatch(ctx, testRequestStream, "test-consumer-group", "test-consumer", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)

	lat, lon := 48.8566, 2.3522
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.PublishToStream(ctx, testRequestStream, &domain.NearbyRequestEvent{
			RequestID: uuid.New(),
			Lat:       &lat,
			Lon:       &lon,
			Query:     "pharmacie",
		}))
	}

	messages, err = repo.ConsumeBatch(ctx, testRequestStream, "test-consumer-group", "test-consumer", 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	var event domain.NearbyRequestEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &event))
	assert.True(t, event.HasLocation())
	assert.Equal(t, "pharmacie", event.Query)

	messages, err = repo.ConsumeBatch(ctx, testRequestStream, "test-consumer-group", "test-consumer", 10)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestStreamRepository_AckMessages(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testRequestStream, "test-ack-group"))
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.PublishToStream(ctx, testRequestStream, &domain.NearbyRequestEvent{RequestID: uuid.New()}))
	}

	messages, err := repo.ConsumeBatch(ctx, testRequestStream, "test-ack-group", "test-consumer", 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	pending, err := client.XPending(ctx, testRequestStream, "test-ack-group").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Count)

	require.NoError(t, repo.AckMessage(ctx, testRequestStream, "test-ack-group", messages[0].ID))
	require.NoError(t, repo.AckMessages(ctx, testRequestStream, "test-ack-group", []string{messages[1].ID}))
	require.NoError(t, repo.AckMessages(ctx, testRequestStream, "test-ack-group", nil))

	pending, err = client.XPending(ctx, testRequestStream, "test-ack-group").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}
