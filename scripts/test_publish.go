//go:build ignore

// Публикует тестовый запрос "учреждения рядом" и ждет ответ воркера.
//
//	go run scripts/test_publish.go -redis localhost:6379 -q pharmacie
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mediplus/geosearch/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	lat := flag.Float64("lat", 48.8566, "latitude")
	lon := flag.Float64("lon", 2.3522, "longitude")
	radius := flag.Int("radius", 0, "radius in meters (0 - service default)")
	query := flag.String("q", "", "text filter")
	limit := flag.Int("limit", 5, "max establishments in response")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Запоминаем хвост стрима ответов до публикации
	lastID := "$"
	if last, err := client.XRevRangeN(ctx, domain.StreamNearbyDone, "+", "-", 1).Result(); err == nil && len(last) > 0 {
		lastID = last[0].ID
	}

	event := domain.NearbyRequestEvent{
		RequestID: uuid.New(),
		Lat:       lat,
		Lon:       lon,
		RadiusM:   *radius,
		Query:     *query,
		Limit:     *limit,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	messageID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamNearbyRequest,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published to %s\n", domain.StreamNearbyRequest)
	fmt.Printf("   Message ID: %s\n", messageID)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Point: %.6f, %.6f\n", *lat, *lon)
	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamNearbyDone)

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamNearbyDone, lastID},
			Count:   10,
			Block:   2 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			log.Fatalf("Failed to read responses: %v", err)
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var done domain.NearbyDoneEvent
				if err := json.Unmarshal([]byte(dataStr), &done); err != nil || done.RequestID != event.RequestID {
					continue
				}

				fmt.Printf("\nResponse received (%d of %d):\n", len(done.Establishments), done.Total)
				for _, est := range done.Establishments {
					fmt.Printf("   %5.2f km  %-16s %s\n", est.Distance, est.Type, est.Name)
				}
				if done.Error != "" {
					fmt.Printf("   error: %s\n", done.Error)
				}
				return
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
