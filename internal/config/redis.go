package config

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Redis   *redis.Client
	redisMu sync.Mutex
)

// ConnectRedis initializes the shared Redis client used by the draft store.
// Redis is optional: without REDIS_ADDR the app falls back to in-memory drafts.
func ConnectRedis(env Env) *redis.Client {
	redisMu.Lock()
	defer redisMu.Unlock()

	if Redis != nil {
		return Redis
	}
	if env.RedisAddr == "" {
		log.Println("REDIS_ADDR kosong, draft itinerary disimpan di memori")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Gagal ping Redis (%s): %v, fallback ke memori", env.RedisAddr, err)
		_ = client.Close()
		return nil
	}

	Redis = client
	log.Println("Berhasil konek ke Redis")
	return Redis
}

func CloseRedis() {
	redisMu.Lock()
	defer redisMu.Unlock()

	if Redis != nil {
		_ = Redis.Close()
		Redis = nil
	}
}
