package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkelley412/youth-group-backend/config"
)

var (
	// RedisClient is the shared client for live check-in data. Nil when
	// Redis is not configured; callers must check IsRedisEnabled first.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// InitRedis connects to Redis if REDIS_ADDR is set. A missing or unreachable
// Redis is not fatal: live check-ins are an optional store and everything
// that reads them degrades.
func InitRedis(cfg *config.Config) error {
	if cfg.RedisAddr == "" {
		log.Println("ℹ️ REDIS_ADDR not set, live check-ins disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(Ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	RedisClient = client
	log.Printf("✅ Connected to Redis at %s", cfg.RedisAddr)
	return nil
}

// IsRedisEnabled reports whether a Redis client is available.
func IsRedisEnabled() bool {
	return RedisClient != nil
}
