// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"hausly/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CartClient is the Redis client backing the persisted cart lists and
	// per-session checkout state.
	CartClient *redis.Client
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
)

// InitCartStore initializes the Redis client for cart persistence (using DB from AppConfig).
func InitCartStore() {
	CartClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CartClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cart): %v", err)
	}
}

// GetCartClient returns the Redis client for cart persistence.
func GetCartClient() *redis.Client {
	if CartClient == nil {
		InitCartStore()
	}
	return CartClient
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
