// File: utils/cache.go
package utils

import (
	"concierge/config"
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	// ChatContextClient is the dedicated client for chat conversation context.
	ChatContextClient *redis.Client
	// MemoryClient is the dedicated client for learned client memories.
	MemoryClient *redis.Client
)

// InitChatContextCache initializes the Redis client for chat context storage.
func InitChatContextCache() {
	ChatContextClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatCtxDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ChatContextClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Context): %v", err)
	}
}

// GetChatContextClient returns the Redis client for chat context storage.
func GetChatContextClient() *redis.Client {
	if ChatContextClient == nil {
		InitChatContextCache()
	}
	return ChatContextClient
}

// InitMemoryCache initializes the Redis client for learned client memories.
func InitMemoryCache() {
	MemoryClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMemoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := MemoryClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Memory): %v", err)
	}
}

// GetMemoryClient returns the Redis client for learned client memories.
func GetMemoryClient() *redis.Client {
	if MemoryClient == nil {
		InitMemoryCache()
	}
	return MemoryClient
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	InitChatContextCache()
	InitMemoryCache()
}
