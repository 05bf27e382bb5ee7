// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"obratrack/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// RealtimeClient is the dedicated client for pub/sub event channels.
	RealtimeClient *redis.Client
	// TaskQueueClient pings the broker database the expiry worker drains.
	TaskQueueClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitRealtimeClient initializes the Redis client used for pub/sub channels.
func InitRealtimeClient() {
	RealtimeClient = newRedisClient(config.AppConfig.RedisRealtimeDB)
}

// GetRealtimeClient returns the Redis client used for pub/sub channels.
func GetRealtimeClient() *redis.Client {
	if RealtimeClient == nil {
		InitRealtimeClient()
	}
	return RealtimeClient
}

// InitTaskQueueClient initializes the Redis client used to health-check the
// task queue database. The worker itself connects through asynq.
func InitTaskQueueClient() {
	TaskQueueClient = newRedisClient(config.AppConfig.RedisTaskQueueDB)
}

// GetTaskQueueClient returns the Redis client for the task queue database.
func GetTaskQueueClient() *redis.Client {
	if TaskQueueClient == nil {
		InitTaskQueueClient()
	}
	return TaskQueueClient
}
