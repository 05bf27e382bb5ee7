package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// RedisPinger is the slice of redis.Client the health monitor needs.
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// MongoPinger is the slice of mongo.Client the health monitor needs.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// HealthStatus represents current status of external services. Redis clients
// are reported by name (cache, auth, realtime, taskQueue) so an operator can
// tell which concern is degraded; taskQueue is the broker the session-expiry
// worker drains.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every monitored dependency answered its last ping.
func (s HealthStatus) Healthy() bool {
	if !s.Mongo {
		return false
	}
	for _, ok := range s.Redis {
		if !ok {
			return false
		}
	}
	return true
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func checkHealth(ctx context.Context, redisClients map[string]RedisPinger, mongoClient MongoPinger) HealthStatus {
	redisHealth := make(map[string]bool, len(redisClients))
	for name, client := range redisClients {
		redisHealth[name] = client.Ping(ctx).Err() == nil
	}

	return HealthStatus{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
}

// StartHealthMonitor takes one snapshot immediately, so /health answers from
// real data from the first request on, then refreshes it every minute.
func StartHealthMonitor(redisClients map[string]RedisPinger, mongoClient MongoPinger) {
	ctx := context.Background()

	update := func() {
		status := checkHealth(ctx, redisClients, mongoClient)
		mu.Lock()
		currentHealth = status
		mu.Unlock()
	}

	update()

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			update()
		}
	}()
}
