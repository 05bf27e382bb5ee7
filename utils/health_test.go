package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type fakeRedisPinger struct {
	err error
}

func (f fakeRedisPinger) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetErr(f.err)
	return cmd
}

type fakeMongoPinger struct {
	err error
}

func (f fakeMongoPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return f.err
}

func TestCheckHealthReportsNamedClients(t *testing.T) {
	status := checkHealth(context.Background(), map[string]RedisPinger{
		"cache":     fakeRedisPinger{},
		"realtime":  fakeRedisPinger{err: errors.New("connection refused")},
		"taskQueue": fakeRedisPinger{},
	}, fakeMongoPinger{})

	if !status.Mongo {
		t.Error("Mongo = false, want true")
	}
	if !status.Redis["cache"] || !status.Redis["taskQueue"] {
		t.Errorf("healthy clients reported down: %v", status.Redis)
	}
	if status.Redis["realtime"] {
		t.Error("realtime = true, want false for a failing client")
	}
	if status.Healthy() {
		t.Error("Healthy() = true with a failing Redis client")
	}
	if status.CheckedAt.IsZero() {
		t.Error("CheckedAt not set")
	}
}

func TestHealthyRequiresMongo(t *testing.T) {
	status := checkHealth(context.Background(), map[string]RedisPinger{
		"cache": fakeRedisPinger{},
	}, fakeMongoPinger{err: errors.New("no reachable servers")})

	if status.Mongo {
		t.Error("Mongo = true, want false")
	}
	if status.Healthy() {
		t.Error("Healthy() = true without Mongo")
	}
}

func TestStartHealthMonitorSnapshotsImmediately(t *testing.T) {
	StartHealthMonitor(map[string]RedisPinger{
		"cache": fakeRedisPinger{},
	}, fakeMongoPinger{})

	// The first snapshot is taken synchronously, not on the first tick.
	status := GetHealthStatus()
	if !status.Mongo {
		t.Error("Mongo = false right after StartHealthMonitor, want true")
	}
	if status.CheckedAt.IsZero() {
		t.Error("CheckedAt not set right after StartHealthMonitor")
	}
}
