// Package cron runs the deferred-task machinery. Every pairing session gets
// an expiry task enqueued at creation and processed at its deadline. Read
// correctness never depends on this worker, since lookups apply lazy expiry
// and Mongo's TTL index reclaims storage; the worker only guarantees that a
// display left on the pairing screen hears about the expiry.
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"obratrack/config"

	"github.com/hibiken/asynq"
)

// TypeTVSessionExpire is the task type for deferred session closure.
const TypeTVSessionExpire = "tv:session:expire"

// SessionExpirer force-closes a pairing session at its deadline.
type SessionExpirer interface {
	ExpireSession(token string) error
}

type expirePayload struct {
	Token string `json:"token"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// TaskScheduler enqueues deferred expiry tasks. It satisfies the TV
// service's ExpiryScheduler dependency.
type TaskScheduler struct {
	client *asynq.Client
}

// NewTaskScheduler creates a scheduler with its own asynq client.
func NewTaskScheduler() *TaskScheduler {
	return &TaskScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleExpiry enqueues a close for the token at the given instant.
func (s *TaskScheduler) ScheduleExpiry(token string, at time.Time) error {
	payload, err := json.Marshal(expirePayload{Token: token})
	if err != nil {
		return fmt.Errorf("failed to marshal expiry payload: %w", err)
	}
	task := asynq.NewTask(TypeTVSessionExpire, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(at)); err != nil {
		return fmt.Errorf("failed to enqueue expiry task: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *TaskScheduler) Close() error {
	return s.client.Close()
}

// InitExpiryWorker runs the async worker in background.
func InitExpiryWorker(expirer SessionExpirer) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTVSessionExpire, handleExpireTask(expirer))

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleExpireTask(expirer SessionExpirer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p expirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryWorker] invalid payload: %v", err)
			return err
		}
		if err := expirer.ExpireSession(p.Token); err != nil {
			log.Printf("[ExpiryWorker] failed to expire session %s: %v", p.Token, err)
			return err
		}
		return nil
	}
}
