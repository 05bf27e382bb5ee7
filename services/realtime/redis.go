package realtime

import (
	"context"
	"encoding/json"
	"time"

	"obratrack/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisChannelService implements ChannelService on Redis pub/sub, so events
// reach displays regardless of which instance handled the mutating request.
type RedisChannelService struct {
	Client *redis.Client
	Logger *zap.Logger
}

// NewRedisChannelService creates a ChannelService backed by the given client.
func NewRedisChannelService(client *redis.Client, logger *zap.Logger) *RedisChannelService {
	return &RedisChannelService{Client: client, Logger: logger}
}

func channelKey(token string) string {
	return utils.TVChannelPrefix + token
}

// Publish marshals the event and fires it at the token's channel. Errors are
// logged and swallowed: a failed notification must not fail the state change
// that produced it.
func (s *RedisChannelService) Publish(ctx context.Context, token string, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		s.Logger.Error("realtime: failed to marshal event",
			zap.String("token", token), zap.String("type", evt.Type), zap.Error(err))
		return
	}

	pubCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Client.Publish(pubCtx, channelKey(token), data).Err(); err != nil {
		s.Logger.Warn("realtime: failed to publish event",
			zap.String("token", token), zap.String("type", evt.Type), zap.Error(err))
	}
}

// Subscribe opens a Redis subscription on the token's channel and adapts it
// to an Event stream. The cancel function closes the subscription; the event
// channel is closed once the subscription drains.
func (s *RedisChannelService) Subscribe(ctx context.Context, token string) (<-chan Event, func()) {
	sub := s.Client.Subscribe(ctx, channelKey(token))
	out := make(chan Event, 8)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var evt Event
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				s.Logger.Warn("realtime: dropping malformed event",
					zap.String("token", token), zap.Error(err))
				continue
			}
			select {
			case out <- evt:
			default:
				// Listener is not draining; drop rather than stall.
			}
		}
	}()

	cancel := func() {
		if err := sub.Close(); err != nil {
			s.Logger.Debug("realtime: subscription close", zap.Error(err))
		}
	}
	return out, cancel
}
