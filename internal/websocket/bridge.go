package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

// eventChannelPrefix namespaces dashboard events on the Redis bus. Other
// processes publish to "events:<channel>" and this bridge replays them into
// the local fan-out.
const eventChannelPrefix = "events:"

// RedisBridge subscribes to the Redis event bus and republishes matching
// messages through the Broadcaster. It is an ingestion path only: no
// persistence and no delivery guarantee beyond the in-memory fan-out.
type RedisBridge struct {
	client      *redis.Client
	broadcaster *Broadcaster
}

func NewRedisBridge(client *redis.Client, broadcaster *Broadcaster) *RedisBridge {
	return &RedisBridge{
		client:      client,
		broadcaster: broadcaster,
	}
}

// Run consumes bus messages until the context is cancelled.
func (rb *RedisBridge) Run(ctx context.Context) {
	pubsub := rb.client.PSubscribe(ctx, eventChannelPrefix+"*")
	defer pubsub.Close()

	slog.Info("Redis event bridge started", "pattern", eventChannelPrefix+"*")

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				slog.Info("Redis event bridge channel closed")
				return
			}
			rb.dispatch(msg)

		case <-ctx.Done():
			slog.Info("Redis event bridge shutting down")
			return
		}
	}
}

func (rb *RedisBridge) dispatch(msg *redis.Message) {
	name := strings.TrimPrefix(msg.Channel, eventChannelPrefix)
	eventType := EventType(name)
	if !eventType.IsValid() {
		slog.Debug("Ignoring event on unknown bus channel", "channel", msg.Channel)
		return
	}

	var data json.RawMessage
	if err := json.Unmarshal([]byte(msg.Payload), &data); err != nil {
		slog.Error("Malformed bus event payload", "channel", msg.Channel, "error", err)
		return
	}

	rb.broadcaster.Publish(eventType, data)
}
