package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"dashboard-service/internal/websocket"

	"github.com/IBM/sarama"
)

// marketEvent is the shape producers put on the market-events topic.
type marketEvent struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
}

// Consumer ingests market events from Kafka and republishes them through
// the realtime broadcaster. It implements sarama.ConsumerGroupHandler.
type Consumer struct {
	group       sarama.ConsumerGroup
	topics      []string
	broadcaster *websocket.Broadcaster
}

func NewConsumer(brokers []string, groupID string, topic string, broadcaster *websocket.Broadcaster) (*Consumer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_0_0_0
	cfg.ClientID = "dashboard-service"
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:       group,
		topics:      []string{topic},
		broadcaster: broadcaster,
	}, nil
}

// Run consumes until the context is cancelled. Consume returns on every
// rebalance, so it loops.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.group.Close()

	go func() {
		for err := range c.group.Errors() {
			slog.Error("Kafka consumer error", "error", err)
		}
	}()

	for {
		if err := c.group.Consume(ctx, c.topics, c); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			slog.Error("Kafka consume failed", "error", err)
		}
		if ctx.Err() != nil {
			slog.Info("Kafka consumer shutting down")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var event marketEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			slog.Error("Malformed market event", "topic", msg.Topic, "offset", msg.Offset, "error", err)
			session.MarkMessage(msg, "")
			continue
		}

		if event.Symbol == "" {
			slog.Debug("Skipping market event without symbol", "offset", msg.Offset)
			session.MarkMessage(msg, "")
			continue
		}

		c.broadcaster.PublishStockUpdate(event.Symbol, map[string]interface{}{
			"price":         event.Price,
			"change":        event.Change,
			"changePercent": event.ChangePercent,
			"volume":        event.Volume,
		})
		session.MarkMessage(msg, "")
	}
	return nil
}
