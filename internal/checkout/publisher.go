package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderPublisher hands completed orders to whatever consumes them
// downstream. Publishing is best-effort; checkout never fails because of
// the publisher.
type OrderPublisher interface {
	Publish(ctx context.Context, order *Order) error
	Close() error
}

// NopPublisher is used by the standalone binary when no broker is
// configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *Order) error { return nil }
func (NopPublisher) Close() error                          { return nil }

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(topic string, brokers ...string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, order *Order) error {
	payload := map[string]interface{}{
		"order_id":     order.ID,
		"session_id":   order.SessionID,
		"items":        order.Items,
		"total_amount": order.Breakdown.Total,
		"currency":     order.Currency,
		"completed_at": time.Now(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal order payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.SessionID),
		Value: data,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
