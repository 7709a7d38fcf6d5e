// Package kafka publishes order integration events to a Kafka broker.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter abstracts the kafka writer for testability.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher publishes order events as JSON messages.
// Messages are keyed by order id so all events of one order land in the same
// partition and preserve their relative order.
type OrderEventPublisher struct {
	writer messageWriter
}

// NewOrderEventPublisher creates a publisher writing to the given brokers and topic.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

// PublishOrderCreated publishes the order creation event.
func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, event order.CreatedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(event.EventType)},
			{Key: "timestamp", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	})
}

// Close releases the underlying broker connection.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
