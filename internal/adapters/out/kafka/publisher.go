// Package kafka publishes order change events to a Kafka topic. Messages are
// keyed by order id so all events for one order land on the same partition
// and consumers observe them in sequence order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

const publishTimeout = 5 * time.Second

// Publisher implements ports.OrderEventPublisher on top of a kafka.Writer.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to topic on the given brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Publisher{writer: writer, logger: logger}, nil
}

// Publish sends the event. Failures are logged and returned; callers treat
// publishing as best-effort and never roll back committed state over it.
func (p *Publisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
	if err != nil {
		p.logger.Error("order event publish failed",
			"type", string(event.Type),
			"orderId", event.OrderID,
			"error", err,
		)
		return fmt.Errorf("publish order event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ports.OrderEvent) error { return nil }
