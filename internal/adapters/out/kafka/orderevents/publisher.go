package orderevents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"grubdash/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var ErrEventHasNoOrder = errors.New("order event carries no order")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes every order change to one topic, keyed by order id so
// that the changes of one order stay in sequence.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher for the comma separated broker list.
func NewKafkaPublisher(brokers, topic string, logger *slog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(splitBrokers(brokers)...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w, topic, logger)
}

func newKafkaPublisher(w messageWriter, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: w,
		topic:  topic,
		logger: logger.With("component", "order-events", "topic", topic),
	}
}

// Publish sends the event and waits for the brokers to acknowledge it.
func (p *KafkaPublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	if event.Order == nil {
		return ErrEventHasNoOrder
	}

	msg := newOrderChangedMessage(event)
	value, err := msg.encode()
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Order.ID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "event-type", Value: []byte(msg.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("write %s event: %w", event.Type, err)
	}

	p.logger.DebugContext(ctx, "Order event published", "event", msg.Type, "order_id", msg.Order.ID)
	return nil
}

// Close flushes pending writes and releases the connections.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ports.OrderChangedEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

func splitBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
