// Package events publishes order lifecycle events for downstream
// consumers. Publishing is best-effort: a failed publish never fails
// the checkout that triggered it.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/config"
	"github.com/MounsifEd/storefront-checkout-service/internal/models"
)

// EventType represents the type of order event.
type EventType string

const EventTypeOrderPlaced EventType = "order.placed"

// OrderEvent is the envelope written to the orders topic.
type OrderEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	OrderID   string          `json:"order_id"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher emits order events.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, order *models.Order) error
	Close() error
}

// KafkaPublisher publishes order events to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaPublisher creates a Kafka-backed publisher.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{writer: writer, logger: logger}
}

// PublishOrderPlaced emits an order.placed event keyed by order id.
func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, order *models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}

	event := &OrderEvent{
		ID:        "evt_" + uuid.NewString(),
		Type:      EventTypeOrderPlaced,
		OrderID:   order.ID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: eventData,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("event publish failed",
			zap.String("event_id", event.ID),
			zap.String("order_id", event.OrderID),
			zap.Error(err))
		return err
	}

	p.logger.Info("event published",
		zap.String("event_id", event.ID),
		zap.String("order_id", event.OrderID))
	return nil
}

// Close closes the Kafka writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events; used when order events are disabled.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, *models.Order) error { return nil }
func (NopPublisher) Close() error                                            { return nil }

// MockPublisher records events for tests.
type MockPublisher struct {
	Events []*OrderEvent
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{Events: make([]*OrderEvent, 0)}
}

func (m *MockPublisher) PublishOrderPlaced(_ context.Context, order *models.Order) error {
	m.Events = append(m.Events, &OrderEvent{
		Type:    EventTypeOrderPlaced,
		OrderID: order.ID,
	})
	return nil
}

func (m *MockPublisher) Close() error { return nil }
