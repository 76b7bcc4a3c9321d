package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Adarsh-722/OrderSphere/models"
	"github.com/Adarsh-722/OrderSphere/utils"
	"github.com/segmentio/kafka-go"
)

// Order event types
const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderDeleted = "order.deleted"
)

// OrderEvent is the message published after a committed order write
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     uint      `json:"order_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

var writer *kafka.Writer

// Init configures the Kafka writer. With no brokers the publisher stays
// disabled and PublishOrderEvent becomes a no-op.
func Init(brokers []string, topic string) {
	if len(brokers) == 0 {
		return
	}
	writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  5,
		WriteTimeout: 5 * time.Second,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// Close releases the writer
func Close() error {
	if writer == nil {
		return nil
	}
	return writer.Close()
}

// PublishOrderEvent publishes an order event keyed by order ID so events for
// the same order land on the same partition. Publishing is best-effort: the
// order write has already committed, so failures are logged and dropped.
func PublishOrderEvent(ctx context.Context, eventType string, order *models.Order) {
	if writer == nil {
		return
	}

	event := OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		utils.LogError("Failed to encode %s event for order %d: %v", eventType, order.ID, err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(order.ID), 10)),
		Value: value,
	}
	if err := writer.WriteMessages(ctx, msg); err != nil {
		utils.LogError("Failed to publish %s event for order %d: %v", eventType, order.ID, err)
	}
}
