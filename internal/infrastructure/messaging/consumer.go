package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/notifications"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

type outcome int

const (
	outcomeAck outcome = iota
	outcomeRequeue
	outcomeDiscard
)

// NotificationConsumer feeds booking events from a durable queue into the notification service
type NotificationConsumer struct {
	settings config.MessagingSettings
	handler  notifications.NotificationService
	logger   logger.Logger

	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewNotificationConsumer creates a consumer; Connect must be called before Run
func NewNotificationConsumer(settings config.MessagingSettings, handler notifications.NotificationService, logger logger.Logger) *NotificationConsumer {
	return &NotificationConsumer{settings: settings, handler: handler, logger: logger}
}

// Connect declares the exchange and queue and binds every booking routing key
func (c *NotificationConsumer) Connect() error {
	conn, err := amqp.Dial(c.settings.URL)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	fail := func(step string, err error) error {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(c.settings.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}
	q, err := ch.QueueDeclare(c.settings.Queue, true, false, false, false, nil)
	if err != nil {
		return fail("declare queue", err)
	}
	for _, key := range bookings.EventKeys {
		if err := ch.QueueBind(q.Name, key, c.settings.Exchange, false, nil); err != nil {
			return fail("bind "+key, err)
		}
	}

	prefetch := c.settings.Prefetch
	if prefetch <= 0 {
		prefetch = 8
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fail("set qos", err)
	}

	c.conn = conn
	c.ch = ch
	return nil
}

// Run consumes until ctx is done or the channel closes
func (c *NotificationConsumer) Run(ctx context.Context) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.settings.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	c.logger.Info("Notification consumer started on queue ", c.settings.Queue)
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			switch c.process(ctx, d.RoutingKey, d.Body) {
			case outcomeAck:
				_ = d.Ack(false)
			case outcomeRequeue:
				_ = d.Nack(false, true)
			case outcomeDiscard:
				_ = d.Nack(false, false)
			}
		}
	}
}

func (c *NotificationConsumer) process(ctx context.Context, routingKey string, body []byte) outcome {
	var ev bookings.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		c.logger.Warn("dropping undecodable event", "routing_key", routingKey, "error", err)
		return outcomeDiscard
	}
	if ev.Type == "" {
		ev.Type = routingKey
	}

	if err := c.handler.Handle(ctx, &ev); err != nil {
		c.logger.Warn("notification failed, requeueing", "routing_key", routingKey, "booking_id", ev.BookingID, "error", err)
		return outcomeRequeue
	}
	return outcomeAck
}

// Close releases the channel and the connection
func (c *NotificationConsumer) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
