package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

// AMQPPublisher publishes booking events as persistent JSON messages
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

// NewAMQPPublisher dials the broker and declares the exchange
func NewAMQPPublisher(settings *config.MessagingSettings, logger logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(settings.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(settings.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, exchange: settings.Exchange, logger: logger}, nil
}

// Publish sends event under routingKey
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event *bookings.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	p.logger.Debug("event published", "routing_key", routingKey, "booking_id", event.BookingID)
	return nil
}

// Close releases the channel and the connection
func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops events when no broker is configured
type NoopPublisher struct {
	logger logger.Logger
}

// NewNoopPublisher creates a publisher that only logs
func NewNoopPublisher(logger logger.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// Publish logs the event and returns nil
func (p *NoopPublisher) Publish(_ context.Context, routingKey string, event *bookings.Event) error {
	p.logger.Debug("event dropped, messaging disabled", "routing_key", routingKey, "booking_id", event.BookingID)
	return nil
}
