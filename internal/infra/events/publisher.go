package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"machine-rental/internal/pkg/config"
	"machine-rental/internal/pkg/errs"
	"machine-rental/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// AMQPPublisher pushes booking lifecycle events to a topic exchange.
// Publishing is best effort: a broker outage is logged, never surfaced to
// the request that triggered the event.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	url      string
	exchange string
}

func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, func(), error) {
	p := &AMQPPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
	}
	if err := p.connect(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.channel != nil {
			_ = p.channel.Close()
		}
		if p.conn != nil {
			_ = p.conn.Close()
		}
	}
	return p, cleanup, nil
}

var _ commands.EventPublisher = (*AMQPPublisher)(nil)

// connect tears down whatever is left of the previous session before
// dialing, so reconnects never leak the stale connection.
func (p *AMQPPublisher) connect() error {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "failed to connect to message broker")
	}
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "failed to open broker channel")
	}
	if err := channel.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return errs.Wrap(err, "failed to declare exchange")
	}

	p.conn = conn
	p.channel = channel
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event commands.BookingEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to encode booking event", "event", event.Name, "error", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.publishLocked(ctx, event.Name, body); err != nil {
		// One reconnect attempt covers broker restarts; beyond that the
		// event is dropped.
		if reconnectErr := p.connect(); reconnectErr != nil {
			slog.Error("booking event dropped, broker unreachable",
				"event", event.Name, "booking_id", event.BookingID, "error", err.Error())
			return
		}
		if err := p.publishLocked(ctx, event.Name, body); err != nil {
			slog.Error("booking event dropped after reconnect",
				"event", event.Name, "booking_id", event.BookingID, "error", err.Error())
		}
	}
}

func (p *AMQPPublisher) publishLocked(ctx context.Context, routingKey string, body []byte) error {
	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// NopPublisher drops every event. Used while tests run without a broker.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, commands.BookingEvent) {}
