// Package rabbitmq publishes domain events to a topic exchange. Notification
// topics such as delivery.{id}.status are used as routing keys verbatim, so
// consumers can bind with patterns like delivery.*.status.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"service-dispatch/internal/logx"
)

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher writes JSON events to a durable topic exchange.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   logx.Logger
	now      func() time.Time
}

// Dial connects and declares the exchange. It returns nil, nil when url is empty.
func Dial(logger logx.Logger, url, exchange string) (*Publisher, error) {
	if strings.TrimSpace(url) == "" {
		return nil, nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	p, err := newPublisher(ch, exchange, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string, logger logx.Logger) (*Publisher, error) {
	if logger == nil {
		logger = logx.Nop()
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("rabbitmq declare exchange %q: %w", exchange, err)
	}
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Publish sends payload with topic as the routing key.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("rabbitmq marshal %s: %w", topic, err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    p.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq publish %s: %w", topic, err)
	}
	p.logger.Debug("rabbitmq event sent", logx.String("routing_key", topic))
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
