package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"service-dispatch/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer writes domain events to a single Kafka topic. The notification
// topic becomes the message key so events of one entity keep their order.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	now      func() time.Time
}

// NewProducer returns nil, nil when Kafka is not configured.
func NewProducer(logger logx.Logger, brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	sp, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return newProducer(sp, topic, logger), nil
}

func newProducer(sp sarama.SyncProducer, topic string, logger logx.Logger) *Producer {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Producer{
		producer: sp,
		topic:    topic,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Publish sends the payload wrapped in an Envelope.
func (p *Producer) Publish(ctx context.Context, topic string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(Envelope{Topic: topic, Payload: payload, PublishedAt: p.now()})
	if err != nil {
		return fmt.Errorf("kafka marshal %s: %w", topic, err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(topic),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		return fmt.Errorf("kafka send %s: %w", topic, err)
	}
	p.logger.Debug("kafka event sent",
		logx.String("topic", topic),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
