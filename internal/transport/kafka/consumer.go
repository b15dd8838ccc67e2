package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

// HandleFunc processes a single location report from Kafka
type HandleFunc func(context.Context, domain.LocationReport) error

var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches location reports to a handler
type Consumer struct {
	logger  logx.Logger
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	backoff time.Duration
}

// NewConsumer creates a new Kafka consumer. It returns nil, nil when Kafka is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	// не стартую если у кафки нет настроек
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		logger:  logger.With(logx.String("component", "kafka_consumer"), logx.String("topic", topic)),
		group:   group,
		topic:   topic,
		handler: h,
		backoff: time.Second,
	}, nil
}

// Run consumes until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log := h.c.logger
	for msg := range claim.Messages() {
		rep, err := decode(msg.Value)
		if err == nil {
			err = h.c.handler(sess.Context(), rep)
		}
		if err != nil {
			reason, final := rejection(err)
			if !final {
				log.Error("kafka handle failed, retry",
					logx.ID("driver_id", rep.DriverID),
					logx.Int64("offset", msg.Offset),
					logx.Err(err),
				)
				return err
			}
			log.Warn("kafka location rejected",
				logx.String("reason", reason),
				logx.Int("partition", int(msg.Partition)),
				logx.Int64("offset", msg.Offset),
				logx.Err(err),
			)
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}

func decode(raw []byte) (domain.LocationReport, error) {
	var dto LocationDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domain.LocationReport{}, Permanent(ReasonBadJSON, err)
	}
	return ToDomain(dto)
}
