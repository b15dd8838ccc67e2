package app

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/dig"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/config"
	"service-dispatch/internal/http/middleware/auth"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/notify"
	"service-dispatch/internal/transport/kafka"
	"service-dispatch/internal/transport/rabbitmq"
	"service-dispatch/internal/transport/ws"
)

type notifiersCloser func() error

type notifiersOut struct {
	dig.Out

	Publisher notify.Notifier
	Hub       *ws.Hub
	Closer    notifiersCloser
}

var (
	newKafkaProducer = kafka.NewProducer
	dialRabbitMQ     = rabbitmq.Dial
)

// provideNotifiers builds the service fan-out: websocket hub, Kafka, RabbitMQ and the log sink.
func provideNotifiers(cfg *config.Config, st *stores, logger logx.Logger) (notifiersOut, error) {
	hub := ws.NewHub(deliveryGuard(st.Deliveries), logger)
	pub, closer, err := buildNotifiers(cfg, logger, notify.Named{Name: "ws", Notifier: hub})
	if err != nil {
		return notifiersOut{}, err
	}
	return notifiersOut{Publisher: pub, Hub: hub, Closer: closer}, nil
}

// provideWorkerNotifiers has no websocket clients to serve.
func provideWorkerNotifiers(cfg *config.Config, logger logx.Logger) (notifiersOut, error) {
	pub, closer, err := buildNotifiers(cfg, logger)
	if err != nil {
		return notifiersOut{}, err
	}
	return notifiersOut{Publisher: pub, Closer: closer}, nil
}

func buildNotifiers(cfg *config.Config, logger logx.Logger, extra ...notify.Named) (notify.Notifier, notifiersCloser, error) {
	sinks := append([]notify.Named{{Name: "log", Notifier: notify.NewLog(logger)}}, extra...)
	var closers []func() error

	producer, err := newKafkaProducer(logger, cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
	if err != nil {
		return nil, nil, err
	}
	if producer != nil {
		sinks = append(sinks, notify.Named{Name: "kafka", Notifier: producer})
		closers = append(closers, producer.Close)
	}

	rabbit, err := dialRabbitMQ(logger, cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		for _, c := range closers {
			_ = c()
		}
		return nil, nil, err
	}
	if rabbit != nil {
		sinks = append(sinks, notify.Named{Name: "rabbitmq", Notifier: rabbit})
		closers = append(closers, rabbit.Close)
	}

	multi := notify.NewMulti(sinks...)
	names := make([]string, 0, len(sinks))
	for _, s := range sinks {
		names = append(names, s.Name)
	}
	logger.Info("event sinks configured", logx.Any("sinks", names))

	closeAll := func() error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}
	return multi, closeAll, nil
}

// deliveryGuard lets the customer, the bound driver and admins watch a delivery.
func deliveryGuard(deliveries deliveryStore) ws.DeliveryGuard {
	return func(ctx context.Context, who auth.Identity, deliveryID uuid.UUID) error {
		d, err := deliveries.Get(ctx, deliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.NotFound("delivery", deliveryID)
		}
		if !d.VisibleTo(who.UserID, who.Role) {
			return apperr.Forbidden(who.UserID, "delivery belongs to another user")
		}
		return nil
	}
}
