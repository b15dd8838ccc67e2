package delivery

import (
	"context"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

func statusEvent(d *domain.Delivery, prev domain.DeliveryStatus, fare *domain.FareResult) domain.StatusEvent {
	ev := domain.StatusEvent{
		DeliveryID: d.ID,
		CustomerID: d.CustomerID,
		DriverID:   d.DriverID,
		Status:     d.Status,
		Previous:   prev,
		At:         d.UpdatedAt,
	}
	if fare != nil {
		ev.Fare = domain.NewFareEvent(*fare)
	}
	return ev
}

// emitStatus publishes a committed change to the delivery topic and to the
// feeds of both parties.
func (s *Service) emitStatus(ctx context.Context, d *domain.Delivery, prev domain.DeliveryStatus, fare *domain.FareResult) {
	ev := statusEvent(d, prev, fare)
	s.publish(ctx, domain.DeliveryStatusTopic(d.ID), ev)
	s.publish(ctx, domain.UserDeliveriesTopic(d.CustomerID), ev)
	if d.DriverID != nil {
		s.publish(ctx, domain.UserDeliveriesTopic(*d.DriverID), ev)
	}
}

func (s *Service) publish(ctx context.Context, topic string, payload any) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, topic, payload); err != nil {
		if s.metrics.NotifyFailures != nil {
			s.metrics.NotifyFailures.Inc()
		}
		s.logger.Error("notify failed",
			logx.Event("notify_failed"),
			logx.String("topic", topic),
			logx.Err(err),
		)
	}
}
