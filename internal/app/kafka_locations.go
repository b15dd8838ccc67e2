package app

import (
	"context"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/transport/kafka"
)

var newKafkaConsumer = kafka.NewConsumer

type locationReporter interface {
	ReportLocation(ctx context.Context, rep domain.LocationReport) (*domain.DriverLocation, error)
}

// makeLocationHandler feeds Kafka location reports into the registry.
func makeLocationHandler(reg locationReporter) kafka.HandleFunc {
	return func(ctx context.Context, rep domain.LocationReport) error {
		_, err := reg.ReportLocation(ctx, rep)
		return err
	}
}
