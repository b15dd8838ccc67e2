// Package notify fans domain events out to the configured transports.
package notify

import (
	"context"
	"errors"
	"fmt"

	"service-dispatch/internal/logx"
)

// Notifier publishes a payload on a topic.
type Notifier interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Named pairs a notifier with a label used in errors.
type Named struct {
	Name     string
	Notifier Notifier
}

// Multi publishes to every sink. It tries all of them and joins the failures.
type Multi struct {
	sinks []Named
}

// NewMulti drops nil sinks.
func NewMulti(sinks ...Named) *Multi {
	m := &Multi{sinks: make([]Named, 0, len(sinks))}
	for _, s := range sinks {
		if s.Notifier != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Len returns the number of sinks.
func (m *Multi) Len() int { return len(m.sinks) }

func (m *Multi) Publish(ctx context.Context, topic string, payload any) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Notifier.Publish(ctx, topic, payload); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Log writes every event to the logger at debug level.
type Log struct {
	logger logx.Logger
}

func NewLog(logger logx.Logger) *Log {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Log{logger: logger}
}

func (l *Log) Publish(_ context.Context, topic string, payload any) error {
	l.logger.Debug("event published",
		logx.String("topic", topic),
		logx.Any("payload", payload),
	)
	return nil
}
