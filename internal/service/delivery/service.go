// Package delivery owns the delivery state machine.
package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AssignmentPolicy selects how a new delivery reaches drivers.
type AssignmentPolicy string

// Supported assignment policies
const (
	// PolicyBroadcast offers the delivery to every fresh available driver; the first accept wins.
	PolicyBroadcast AssignmentPolicy = "broadcast"
	// PolicyNearest offers the delivery to the single best candidate near the pickup point.
	PolicyNearest AssignmentPolicy = "nearest"
)

// Valid reports whether p is a known policy. The empty policy means broadcast.
func (p AssignmentPolicy) Valid() bool {
	return p == "" || p == PolicyBroadcast || p == PolicyNearest
}

// Config tunes the lifecycle controller.
type Config struct {
	OperationTimeout time.Duration
	// MaxCandidateDistanceKm bounds the nearest policy search radius.
	MaxCandidateDistanceKm float64
}

// Metrics are optional counters; nil fields are skipped.
type Metrics struct {
	NotifyFailures  counter
	AcceptConflicts counter
	Transitions     transitionCounter
}

// Service validates and applies delivery transitions and emits lifecycle events
// after every committed change.
type Service struct {
	repo             deliveryRepository
	users            userResolver
	matching         matcher
	locations        locator
	fares            fareSplitter
	notifier         publisher
	metrics          Metrics
	operationTimeout time.Duration
	maxDistanceKm    float64
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a delivery Service.
func NewService(
	repo deliveryRepository,
	users userResolver,
	matching matcher,
	locations locator,
	fares fareSplitter,
	notifier publisher,
	cfg Config,
	metrics Metrics,
	logger logx.Logger,
) *Service {
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 3 * time.Second
	}
	if cfg.MaxCandidateDistanceKm <= 0 {
		cfg.MaxCandidateDistanceKm = 10
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		users:            users,
		matching:         matching,
		locations:        locations,
		fares:            fares,
		notifier:         notifier,
		metrics:          metrics,
		operationTimeout: cfg.OperationTimeout,
		maxDistanceKm:    cfg.MaxCandidateDistanceKm,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) countTransition(from, to domain.DeliveryStatus) {
	if s.metrics.Transitions != nil {
		s.metrics.Transitions.Inc(from, to)
	}
}

// resolveRole returns the user when it exists, is active and has the role.
func (s *Service) resolveRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	u, err := s.users.Resolve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", strings.ToLower(string(role)), err)
	}
	if u == nil {
		return nil, apperr.NotFound("user", id)
	}
	if u.Role != role || !u.Active {
		return nil, apperr.Forbidden(id, "user is not an active "+strings.ToLower(string(role)))
	}
	return u, nil
}
