//go:generate mockgen -source=contracts.go -destination=handlers_mocks_test.go -package=handlers

package handlers

import (
	"context"

	"github.com/google/uuid"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/delivery"
)

type deliveryUsecase interface {
	Create(ctx context.Context, in delivery.CreateInput) (*domain.Delivery, error)
	ListForUser(ctx context.Context, userID uuid.UUID, p domain.Page) (domain.DeliveryPage, error)
	Get(ctx context.Context, deliveryID uuid.UUID) (*domain.DeliveryView, error)
	Accept(ctx context.Context, deliveryID, driverID uuid.UUID) (*domain.Delivery, error)
	UpdateStatus(ctx context.Context, deliveryID, driverID uuid.UUID, next domain.DeliveryStatus) (*domain.Delivery, error)
	Cancel(ctx context.Context, deliveryID, userID uuid.UUID) (*domain.Delivery, error)
}

type locationUsecase interface {
	ReportLocation(ctx context.Context, rep domain.LocationReport) (*domain.DriverLocation, error)
	SetAvailability(ctx context.Context, driverID uuid.UUID, available bool) (*domain.DriverLocation, error)
	GetLocation(ctx context.Context, driverID uuid.UUID) (*domain.DriverLocation, bool)
	ListAvailable(ctx context.Context) ([]domain.DriverLocation, error)
}

type candidateFinder interface {
	FindBestCandidate(ctx context.Context, pickupLat, pickupLon, maxDistanceKm float64) (domain.Candidate, error)
}

type fareCalculator interface {
	CalculateFare(distanceKm float64, estimatedMinutes int) (domain.FareResult, error)
}
