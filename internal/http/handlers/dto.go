package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"service-dispatch/internal/domain"
)

type pointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type createDeliveryRequest struct {
	PickupAddress    string          `json:"pickup_address"`
	DeliveryAddress  string          `json:"delivery_address"`
	Price            decimal.Decimal `json:"price"`
	Description      string          `json:"description,omitempty"`
	PickupPoint      *pointDTO       `json:"pickup_point,omitempty"`
	EstimatedMinutes *int            `json:"estimated_minutes,omitempty"`
	Policy           string          `json:"policy,omitempty"`
}

type updateStatusRequest struct {
	Status domain.DeliveryStatus `json:"status"`
}

type deliveryDTO struct {
	ID                    uuid.UUID             `json:"id"`
	CustomerID            uuid.UUID             `json:"customer_id"`
	DriverID              *uuid.UUID            `json:"driver_id"`
	PickupAddress         string                `json:"pickup_address"`
	DeliveryAddress       string                `json:"delivery_address"`
	PickupPoint           *pointDTO             `json:"pickup_point,omitempty"`
	Price                 string                `json:"price"`
	Status                domain.DeliveryStatus `json:"status"`
	Description           string                `json:"description,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
	PickedUpAt            *time.Time            `json:"picked_up_at,omitempty"`
	DeliveredAt           *time.Time            `json:"delivered_at,omitempty"`
	EstimatedDeliveryTime *time.Time            `json:"estimated_delivery_time,omitempty"`
	DriverLocation        *locationDTO          `json:"driver_location,omitempty"`
}

type deliveryPageDTO struct {
	Items  []deliveryDTO `json:"items"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Speed     *float64 `json:"speed,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
}

type availabilityRequest struct {
	Available *bool `json:"available"`
}

type locationDTO struct {
	DriverID  uuid.UUID `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Speed     *float64  `json:"speed,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
	Available bool      `json:"available"`
	UpdatedAt time.Time `json:"updated_at"`
}

type candidateDTO struct {
	Driver     locationDTO `json:"driver"`
	DistanceKm float64     `json:"distance_km"`
	Rating     float64     `json:"rating"`
}

type fareQuoteRequest struct {
	DistanceKm       float64 `json:"distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
}

type fareDTO struct {
	Total        string `json:"total"`
	DriverAmount string `json:"driver_amount"`
	PlatformFee  string `json:"platform_fee"`
}
