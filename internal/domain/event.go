package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DeliveryStatusTopic is the topic carrying status changes of one delivery.
func DeliveryStatusTopic(id uuid.UUID) string {
	return fmt.Sprintf("delivery.%s.status", id)
}

// DeliveryLocationTopic is the topic carrying the bound driver's position for one delivery.
func DeliveryLocationTopic(id uuid.UUID) string {
	return fmt.Sprintf("delivery.%s.location", id)
}

// DriverLocationTopic is the topic carrying one driver's position.
func DriverLocationTopic(id uuid.UUID) string {
	return fmt.Sprintf("driver.%s.location", id)
}

// DriverOfferTopic is the topic on which a driver receives new delivery offers.
func DriverOfferTopic(id uuid.UUID) string {
	return fmt.Sprintf("driver.%s.newDeliveryOffer", id)
}

// UserDeliveriesTopic is the per-user feed of delivery changes.
func UserDeliveriesTopic(id uuid.UUID) string {
	return fmt.Sprintf("user.%s.deliveries", id)
}

// StatusEvent is the payload published on status topics.
type StatusEvent struct {
	DeliveryID uuid.UUID      `json:"delivery_id"`
	CustomerID uuid.UUID      `json:"customer_id"`
	DriverID   *uuid.UUID     `json:"driver_id,omitempty"`
	Status     DeliveryStatus `json:"status"`
	Previous   DeliveryStatus `json:"previous_status,omitempty"`
	At         time.Time      `json:"at"`
	Fare       *FareEvent     `json:"fare,omitempty"`
}

// FareEvent is the fee split attached to a DELIVERED status event.
type FareEvent struct {
	Total        string `json:"total"`
	DriverAmount string `json:"driver_amount"`
	PlatformFee  string `json:"platform_fee"`
}

// NewFareEvent renders a FareResult with two decimal places.
func NewFareEvent(r FareResult) *FareEvent {
	return &FareEvent{
		Total:        r.Total.StringFixed(2),
		DriverAmount: r.DriverAmount.StringFixed(2),
		PlatformFee:  r.PlatformFee.StringFixed(2),
	}
}

// LocationEvent is the payload published on location topics.
type LocationEvent struct {
	DriverID   uuid.UUID  `json:"driver_id"`
	DeliveryID *uuid.UUID `json:"delivery_id,omitempty"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Speed      *float64   `json:"speed,omitempty"`
	Heading    *float64   `json:"heading,omitempty"`
	At         time.Time  `json:"at"`
}

// OfferEvent is the payload of a new delivery offer.
type OfferEvent struct {
	DeliveryID      uuid.UUID `json:"delivery_id"`
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	Price           string    `json:"price"`
	DistanceKm      *float64  `json:"distance_km,omitempty"`
	At              time.Time `json:"at"`
}
