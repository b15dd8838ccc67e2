package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Delivery is one transport job from a pickup to a dropoff address.
// DriverID stays nil until a driver accepts the job and never changes afterwards.
type Delivery struct {
	ID                    uuid.UUID
	CustomerID            uuid.UUID
	DriverID              *uuid.UUID
	PickupAddress         string
	DeliveryAddress       string
	PickupPoint           *Point
	Price                 decimal.Decimal
	Status                DeliveryStatus
	Description           string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	EstimatedDeliveryTime *time.Time
}

// AssignedTo reports whether the delivery is bound to the given driver.
func (d *Delivery) AssignedTo(driverID uuid.UUID) bool {
	return d.DriverID != nil && *d.DriverID == driverID
}

// VisibleTo reports whether the user may read the delivery: its customer,
// its bound driver or an admin.
func (d *Delivery) VisibleTo(userID uuid.UUID, role Role) bool {
	return role == RoleAdmin || d.CustomerID == userID || d.AssignedTo(userID)
}

// DeliveryView is a delivery enriched with the bound driver's last known position.
type DeliveryView struct {
	Delivery
	DriverLocation *DriverLocation
}

// Page carries limit/offset pagination.
type Page struct {
	Limit  int
	Offset int
}

// DeliveryPage is one page of deliveries plus the total number of matches.
type DeliveryPage struct {
	Items  []Delivery
	Total  int64
	Limit  int
	Offset int
}

// Transition describes a conditional status change: it applies only while the
// delivery is still in From.
type Transition struct {
	DeliveryID uuid.UUID
	From       DeliveryStatus
	To         DeliveryStatus
	At         time.Time
}
