package kafka

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"service-dispatch/internal/domain"
)

// LocationDTO is a driver position report read from Kafka.
type LocationDTO struct {
	DriverID  string   `json:"driver_id"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Speed     *float64 `json:"speed,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
}

// ToDomain converts LocationDTO to domain.LocationReport
func ToDomain(dto LocationDTO) (domain.LocationReport, error) {
	id, err := uuid.Parse(strings.TrimSpace(dto.DriverID))
	if err != nil {
		return domain.LocationReport{}, Permanent(ReasonBadDriverID, err)
	}
	if id == uuid.Nil {
		return domain.LocationReport{}, Permanent(ReasonBadDriverID, nil)
	}
	return domain.LocationReport{
		DriverID:  id,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Speed:     dto.Speed,
		Heading:   dto.Heading,
	}, nil
}

// Envelope wraps every event written by Producer.
type Envelope struct {
	Topic       string    `json:"topic"`
	Payload     any       `json:"payload"`
	PublishedAt time.Time `json:"published_at"`
}
