package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const earthRadiusKm = 6371.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lon float64
}

// ValidLatitude reports whether lat is a finite value in [-90, 90].
func ValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lon is a finite value in [-180, 180].
func ValidLongitude(lon float64) bool {
	return !math.IsNaN(lon) && lon >= -180 && lon <= 180
}

// Valid reports whether both coordinates are in range.
func (p Point) Valid() bool {
	return ValidLatitude(p.Lat) && ValidLongitude(p.Lon)
}

// DistanceKm returns the great-circle distance between p and q.
func (p Point) DistanceKm(q Point) float64 {
	lat1 := p.Lat * math.Pi / 180
	lat2 := q.Lat * math.Pi / 180
	dLat := (q.Lat - p.Lat) * math.Pi / 180
	dLon := (q.Lon - p.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DriverLocation is the single live position record of a driver.
type DriverLocation struct {
	DriverID  uuid.UUID
	Latitude  float64
	Longitude float64
	Speed     *float64
	Heading   *float64
	Available bool
	UpdatedAt time.Time
}

// Point returns the record's coordinates.
func (l DriverLocation) Point() Point {
	return Point{Lat: l.Latitude, Lon: l.Longitude}
}

// FreshAt reports whether the record was written within window before now.
// A non-positive window disables the check.
func (l DriverLocation) FreshAt(now time.Time, window time.Duration) bool {
	if window <= 0 {
		return true
	}
	return now.Sub(l.UpdatedAt) <= window
}

// LocationReport is a driver's position report.
type LocationReport struct {
	DriverID  uuid.UUID
	Latitude  float64
	Longitude float64
	Speed     *float64
	Heading   *float64
}

// Candidate is an available driver ranked for a pickup point.
type Candidate struct {
	Location   DriverLocation
	DistanceKm float64
	Rating     float64
}
