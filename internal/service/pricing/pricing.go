// Package pricing computes fares and the platform/driver split.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// DefaultConfig returns the stock tariff.
func DefaultConfig() domain.FareConfig {
	return domain.FareConfig{
		PricePerKm:            decimal.RequireFromString("2.00"),
		PricePerMinute:        decimal.RequireFromString("0.50"),
		MinimumFee:            decimal.RequireFromString("10.00"),
		PlatformFeePercentage: decimal.NewFromInt(10),
	}
}

// Engine applies a fixed tariff.
type Engine struct {
	cfg domain.FareConfig
}

// NewEngine validates cfg and returns an Engine bound to it.
func NewEngine(cfg domain.FareConfig) (*Engine, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the tariff the engine was built with.
func (e *Engine) Config() domain.FareConfig { return e.cfg }

// CalculateFare prices a trip with the engine's tariff.
func (e *Engine) CalculateFare(distanceKm float64, estimatedMinutes int) (domain.FareResult, error) {
	return CalculateFare(distanceKm, estimatedMinutes, e.cfg)
}

// Split divides an already known total with the engine's tariff.
func (e *Engine) Split(total decimal.Decimal) (domain.FareResult, error) {
	return Split(total, e.cfg)
}

// ValidateConfig rejects negative rates and a percentage outside [0, 100].
func ValidateConfig(cfg domain.FareConfig) error {
	switch {
	case cfg.PricePerKm.IsNegative():
		return apperr.Invalid("price_per_km", "must not be negative")
	case cfg.PricePerMinute.IsNegative():
		return apperr.Invalid("price_per_minute", "must not be negative")
	case cfg.MinimumFee.IsNegative():
		return apperr.Invalid("minimum_fee", "must not be negative")
	case cfg.PlatformFeePercentage.IsNegative(), cfg.PlatformFeePercentage.GreaterThan(hundred):
		return apperr.Invalid("platform_fee_percentage", "must be within [0, 100]")
	}
	return nil
}

// CalculateFare prices a trip of distanceKm lasting estimatedMinutes.
// The total is floored at cfg.MinimumFee and rounded half-up to cents before the split.
func CalculateFare(distanceKm float64, estimatedMinutes int, cfg domain.FareConfig) (domain.FareResult, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return domain.FareResult{}, apperr.Invalid("distance_km", "must be a non-negative number")
	}
	if estimatedMinutes < 0 {
		return domain.FareResult{}, apperr.Invalid("estimated_minutes", "must not be negative")
	}
	if err := ValidateConfig(cfg); err != nil {
		return domain.FareResult{}, err
	}

	raw := decimal.NewFromFloat(distanceKm).Mul(cfg.PricePerKm).
		Add(decimal.NewFromInt(int64(estimatedMinutes)).Mul(cfg.PricePerMinute))
	return split(decimal.Max(raw, cfg.MinimumFee), cfg.PlatformFeePercentage), nil
}

// Split applies the platform percentage to a given total without the minimum fee floor.
func Split(total decimal.Decimal, cfg domain.FareConfig) (domain.FareResult, error) {
	if total.IsNegative() {
		return domain.FareResult{}, apperr.Invalid("total", "must not be negative")
	}
	if err := ValidateConfig(cfg); err != nil {
		return domain.FareResult{}, err
	}
	return split(total, cfg.PlatformFeePercentage), nil
}

// split rounds total to cents first so fee <= total holds at pct = 100.
func split(total, pct decimal.Decimal) domain.FareResult {
	// decimal.Round rounds half away from zero, which is half-up for non-negative values.
	total = total.Round(2)
	fee := total.Mul(pct).Div(hundred).Round(2)
	return domain.FareResult{
		Total:        total,
		PlatformFee:  fee,
		DriverAmount: total.Sub(fee),
	}
}
