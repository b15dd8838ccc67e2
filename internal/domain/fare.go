package domain

import "github.com/shopspring/decimal"

// FareConfig holds tariff parameters.
type FareConfig struct {
	PricePerKm            decimal.Decimal
	PricePerMinute        decimal.Decimal
	MinimumFee            decimal.Decimal
	PlatformFeePercentage decimal.Decimal
}

// FareResult is the split of a total charge between platform and driver.
// DriverAmount + PlatformFee == Total.
type FareResult struct {
	Total        decimal.Decimal
	DriverAmount decimal.Decimal
	PlatformFee  decimal.Decimal
}
