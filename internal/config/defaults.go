package config

import (
	"time"

	"github.com/shopspring/decimal"

	"service-dispatch/internal/domain"
)

const (
	defaultPort             = 8080
	defaultLogLevel         = "info"
	defaultOperationTimeout = 3 * time.Second
	defaultLocationStore    = StorePostgres
	defaultDebugAddr        = "127.0.0.1:6060"
)

var defaultDB = DB{
	Host:     "127.0.0.1",
	Port:     "5432",
	User:     "myuser",
	Pass:     "mypassword",
	Name:     "test_db",
	MaxConns: 10,
}

var defaultRedis = Redis{
	Addr:   "localhost:6379",
	Prefix: "dispatch:",
}

var defaultKafka = Kafka{
	EventsTopic:    "dispatch.events",
	LocationsTopic: "driver.locations",
	GroupID:        "service-dispatch-worker",
}

var defaultRabbitMQ = RabbitMQ{
	Exchange: "dispatch.events",
}

var defaultUsersGateway = UsersGateway{
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultMatching = Matching{
	Freshness:     5 * time.Minute,
	MaxDistanceKm: 10,
}

var defaultSweeper = Sweeper{
	Spec:       "@every 30s",
	StaleAfter: 5 * time.Minute,
}

var defaultRateLimit = RateLimit{
	Enabled:      true,
	Limit:        100,
	Window:       time.Minute,
	TTL:          10 * time.Minute,
	MaxBuckets:   100_000,
	DriverFactor: 4,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultPricing returns the tariff used when no PRICE_* variables are set.
func DefaultPricing() domain.FareConfig {
	return domain.FareConfig{
		PricePerKm:            decimal.RequireFromString("2.00"),
		PricePerMinute:        decimal.RequireFromString("0.50"),
		MinimumFee:            decimal.RequireFromString("10.00"),
		PlatformFeePercentage: decimal.NewFromInt(10),
	}
}

// DefaultUsersGateway returns the default users gateway retry settings.
func DefaultUsersGateway() UsersGateway {
	return defaultUsersGateway
}

// DefaultMatching returns the default matching settings.
func DefaultMatching() Matching {
	return defaultMatching
}
