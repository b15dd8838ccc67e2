package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"service-dispatch/internal/domain"
)

// Location store backends.
const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

// Config stores service and worker settings.
type Config struct {
	Port             int
	LogLevel         string
	OperationTimeout time.Duration
	// LocationStore selects the driver location backend: postgres, redis or memory.
	// memory also keeps deliveries in process and needs no database.
	LocationStore string

	DB           DB
	Redis        Redis
	Kafka        Kafka
	RabbitMQ     RabbitMQ
	UsersGateway UsersGateway
	Pricing      domain.FareConfig
	Matching     Matching
	Sweeper      Sweeper
	RateLimit    RateLimit
	Auth         Auth
	Debug        Debug
	// SeedUsers populates the in-process directory when neither the users
	// gRPC service nor the users table is available.
	SeedUsers []domain.User
}

// DB stores Postgres settings.
type DB struct {
	Host     string
	Port     string
	User     string
	Pass     string
	Name     string
	MaxConns int32
}

// DSN returns a postgres:// connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Redis stores the location cache connection.
type Redis struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Kafka is disabled when Brokers is empty.
type Kafka struct {
	Brokers        []string
	EventsTopic    string
	LocationsTopic string
	GroupID        string
}

// RabbitMQ is disabled when URL is empty.
type RabbitMQ struct {
	URL      string
	Exchange string
}

// UsersGateway falls back to the users table when Addr is empty.
type UsersGateway struct {
	Addr        string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Matching tunes candidate selection.
type Matching struct {
	Freshness     time.Duration
	MaxDistanceKm float64
}

// Sweeper schedules the stale location job in the worker.
type Sweeper struct {
	Spec       string
	StaleAfter time.Duration
}

// RateLimit stores per-caller limiter settings.
type RateLimit struct {
	Enabled    bool
	Limit      int
	Window     time.Duration
	TTL        time.Duration
	MaxBuckets int
	// DriverFactor scales the limit for authenticated drivers.
	DriverFactor float64
}

// Auth holds the HMAC secret for bearer tokens.
type Auth struct {
	JWTSecret string
}

// Debug runs a separate pprof server on Addr when enabled.
type Debug struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	var e envReader
	cfg := &Config{
		Port:             e.int("PORT", defaultPort),
		LogLevel:         e.string("LOG_LEVEL", defaultLogLevel),
		OperationTimeout: e.duration("OPERATION_TIMEOUT", defaultOperationTimeout),
		LocationStore:    e.string("LOCATION_STORE", defaultLocationStore),
		DB: DB{
			Host:     e.string("POSTGRES_HOST", defaultDB.Host),
			Port:     e.string("POSTGRES_PORT", defaultDB.Port),
			User:     e.string("POSTGRES_USER", defaultDB.User),
			Pass:     e.string("POSTGRES_PASSWORD", defaultDB.Pass),
			Name:     e.string("POSTGRES_DB", defaultDB.Name),
			MaxConns: int32(e.int("POSTGRES_MAX_CONNS", int(defaultDB.MaxConns))),
		},
		Redis: Redis{
			Addr:     e.string("REDIS_ADDR", defaultRedis.Addr),
			Password: e.string("REDIS_PASSWORD", ""),
			DB:       e.int("REDIS_DB", 0),
			Prefix:   e.string("REDIS_PREFIX", defaultRedis.Prefix),
		},
		Kafka: Kafka{
			Brokers:        e.list("KAFKA_BROKERS"),
			EventsTopic:    e.string("KAFKA_EVENTS_TOPIC", defaultKafka.EventsTopic),
			LocationsTopic: e.string("KAFKA_LOCATIONS_TOPIC", defaultKafka.LocationsTopic),
			GroupID:        e.string("KAFKA_GROUP_ID", defaultKafka.GroupID),
		},
		RabbitMQ: RabbitMQ{
			URL:      e.string("RABBITMQ_URL", ""),
			Exchange: e.string("RABBITMQ_EXCHANGE", defaultRabbitMQ.Exchange),
		},
		UsersGateway: UsersGateway{
			Addr:        e.string("USERS_GRPC_ADDR", ""),
			MaxAttempts: e.int("USERS_GRPC_MAX_ATTEMPTS", defaultUsersGateway.MaxAttempts),
			BaseDelay:   e.duration("USERS_GRPC_BASE_DELAY", defaultUsersGateway.BaseDelay),
			MaxDelay:    e.duration("USERS_GRPC_MAX_DELAY", defaultUsersGateway.MaxDelay),
		},
		Pricing: loadPricing(&e),
		Matching: Matching{
			Freshness:     e.duration("LOCATION_FRESHNESS", defaultMatching.Freshness),
			MaxDistanceKm: e.float("MATCHING_MAX_DISTANCE_KM", defaultMatching.MaxDistanceKm),
		},
		Sweeper: Sweeper{
			Spec:       e.string("LOCATION_SWEEP_SPEC", defaultSweeper.Spec),
			StaleAfter: e.duration("LOCATION_STALE_AFTER", defaultSweeper.StaleAfter),
		},
		RateLimit: RateLimit{
			Enabled:      e.bool("RATE_LIMIT_ENABLED", defaultRateLimit.Enabled),
			Limit:        e.int("RATE_LIMIT_LIMIT", defaultRateLimit.Limit),
			Window:       e.duration("RATE_LIMIT_WINDOW", defaultRateLimit.Window),
			TTL:          e.duration("RATE_LIMIT_TTL", defaultRateLimit.TTL),
			MaxBuckets:   e.int("RATE_LIMIT_MAX_BUCKETS", defaultRateLimit.MaxBuckets),
			DriverFactor: e.float("RATE_LIMIT_DRIVER_FACTOR", defaultRateLimit.DriverFactor),
		},
		Auth: Auth{JWTSecret: e.string("JWT_SECRET", "")},
		Debug: Debug{
			Enabled: e.bool("DEBUG_ENABLED", false),
			Addr:    e.string("DEBUG_ADDR", defaultDebugAddr),
			User:    e.string("DEBUG_USER", ""),
			Pass:    e.string("DEBUG_PASS", ""),
		},
	}
	cfg.SeedUsers = e.users("MEMORY_USERS")
	if e.err != nil {
		return nil, e.err
	}

	if pflag.Lookup("port") == nil {
		pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
		pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
		pflag.StringVar(&cfg.LocationStore, "location-store", cfg.LocationStore, "postgres|redis|memory")
	}
	pflag.Parse()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	switch c.LocationStore {
	case StorePostgres, StoreRedis, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("invalid location store %q", c.LocationStore))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	if c.OperationTimeout <= 0 {
		errs = append(errs, errors.New("operation timeout must be positive"))
	}
	if c.Matching.MaxDistanceKm <= 0 {
		errs = append(errs, errors.New("matching max distance must be positive"))
	}
	if c.Sweeper.StaleAfter <= 0 {
		errs = append(errs, errors.New("location stale-after must be positive"))
	}
	if c.RateLimit.Enabled && c.RateLimit.DriverFactor <= 0 {
		errs = append(errs, errors.New("rate limit driver factor must be positive"))
	}
	if c.UsersGateway.MaxAttempts < 1 {
		errs = append(errs, errors.New("users gateway max attempts must be at least 1"))
	}
	if len(c.Kafka.Brokers) > 0 && (c.Kafka.EventsTopic == "" || c.Kafka.LocationsTopic == "") {
		errs = append(errs, errors.New("kafka topics must be set when brokers are configured"))
	}
	return errors.Join(errs...)
}

func loadPricing(e *envReader) domain.FareConfig {
	def := DefaultPricing()
	return domain.FareConfig{
		PricePerKm:            e.decimal("PRICE_PER_KM", def.PricePerKm),
		PricePerMinute:        e.decimal("PRICE_PER_MINUTE", def.PricePerMinute),
		MinimumFee:            e.decimal("MINIMUM_FEE", def.MinimumFee),
		PlatformFeePercentage: e.decimal("PLATFORM_FEE_PERCENTAGE", def.PlatformFeePercentage),
	}
}

// envReader reads typed variables and keeps every parse error.
type envReader struct {
	err error
}

func (e *envReader) fail(key, raw string, err error) {
	e.err = errors.Join(e.err, fmt.Errorf("%s=%q: %w", key, raw, err))
}

func (e *envReader) string(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (e *envReader) int(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		e.fail(key, raw, err)
		return def
	}
	return v
}

func (e *envReader) float(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		e.fail(key, raw, err)
		return def
	}
	return v
}

func (e *envReader) bool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		e.fail(key, raw, err)
		return def
	}
	return v
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		e.fail(key, raw, err)
		return def
	}
	return v
}

func (e *envReader) decimal(key string, def decimal.Decimal) decimal.Decimal {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		e.fail(key, raw, err)
		return def
	}
	return v
}

// users parses "<uuid>:<ROLE>[:<rating>]" entries.
func (e *envReader) users(key string) []domain.User {
	var out []domain.User
	for _, entry := range e.list(key) {
		u, err := parseUser(entry)
		if err != nil {
			e.fail(key, entry, err)
			continue
		}
		out = append(out, u)
	}
	return out
}

func parseUser(entry string) (domain.User, error) {
	parts := strings.Split(entry, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return domain.User{}, errors.New("want <uuid>:<ROLE>[:<rating>]")
	}
	id, err := uuid.Parse(parts[0])
	if err != nil {
		return domain.User{}, err
	}
	role := domain.Role(strings.ToUpper(parts[1]))
	switch role {
	case domain.RoleCustomer, domain.RoleDriver, domain.RoleAdmin:
	default:
		return domain.User{}, fmt.Errorf("unknown role %q", parts[1])
	}
	u := domain.User{ID: id, Role: role, Active: true}
	if len(parts) == 3 {
		if u.Rating, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return domain.User{}, err
		}
	}
	return u, nil
}

func (e *envReader) list(key string) []string {
	var out []string
	for _, s := range strings.Split(os.Getenv(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
