package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-dispatch/internal/domain"
)

const locationColumns = `driver_id, latitude, longitude, speed, heading, is_available, updated_at`

// LocationRepo stores one row per driver in driver_locations.
type LocationRepo struct {
	db *pgxpool.Pool
}

// NewLocationRepo creates a new LocationRepo.
func NewLocationRepo(db *pgxpool.Pool) *LocationRepo {
	return &LocationRepo{db: db}
}

func scanLocation(row pgx.Row) (*domain.DriverLocation, error) {
	var l domain.DriverLocation
	if err := row.Scan(&l.DriverID, &l.Latitude, &l.Longitude, &l.Speed, &l.Heading, &l.Available, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

// Upsert writes the report; is_available is only set on first insert.
func (r *LocationRepo) Upsert(ctx context.Context, rep domain.LocationReport, at time.Time) (*domain.DriverLocation, error) {
	l, err := scanLocation(r.db.QueryRow(ctx, `
        INSERT INTO driver_locations (driver_id, latitude, longitude, speed, heading, is_available, updated_at)
        VALUES ($1, $2, $3, $4, $5, TRUE, $6)
        ON CONFLICT (driver_id) DO UPDATE
        SET latitude = EXCLUDED.latitude,
            longitude = EXCLUDED.longitude,
            speed = EXCLUDED.speed,
            heading = EXCLUDED.heading,
            updated_at = EXCLUDED.updated_at
        RETURNING `+locationColumns,
		rep.DriverID, rep.Latitude, rep.Longitude, rep.Speed, rep.Heading, at))
	if err != nil {
		return nil, fmt.Errorf("upsert location %s: %w", rep.DriverID, err)
	}
	return l, nil
}

// SetAvailability returns nil, nil when the driver has no row.
func (r *LocationRepo) SetAvailability(ctx context.Context, driverID uuid.UUID, available bool) (*domain.DriverLocation, error) {
	l, err := scanLocation(r.db.QueryRow(ctx, `
        UPDATE driver_locations SET is_available = $2
        WHERE driver_id = $1
        RETURNING `+locationColumns, driverID, available))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("set availability %s: %w", driverID, err)
	}
	return l, nil
}

// Get returns nil, nil when the driver has no row.
func (r *LocationRepo) Get(ctx context.Context, driverID uuid.UUID) (*domain.DriverLocation, error) {
	l, err := scanLocation(r.db.QueryRow(ctx,
		`SELECT `+locationColumns+` FROM driver_locations WHERE driver_id = $1`, driverID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location %s: %w", driverID, err)
	}
	return l, nil
}

// ListAvailable returns available rows, oldest update first.
func (r *LocationRepo) ListAvailable(ctx context.Context) ([]domain.DriverLocation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+locationColumns+` FROM driver_locations WHERE is_available ORDER BY updated_at, driver_id`)
	if err != nil {
		return nil, fmt.Errorf("list available: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DriverLocation, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

// ExpireStale marks available rows written before the cutoff unavailable.
func (r *LocationRepo) ExpireStale(ctx context.Context, before time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx, `
        UPDATE driver_locations
        SET is_available = FALSE
        WHERE is_available AND updated_at < $1
    `, before)
	if err != nil {
		return 0, fmt.Errorf("expire stale locations: %w", err)
	}
	return cmd.RowsAffected(), nil
}
