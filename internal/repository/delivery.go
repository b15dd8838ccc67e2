package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

const deliveryColumns = `id, customer_id, driver_id, pickup_address, delivery_address,
        pickup_lat, pickup_lon, price::text, status, description,
        created_at, updated_at, picked_up_at, delivered_at, estimated_delivery_time`

// DeliveryRepo stores deliveries in Postgres. Status writes are conditional
// on the expected current status.
type DeliveryRepo struct {
	db *pgxpool.Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

func scanDelivery(row pgx.Row) (*domain.Delivery, error) {
	var (
		d        domain.Delivery
		lat, lon *float64
		price    string
		status   string
	)
	err := row.Scan(
		&d.ID, &d.CustomerID, &d.DriverID, &d.PickupAddress, &d.DeliveryAddress,
		&lat, &lon, &price, &status, &d.Description,
		&d.CreatedAt, &d.UpdatedAt, &d.PickedUpAt, &d.DeliveredAt, &d.EstimatedDeliveryTime,
	)
	if err != nil {
		return nil, err
	}
	if d.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	d.Status = domain.DeliveryStatus(status)
	if lat != nil && lon != nil {
		d.PickupPoint = &domain.Point{Lat: *lat, Lon: *lon}
	}
	return &d, nil
}

// Create inserts a new delivery.
func (r *DeliveryRepo) Create(ctx context.Context, d *domain.Delivery) error {
	var lat, lon *float64
	if d.PickupPoint != nil {
		lat, lon = &d.PickupPoint.Lat, &d.PickupPoint.Lon
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO deliveries (
            id, customer_id, driver_id, pickup_address, delivery_address,
            pickup_lat, pickup_lon, price, status, description,
            created_at, updated_at, estimated_delivery_time
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10, $11, $12, $13)
    `, d.ID, d.CustomerID, d.DriverID, d.PickupAddress, d.DeliveryAddress,
		lat, lon, d.Price.String(), string(d.Status), d.Description,
		d.CreatedAt, d.UpdatedAt, d.EstimatedDeliveryTime)
	if err != nil {
		switch {
		case IsDuplicate(err):
			return apperr.ErrConflict
		case IsCheckViolation(err):
			return apperr.Invalid("delivery", "violates "+constraintName(err))
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// Get returns nil, nil when the delivery does not exist.
func (r *DeliveryRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %s: %w", id, err)
	}
	return d, nil
}

// Accept binds the driver only while the row is still PENDING. Concurrent
// callers race on the row lock; losers see zero rows and get nil, nil.
func (r *DeliveryRepo) Accept(ctx context.Context, id, driverID uuid.UUID, at time.Time) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx, `
        UPDATE deliveries
        SET driver_id = $2, status = $3, updated_at = $4
        WHERE id = $1 AND status = $5
        RETURNING `+deliveryColumns,
		id, driverID, string(domain.StatusDriverAssigned), at, string(domain.StatusPending)))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("accept delivery %s: %w", id, err)
	}
	return d, nil
}

// UpdateStatus applies t only while the row is still in t.From and stamps the
// pickup or delivery time. It returns nil, nil when the status has moved on.
func (r *DeliveryRepo) UpdateStatus(ctx context.Context, t domain.Transition) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx, `
        UPDATE deliveries
        SET status = $3,
            updated_at = $4,
            picked_up_at = CASE WHEN $3 = 'PICKED_UP' THEN $4 ELSE picked_up_at END,
            delivered_at = CASE WHEN $3 = 'DELIVERED' THEN $4 ELSE delivered_at END
        WHERE id = $1 AND status = $2
        RETURNING `+deliveryColumns,
		t.DeliveryID, string(t.From), string(t.To), t.At))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update delivery %s status %s -> %s: %w", t.DeliveryID, t.From, t.To, err)
	}
	return d, nil
}

// ListByCustomer pages through deliveries requested by the customer, newest first.
func (r *DeliveryRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, p domain.Page) (domain.DeliveryPage, error) {
	return r.list(ctx, `customer_id = $1`, []any{customerID}, p)
}

// ListByDriver pages through deliveries assigned to the driver, newest first.
func (r *DeliveryRepo) ListByDriver(ctx context.Context, driverID uuid.UUID, p domain.Page) (domain.DeliveryPage, error) {
	return r.list(ctx, `driver_id = $1`, []any{driverID}, p)
}

// ListAll pages through every delivery, newest first.
func (r *DeliveryRepo) ListAll(ctx context.Context, p domain.Page) (domain.DeliveryPage, error) {
	return r.list(ctx, `TRUE`, nil, p)
}

// ActiveDeliveryIDs returns the non-terminal deliveries bound to the driver.
func (r *DeliveryRepo) ActiveDeliveryIDs(ctx context.Context, driverID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id FROM deliveries
        WHERE driver_id = $1 AND status NOT IN ($2, $3)
    `, driverID, string(domain.StatusDelivered), string(domain.StatusCancelled))
	if err != nil {
		return nil, fmt.Errorf("active deliveries for %s: %w", driverID, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// list counts and fetches in one repeatable-read transaction so Total matches Items.
func (r *DeliveryRepo) list(ctx context.Context, where string, args []any, p domain.Page) (domain.DeliveryPage, error) {
	page := domain.DeliveryPage{Limit: p.Limit, Offset: p.Offset, Items: []domain.Delivery{}}

	err := r.withTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM deliveries WHERE `+where, args...).Scan(&page.Total); err != nil {
			return fmt.Errorf("count deliveries: %w", err)
		}

		q := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE ` + where + ` ORDER BY created_at DESC, id`
		qargs := append([]any(nil), args...)
		if p.Limit > 0 {
			q += fmt.Sprintf(" LIMIT $%d", len(qargs)+1)
			qargs = append(qargs, p.Limit)
		}
		if p.Offset > 0 {
			q += fmt.Sprintf(" OFFSET $%d", len(qargs)+1)
			qargs = append(qargs, p.Offset)
		}

		rows, err := tx.Query(ctx, q, qargs...)
		if err != nil {
			return fmt.Errorf("list deliveries: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			d, err := scanDelivery(rows)
			if err != nil {
				return fmt.Errorf("scan delivery: %w", err)
			}
			page.Items = append(page.Items, *d)
		}
		return rows.Err()
	})
	if err != nil {
		return domain.DeliveryPage{}, err
	}
	return page, nil
}

// withTx opens a transaction and executes fn within it.
func (r *DeliveryRepo) withTx(ctx context.Context, opts pgx.TxOptions, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// откатываем в случае паники
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
