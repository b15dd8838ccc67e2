package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-dispatch/internal/domain"
)

// UserRepo resolves users from the shared users table. It never writes.
type UserRepo struct {
	db *pgxpool.Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Resolve returns nil, nil for unknown users.
func (r *UserRepo) Resolve(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, role, is_active, rating FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &role, &u.Active, &u.Rating)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve user %s: %w", id, err)
	}
	u.Role = domain.Role(role)
	return &u, nil
}
