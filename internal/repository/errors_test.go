package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "deliveries_pkey"})
	check := &pgconn.PgError{Code: "23514", ConstraintName: "deliveries_price_check"}

	assert.True(t, IsDuplicate(dup))
	assert.False(t, IsDuplicate(check))
	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(errors.New("plain")))
	assert.Equal(t, "deliveries_price_check", constraintName(check))
	assert.Empty(t, constraintName(errors.New("plain")))

	assert.True(t, IsNotFound(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, IsNotFound(dup))
}
