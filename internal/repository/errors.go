package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the stores react to.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

func pgCode(err error) string {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return ""
}

// IsDuplicate reports a unique key violation, e.g. a reused delivery id.
func IsDuplicate(err error) bool { return pgCode(err) == codeUniqueViolation }

// IsCheckViolation reports a rejected CHECK constraint such as price > 0.
func IsCheckViolation(err error) bool { return pgCode(err) == codeCheckViolation }

// IsNotFound reports an empty single-row result.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// constraintName returns the violated constraint, if the server reported one.
func constraintName(err error) string {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return pgerr.ConstraintName
	}
	return ""
}
