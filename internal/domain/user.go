package domain

import "github.com/google/uuid"

// Role is the account type of a user.
type Role string

// List of known roles
const (
	RoleCustomer Role = "CUSTOMER"
	RoleDriver   Role = "DRIVER"
	RoleAdmin    Role = "ADMIN"
)

// User is the subset of an account the dispatch engine needs.
type User struct {
	ID     uuid.UUID
	Role   Role
	Active bool
	Rating float64
}
