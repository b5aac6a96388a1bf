package entity

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

type User struct {
	Base
	Email              string     `db:"email"`
	PasswordHash       string     `db:"password"`
	FirstName          string     `db:"first_name"`
	LastName           string     `db:"last_name"`
	Code               *string    `db:"code"`
	Role               UserRole   `db:"role"`
	AgencyID           *uuid.UUID `db:"agency_id"`
	SupplierID         *uuid.UUID `db:"supplier_id"`
	MustChangePassword bool       `db:"must_change_password"`
	IsActive           bool       `db:"is_active"`
}
