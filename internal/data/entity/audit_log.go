package entity

import (
	"github.com/google/uuid"
)

// AuditLog is an append-only record of every mutating operation.
type AuditLog struct {
	BaseSimple
	UserID      uuid.UUID  `db:"user_id"`
	Action      string     `db:"action"`
	Details     string     `db:"details"`
	ExcursionID *uuid.UUID `db:"excursion_id"`
	TransferID  *uuid.UUID `db:"transfer_id"`
}
