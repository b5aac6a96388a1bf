package entity

import (
	"github.com/google/uuid"
)

// AgencyCommission overrides an agency's default commission for one event.
// Exactly one of ExcursionID/TransferID is set; at most one row exists per
// (event, agency).
type AgencyCommission struct {
	BaseSimple
	ExcursionID     *uuid.UUID     `db:"excursion_id"`
	TransferID      *uuid.UUID     `db:"transfer_id"`
	AgencyID        uuid.UUID      `db:"agency_id"`
	CommissionValue float64        `db:"commission_value"`
	CommissionType  CommissionType `db:"commission_type"`
}
