package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentType string

const (
	PaymentDeposit   PaymentType = "DEPOSIT"
	PaymentBalance   PaymentType = "BALANCE"
	PaymentRefunded  PaymentType = "REFUNDED"
	PaymentCancelled PaymentType = "CANCELLED"
)

type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// Participant is one booking line. It references exactly one of an excursion,
// a transfer, or a rental (IsRental with its own date range).
type Participant struct {
	Base
	FirstName      string  `db:"first_name"`
	LastName       string  `db:"last_name"`
	Nationality    *string `db:"nationality"`
	DocumentNumber *string `db:"document_number"`

	ExcursionID     *uuid.UUID `db:"excursion_id"`
	TransferID      *uuid.UUID `db:"transfer_id"`
	IsRental        bool       `db:"is_rental"`
	RentalItem      *string    `db:"rental_item"`
	RentalStartDate *time.Time `db:"rental_start_date"`
	RentalEndDate   *time.Time `db:"rental_end_date"`

	Price                float64  `db:"price"`
	Deposit              float64  `db:"deposit"`
	Tax                  float64  `db:"tax"`
	CommissionPercentage *float64 `db:"commission_percentage"`
	Adults               int      `db:"adults"`
	Children             int      `db:"children"`
	GroupSize            int      `db:"group_size"`

	PaymentType    PaymentType    `db:"payment_type"`
	IsOption       bool           `db:"is_option"`
	IsExpired      bool           `db:"is_expired"`
	ApprovalStatus ApprovalStatus `db:"approval_status"`
	OriginalPrice  *float64       `db:"original_price"`

	ClientID    *uuid.UUID `db:"client_id"`
	CreatedByID uuid.UUID  `db:"created_by_id"`
	AgencyID    *uuid.UUID `db:"agency_id"`
}

// FullName joins first and last name for display and reports.
func (p *Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}
