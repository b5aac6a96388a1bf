package entity

import (
	"time"

	"github.com/google/uuid"
)

type Excursion struct {
	Base
	Title                string     `db:"title"`
	Description          *string    `db:"description"`
	StartDate            time.Time  `db:"start_date"`
	EndDate              time.Time  `db:"end_date"`
	ConfirmationDeadline *time.Time `db:"confirmation_deadline"`
	PriceAdult           float64    `db:"price_adult"`
	PriceChild           float64    `db:"price_child"`
	SupplierID           *uuid.UUID `db:"supplier_id"`
	MaxParticipants      *int       `db:"max_participants"`
}
