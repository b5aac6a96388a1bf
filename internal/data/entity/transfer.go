package entity

import (
	"time"

	"github.com/google/uuid"
)

type Transfer struct {
	Base
	Title         string     `db:"title"`
	Date          time.Time  `db:"date"`
	Time          *string    `db:"time"`
	Origin        string     `db:"origin"`
	Destination   string     `db:"destination"`
	Price         float64    `db:"price"`
	SupplierID    *uuid.UUID `db:"supplier_id"`
	MaxPassengers *int       `db:"max_passengers"`
}
