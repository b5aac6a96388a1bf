package entity

// DefaultSupplierName is the in-house supplier seeded at startup.
const DefaultSupplierName = "Corfumania"

type Supplier struct {
	Base
	Name  string  `db:"name"`
	Email *string `db:"email"`
	Phone *string `db:"phone"`
}
