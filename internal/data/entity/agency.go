package entity

type CommissionType string

const (
	CommissionPercentage CommissionType = "PERCENTAGE"
	CommissionFixed      CommissionType = "FIXED"
)

// Agency is a commission-earning reseller. DefaultCommission applies when an
// event has no per-agency override.
type Agency struct {
	Base
	Name              string         `db:"name"`
	Email             *string        `db:"email"`
	Phone             *string        `db:"phone"`
	DefaultCommission float64        `db:"default_commission"`
	CommissionType    CommissionType `db:"commission_type"`
}
