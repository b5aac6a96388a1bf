package request

type AgencyCommissionInput struct {
	AgencyID        string  `json:"agency_id" validate:"required,uuid4"`
	CommissionValue float64 `json:"commission_value" validate:"gte=0"`
	CommissionType  string  `json:"commission_type" validate:"required,oneof=PERCENTAGE FIXED"`
}

// RecurrenceRule expands one event into dated copies up to EndDate.
// Days uses weekday numbers 0 (Sunday) through 6 (Saturday) and only applies
// to WEEKLY frequency.
type RecurrenceRule struct {
	Frequency string `json:"frequency" validate:"required,oneof=DAILY WEEKLY"`
	Days      []int  `json:"days,omitempty" validate:"omitempty,dive,gte=0,lte=6"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type CreateExcursionRequest struct {
	Title                string                  `json:"title" validate:"required,min=1,max=200"`
	Description          *string                 `json:"description,omitempty"`
	StartDate            string                  `json:"start_date" validate:"required,datetime=2006-01-02T15:04"`
	EndDate              string                  `json:"end_date" validate:"required,datetime=2006-01-02T15:04"`
	ConfirmationDeadline *string                 `json:"confirmation_deadline,omitempty" validate:"omitempty,datetime=2006-01-02T15:04"`
	PriceAdult           float64                 `json:"price_adult" validate:"gte=0"`
	PriceChild           float64                 `json:"price_child" validate:"gte=0"`
	SupplierID           *string                 `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	MaxParticipants      *int                    `json:"max_participants,omitempty" validate:"omitempty,min=1"`
	AgencyCommissions    []AgencyCommissionInput `json:"agency_commissions,omitempty" validate:"dive"`
	Recurrence           *RecurrenceRule         `json:"recurrence,omitempty"`
}

type UpdateExcursionRequest struct {
	Title                *string                 `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description          *string                 `json:"description,omitempty"`
	StartDate            *string                 `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04"`
	EndDate              *string                 `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04"`
	ConfirmationDeadline *string                 `json:"confirmation_deadline,omitempty" validate:"omitempty,datetime=2006-01-02T15:04"`
	PriceAdult           *float64                `json:"price_adult,omitempty" validate:"omitempty,gte=0"`
	PriceChild           *float64                `json:"price_child,omitempty" validate:"omitempty,gte=0"`
	SupplierID           *string                 `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	MaxParticipants      *int                    `json:"max_participants,omitempty" validate:"omitempty,min=1"`
	AgencyCommissions    []AgencyCommissionInput `json:"agency_commissions,omitempty" validate:"dive"`
	// Edit-time recurrence regenerates copies starting the day after this
	// instance's date.
	Recurrence *RecurrenceRule `json:"recurrence,omitempty"`
}
