package request

type CreateTransferRequest struct {
	Title             string                  `json:"title" validate:"required,min=1,max=200"`
	Date              string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Time              *string                 `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Origin            string                  `json:"origin" validate:"required,min=1,max=200"`
	Destination       string                  `json:"destination" validate:"required,min=1,max=200"`
	Price             float64                 `json:"price" validate:"gte=0"`
	SupplierID        *string                 `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	MaxPassengers     *int                    `json:"max_passengers,omitempty" validate:"omitempty,min=1"`
	AgencyCommissions []AgencyCommissionInput `json:"agency_commissions,omitempty" validate:"dive"`
	Recurrence        *RecurrenceRule         `json:"recurrence,omitempty"`
}

type UpdateTransferRequest struct {
	Title             *string                 `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Date              *string                 `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time              *string                 `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Origin            *string                 `json:"origin,omitempty" validate:"omitempty,min=1,max=200"`
	Destination       *string                 `json:"destination,omitempty" validate:"omitempty,min=1,max=200"`
	Price             *float64                `json:"price,omitempty" validate:"omitempty,gte=0"`
	SupplierID        *string                 `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	MaxPassengers     *int                    `json:"max_passengers,omitempty" validate:"omitempty,min=1"`
	AgencyCommissions []AgencyCommissionInput `json:"agency_commissions,omitempty" validate:"dive"`
	Recurrence        *RecurrenceRule         `json:"recurrence,omitempty"`
}
