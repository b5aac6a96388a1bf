package request

// CreateBookingRequest creates one participant. Exactly one of ExcursionID,
// TransferID, or IsRental must be given.
type CreateBookingRequest struct {
	FirstName      string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName       string  `json:"last_name" validate:"required,min=1,max=100"`
	Nationality    *string `json:"nationality,omitempty" validate:"omitempty,max=100"`
	DocumentNumber *string `json:"document_number,omitempty" validate:"omitempty,max=50"`

	ExcursionID     *string `json:"excursion_id,omitempty" validate:"omitempty,uuid4"`
	TransferID      *string `json:"transfer_id,omitempty" validate:"omitempty,uuid4"`
	IsRental        bool    `json:"is_rental,omitempty"`
	RentalItem      *string `json:"rental_item,omitempty" validate:"omitempty,max=200"`
	RentalStartDate *string `json:"rental_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RentalEndDate   *string `json:"rental_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	Price                float64  `json:"price" validate:"gte=0"`
	Deposit              float64  `json:"deposit" validate:"gte=0"`
	Tax                  float64  `json:"tax" validate:"gte=0"`
	CommissionPercentage *float64 `json:"commission_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Adults               int      `json:"adults" validate:"gte=0"`
	Children             int      `json:"children" validate:"gte=0"`
	GroupSize            *int     `json:"group_size,omitempty" validate:"omitempty,min=1"`

	PaymentType string `json:"payment_type" validate:"required,oneof=DEPOSIT BALANCE"`
	IsOption    bool   `json:"is_option,omitempty"`

	ClientEmail *string `json:"client_email,omitempty" validate:"omitempty,email"`
	ClientPhone *string `json:"client_phone,omitempty" validate:"omitempty,max=30"`
}

type UpdateBookingRequest struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Nationality    *string `json:"nationality,omitempty" validate:"omitempty,max=100"`
	DocumentNumber *string `json:"document_number,omitempty" validate:"omitempty,max=50"`

	RentalItem      *string `json:"rental_item,omitempty" validate:"omitempty,max=200"`
	RentalStartDate *string `json:"rental_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RentalEndDate   *string `json:"rental_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	Price                *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Deposit              *float64 `json:"deposit,omitempty" validate:"omitempty,gte=0"`
	Tax                  *float64 `json:"tax,omitempty" validate:"omitempty,gte=0"`
	CommissionPercentage *float64 `json:"commission_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Adults               *int     `json:"adults,omitempty" validate:"omitempty,gte=0"`
	Children             *int     `json:"children,omitempty" validate:"omitempty,gte=0"`
	GroupSize            *int     `json:"group_size,omitempty" validate:"omitempty,min=1"`

	PaymentType *string `json:"payment_type,omitempty" validate:"omitempty,oneof=DEPOSIT BALANCE CANCELLED"`
	IsOption    *bool   `json:"is_option,omitempty"`
}

// RefundRequest marks a booking refunded. RetainedDeposit keeps part of the
// payment (partial refund); when absent the refund is full.
type RefundRequest struct {
	RetainedDeposit *float64 `json:"retained_deposit,omitempty" validate:"omitempty,gte=0"`
}

// ApprovalDecisionRequest resolves a pending underpriced booking.
// RestoreListPrice raises the price back to the stored original on approval.
type ApprovalDecisionRequest struct {
	Decision         string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	RestoreListPrice bool   `json:"restore_list_price,omitempty"`
}
