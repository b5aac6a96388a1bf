package request

type CreateAgencyRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=200"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone             *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	DefaultCommission float64 `json:"default_commission" validate:"gte=0"`
	CommissionType    string  `json:"commission_type" validate:"required,oneof=PERCENTAGE FIXED"`
}

type UpdateAgencyRequest struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email             *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone             *string  `json:"phone,omitempty" validate:"omitempty,max=30"`
	DefaultCommission *float64 `json:"default_commission,omitempty" validate:"omitempty,gte=0"`
	CommissionType    *string  `json:"commission_type,omitempty" validate:"omitempty,oneof=PERCENTAGE FIXED"`
}
