package request

type CreateUserRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	FirstName  string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName   string  `json:"last_name" validate:"required,min=1,max=100"`
	Code       *string `json:"code,omitempty" validate:"omitempty,max=20"`
	Role       string  `json:"role" validate:"required,oneof=ADMIN USER"`
	AgencyID   *string `json:"agency_id,omitempty" validate:"omitempty,uuid4"`
	SupplierID *string `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	// Optional; a temporary password is generated when absent. Either way the
	// account is created with must_change_password set.
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

type UpdateUserRequest struct {
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Code       *string `json:"code,omitempty" validate:"omitempty,max=20"`
	Role       *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN USER"`
	AgencyID   *string `json:"agency_id,omitempty" validate:"omitempty,uuid4"`
	SupplierID *string `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
	IsActive   *bool   `json:"is_active,omitempty"`
}
