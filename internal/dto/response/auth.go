package response

import (
	"time"

	"corfumania-backoffice/internal/data/entity"
)

type UserResponse struct {
	ID                 string          `json:"id"`
	Email              string          `json:"email"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	Code               *string         `json:"code,omitempty"`
	Role               entity.UserRole `json:"role"`
	AgencyID           *string         `json:"agency_id,omitempty"`
	SupplierID         *string         `json:"supplier_id,omitempty"`
	MustChangePassword bool            `json:"must_change_password"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// CreatedUserResponse carries the generated temporary password back to the
// admin exactly once.
type CreatedUserResponse struct {
	User         UserResponse `json:"user"`
	TempPassword *string      `json:"temp_password,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:                 user.ID.String(),
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Code:               user.Code,
		Role:               user.Role,
		MustChangePassword: user.MustChangePassword,
		IsActive:           user.IsActive,
		CreatedAt:          user.CreatedAt,
	}

	if user.AgencyID != nil {
		agencyID := user.AgencyID.String()
		resp.AgencyID = &agencyID
	}
	if user.SupplierID != nil {
		supplierID := user.SupplierID.String()
		resp.SupplierID = &supplierID
	}

	return resp
}
