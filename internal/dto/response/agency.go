package response

import (
	"time"

	"corfumania-backoffice/internal/data/entity"
)

type AgencyResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Email             *string               `json:"email,omitempty"`
	Phone             *string               `json:"phone,omitempty"`
	DefaultCommission float64               `json:"default_commission"`
	CommissionType    entity.CommissionType `json:"commission_type"`
	CreatedAt         time.Time             `json:"created_at"`
}

type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ClientResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          *string   `json:"phone,omitempty"`
	Nationality    *string   `json:"nationality,omitempty"`
	DocumentNumber *string   `json:"document_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func AgencyToResponse(a *entity.Agency) AgencyResponse {
	return AgencyResponse{
		ID:                a.ID.String(),
		Name:              a.Name,
		Email:             a.Email,
		Phone:             a.Phone,
		DefaultCommission: a.DefaultCommission,
		CommissionType:    a.CommissionType,
		CreatedAt:         a.CreatedAt,
	}
}

func SupplierToResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}

func ClientToResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID.String(),
		Email:          c.Email,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Phone:          c.Phone,
		Nationality:    c.Nationality,
		DocumentNumber: c.DocumentNumber,
		CreatedAt:      c.CreatedAt,
	}
}
