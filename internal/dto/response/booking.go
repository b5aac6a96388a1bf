package response

import (
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/pkg/utils"
)

type ParticipantResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Nationality    *string `json:"nationality,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`

	ExcursionID     *string `json:"excursion_id,omitempty"`
	TransferID      *string `json:"transfer_id,omitempty"`
	IsRental        bool    `json:"is_rental"`
	RentalItem      *string `json:"rental_item,omitempty"`
	RentalStartDate *string `json:"rental_start_date,omitempty"`
	RentalEndDate   *string `json:"rental_end_date,omitempty"`

	Price                float64  `json:"price"`
	Deposit              float64  `json:"deposit"`
	Tax                  float64  `json:"tax"`
	CommissionPercentage *float64 `json:"commission_percentage,omitempty"`
	Adults               int      `json:"adults"`
	Children             int      `json:"children"`
	GroupSize            int      `json:"group_size"`

	PaymentType    entity.PaymentType    `json:"payment_type"`
	IsOption       bool                  `json:"is_option"`
	IsExpired      bool                  `json:"is_expired"`
	ApprovalStatus entity.ApprovalStatus `json:"approval_status"`
	OriginalPrice  *float64              `json:"original_price,omitempty"`

	ClientID  *string   `json:"client_id,omitempty"`
	AgencyID  *string   `json:"agency_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ParticipantToResponse(p *entity.Participant) ParticipantResponse {
	resp := ParticipantResponse{
		ID:                   p.ID.String(),
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		Nationality:          p.Nationality,
		DocumentNumber:       p.DocumentNumber,
		IsRental:             p.IsRental,
		RentalItem:           p.RentalItem,
		Price:                p.Price,
		Deposit:              p.Deposit,
		Tax:                  p.Tax,
		CommissionPercentage: p.CommissionPercentage,
		Adults:               p.Adults,
		Children:             p.Children,
		GroupSize:            p.GroupSize,
		PaymentType:          p.PaymentType,
		IsOption:             p.IsOption,
		IsExpired:            p.IsExpired,
		ApprovalStatus:       p.ApprovalStatus,
		OriginalPrice:        p.OriginalPrice,
		CreatedAt:            p.CreatedAt,
	}

	if p.ExcursionID != nil {
		id := p.ExcursionID.String()
		resp.ExcursionID = &id
	}
	if p.TransferID != nil {
		id := p.TransferID.String()
		resp.TransferID = &id
	}
	if p.RentalStartDate != nil {
		date := p.RentalStartDate.Format(utils.DateLayout)
		resp.RentalStartDate = &date
	}
	if p.RentalEndDate != nil {
		date := p.RentalEndDate.Format(utils.DateLayout)
		resp.RentalEndDate = &date
	}
	if p.ClientID != nil {
		id := p.ClientID.String()
		resp.ClientID = &id
	}
	if p.AgencyID != nil {
		id := p.AgencyID.String()
		resp.AgencyID = &id
	}

	return resp
}
