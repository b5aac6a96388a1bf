package response

import (
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/pkg/utils"
)

type AgencyCommissionResponse struct {
	AgencyID        string                `json:"agency_id"`
	AgencyName      string                `json:"agency_name,omitempty"`
	CommissionValue float64               `json:"commission_value"`
	CommissionType  entity.CommissionType `json:"commission_type"`
}

type ExcursionResponse struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          *string   `json:"description,omitempty"`
	StartDate            string    `json:"start_date"`
	EndDate              string    `json:"end_date"`
	ConfirmationDeadline *string   `json:"confirmation_deadline,omitempty"`
	PriceAdult           float64   `json:"price_adult"`
	PriceChild           float64   `json:"price_child"`
	SupplierID           *string   `json:"supplier_id,omitempty"`
	SupplierName         string    `json:"supplier_name,omitempty"`
	MaxParticipants      *int      `json:"max_participants,omitempty"`
	CreatedAt            time.Time `json:"created_at"`

	AgencyCommissions []AgencyCommissionResponse `json:"agency_commissions,omitempty"`

	// Two distinct revenue notions: recognized revenue attributes the full
	// listed price, cash collected sums deposits actually taken.
	ParticipantCount  int     `json:"participant_count"`
	TotalPax          int     `json:"total_pax"`
	RecognizedRevenue float64 `json:"recognized_revenue"`
	CashCollected     float64 `json:"cash_collected"`
}

type ExcursionDetailResponse struct {
	ExcursionResponse
	Participants []ParticipantResponse `json:"participants"`
}

func ExcursionToResponse(e *entity.Excursion) ExcursionResponse {
	resp := ExcursionResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate.Format(utils.DateTimeLayout),
		EndDate:     e.EndDate.Format(utils.DateTimeLayout),
		PriceAdult:  e.PriceAdult,
		PriceChild:  e.PriceChild,
		MaxParticipants: e.MaxParticipants,
		CreatedAt:   e.CreatedAt,
	}

	if e.ConfirmationDeadline != nil {
		deadline := e.ConfirmationDeadline.Format(utils.DateTimeLayout)
		resp.ConfirmationDeadline = &deadline
	}
	if e.SupplierID != nil {
		id := e.SupplierID.String()
		resp.SupplierID = &id
	}

	return resp
}
