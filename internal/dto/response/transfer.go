package response

import (
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/pkg/utils"
)

type TransferResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Date          string    `json:"date"`
	Time          *string   `json:"time,omitempty"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	Price         float64   `json:"price"`
	SupplierID    *string   `json:"supplier_id,omitempty"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	MaxPassengers *int      `json:"max_passengers,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	AgencyCommissions []AgencyCommissionResponse `json:"agency_commissions,omitempty"`

	ParticipantCount  int     `json:"participant_count"`
	TotalPax          int     `json:"total_pax"`
	RecognizedRevenue float64 `json:"recognized_revenue"`
	CashCollected     float64 `json:"cash_collected"`
}

type TransferDetailResponse struct {
	TransferResponse
	Participants []ParticipantResponse `json:"participants"`
}

func TransferToResponse(t *entity.Transfer) TransferResponse {
	resp := TransferResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		Date:          t.Date.Format(utils.DateLayout),
		Time:          t.Time,
		Origin:        t.Origin,
		Destination:   t.Destination,
		Price:         t.Price,
		MaxPassengers: t.MaxPassengers,
		CreatedAt:     t.CreatedAt,
	}

	if t.SupplierID != nil {
		id := t.SupplierID.String()
		resp.SupplierID = &id
	}

	return resp
}
