package response

import (
	"time"

	"corfumania-backoffice/internal/data/entity"
)

type AuditLogResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Action      string    `json:"action"`
	Details     string    `json:"details"`
	ExcursionID *string   `json:"excursion_id,omitempty"`
	TransferID  *string   `json:"transfer_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func AuditLogToResponse(a *entity.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		Action:    a.Action,
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}

	if a.ExcursionID != nil {
		id := a.ExcursionID.String()
		resp.ExcursionID = &id
	}
	if a.TransferID != nil {
		id := a.TransferID.String()
		resp.TransferID = &id
	}

	return resp
}
