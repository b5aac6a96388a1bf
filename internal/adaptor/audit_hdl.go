package adaptor

import (
	"net/http"

	"corfumania-backoffice/internal/dto/request"
	"corfumania-backoffice/internal/usecase"
	"corfumania-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type AuditHandler struct {
	service usecase.AuditService
	log     *zap.Logger
}

func NewAuditHandler(service usecase.AuditService, log *zap.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		log:     log.With(zap.String("handler", "audit")),
	}
}

// GetAuditLog handles GET /api/admin/audit-log.
func (h *AuditHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	logs, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list audit log")
		return
	}

	utils.ResponseSuccess(w, "Audit log retrieved successfully", logs)
}
