package adaptor

import (
	"encoding/json"
	"net/http"

	"corfumania-backoffice/internal/dto/request"
	"corfumania-backoffice/internal/usecase"
	"corfumania-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AgencyHandler struct {
	service usecase.AgencyService
	log     *zap.Logger
}

func NewAgencyHandler(service usecase.AgencyService, log *zap.Logger) *AgencyHandler {
	return &AgencyHandler{
		service: service,
		log:     log.With(zap.String("handler", "agency")),
	}
}

// CreateAgency handles POST /api/agencies.
func (h *AgencyHandler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.CreateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	agency, err := h.service.Create(r.Context(), actorID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create agency")
		return
	}

	utils.ResponseCreated(w, "Agency created successfully", agency)
}

// GetAgencies handles GET /api/agencies.
func (h *AgencyHandler) GetAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list agencies")
		return
	}

	utils.ResponseSuccess(w, "Agencies retrieved successfully", agencies)
}

// UpdateAgency handles PUT /api/agencies/{id}.
func (h *AgencyHandler) UpdateAgency(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	agencyID := chi.URLParam(r, "id")
	if agencyID == "" {
		utils.ResponseBadRequest(w, "Agency ID is required", nil)
		return
	}

	var req request.UpdateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	agency, err := h.service.Update(r.Context(), actorID, agencyID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update agency")
		return
	}

	utils.ResponseSuccess(w, "Agency updated successfully", agency)
}

// DeleteAgency handles DELETE /api/agencies/{id}.
func (h *AgencyHandler) DeleteAgency(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	agencyID := chi.URLParam(r, "id")
	if agencyID == "" {
		utils.ResponseBadRequest(w, "Agency ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actorID, agencyID); err != nil {
		handleServiceError(w, h.log, err, "delete agency")
		return
	}

	utils.ResponseSuccess(w, "Agency deleted successfully", nil)
}
