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

type ExcursionHandler struct {
	service usecase.ExcursionService
	finance usecase.FinanceService
	log     *zap.Logger
}

func NewExcursionHandler(service usecase.ExcursionService, finance usecase.FinanceService, log *zap.Logger) *ExcursionHandler {
	return &ExcursionHandler{
		service: service,
		finance: finance,
		log:     log.With(zap.String("handler", "excursion")),
	}
}

// CreateExcursion handles POST /api/excursions. With a recurrence rule the
// response carries every created instance.
func (h *ExcursionHandler) CreateExcursion(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.CreateExcursionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	excursions, err := h.service.Create(r.Context(), actorID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create excursion")
		return
	}

	utils.ResponseCreated(w, "Excursion created successfully", excursions)
}

// GetExcursions handles GET /api/excursions.
func (h *ExcursionHandler) GetExcursions(w http.ResponseWriter, r *http.Request) {
	excursions, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list excursions")
		return
	}

	utils.ResponseSuccess(w, "Excursions retrieved successfully", excursions)
}

// GetExcursionByID handles GET /api/excursions/{id}.
func (h *ExcursionHandler) GetExcursionByID(w http.ResponseWriter, r *http.Request) {
	excursionID := chi.URLParam(r, "id")
	if excursionID == "" {
		utils.ResponseBadRequest(w, "Excursion ID is required", nil)
		return
	}

	excursion, err := h.service.Get(r.Context(), excursionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get excursion")
		return
	}

	utils.ResponseSuccess(w, "Excursion retrieved successfully", excursion)
}

// GetExcursionFinancials handles GET /api/excursions/{id}/financials.
func (h *ExcursionHandler) GetExcursionFinancials(w http.ResponseWriter, r *http.Request) {
	excursionID := chi.URLParam(r, "id")
	if excursionID == "" {
		utils.ResponseBadRequest(w, "Excursion ID is required", nil)
		return
	}

	summary, err := h.finance.ExcursionFinancials(r.Context(), excursionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get excursion financials")
		return
	}

	utils.ResponseSuccess(w, "Financials retrieved successfully", summary)
}

// UpdateExcursion handles PUT /api/excursions/{id}.
func (h *ExcursionHandler) UpdateExcursion(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	excursionID := chi.URLParam(r, "id")
	if excursionID == "" {
		utils.ResponseBadRequest(w, "Excursion ID is required", nil)
		return
	}

	var req request.UpdateExcursionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	excursion, err := h.service.Update(r.Context(), actorID, excursionID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update excursion")
		return
	}

	utils.ResponseSuccess(w, "Excursion updated successfully", excursion)
}

// DeleteExcursion handles DELETE /api/excursions/{id}.
func (h *ExcursionHandler) DeleteExcursion(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	excursionID := chi.URLParam(r, "id")
	if excursionID == "" {
		utils.ResponseBadRequest(w, "Excursion ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actorID, excursionID); err != nil {
		handleServiceError(w, h.log, err, "delete excursion")
		return
	}

	utils.ResponseSuccess(w, "Excursion deleted successfully", nil)
}
