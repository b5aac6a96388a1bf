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

type TransferHandler struct {
	service usecase.TransferService
	finance usecase.FinanceService
	log     *zap.Logger
}

func NewTransferHandler(service usecase.TransferService, finance usecase.FinanceService, log *zap.Logger) *TransferHandler {
	return &TransferHandler{
		service: service,
		finance: finance,
		log:     log.With(zap.String("handler", "transfer")),
	}
}

// CreateTransfer handles POST /api/transfers.
func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	transfers, err := h.service.Create(r.Context(), actorID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create transfer")
		return
	}

	utils.ResponseCreated(w, "Transfer created successfully", transfers)
}

// GetTransfers handles GET /api/transfers.
func (h *TransferHandler) GetTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list transfers")
		return
	}

	utils.ResponseSuccess(w, "Transfers retrieved successfully", transfers)
}

// GetTransferByID handles GET /api/transfers/{id}.
func (h *TransferHandler) GetTransferByID(w http.ResponseWriter, r *http.Request) {
	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		utils.ResponseBadRequest(w, "Transfer ID is required", nil)
		return
	}

	transfer, err := h.service.Get(r.Context(), transferID)
	if err != nil {
		handleServiceError(w, h.log, err, "get transfer")
		return
	}

	utils.ResponseSuccess(w, "Transfer retrieved successfully", transfer)
}

// GetTransferFinancials handles GET /api/transfers/{id}/financials.
func (h *TransferHandler) GetTransferFinancials(w http.ResponseWriter, r *http.Request) {
	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		utils.ResponseBadRequest(w, "Transfer ID is required", nil)
		return
	}

	summary, err := h.finance.TransferFinancials(r.Context(), transferID)
	if err != nil {
		handleServiceError(w, h.log, err, "get transfer financials")
		return
	}

	utils.ResponseSuccess(w, "Financials retrieved successfully", summary)
}

// UpdateTransfer handles PUT /api/transfers/{id}.
func (h *TransferHandler) UpdateTransfer(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		utils.ResponseBadRequest(w, "Transfer ID is required", nil)
		return
	}

	var req request.UpdateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	transfer, err := h.service.Update(r.Context(), actorID, transferID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update transfer")
		return
	}

	utils.ResponseSuccess(w, "Transfer updated successfully", transfer)
}

// DeleteTransfer handles DELETE /api/transfers/{id}.
func (h *TransferHandler) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		utils.ResponseBadRequest(w, "Transfer ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actorID, transferID); err != nil {
		handleServiceError(w, h.log, err, "delete transfer")
		return
	}

	utils.ResponseSuccess(w, "Transfer deleted successfully", nil)
}
