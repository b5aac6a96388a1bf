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

type SupplierHandler struct {
	service usecase.SupplierService
	log     *zap.Logger
}

func NewSupplierHandler(service usecase.SupplierService, log *zap.Logger) *SupplierHandler {
	return &SupplierHandler{
		service: service,
		log:     log.With(zap.String("handler", "supplier")),
	}
}

// CreateSupplier handles POST /api/suppliers.
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	supplier, err := h.service.Create(r.Context(), actorID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create supplier")
		return
	}

	utils.ResponseCreated(w, "Supplier created successfully", supplier)
}

// GetSuppliers handles GET /api/suppliers.
func (h *SupplierHandler) GetSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list suppliers")
		return
	}

	utils.ResponseSuccess(w, "Suppliers retrieved successfully", suppliers)
}

// UpdateSupplier handles PUT /api/suppliers/{id}.
func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	supplierID := chi.URLParam(r, "id")
	if supplierID == "" {
		utils.ResponseBadRequest(w, "Supplier ID is required", nil)
		return
	}

	var req request.UpdateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	supplier, err := h.service.Update(r.Context(), actorID, supplierID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update supplier")
		return
	}

	utils.ResponseSuccess(w, "Supplier updated successfully", supplier)
}

// DeleteSupplier handles DELETE /api/suppliers/{id}.
func (h *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	supplierID := chi.URLParam(r, "id")
	if supplierID == "" {
		utils.ResponseBadRequest(w, "Supplier ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actorID, supplierID); err != nil {
		handleServiceError(w, h.log, err, "delete supplier")
		return
	}

	utils.ResponseSuccess(w, "Supplier deleted successfully", nil)
}
