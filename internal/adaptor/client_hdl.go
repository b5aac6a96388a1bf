package adaptor

import (
	"net/http"

	"corfumania-backoffice/internal/usecase"
	"corfumania-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type ClientHandler struct {
	service usecase.ClientService
	log     *zap.Logger
}

func NewClientHandler(service usecase.ClientService, log *zap.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log.With(zap.String("handler", "client")),
	}
}

// GetClients handles GET /api/clients. Clients are created implicitly through
// bookings, so listing is the only direct operation.
func (h *ClientHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list clients")
		return
	}

	utils.ResponseSuccess(w, "Clients retrieved successfully", clients)
}
