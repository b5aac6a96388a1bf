package adaptor

import (
	"net/http"

	"corfumania-backoffice/internal/usecase"
	"corfumania-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetReport handles GET /api/admin/reports. Required: from, to. Optional CSV
// filters: kinds, supplierIds, userIds, excursionIds.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	if from == "" || to == "" {
		utils.ResponseBadRequest(w, "from and to dates are required", nil)
		return
	}

	supplierIDs, err := parseUUIDList(query.Get("supplierIds"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid supplierIds", nil)
		return
	}
	userIDs, err := parseUUIDList(query.Get("userIds"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid userIds", nil)
		return
	}
	excursionIDs, err := parseUUIDList(query.Get("excursionIds"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid excursionIds", nil)
		return
	}

	report, err := h.service.Build(r.Context(), usecase.ReportQuery{
		From:         from,
		To:           to,
		Kinds:        utils.SplitCSV(query.Get("kinds")),
		SupplierIDs:  supplierIDs,
		UserIDs:      userIDs,
		ExcursionIDs: excursionIDs,
	})
	if err != nil {
		handleServiceError(w, h.log, err, "build report")
		return
	}

	utils.ResponseSuccess(w, "Report built successfully", report)
}

func parseUUIDList(raw string) ([]uuid.UUID, error) {
	values := utils.SplitCSV(raw)
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
