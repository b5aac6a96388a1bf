package adaptor

import (
	"corfumania-backoffice/internal/usecase"
	"corfumania-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Agency    *AgencyHandler
	Supplier  *SupplierHandler
	Client    *ClientHandler
	Excursion *ExcursionHandler
	Transfer  *TransferHandler
	Booking   *BookingHandler
	Report    *ReportHandler
	Audit     *AuditHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, config, log),
		User:      NewUserHandler(service.User, log),
		Agency:    NewAgencyHandler(service.Agency, log),
		Supplier:  NewSupplierHandler(service.Supplier, log),
		Client:    NewClientHandler(service.Client, log),
		Excursion: NewExcursionHandler(service.Excursion, service.Finance, log),
		Transfer:  NewTransferHandler(service.Transfer, service.Finance, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Report:    NewReportHandler(service.Report, log),
		Audit:     NewAuditHandler(service.Audit, log),
	}
}
