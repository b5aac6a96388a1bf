package usecase

import (
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Agency    AgencyService
	Supplier  SupplierService
	Client    ClientService
	Excursion ExcursionService
	Transfer  TransferService
	Booking   BookingService
	Finance   FinanceService
	Report    ReportService
	Audit     AuditService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	finance := NewFinanceService(repo, config, log)

	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo, log),
		Agency:    NewAgencyService(repo, log),
		Supplier:  NewSupplierService(repo, log),
		Client:    NewClientService(repo, log),
		Excursion: NewExcursionService(repo, log),
		Transfer:  NewTransferService(repo, log),
		Booking:   NewBookingService(repo, log),
		Finance:   finance,
		Report:    NewReportService(repo, config, log),
		Audit:     NewAuditService(repo, log),
	}
}
