package repository

import (
	"corfumania-backoffice/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User             UserRepository
	Session          SessionRepository
	Agency           AgencyRepository
	Supplier         SupplierRepository
	Client           ClientRepository
	Excursion        ExcursionRepository
	Transfer         TransferRepository
	AgencyCommission AgencyCommissionRepository
	Participant      ParticipantRepository
	Audit            AuditRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:             NewUserRepository(db, log),
		Session:          NewSessionRepository(db, log),
		Agency:           NewAgencyRepository(db, log),
		Supplier:         NewSupplierRepository(db, log),
		Client:           NewClientRepository(db, log),
		Excursion:        NewExcursionRepository(db, log),
		Transfer:         NewTransferRepository(db, log),
		AgencyCommission: NewAgencyCommissionRepository(db, log),
		Participant:      NewParticipantRepository(db, log),
		Audit:            NewAuditRepository(db, log),
	}
}
