package usecase

import (
	"context"
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/data/repository"

	"github.com/google/uuid"
)

// Hand-written repository mocks. Each method delegates to the matching
// function field when set and otherwise returns zero values, so a test only
// wires the calls it cares about.

type mockUserRepo struct {
	CreateFn          func(ctx context.Context, user *entity.User) error
	FindByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFn     func(ctx context.Context, email string) (*entity.User, error)
	FindAllFn         func(ctx context.Context) ([]*entity.User, error)
	UpdateFn          func(ctx context.Context, user *entity.User) error
	DeleteFn          func(ctx context.Context, id uuid.UUID) error
	CountByAgencyIDFn func(ctx context.Context, agencyID uuid.UUID) (int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) CountByAgencyID(ctx context.Context, agencyID uuid.UUID) (int64, error) {
	if m.CountByAgencyIDFn != nil {
		return m.CountByAgencyIDFn(ctx, agencyID)
	}
	return 0, nil
}

type mockSessionRepo struct {
	CreateFn                func(ctx context.Context, session *entity.Session) error
	FindValidSessionFn      func(ctx context.Context, token string) (*entity.Session, error)
	RevokeFn                func(ctx context.Context, token string) error
	RevokeAllUserSessionsFn func(ctx context.Context, userID uuid.UUID) error
	CleanExpiredSessionsFn  func(ctx context.Context) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if m.FindValidSessionFn != nil {
		return m.FindValidSessionFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	if m.RevokeAllUserSessionsFn != nil {
		return m.RevokeAllUserSessionsFn(ctx, userID)
	}
	return nil
}

func (m *mockSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	if m.CleanExpiredSessionsFn != nil {
		return m.CleanExpiredSessionsFn(ctx)
	}
	return nil
}

type mockAgencyRepo struct {
	CreateFn     func(ctx context.Context, agency *entity.Agency) error
	FindByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.Agency, error)
	FindByNameFn func(ctx context.Context, name string) (*entity.Agency, error)
	FindAllFn    func(ctx context.Context) ([]*entity.Agency, error)
	UpdateFn     func(ctx context.Context, agency *entity.Agency) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAgencyRepo) Create(ctx context.Context, agency *entity.Agency) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, agency)
	}
	return nil
}

func (m *mockAgencyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Agency, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAgencyRepo) FindByName(ctx context.Context, name string) (*entity.Agency, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockAgencyRepo) FindAll(ctx context.Context) ([]*entity.Agency, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *mockAgencyRepo) Update(ctx context.Context, agency *entity.Agency) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, agency)
	}
	return nil
}

func (m *mockAgencyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockSupplierRepo struct {
	CreateFn     func(ctx context.Context, supplier *entity.Supplier) error
	FindByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	FindByNameFn func(ctx context.Context, name string) (*entity.Supplier, error)
	FindAllFn    func(ctx context.Context) ([]*entity.Supplier, error)
	UpdateFn     func(ctx context.Context, supplier *entity.Supplier) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, supplier)
	}
	return nil
}

func (m *mockSupplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSupplierRepo) FindByName(ctx context.Context, name string) (*entity.Supplier, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockSupplierRepo) FindAll(ctx context.Context) ([]*entity.Supplier, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *mockSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, supplier)
	}
	return nil
}

func (m *mockSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockClientRepo struct {
	CreateFn      func(ctx context.Context, client *entity.Client) error
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	FindByEmailFn func(ctx context.Context, email string) (*entity.Client, error)
	FindAllFn     func(ctx context.Context) ([]*entity.Client, error)
	UpdateFn      func(ctx context.Context, client *entity.Client) error
}

func (m *mockClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, client)
	}
	return nil
}

func (m *mockClientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepo) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockClientRepo) FindAll(ctx context.Context) ([]*entity.Client, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *mockClientRepo) Update(ctx context.Context, client *entity.Client) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, client)
	}
	return nil
}

type mockExcursionRepo struct {
	CreateFn      func(ctx context.Context, excursion *entity.Excursion) error
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Excursion, error)
	FindAllFn     func(ctx context.Context) ([]*entity.Excursion, error)
	FindBetweenFn func(ctx context.Context, from, to time.Time) ([]*entity.Excursion, error)
	UpdateFn      func(ctx context.Context, excursion *entity.Excursion) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockExcursionRepo) Create(ctx context.Context, excursion *entity.Excursion) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, excursion)
	}
	return nil
}

func (m *mockExcursionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Excursion, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockExcursionRepo) FindAll(ctx context.Context) ([]*entity.Excursion, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *mockExcursionRepo) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Excursion, error) {
	if m.FindBetweenFn != nil {
		return m.FindBetweenFn(ctx, from, to)
	}
	return nil, nil
}

func (m *mockExcursionRepo) Update(ctx context.Context, excursion *entity.Excursion) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, excursion)
	}
	return nil
}

func (m *mockExcursionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockTransferRepo struct {
	CreateFn      func(ctx context.Context, transfer *entity.Transfer) error
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Transfer, error)
	FindAllFn     func(ctx context.Context) ([]*entity.Transfer, error)
	FindBetweenFn func(ctx context.Context, from, to time.Time) ([]*entity.Transfer, error)
	UpdateFn      func(ctx context.Context, transfer *entity.Transfer) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTransferRepo) Create(ctx context.Context, transfer *entity.Transfer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, transfer)
	}
	return nil
}

func (m *mockTransferRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transfer, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTransferRepo) FindAll(ctx context.Context) ([]*entity.Transfer, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return nil, nil
}

func (m *mockTransferRepo) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Transfer, error) {
	if m.FindBetweenFn != nil {
		return m.FindBetweenFn(ctx, from, to)
	}
	return nil, nil
}

func (m *mockTransferRepo) Update(ctx context.Context, transfer *entity.Transfer) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, transfer)
	}
	return nil
}

func (m *mockTransferRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockAgencyCommissionRepo struct {
	FindByExcursionIDFn   func(ctx context.Context, excursionID uuid.UUID) ([]*entity.AgencyCommission, error)
	FindByTransferIDFn    func(ctx context.Context, transferID uuid.UUID) ([]*entity.AgencyCommission, error)
	ReplaceForExcursionFn func(ctx context.Context, excursionID uuid.UUID, commissions []*entity.AgencyCommission) error
	ReplaceForTransferFn  func(ctx context.Context, transferID uuid.UUID, commissions []*entity.AgencyCommission) error
}

func (m *mockAgencyCommissionRepo) FindByExcursionID(ctx context.Context, excursionID uuid.UUID) ([]*entity.AgencyCommission, error) {
	if m.FindByExcursionIDFn != nil {
		return m.FindByExcursionIDFn(ctx, excursionID)
	}
	return nil, nil
}

func (m *mockAgencyCommissionRepo) FindByTransferID(ctx context.Context, transferID uuid.UUID) ([]*entity.AgencyCommission, error) {
	if m.FindByTransferIDFn != nil {
		return m.FindByTransferIDFn(ctx, transferID)
	}
	return nil, nil
}

func (m *mockAgencyCommissionRepo) ReplaceForExcursion(ctx context.Context, excursionID uuid.UUID, commissions []*entity.AgencyCommission) error {
	if m.ReplaceForExcursionFn != nil {
		return m.ReplaceForExcursionFn(ctx, excursionID, commissions)
	}
	return nil
}

func (m *mockAgencyCommissionRepo) ReplaceForTransfer(ctx context.Context, transferID uuid.UUID, commissions []*entity.AgencyCommission) error {
	if m.ReplaceForTransferFn != nil {
		return m.ReplaceForTransferFn(ctx, transferID, commissions)
	}
	return nil
}

type mockParticipantRepo struct {
	CreateFn                      func(ctx context.Context, participant *entity.Participant) error
	FindByIDFn                    func(ctx context.Context, id uuid.UUID) (*entity.Participant, error)
	FindByExcursionIDFn           func(ctx context.Context, excursionID uuid.UUID) ([]*entity.Participant, error)
	FindByTransferIDFn            func(ctx context.Context, transferID uuid.UUID) ([]*entity.Participant, error)
	FindRentalsFn                 func(ctx context.Context) ([]*entity.Participant, error)
	FindRentalsBetweenFn          func(ctx context.Context, from, to time.Time) ([]*entity.Participant, error)
	UpdateFn                      func(ctx context.Context, participant *entity.Participant) error
	DeleteFn                      func(ctx context.Context, id uuid.UUID) error
	CountByExcursionIDFn          func(ctx context.Context, excursionID uuid.UUID) (int64, error)
	CountByTransferIDFn           func(ctx context.Context, transferID uuid.UUID) (int64, error)
	CountBySupplierIDFn           func(ctx context.Context, supplierID uuid.UUID) (int64, error)
	ExpireExcursionParticipantsFn func(ctx context.Context, now time.Time) (int64, error)
	ExpireTransferParticipantsFn  func(ctx context.Context, startOfToday time.Time) (int64, error)
	ExpireRentalParticipantsFn    func(ctx context.Context, startOfToday time.Time) (int64, error)
	ReactivateByExcursionIDFn     func(ctx context.Context, excursionID uuid.UUID) error
	ReactivateByTransferIDFn      func(ctx context.Context, transferID uuid.UUID) error
}

func (m *mockParticipantRepo) Create(ctx context.Context, participant *entity.Participant) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, participant)
	}
	return nil
}

func (m *mockParticipantRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockParticipantRepo) FindByExcursionID(ctx context.Context, excursionID uuid.UUID) ([]*entity.Participant, error) {
	if m.FindByExcursionIDFn != nil {
		return m.FindByExcursionIDFn(ctx, excursionID)
	}
	return nil, nil
}

func (m *mockParticipantRepo) FindByTransferID(ctx context.Context, transferID uuid.UUID) ([]*entity.Participant, error) {
	if m.FindByTransferIDFn != nil {
		return m.FindByTransferIDFn(ctx, transferID)
	}
	return nil, nil
}

func (m *mockParticipantRepo) FindRentals(ctx context.Context) ([]*entity.Participant, error) {
	if m.FindRentalsFn != nil {
		return m.FindRentalsFn(ctx)
	}
	return nil, nil
}

func (m *mockParticipantRepo) FindRentalsBetween(ctx context.Context, from, to time.Time) ([]*entity.Participant, error) {
	if m.FindRentalsBetweenFn != nil {
		return m.FindRentalsBetweenFn(ctx, from, to)
	}
	return nil, nil
}

func (m *mockParticipantRepo) Update(ctx context.Context, participant *entity.Participant) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, participant)
	}
	return nil
}

func (m *mockParticipantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockParticipantRepo) CountByExcursionID(ctx context.Context, excursionID uuid.UUID) (int64, error) {
	if m.CountByExcursionIDFn != nil {
		return m.CountByExcursionIDFn(ctx, excursionID)
	}
	return 0, nil
}

func (m *mockParticipantRepo) CountByTransferID(ctx context.Context, transferID uuid.UUID) (int64, error) {
	if m.CountByTransferIDFn != nil {
		return m.CountByTransferIDFn(ctx, transferID)
	}
	return 0, nil
}

func (m *mockParticipantRepo) CountBySupplierID(ctx context.Context, supplierID uuid.UUID) (int64, error) {
	if m.CountBySupplierIDFn != nil {
		return m.CountBySupplierIDFn(ctx, supplierID)
	}
	return 0, nil
}

func (m *mockParticipantRepo) ExpireExcursionParticipants(ctx context.Context, now time.Time) (int64, error) {
	if m.ExpireExcursionParticipantsFn != nil {
		return m.ExpireExcursionParticipantsFn(ctx, now)
	}
	return 0, nil
}

func (m *mockParticipantRepo) ExpireTransferParticipants(ctx context.Context, startOfToday time.Time) (int64, error) {
	if m.ExpireTransferParticipantsFn != nil {
		return m.ExpireTransferParticipantsFn(ctx, startOfToday)
	}
	return 0, nil
}

func (m *mockParticipantRepo) ExpireRentalParticipants(ctx context.Context, startOfToday time.Time) (int64, error) {
	if m.ExpireRentalParticipantsFn != nil {
		return m.ExpireRentalParticipantsFn(ctx, startOfToday)
	}
	return 0, nil
}

func (m *mockParticipantRepo) ReactivateByExcursionID(ctx context.Context, excursionID uuid.UUID) error {
	if m.ReactivateByExcursionIDFn != nil {
		return m.ReactivateByExcursionIDFn(ctx, excursionID)
	}
	return nil
}

func (m *mockParticipantRepo) ReactivateByTransferID(ctx context.Context, transferID uuid.UUID) error {
	if m.ReactivateByTransferIDFn != nil {
		return m.ReactivateByTransferIDFn(ctx, transferID)
	}
	return nil
}

type mockAuditRepo struct {
	CreateFn  func(ctx context.Context, log *entity.AuditLog) error
	FindAllFn func(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error)
	CountFn   func(ctx context.Context) (int64, error)
}

func (m *mockAuditRepo) Create(ctx context.Context, auditLog *entity.AuditLog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, auditLog)
	}
	return nil
}

func (m *mockAuditRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockAuditRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// newTestRepository wires empty mocks for every store, so tests can override
// just the fields they need.
func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:             &mockUserRepo{},
		Session:          &mockSessionRepo{},
		Agency:           &mockAgencyRepo{},
		Supplier:         &mockSupplierRepo{},
		Client:           &mockClientRepo{},
		Excursion:        &mockExcursionRepo{},
		Transfer:         &mockTransferRepo{},
		AgencyCommission: &mockAgencyCommissionRepo{},
		Participant:      &mockParticipantRepo{},
		Audit:            &mockAuditRepo{},
	}
}
