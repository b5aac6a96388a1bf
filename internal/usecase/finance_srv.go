package usecase

import (
	"context"
	"fmt"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/internal/dto/response"
	"corfumania-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FinanceService interface {
	ExcursionFinancials(ctx context.Context, excursionID string) (*response.FinancialSummary, error)
	TransferFinancials(ctx context.Context, transferID string) (*response.FinancialSummary, error)
}

type financeService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewFinanceService(repo *repository.Repository, config *utils.Config, log *zap.Logger) FinanceService {
	return &financeService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "finance")),
	}
}

func (s *financeService) ExcursionFinancials(ctx context.Context, excursionID string) (*response.FinancialSummary, error) {
	excursionUUID, err := uuid.Parse(excursionID)
	if err != nil {
		return nil, fmt.Errorf("invalid excursion ID format %s: %w", excursionID, err)
	}

	excursion, err := s.repo.Excursion.FindByID(ctx, excursionUUID)
	if err != nil {
		s.log.Error("Failed to load excursion", zap.Error(err), zap.String("excursion_id", excursionID))
		return nil, fmt.Errorf("failed to load excursion")
	}
	if excursion == nil {
		return nil, fmt.Errorf("excursion %s not found", excursionID)
	}

	participants, err := s.repo.Participant.FindByExcursionID(ctx, excursionUUID)
	if err != nil {
		s.log.Error("Failed to load participants", zap.Error(err), zap.String("excursion_id", excursionID))
		return nil, fmt.Errorf("failed to load participants")
	}

	overrides, err := s.repo.AgencyCommission.FindByExcursionID(ctx, excursionUUID)
	if err != nil {
		s.log.Error("Failed to load commission overrides", zap.Error(err), zap.String("excursion_id", excursionID))
		return nil, fmt.Errorf("failed to load commission overrides")
	}

	resolver := newFinanceResolver(s.repo, s.log)
	rows, err := resolver.rows(ctx, participants, excursion.SupplierID, overrides)
	if err != nil {
		return nil, err
	}

	return computeEventFinancials(rows, s.config.Finance.SupplierCostRatio), nil
}

func (s *financeService) TransferFinancials(ctx context.Context, transferID string) (*response.FinancialSummary, error) {
	transferUUID, err := uuid.Parse(transferID)
	if err != nil {
		return nil, fmt.Errorf("invalid transfer ID format %s: %w", transferID, err)
	}

	transfer, err := s.repo.Transfer.FindByID(ctx, transferUUID)
	if err != nil {
		s.log.Error("Failed to load transfer", zap.Error(err), zap.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to load transfer")
	}
	if transfer == nil {
		return nil, fmt.Errorf("transfer %s not found", transferID)
	}

	participants, err := s.repo.Participant.FindByTransferID(ctx, transferUUID)
	if err != nil {
		s.log.Error("Failed to load participants", zap.Error(err), zap.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to load participants")
	}

	overrides, err := s.repo.AgencyCommission.FindByTransferID(ctx, transferUUID)
	if err != nil {
		s.log.Error("Failed to load commission overrides", zap.Error(err), zap.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to load commission overrides")
	}

	resolver := newFinanceResolver(s.repo, s.log)
	rows, err := resolver.rows(ctx, participants, transfer.SupplierID, overrides)
	if err != nil {
		return nil, err
	}

	return computeEventFinancials(rows, s.config.Finance.SupplierCostRatio), nil
}

// financeResolver turns raw participants into FinanceRows by resolving the
// supplier, the creator, and the applicable agency commission. It memoizes
// lookups so a large event does one query per distinct entity rather than per
// participant.
type financeResolver struct {
	repo *repository.Repository
	log  *zap.Logger

	users     map[uuid.UUID]*entity.User
	agencies  map[uuid.UUID]*entity.Agency
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFinanceResolver(repo *repository.Repository, log *zap.Logger) *financeResolver {
	return &financeResolver{
		repo:      repo,
		log:       log,
		users:     make(map[uuid.UUID]*entity.User),
		agencies:  make(map[uuid.UUID]*entity.Agency),
		suppliers: make(map[uuid.UUID]*entity.Supplier),
	}
}

func (r *financeResolver) user(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	u, err := r.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	r.users[id] = u
	return u, nil
}

func (r *financeResolver) agency(ctx context.Context, id uuid.UUID) (*entity.Agency, error) {
	if a, ok := r.agencies[id]; ok {
		return a, nil
	}
	a, err := r.repo.Agency.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load agency %s: %w", id, err)
	}
	r.agencies[id] = a
	return a, nil
}

func (r *financeResolver) supplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	if s, ok := r.suppliers[id]; ok {
		return s, nil
	}
	s, err := r.repo.Supplier.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier %s: %w", id, err)
	}
	r.suppliers[id] = s
	return s, nil
}

// rows builds one FinanceRow per participant. The commission config is the
// per-event override for the participant's agency when one exists, otherwise
// the agency default. A per-participant percentage, when recorded at booking
// time, wins over both.
func (r *financeResolver) rows(ctx context.Context, participants []*entity.Participant, supplierID *uuid.UUID, overrides []*entity.AgencyCommission) ([]FinanceRow, error) {
	supplierName := ""
	if supplierID != nil {
		supplier, err := r.supplier(ctx, *supplierID)
		if err != nil {
			return nil, err
		}
		if supplier != nil {
			supplierName = supplier.Name
		}
	}

	overrideByAgency := make(map[uuid.UUID]*entity.AgencyCommission, len(overrides))
	for _, o := range overrides {
		overrideByAgency[o.AgencyID] = o
	}

	rows := make([]FinanceRow, 0, len(participants))
	for _, p := range participants {
		row := FinanceRow{
			Participant:  p,
			SupplierName: supplierName,
			CreatorRole:  entity.RoleUser,
		}

		creator, err := r.user(ctx, p.CreatedByID)
		if err != nil {
			return nil, err
		}
		if creator != nil {
			row.CreatorRole = creator.Role
			row.AssistantName = creator.FirstName + " " + creator.LastName
		}

		agencyID := p.AgencyID
		if agencyID == nil && creator != nil {
			agencyID = creator.AgencyID
		}

		if agencyID != nil {
			agency, err := r.agency(ctx, *agencyID)
			if err != nil {
				return nil, err
			}
			if agency != nil {
				row.HasAgency = true
				row.AgencyName = agency.Name
				row.CommissionValue = agency.DefaultCommission
				row.CommissionType = agency.CommissionType
				if o, ok := overrideByAgency[agency.ID]; ok {
					row.CommissionValue = o.CommissionValue
					row.CommissionType = o.CommissionType
				}
			}
		}

		if p.CommissionPercentage != nil {
			row.CommissionValue = *p.CommissionPercentage
			row.CommissionType = entity.CommissionPercentage
		}

		rows = append(rows, row)
	}

	return rows, nil
}
