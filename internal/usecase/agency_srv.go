package usecase

import (
	"context"
	"fmt"
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/internal/dto/request"
	"corfumania-backoffice/internal/dto/response"
	"corfumania-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AgencyService interface {
	Create(ctx context.Context, actorID string, req *request.CreateAgencyRequest) (*response.AgencyResponse, error)
	List(ctx context.Context) ([]response.AgencyResponse, error)
	Update(ctx context.Context, actorID, agencyID string, req *request.UpdateAgencyRequest) (*response.AgencyResponse, error)
	Delete(ctx context.Context, actorID, agencyID string) error
}

type agencyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAgencyService(repo *repository.Repository, log *zap.Logger) AgencyService {
	return &agencyService{
		repo: repo,
		log:  log.With(zap.String("service", "agency")),
	}
}

func (s *agencyService) Create(ctx context.Context, actorID string, req *request.CreateAgencyRequest) (*response.AgencyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	existing, err := s.repo.Agency.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check agency name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check agency name")
	}
	if existing != nil {
		return nil, fmt.Errorf("agency %s already exists", req.Name)
	}

	now := time.Now()
	agency := &entity.Agency{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		DefaultCommission: req.DefaultCommission,
		CommissionType:    entity.CommissionType(req.CommissionType),
	}

	if err := s.repo.Agency.Create(ctx, agency); err != nil {
		s.log.Error("Failed to create agency", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create agency")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditCreateAgency,
		fmt.Sprintf("created agency %s", agency.Name), nil, nil)

	s.log.Info("Agency created",
		zap.String("agency_id", agency.ID.String()),
		zap.String("name", agency.Name))

	resp := response.AgencyToResponse(agency)
	return &resp, nil
}

func (s *agencyService) List(ctx context.Context) ([]response.AgencyResponse, error) {
	agencies, err := s.repo.Agency.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list agencies", zap.Error(err))
		return nil, fmt.Errorf("failed to list agencies")
	}

	responses := make([]response.AgencyResponse, len(agencies))
	for i, agency := range agencies {
		responses[i] = response.AgencyToResponse(agency)
	}

	return responses, nil
}

func (s *agencyService) Update(ctx context.Context, actorID, agencyID string, req *request.UpdateAgencyRequest) (*response.AgencyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return nil, fmt.Errorf("invalid agency ID format %s: %w", agencyID, err)
	}

	agency, err := s.repo.Agency.FindByID(ctx, agencyUUID)
	if err != nil {
		s.log.Error("Failed to load agency", zap.Error(err), zap.String("agency_id", agencyID))
		return nil, fmt.Errorf("failed to load agency")
	}
	if agency == nil {
		return nil, fmt.Errorf("agency %s not found", agencyID)
	}

	if req.Name != nil {
		agency.Name = *req.Name
	}
	if req.Email != nil {
		agency.Email = req.Email
	}
	if req.Phone != nil {
		agency.Phone = req.Phone
	}
	if req.DefaultCommission != nil {
		agency.DefaultCommission = *req.DefaultCommission
	}
	if req.CommissionType != nil {
		agency.CommissionType = entity.CommissionType(*req.CommissionType)
	}
	agency.UpdatedAt = time.Now()

	if err := s.repo.Agency.Update(ctx, agency); err != nil {
		s.log.Error("Failed to update agency", zap.Error(err), zap.String("agency_id", agencyID))
		return nil, fmt.Errorf("failed to update agency")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditUpdateAgency,
		fmt.Sprintf("updated agency %s", agency.Name), nil, nil)

	resp := response.AgencyToResponse(agency)
	return &resp, nil
}

func (s *agencyService) Delete(ctx context.Context, actorID, agencyID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return fmt.Errorf("invalid agency ID format %s: %w", agencyID, err)
	}

	agency, err := s.repo.Agency.FindByID(ctx, agencyUUID)
	if err != nil {
		s.log.Error("Failed to load agency", zap.Error(err), zap.String("agency_id", agencyID))
		return fmt.Errorf("failed to load agency")
	}
	if agency == nil {
		return fmt.Errorf("agency %s not found", agencyID)
	}

	userCount, err := s.repo.User.CountByAgencyID(ctx, agencyUUID)
	if err != nil {
		s.log.Error("Failed to count agency users", zap.Error(err), zap.String("agency_id", agencyID))
		return fmt.Errorf("failed to check agency users")
	}
	if userCount > 0 {
		return fmt.Errorf("cannot delete agency %s: %d users are attached to it", agency.Name, userCount)
	}

	if err := s.repo.Agency.Delete(ctx, agencyUUID); err != nil {
		s.log.Error("Failed to delete agency", zap.Error(err), zap.String("agency_id", agencyID))
		return fmt.Errorf("failed to delete agency")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditDeleteAgency,
		fmt.Sprintf("deleted agency %s", agency.Name), nil, nil)

	return nil
}
