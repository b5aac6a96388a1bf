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

type ExcursionService interface {
	Create(ctx context.Context, actorID string, req *request.CreateExcursionRequest) ([]response.ExcursionResponse, error)
	List(ctx context.Context) ([]response.ExcursionResponse, error)
	Get(ctx context.Context, excursionID string) (*response.ExcursionDetailResponse, error)
	Update(ctx context.Context, actorID, excursionID string, req *request.UpdateExcursionRequest) (*response.ExcursionResponse, error)
	Delete(ctx context.Context, actorID, excursionID string) error
}

type excursionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewExcursionService(repo *repository.Repository, log *zap.Logger) ExcursionService {
	return &excursionService{
		repo: repo,
		log:  log.With(zap.String("service", "excursion")),
	}
}

// sweepExpired flags unconfirmed options and deposit-only bookings on
// excursions whose confirmation deadline has passed. It runs before every
// read so listings never show stale active bookings; the statement is
// idempotent so concurrent requests are harmless.
func (s *excursionService) sweepExpired(ctx context.Context) {
	expired, err := s.repo.Participant.ExpireExcursionParticipants(ctx, time.Now())
	if err != nil {
		s.log.Error("Failed to expire excursion bookings", zap.Error(err))
		return
	}
	if expired > 0 {
		s.log.Info("Expired excursion bookings", zap.Int64("count", expired))
	}
}

func (s *excursionService) Create(ctx context.Context, actorID string, req *request.CreateExcursionRequest) ([]response.ExcursionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	startDate, err := utils.ParseDateTime(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", req.StartDate, err)
	}
	endDate, err := utils.ParseDateTime(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", req.EndDate, err)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	var deadline *time.Time
	if req.ConfirmationDeadline != nil {
		d, err := utils.ParseDateTime(*req.ConfirmationDeadline)
		if err != nil {
			return nil, fmt.Errorf("invalid confirmation deadline %s: %w", *req.ConfirmationDeadline, err)
		}
		if d.After(startDate) {
			return nil, fmt.Errorf("confirmation deadline must not be after the start date")
		}
		deadline = &d
	}

	supplierID, err := parseOptionalUUID(req.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplierID != nil {
		supplier, err := s.repo.Supplier.FindByID(ctx, *supplierID)
		if err != nil {
			s.log.Error("Failed to load supplier", zap.Error(err))
			return nil, fmt.Errorf("failed to load supplier")
		}
		if supplier == nil {
			return nil, fmt.Errorf("supplier %s not found", *req.SupplierID)
		}
	}

	commissions, err := commissionsFromInputs(req.AgencyCommissions)
	if err != nil {
		return nil, err
	}

	instances := []recurrenceInstance{{Start: startDate, End: endDate, Deadline: deadline}}
	if req.Recurrence != nil {
		expanded := expandRecurrence(startDate, endDate, deadline, *req.Recurrence, false)
		if len(expanded) > 0 {
			instances = expanded
		}
	}

	responses := make([]response.ExcursionResponse, 0, len(instances))
	for _, instance := range instances {
		now := time.Now()
		excursion := &entity.Excursion{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Title:                req.Title,
			Description:          req.Description,
			StartDate:            instance.Start,
			EndDate:              instance.End,
			ConfirmationDeadline: instance.Deadline,
			PriceAdult:           req.PriceAdult,
			PriceChild:           req.PriceChild,
			SupplierID:           supplierID,
			MaxParticipants:      req.MaxParticipants,
		}

		if err := s.repo.Excursion.Create(ctx, excursion); err != nil {
			s.log.Error("Failed to create excursion", zap.Error(err), zap.String("title", req.Title))
			return nil, fmt.Errorf("failed to create excursion")
		}

		if len(commissions) > 0 {
			instanceCommissions := make([]*entity.AgencyCommission, len(commissions))
			for i, c := range commissions {
				excID := excursion.ID
				instanceCommissions[i] = &entity.AgencyCommission{
					BaseSimple:      entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
					ExcursionID:     &excID,
					AgencyID:        c.AgencyID,
					CommissionValue: c.CommissionValue,
					CommissionType:  c.CommissionType,
				}
			}
			if err := s.repo.AgencyCommission.ReplaceForExcursion(ctx, excursion.ID, instanceCommissions); err != nil {
				s.log.Error("Failed to store commission overrides", zap.Error(err), zap.String("excursion_id", excursion.ID.String()))
				return nil, fmt.Errorf("failed to store commission overrides")
			}
		}

		responses = append(responses, response.ExcursionToResponse(excursion))
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditCreateExcursion,
		fmt.Sprintf("created excursion %s (%d instances)", req.Title, len(instances)), nil, nil)

	s.log.Info("Excursion created",
		zap.String("title", req.Title),
		zap.Int("instances", len(instances)))

	return responses, nil
}

func (s *excursionService) List(ctx context.Context) ([]response.ExcursionResponse, error) {
	s.sweepExpired(ctx)

	excursions, err := s.repo.Excursion.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list excursions", zap.Error(err))
		return nil, fmt.Errorf("failed to list excursions")
	}

	supplierNames := make(map[uuid.UUID]string)
	responses := make([]response.ExcursionResponse, 0, len(excursions))
	for _, excursion := range excursions {
		resp := response.ExcursionToResponse(excursion)

		participants, err := s.repo.Participant.FindByExcursionID(ctx, excursion.ID)
		if err != nil {
			s.log.Error("Failed to load participants", zap.Error(err), zap.String("excursion_id", excursion.ID.String()))
			return nil, fmt.Errorf("failed to load participants")
		}
		resp.ParticipantCount, resp.TotalPax, resp.RecognizedRevenue, resp.CashCollected = eventTotals(participants)

		if excursion.SupplierID != nil {
			name, ok := supplierNames[*excursion.SupplierID]
			if !ok {
				supplier, err := s.repo.Supplier.FindByID(ctx, *excursion.SupplierID)
				if err != nil {
					s.log.Error("Failed to load supplier", zap.Error(err))
					return nil, fmt.Errorf("failed to load supplier")
				}
				if supplier != nil {
					name = supplier.Name
				}
				supplierNames[*excursion.SupplierID] = name
			}
			resp.SupplierName = name
		}

		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *excursionService) Get(ctx context.Context, excursionID string) (*response.ExcursionDetailResponse, error) {
	excursionUUID, err := uuid.Parse(excursionID)
	if err != nil {
		return nil, fmt.Errorf("invalid excursion ID format %s: %w", excursionID, err)
	}

	s.sweepExpired(ctx)

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

	commissions, err := s.repo.AgencyCommission.FindByExcursionID(ctx, excursionUUID)
	if err != nil {
		s.log.Error("Failed to load commission overrides", zap.Error(err), zap.String("excursion_id", excursionID))
		return nil, fmt.Errorf("failed to load commission overrides")
	}

	detail := &response.ExcursionDetailResponse{
		ExcursionResponse: response.ExcursionToResponse(excursion),
		Participants:      make([]response.ParticipantResponse, len(participants)),
	}
	detail.ParticipantCount, detail.TotalPax, detail.RecognizedRevenue, detail.CashCollected = eventTotals(participants)
	for i, p := range participants {
		detail.Participants[i] = response.ParticipantToResponse(p)
	}

	detail.AgencyCommissions, err = commissionResponses(ctx, s.repo, commissions)
	if err != nil {
		s.log.Error("Failed to shape commission overrides", zap.Error(err), zap.String("excursion_id", excursionID))
		return nil, fmt.Errorf("failed to load commission overrides")
	}

	if excursion.SupplierID != nil {
		supplier, err := s.repo.Supplier.FindByID(ctx, *excursion.SupplierID)
		if err != nil {
			s.log.Error("Failed to load supplier", zap.Error(err))
			return nil, fmt.Errorf("failed to load supplier")
		}
		if supplier != nil {
			detail.SupplierName = supplier.Name
		}
	}

	return detail, nil
}

func (s *excursionService) Update(ctx context.Context, actorID, excursionID string, req *request.UpdateExcursionRequest) (*response.ExcursionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

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

	if req.Title != nil {
		excursion.Title = *req.Title
	}
	if req.Description != nil {
		excursion.Description = req.Description
	}
	if req.StartDate != nil {
		startDate, err := utils.ParseDateTime(*req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %s: %w", *req.StartDate, err)
		}
		excursion.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := utils.ParseDateTime(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %s: %w", *req.EndDate, err)
		}
		excursion.EndDate = endDate
	}
	if excursion.EndDate.Before(excursion.StartDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	deadlineMovedToFuture := false
	if req.ConfirmationDeadline != nil {
		deadline, err := utils.ParseDateTime(*req.ConfirmationDeadline)
		if err != nil {
			return nil, fmt.Errorf("invalid confirmation deadline %s: %w", *req.ConfirmationDeadline, err)
		}
		if deadline.After(excursion.StartDate) {
			return nil, fmt.Errorf("confirmation deadline must not be after the start date")
		}
		excursion.ConfirmationDeadline = &deadline
		deadlineMovedToFuture = deadline.After(time.Now())
	}

	if req.SupplierID != nil {
		supplierID, err := parseOptionalUUID(req.SupplierID)
		if err != nil {
			return nil, err
		}
		supplier, err := s.repo.Supplier.FindByID(ctx, *supplierID)
		if err != nil {
			s.log.Error("Failed to load supplier", zap.Error(err))
			return nil, fmt.Errorf("failed to load supplier")
		}
		if supplier == nil {
			return nil, fmt.Errorf("supplier %s not found", *req.SupplierID)
		}
		excursion.SupplierID = supplierID
	}
	if req.PriceAdult != nil {
		excursion.PriceAdult = *req.PriceAdult
	}
	if req.PriceChild != nil {
		excursion.PriceChild = *req.PriceChild
	}
	if req.MaxParticipants != nil {
		excursion.MaxParticipants = req.MaxParticipants
	}
	excursion.UpdatedAt = time.Now()

	if err := s.repo.Excursion.Update(ctx, excursion); err != nil {
		s.log.Error("Failed to update excursion", zap.Error(err), zap.String("excursion_id", excursionID))
		return nil, fmt.Errorf("failed to update excursion")
	}

	// A deadline pushed back into the future revives previously expired
	// bookings; they become active again unconditionally and will be swept
	// anew if the deadline passes once more.
	if deadlineMovedToFuture {
		if err := s.repo.Participant.ReactivateByExcursionID(ctx, excursionUUID); err != nil {
			s.log.Error("Failed to reactivate bookings", zap.Error(err), zap.String("excursion_id", excursionID))
			return nil, fmt.Errorf("failed to reactivate bookings")
		}
	}

	if req.AgencyCommissions != nil {
		commissions, err := commissionsFromInputs(req.AgencyCommissions)
		if err != nil {
			return nil, err
		}
		for _, c := range commissions {
			excID := excursionUUID
			c.ExcursionID = &excID
		}
		if err := s.repo.AgencyCommission.ReplaceForExcursion(ctx, excursionUUID, commissions); err != nil {
			s.log.Error("Failed to replace commission overrides", zap.Error(err), zap.String("excursion_id", excursionID))
			return nil, fmt.Errorf("failed to replace commission overrides")
		}
	}

	if req.Recurrence != nil {
		if err := s.regenerateFrom(ctx, excursion, *req.Recurrence); err != nil {
			return nil, err
		}
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditUpdateExcursion,
		fmt.Sprintf("updated excursion %s", excursion.Title), &excursionUUID, nil)

	resp := response.ExcursionToResponse(excursion)
	return &resp, nil
}

// regenerateFrom creates fresh copies of an edited excursion starting the day
// after its own date, so the edited instance stays in place.
func (s *excursionService) regenerateFrom(ctx context.Context, base *entity.Excursion, rule request.RecurrenceRule) error {
	instances := expandRecurrence(base.StartDate, base.EndDate, base.ConfirmationDeadline, rule, true)

	commissions, err := s.repo.AgencyCommission.FindByExcursionID(ctx, base.ID)
	if err != nil {
		s.log.Error("Failed to load commission overrides", zap.Error(err), zap.String("excursion_id", base.ID.String()))
		return fmt.Errorf("failed to load commission overrides")
	}

	for _, instance := range instances {
		now := time.Now()
		clone := &entity.Excursion{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Title:                base.Title,
			Description:          base.Description,
			StartDate:            instance.Start,
			EndDate:              instance.End,
			ConfirmationDeadline: instance.Deadline,
			PriceAdult:           base.PriceAdult,
			PriceChild:           base.PriceChild,
			SupplierID:           base.SupplierID,
			MaxParticipants:      base.MaxParticipants,
		}
		if err := s.repo.Excursion.Create(ctx, clone); err != nil {
			s.log.Error("Failed to create recurring excursion", zap.Error(err), zap.String("title", base.Title))
			return fmt.Errorf("failed to create recurring excursion")
		}

		if len(commissions) > 0 {
			copied := make([]*entity.AgencyCommission, len(commissions))
			for i, c := range commissions {
				copyID := clone.ID
				copied[i] = &entity.AgencyCommission{
					BaseSimple:      entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
					ExcursionID:     &copyID,
					AgencyID:        c.AgencyID,
					CommissionValue: c.CommissionValue,
					CommissionType:  c.CommissionType,
				}
			}
			if err := s.repo.AgencyCommission.ReplaceForExcursion(ctx, clone.ID, copied); err != nil {
				s.log.Error("Failed to copy commission overrides", zap.Error(err), zap.String("excursion_id", clone.ID.String()))
				return fmt.Errorf("failed to copy commission overrides")
			}
		}
	}

	if len(instances) > 0 {
		s.log.Info("Regenerated recurring excursions",
			zap.String("title", base.Title),
			zap.Int("instances", len(instances)))
	}

	return nil
}

func (s *excursionService) Delete(ctx context.Context, actorID, excursionID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	excursionUUID, err := uuid.Parse(excursionID)
	if err != nil {
		return fmt.Errorf("invalid excursion ID format %s: %w", excursionID, err)
	}

	excursion, err := s.repo.Excursion.FindByID(ctx, excursionUUID)
	if err != nil {
		s.log.Error("Failed to load excursion", zap.Error(err), zap.String("excursion_id", excursionID))
		return fmt.Errorf("failed to load excursion")
	}
	if excursion == nil {
		return fmt.Errorf("excursion %s not found", excursionID)
	}

	count, err := s.repo.Participant.CountByExcursionID(ctx, excursionUUID)
	if err != nil {
		s.log.Error("Failed to count participants", zap.Error(err), zap.String("excursion_id", excursionID))
		return fmt.Errorf("failed to check participants")
	}
	if count > 0 {
		return fmt.Errorf("cannot delete excursion %s: %d bookings reference it", excursion.Title, count)
	}

	if err := s.repo.Excursion.Delete(ctx, excursionUUID); err != nil {
		s.log.Error("Failed to delete excursion", zap.Error(err), zap.String("excursion_id", excursionID))
		return fmt.Errorf("failed to delete excursion")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditDeleteExcursion,
		fmt.Sprintf("deleted excursion %s", excursion.Title), nil, nil)

	return nil
}
