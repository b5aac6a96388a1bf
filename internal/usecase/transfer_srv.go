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

type TransferService interface {
	Create(ctx context.Context, actorID string, req *request.CreateTransferRequest) ([]response.TransferResponse, error)
	List(ctx context.Context) ([]response.TransferResponse, error)
	Get(ctx context.Context, transferID string) (*response.TransferDetailResponse, error)
	Update(ctx context.Context, actorID, transferID string, req *request.UpdateTransferRequest) (*response.TransferResponse, error)
	Delete(ctx context.Context, actorID, transferID string) error
}

type transferService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTransferService(repo *repository.Repository, log *zap.Logger) TransferService {
	return &transferService{
		repo: repo,
		log:  log.With(zap.String("service", "transfer")),
	}
}

// sweepExpired flags active options and deposit-only bookings on transfers
// whose date is already in the past. A transfer today is still bookable, so
// the cutoff is the start of the current day.
func (s *transferService) sweepExpired(ctx context.Context) {
	expired, err := s.repo.Participant.ExpireTransferParticipants(ctx, utils.StartOfDay(time.Now()))
	if err != nil {
		s.log.Error("Failed to expire transfer bookings", zap.Error(err))
		return
	}
	if expired > 0 {
		s.log.Info("Expired transfer bookings", zap.Int64("count", expired))
	}
}

func (s *transferService) Create(ctx context.Context, actorID string, req *request.CreateTransferRequest) ([]response.TransferResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
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

	instances := []recurrenceInstance{{Start: date, End: date}}
	if req.Recurrence != nil {
		expanded := expandRecurrence(date, date, nil, *req.Recurrence, false)
		if len(expanded) > 0 {
			instances = expanded
		}
	}

	responses := make([]response.TransferResponse, 0, len(instances))
	for _, instance := range instances {
		now := time.Now()
		transfer := &entity.Transfer{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Title:         req.Title,
			Date:          instance.Start,
			Time:          req.Time,
			Origin:        req.Origin,
			Destination:   req.Destination,
			Price:         req.Price,
			SupplierID:    supplierID,
			MaxPassengers: req.MaxPassengers,
		}

		if err := s.repo.Transfer.Create(ctx, transfer); err != nil {
			s.log.Error("Failed to create transfer", zap.Error(err), zap.String("title", req.Title))
			return nil, fmt.Errorf("failed to create transfer")
		}

		if len(commissions) > 0 {
			instanceCommissions := make([]*entity.AgencyCommission, len(commissions))
			for i, c := range commissions {
				trID := transfer.ID
				instanceCommissions[i] = &entity.AgencyCommission{
					BaseSimple:      entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
					TransferID:      &trID,
					AgencyID:        c.AgencyID,
					CommissionValue: c.CommissionValue,
					CommissionType:  c.CommissionType,
				}
			}
			if err := s.repo.AgencyCommission.ReplaceForTransfer(ctx, transfer.ID, instanceCommissions); err != nil {
				s.log.Error("Failed to store commission overrides", zap.Error(err), zap.String("transfer_id", transfer.ID.String()))
				return nil, fmt.Errorf("failed to store commission overrides")
			}
		}

		responses = append(responses, response.TransferToResponse(transfer))
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditCreateTransfer,
		fmt.Sprintf("created transfer %s (%d instances)", req.Title, len(instances)), nil, nil)

	s.log.Info("Transfer created",
		zap.String("title", req.Title),
		zap.Int("instances", len(instances)))

	return responses, nil
}

func (s *transferService) List(ctx context.Context) ([]response.TransferResponse, error) {
	s.sweepExpired(ctx)

	transfers, err := s.repo.Transfer.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list transfers", zap.Error(err))
		return nil, fmt.Errorf("failed to list transfers")
	}

	supplierNames := make(map[uuid.UUID]string)
	responses := make([]response.TransferResponse, 0, len(transfers))
	for _, transfer := range transfers {
		resp := response.TransferToResponse(transfer)

		participants, err := s.repo.Participant.FindByTransferID(ctx, transfer.ID)
		if err != nil {
			s.log.Error("Failed to load passengers", zap.Error(err), zap.String("transfer_id", transfer.ID.String()))
			return nil, fmt.Errorf("failed to load passengers")
		}
		resp.ParticipantCount, resp.TotalPax, resp.RecognizedRevenue, resp.CashCollected = eventTotals(participants)

		if transfer.SupplierID != nil {
			name, ok := supplierNames[*transfer.SupplierID]
			if !ok {
				supplier, err := s.repo.Supplier.FindByID(ctx, *transfer.SupplierID)
				if err != nil {
					s.log.Error("Failed to load supplier", zap.Error(err))
					return nil, fmt.Errorf("failed to load supplier")
				}
				if supplier != nil {
					name = supplier.Name
				}
				supplierNames[*transfer.SupplierID] = name
			}
			resp.SupplierName = name
		}

		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *transferService) Get(ctx context.Context, transferID string) (*response.TransferDetailResponse, error) {
	transferUUID, err := uuid.Parse(transferID)
	if err != nil {
		return nil, fmt.Errorf("invalid transfer ID format %s: %w", transferID, err)
	}

	s.sweepExpired(ctx)

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
		s.log.Error("Failed to load passengers", zap.Error(err), zap.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to load passengers")
	}

	commissions, err := s.repo.AgencyCommission.FindByTransferID(ctx, transferUUID)
	if err != nil {
		s.log.Error("Failed to load commission overrides", zap.Error(err), zap.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to load commission overrides")
	}

	detail := &response.TransferDetailResponse{
		TransferResponse: response.TransferToResponse(transfer),
		Participants:     make([]response.ParticipantResponse, len(participants)),
	}
	detail.ParticipantCount, detail.TotalPax, detail.RecognizedRevenue, detail.CashCollected = eventTotals(participants)
	for i, p := range participants {
		detail.Participants[i] = response.ParticipantToResponse(p)
	}

	detail.AgencyCommissions, err = commissionResponses(ctx, s.repo, commissions)
	if err != nil {
		s.log.Error("Failed to shape commission overrides", zap.Error(err), zap.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to load commission overrides")
	}

	if transfer.SupplierID != nil {
		supplier, err := s.repo.Supplier.FindByID(ctx, *transfer.SupplierID)
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

func (s *transferService) Update(ctx context.Context, actorID, transferID string, req *request.UpdateTransferRequest) (*response.TransferResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

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

	if req.Title != nil {
		transfer.Title = *req.Title
	}
	dateMovedToFuture := false
	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %s: %w", *req.Date, err)
		}
		transfer.Date = date
		dateMovedToFuture = !date.Before(utils.StartOfDay(time.Now()))
	}
	if req.Time != nil {
		transfer.Time = req.Time
	}
	if req.Origin != nil {
		transfer.Origin = *req.Origin
	}
	if req.Destination != nil {
		transfer.Destination = *req.Destination
	}
	if req.Price != nil {
		transfer.Price = *req.Price
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
		transfer.SupplierID = supplierID
	}
	if req.MaxPassengers != nil {
		transfer.MaxPassengers = req.MaxPassengers
	}
	transfer.UpdatedAt = time.Now()

	if err := s.repo.Transfer.Update(ctx, transfer); err != nil {
		s.log.Error("Failed to update transfer", zap.Error(err), zap.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to update transfer")
	}

	if dateMovedToFuture {
		if err := s.repo.Participant.ReactivateByTransferID(ctx, transferUUID); err != nil {
			s.log.Error("Failed to reactivate bookings", zap.Error(err), zap.String("transfer_id", transferID))
			return nil, fmt.Errorf("failed to reactivate bookings")
		}
	}

	if req.AgencyCommissions != nil {
		commissions, err := commissionsFromInputs(req.AgencyCommissions)
		if err != nil {
			return nil, err
		}
		for _, c := range commissions {
			trID := transferUUID
			c.TransferID = &trID
		}
		if err := s.repo.AgencyCommission.ReplaceForTransfer(ctx, transferUUID, commissions); err != nil {
			s.log.Error("Failed to replace commission overrides", zap.Error(err), zap.String("transfer_id", transferID))
			return nil, fmt.Errorf("failed to replace commission overrides")
		}
	}

	if req.Recurrence != nil {
		if err := s.regenerateFrom(ctx, transfer, *req.Recurrence); err != nil {
			return nil, err
		}
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditUpdateTransfer,
		fmt.Sprintf("updated transfer %s", transfer.Title), nil, &transferUUID)

	resp := response.TransferToResponse(transfer)
	return &resp, nil
}

// regenerateFrom creates fresh copies of an edited transfer starting the day
// after its own date.
func (s *transferService) regenerateFrom(ctx context.Context, base *entity.Transfer, rule request.RecurrenceRule) error {
	instances := expandRecurrence(base.Date, base.Date, nil, rule, true)

	commissions, err := s.repo.AgencyCommission.FindByTransferID(ctx, base.ID)
	if err != nil {
		s.log.Error("Failed to load commission overrides", zap.Error(err), zap.String("transfer_id", base.ID.String()))
		return fmt.Errorf("failed to load commission overrides")
	}

	for _, instance := range instances {
		now := time.Now()
		clone := &entity.Transfer{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Title:         base.Title,
			Date:          instance.Start,
			Time:          base.Time,
			Origin:        base.Origin,
			Destination:   base.Destination,
			Price:         base.Price,
			SupplierID:    base.SupplierID,
			MaxPassengers: base.MaxPassengers,
		}
		if err := s.repo.Transfer.Create(ctx, clone); err != nil {
			s.log.Error("Failed to create recurring transfer", zap.Error(err), zap.String("title", base.Title))
			return fmt.Errorf("failed to create recurring transfer")
		}

		if len(commissions) > 0 {
			copied := make([]*entity.AgencyCommission, len(commissions))
			for i, c := range commissions {
				cloneID := clone.ID
				copied[i] = &entity.AgencyCommission{
					BaseSimple:      entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
					TransferID:      &cloneID,
					AgencyID:        c.AgencyID,
					CommissionValue: c.CommissionValue,
					CommissionType:  c.CommissionType,
				}
			}
			if err := s.repo.AgencyCommission.ReplaceForTransfer(ctx, clone.ID, copied); err != nil {
				s.log.Error("Failed to copy commission overrides", zap.Error(err), zap.String("transfer_id", clone.ID.String()))
				return fmt.Errorf("failed to copy commission overrides")
			}
		}
	}

	if len(instances) > 0 {
		s.log.Info("Regenerated recurring transfers",
			zap.String("title", base.Title),
			zap.Int("instances", len(instances)))
	}

	return nil
}

func (s *transferService) Delete(ctx context.Context, actorID, transferID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	transferUUID, err := uuid.Parse(transferID)
	if err != nil {
		return fmt.Errorf("invalid transfer ID format %s: %w", transferID, err)
	}

	transfer, err := s.repo.Transfer.FindByID(ctx, transferUUID)
	if err != nil {
		s.log.Error("Failed to load transfer", zap.Error(err), zap.String("transfer_id", transferID))
		return fmt.Errorf("failed to load transfer")
	}
	if transfer == nil {
		return fmt.Errorf("transfer %s not found", transferID)
	}

	count, err := s.repo.Participant.CountByTransferID(ctx, transferUUID)
	if err != nil {
		s.log.Error("Failed to count passengers", zap.Error(err), zap.String("transfer_id", transferID))
		return fmt.Errorf("failed to check passengers")
	}
	if count > 0 {
		return fmt.Errorf("cannot delete transfer %s: %d bookings reference it", transfer.Title, count)
	}

	if err := s.repo.Transfer.Delete(ctx, transferUUID); err != nil {
		s.log.Error("Failed to delete transfer", zap.Error(err), zap.String("transfer_id", transferID))
		return fmt.Errorf("failed to delete transfer")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditDeleteTransfer,
		fmt.Sprintf("deleted transfer %s", transfer.Title), nil, nil)

	return nil
}
