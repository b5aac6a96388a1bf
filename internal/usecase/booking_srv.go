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

type BookingService interface {
	Create(ctx context.Context, actorID string, req *request.CreateBookingRequest) (*response.ParticipantResponse, error)
	Get(ctx context.Context, bookingID string) (*response.ParticipantResponse, error)
	Update(ctx context.Context, actorID, bookingID string, req *request.UpdateBookingRequest) (*response.ParticipantResponse, error)
	Refund(ctx context.Context, actorID, bookingID string, req *request.RefundRequest) (*response.ParticipantResponse, error)
	Decide(ctx context.Context, actorID, bookingID string, req *request.ApprovalDecisionRequest) (*response.ParticipantResponse, error)
	Delete(ctx context.Context, actorID, bookingID string) error
	ListRentals(ctx context.Context) ([]response.ParticipantResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, actorID string, req *request.CreateBookingRequest) (*response.ParticipantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	creator, err := s.repo.User.FindByID(ctx, actorUUID)
	if err != nil {
		s.log.Error("Failed to load creator", zap.Error(err), zap.String("user_id", actorID))
		return nil, fmt.Errorf("failed to load creator")
	}
	if creator == nil {
		return nil, fmt.Errorf("user %s not found", actorID)
	}
	isAdmin := creator.Role == entity.RoleAdmin

	linkages := 0
	if req.ExcursionID != nil {
		linkages++
	}
	if req.TransferID != nil {
		linkages++
	}
	if req.IsRental {
		linkages++
	}
	if linkages != 1 {
		return nil, fmt.Errorf("a booking must reference exactly one of an excursion, a transfer, or a rental")
	}

	groupSize := req.Adults + req.Children
	if req.GroupSize != nil {
		groupSize = *req.GroupSize
	}
	if groupSize < 1 {
		return nil, fmt.Errorf("a booking must cover at least one person")
	}

	if req.Deposit > req.Price {
		return nil, fmt.Errorf("deposit %.2f exceeds the price %.2f", req.Deposit, req.Price)
	}

	now := time.Now()
	participant := &entity.Participant{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Nationality:          req.Nationality,
		DocumentNumber:       req.DocumentNumber,
		Price:                req.Price,
		Deposit:              req.Deposit,
		Tax:                  req.Tax,
		CommissionPercentage: req.CommissionPercentage,
		Adults:               req.Adults,
		Children:             req.Children,
		GroupSize:            groupSize,
		PaymentType:          entity.PaymentType(req.PaymentType),
		IsOption:             req.IsOption,
		ApprovalStatus:       entity.ApprovalApproved,
		CreatedByID:          creator.ID,
		AgencyID:             creator.AgencyID,
	}

	switch {
	case req.ExcursionID != nil:
		excursionUUID, err := uuid.Parse(*req.ExcursionID)
		if err != nil {
			return nil, fmt.Errorf("invalid excursion ID format %s: %w", *req.ExcursionID, err)
		}
		excursion, err := s.repo.Excursion.FindByID(ctx, excursionUUID)
		if err != nil {
			s.log.Error("Failed to load excursion", zap.Error(err), zap.String("excursion_id", *req.ExcursionID))
			return nil, fmt.Errorf("failed to load excursion")
		}
		if excursion == nil {
			return nil, fmt.Errorf("excursion %s not found", *req.ExcursionID)
		}

		if err := s.checkExcursionCapacity(ctx, excursion, groupSize); err != nil {
			return nil, err
		}

		status, originalPrice, err := evaluateBookingPrice(
			req.Adults, req.Children, excursion.PriceAdult, excursion.PriceChild, req.Price, isAdmin)
		if err != nil {
			return nil, err
		}
		participant.ExcursionID = &excursionUUID
		participant.ApprovalStatus = status
		participant.OriginalPrice = originalPrice

	case req.TransferID != nil:
		transferUUID, err := uuid.Parse(*req.TransferID)
		if err != nil {
			return nil, fmt.Errorf("invalid transfer ID format %s: %w", *req.TransferID, err)
		}
		transfer, err := s.repo.Transfer.FindByID(ctx, transferUUID)
		if err != nil {
			s.log.Error("Failed to load transfer", zap.Error(err), zap.String("transfer_id", *req.TransferID))
			return nil, fmt.Errorf("failed to load transfer")
		}
		if transfer == nil {
			return nil, fmt.Errorf("transfer %s not found", *req.TransferID)
		}

		if err := s.checkTransferCapacity(ctx, transfer, groupSize); err != nil {
			return nil, err
		}
		participant.TransferID = &transferUUID

	default:
		if req.RentalItem == nil || req.RentalStartDate == nil {
			return nil, fmt.Errorf("a rental booking needs an item and a start date")
		}
		startDate, err := utils.ParseDate(*req.RentalStartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid rental start date %s: %w", *req.RentalStartDate, err)
		}
		participant.IsRental = true
		participant.RentalItem = req.RentalItem
		participant.RentalStartDate = &startDate
		if req.RentalEndDate != nil {
			endDate, err := utils.ParseDate(*req.RentalEndDate)
			if err != nil {
				return nil, fmt.Errorf("invalid rental end date %s: %w", *req.RentalEndDate, err)
			}
			if endDate.Before(startDate) {
				return nil, fmt.Errorf("rental end date must not be before its start date")
			}
			participant.RentalEndDate = &endDate
		}
	}

	if req.ClientEmail != nil {
		clientID, err := s.upsertClient(ctx, req)
		if err != nil {
			return nil, err
		}
		participant.ClientID = clientID
	}

	if err := s.repo.Participant.Create(ctx, participant); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditCreateBooking,
		fmt.Sprintf("created booking for %s", participant.FullName()),
		participant.ExcursionID, participant.TransferID)

	s.log.Info("Booking created",
		zap.String("booking_id", participant.ID.String()),
		zap.String("approval_status", string(participant.ApprovalStatus)))

	resp := response.ParticipantToResponse(participant)
	return &resp, nil
}

// checkExcursionCapacity rejects a booking that would take the excursion past
// its seat limit. Expired and rejected bookings do not occupy seats.
func (s *bookingService) checkExcursionCapacity(ctx context.Context, excursion *entity.Excursion, groupSize int) error {
	if excursion.MaxParticipants == nil {
		return nil
	}
	participants, err := s.repo.Participant.FindByExcursionID(ctx, excursion.ID)
	if err != nil {
		s.log.Error("Failed to load participants", zap.Error(err), zap.String("excursion_id", excursion.ID.String()))
		return fmt.Errorf("failed to check capacity")
	}
	taken := 0
	for _, p := range participants {
		if p.IsExpired || p.ApprovalStatus == entity.ApprovalRejected || p.PaymentType == entity.PaymentRefunded {
			continue
		}
		taken += p.GroupSize
	}
	if taken+groupSize > *excursion.MaxParticipants {
		return fmt.Errorf("excursion %s is full: %d of %d seats taken", excursion.Title, taken, *excursion.MaxParticipants)
	}
	return nil
}

func (s *bookingService) checkTransferCapacity(ctx context.Context, transfer *entity.Transfer, groupSize int) error {
	if transfer.MaxPassengers == nil {
		return nil
	}
	participants, err := s.repo.Participant.FindByTransferID(ctx, transfer.ID)
	if err != nil {
		s.log.Error("Failed to load passengers", zap.Error(err), zap.String("transfer_id", transfer.ID.String()))
		return fmt.Errorf("failed to check capacity")
	}
	taken := 0
	for _, p := range participants {
		if p.IsExpired || p.ApprovalStatus == entity.ApprovalRejected || p.PaymentType == entity.PaymentRefunded {
			continue
		}
		taken += p.GroupSize
	}
	if taken+groupSize > *transfer.MaxPassengers {
		return fmt.Errorf("transfer %s is full: %d of %d seats taken", transfer.Title, taken, *transfer.MaxPassengers)
	}
	return nil
}

// upsertClient finds or creates the client record for a booking, keyed by
// email. An existing client gets its contact details refreshed.
func (s *bookingService) upsertClient(ctx context.Context, req *request.CreateBookingRequest) (*uuid.UUID, error) {
	client, err := s.repo.Client.FindByEmail(ctx, *req.ClientEmail)
	if err != nil {
		s.log.Error("Failed to look up client", zap.Error(err), zap.String("email", *req.ClientEmail))
		return nil, fmt.Errorf("failed to look up client")
	}

	now := time.Now()
	if client == nil {
		client = &entity.Client{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Email:          *req.ClientEmail,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Phone:          req.ClientPhone,
			Nationality:    req.Nationality,
			DocumentNumber: req.DocumentNumber,
		}
		if err := s.repo.Client.Create(ctx, client); err != nil {
			s.log.Error("Failed to create client", zap.Error(err), zap.String("email", *req.ClientEmail))
			return nil, fmt.Errorf("failed to create client")
		}
		return &client.ID, nil
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	if req.ClientPhone != nil {
		client.Phone = req.ClientPhone
	}
	if req.Nationality != nil {
		client.Nationality = req.Nationality
	}
	if req.DocumentNumber != nil {
		client.DocumentNumber = req.DocumentNumber
	}
	client.UpdatedAt = now
	if err := s.repo.Client.Update(ctx, client); err != nil {
		s.log.Error("Failed to update client", zap.Error(err), zap.String("email", *req.ClientEmail))
		return nil, fmt.Errorf("failed to update client")
	}
	return &client.ID, nil
}

func (s *bookingService) Get(ctx context.Context, bookingID string) (*response.ParticipantResponse, error) {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	participant, err := s.repo.Participant.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if participant == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.ParticipantToResponse(participant)
	return &resp, nil
}

func (s *bookingService) Update(ctx context.Context, actorID, bookingID string, req *request.UpdateBookingRequest) (*response.ParticipantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	participant, err := s.repo.Participant.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if participant == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if req.FirstName != nil {
		participant.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		participant.LastName = *req.LastName
	}
	if req.Nationality != nil {
		participant.Nationality = req.Nationality
	}
	if req.DocumentNumber != nil {
		participant.DocumentNumber = req.DocumentNumber
	}
	if req.RentalItem != nil && participant.IsRental {
		participant.RentalItem = req.RentalItem
	}
	if req.RentalStartDate != nil && participant.IsRental {
		startDate, err := utils.ParseDate(*req.RentalStartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid rental start date %s: %w", *req.RentalStartDate, err)
		}
		participant.RentalStartDate = &startDate
	}
	if req.RentalEndDate != nil && participant.IsRental {
		endDate, err := utils.ParseDate(*req.RentalEndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid rental end date %s: %w", *req.RentalEndDate, err)
		}
		participant.RentalEndDate = &endDate
	}
	if participant.RentalStartDate != nil && participant.RentalEndDate != nil &&
		participant.RentalEndDate.Before(*participant.RentalStartDate) {
		return nil, fmt.Errorf("rental end date must not be before its start date")
	}

	priceChanged := false
	if req.Price != nil {
		participant.Price = *req.Price
		priceChanged = true
	}
	if req.Deposit != nil {
		participant.Deposit = *req.Deposit
	}
	if req.Tax != nil {
		participant.Tax = *req.Tax
	}
	if req.CommissionPercentage != nil {
		participant.CommissionPercentage = req.CommissionPercentage
	}
	if req.Adults != nil {
		participant.Adults = *req.Adults
		priceChanged = true
	}
	if req.Children != nil {
		participant.Children = *req.Children
		priceChanged = true
	}
	if req.GroupSize != nil {
		participant.GroupSize = *req.GroupSize
	} else if req.Adults != nil || req.Children != nil {
		participant.GroupSize = participant.Adults + participant.Children
	}
	if participant.Deposit > participant.Price {
		return nil, fmt.Errorf("deposit %.2f exceeds the price %.2f", participant.Deposit, participant.Price)
	}
	if req.PaymentType != nil {
		participant.PaymentType = entity.PaymentType(*req.PaymentType)
	}
	if req.IsOption != nil {
		participant.IsOption = *req.IsOption
	}

	// Changing the price or the head count on an excursion booking re-enters
	// the approval gate under the editor's own role.
	if priceChanged && participant.ExcursionID != nil {
		actor, err := s.repo.User.FindByID(ctx, actorUUID)
		if err != nil {
			s.log.Error("Failed to load editor", zap.Error(err), zap.String("user_id", actorID))
			return nil, fmt.Errorf("failed to load editor")
		}
		if actor == nil {
			return nil, fmt.Errorf("user %s not found", actorID)
		}
		excursion, err := s.repo.Excursion.FindByID(ctx, *participant.ExcursionID)
		if err != nil {
			s.log.Error("Failed to load excursion", zap.Error(err))
			return nil, fmt.Errorf("failed to load excursion")
		}
		if excursion != nil {
			status, originalPrice, err := evaluateBookingPrice(
				participant.Adults, participant.Children,
				excursion.PriceAdult, excursion.PriceChild,
				participant.Price, actor.Role == entity.RoleAdmin)
			if err != nil {
				return nil, err
			}
			participant.ApprovalStatus = status
			participant.OriginalPrice = originalPrice
		}
	}

	participant.UpdatedAt = time.Now()
	if err := s.repo.Participant.Update(ctx, participant); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to update booking")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditUpdateBooking,
		fmt.Sprintf("updated booking for %s", participant.FullName()),
		participant.ExcursionID, participant.TransferID)

	resp := response.ParticipantToResponse(participant)
	return &resp, nil
}

// Refund marks a booking refunded. Without a retained deposit the refund is
// full and the booking stops contributing revenue; a retained amount below
// the price keeps that amount on the books.
func (s *bookingService) Refund(ctx context.Context, actorID, bookingID string, req *request.RefundRequest) (*response.ParticipantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	participant, err := s.repo.Participant.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if participant == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if participant.PaymentType == entity.PaymentRefunded {
		return nil, fmt.Errorf("booking %s is already refunded", bookingID)
	}

	retained := 0.0
	if req.RetainedDeposit != nil {
		retained = *req.RetainedDeposit
		if retained >= participant.Price {
			return nil, fmt.Errorf("retained deposit %.2f must be below the price %.2f", retained, participant.Price)
		}
	}

	participant.PaymentType = entity.PaymentRefunded
	participant.Deposit = retained
	participant.UpdatedAt = time.Now()

	if err := s.repo.Participant.Update(ctx, participant); err != nil {
		s.log.Error("Failed to refund booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to refund booking")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditRefundBooking,
		fmt.Sprintf("refunded booking for %s (retained %.2f)", participant.FullName(), retained),
		participant.ExcursionID, participant.TransferID)

	resp := response.ParticipantToResponse(participant)
	return &resp, nil
}

// Decide resolves a pending underpriced booking. Approving with
// RestoreListPrice puts the stored list price back on the booking.
func (s *bookingService) Decide(ctx context.Context, actorID, bookingID string, req *request.ApprovalDecisionRequest) (*response.ParticipantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	participant, err := s.repo.Participant.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if participant == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if participant.ApprovalStatus != entity.ApprovalPending {
		return nil, fmt.Errorf("booking %s is not pending approval", bookingID)
	}

	if req.Decision == string(entity.ApprovalApproved) {
		participant.ApprovalStatus = entity.ApprovalApproved
		if req.RestoreListPrice && participant.OriginalPrice != nil {
			participant.Price = *participant.OriginalPrice
		}
	} else {
		participant.ApprovalStatus = entity.ApprovalRejected
	}
	participant.UpdatedAt = time.Now()

	if err := s.repo.Participant.Update(ctx, participant); err != nil {
		s.log.Error("Failed to store approval decision", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to store approval decision")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditDecideBooking,
		fmt.Sprintf("%s booking for %s", req.Decision, participant.FullName()),
		participant.ExcursionID, participant.TransferID)

	resp := response.ParticipantToResponse(participant)
	return &resp, nil
}

func (s *bookingService) Delete(ctx context.Context, actorID, bookingID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	participant, err := s.repo.Participant.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("failed to load booking")
	}
	if participant == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	actor, err := s.repo.User.FindByID(ctx, actorUUID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", actorID))
		return fmt.Errorf("failed to load user")
	}
	if actor == nil {
		return fmt.Errorf("user %s not found", actorID)
	}
	if actor.Role != entity.RoleAdmin && participant.CreatedByID != actor.ID {
		return fmt.Errorf("only the creator or an admin can delete a booking")
	}

	if err := s.repo.Participant.Delete(ctx, bookingUUID); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("failed to delete booking")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditDeleteBooking,
		fmt.Sprintf("deleted booking for %s", participant.FullName()),
		participant.ExcursionID, participant.TransferID)

	return nil
}

// ListRentals sweeps rentals whose start date has passed, then returns all
// rental bookings.
func (s *bookingService) ListRentals(ctx context.Context) ([]response.ParticipantResponse, error) {
	expired, err := s.repo.Participant.ExpireRentalParticipants(ctx, utils.StartOfDay(time.Now()))
	if err != nil {
		s.log.Error("Failed to expire rentals", zap.Error(err))
	} else if expired > 0 {
		s.log.Info("Expired rentals", zap.Int64("count", expired))
	}

	rentals, err := s.repo.Participant.FindRentals(ctx)
	if err != nil {
		s.log.Error("Failed to list rentals", zap.Error(err))
		return nil, fmt.Errorf("failed to list rentals")
	}

	responses := make([]response.ParticipantResponse, len(rentals))
	for i, rental := range rentals {
		responses[i] = response.ParticipantToResponse(rental)
	}

	return responses, nil
}
