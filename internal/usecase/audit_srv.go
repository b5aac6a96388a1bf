package usecase

import (
	"context"
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/internal/dto/request"
	"corfumania-backoffice/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Audit action names recorded by the mutating services.
const (
	auditCreateExcursion = "CREATE_EXCURSION"
	auditUpdateExcursion = "UPDATE_EXCURSION"
	auditDeleteExcursion = "DELETE_EXCURSION"
	auditCreateTransfer  = "CREATE_TRANSFER"
	auditUpdateTransfer  = "UPDATE_TRANSFER"
	auditDeleteTransfer  = "DELETE_TRANSFER"
	auditCreateBooking   = "CREATE_BOOKING"
	auditUpdateBooking   = "UPDATE_BOOKING"
	auditRefundBooking   = "REFUND_BOOKING"
	auditDecideBooking   = "DECIDE_BOOKING"
	auditDeleteBooking   = "DELETE_BOOKING"
	auditCreateAgency    = "CREATE_AGENCY"
	auditUpdateAgency    = "UPDATE_AGENCY"
	auditDeleteAgency    = "DELETE_AGENCY"
	auditCreateSupplier  = "CREATE_SUPPLIER"
	auditUpdateSupplier  = "UPDATE_SUPPLIER"
	auditDeleteSupplier  = "DELETE_SUPPLIER"
	auditCreateUser      = "CREATE_USER"
	auditUpdateUser      = "UPDATE_USER"
	auditDeleteUser      = "DELETE_USER"
	auditChangePassword  = "CHANGE_PASSWORD"
)

type AuditService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AuditLogResponse], error)
}

type auditService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuditService(repo *repository.Repository, log *zap.Logger) AuditService {
	return &auditService{
		repo: repo,
		log:  log.With(zap.String("service", "audit")),
	}
}

func (s *auditService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AuditLogResponse], error) {
	logs, err := s.repo.Audit.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list audit logs", zap.Error(err))
		return nil, err
	}

	total, err := s.repo.Audit.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count audit logs", zap.Error(err))
		return nil, err
	}

	responses := make([]response.AuditLogResponse, len(logs))
	for i, auditLog := range logs {
		responses[i] = response.AuditLogToResponse(auditLog)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

// recordAudit appends one audit row. Failures are logged and swallowed so an
// audit problem never fails the operation it documents.
func recordAudit(ctx context.Context, repo *repository.Repository, log *zap.Logger, userID uuid.UUID, action, details string, excursionID, transferID *uuid.UUID) {
	entry := &entity.AuditLog{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      userID,
		Action:      action,
		Details:     details,
		ExcursionID: excursionID,
		TransferID:  transferID,
	}

	if err := repo.Audit.Create(ctx, entry); err != nil {
		log.Warn("Failed to record audit log",
			zap.Error(err),
			zap.String("action", action),
		)
	}
}
