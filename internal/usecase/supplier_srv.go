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

type SupplierService interface {
	EnsureDefault(ctx context.Context) error
	Create(ctx context.Context, actorID string, req *request.CreateSupplierRequest) (*response.SupplierResponse, error)
	List(ctx context.Context) ([]response.SupplierResponse, error)
	Update(ctx context.Context, actorID, supplierID string, req *request.UpdateSupplierRequest) (*response.SupplierResponse, error)
	Delete(ctx context.Context, actorID, supplierID string) error
}

type supplierService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSupplierService(repo *repository.Repository, log *zap.Logger) SupplierService {
	return &supplierService{
		repo: repo,
		log:  log.With(zap.String("service", "supplier")),
	}
}

// EnsureDefault seeds the in-house supplier on startup so that bookings by
// staff without an agency always have a supplier row to attribute revenue to.
func (s *supplierService) EnsureDefault(ctx context.Context) error {
	existing, err := s.repo.Supplier.FindByName(ctx, entity.DefaultSupplierName)
	if err != nil {
		return fmt.Errorf("failed to look up default supplier: %w", err)
	}
	if existing != nil {
		return nil
	}

	now := time.Now()
	supplier := &entity.Supplier{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: entity.DefaultSupplierName,
	}
	if err := s.repo.Supplier.Create(ctx, supplier); err != nil {
		return fmt.Errorf("failed to seed default supplier: %w", err)
	}

	s.log.Info("Seeded default supplier", zap.String("supplier_id", supplier.ID.String()))
	return nil
}

func (s *supplierService) Create(ctx context.Context, actorID string, req *request.CreateSupplierRequest) (*response.SupplierResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	existing, err := s.repo.Supplier.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check supplier name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check supplier name")
	}
	if existing != nil {
		return nil, fmt.Errorf("supplier %s already exists", req.Name)
	}

	now := time.Now()
	supplier := &entity.Supplier{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := s.repo.Supplier.Create(ctx, supplier); err != nil {
		s.log.Error("Failed to create supplier", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create supplier")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditCreateSupplier,
		fmt.Sprintf("created supplier %s", supplier.Name), nil, nil)

	s.log.Info("Supplier created",
		zap.String("supplier_id", supplier.ID.String()),
		zap.String("name", supplier.Name))

	resp := response.SupplierToResponse(supplier)
	return &resp, nil
}

func (s *supplierService) List(ctx context.Context) ([]response.SupplierResponse, error) {
	suppliers, err := s.repo.Supplier.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list suppliers", zap.Error(err))
		return nil, fmt.Errorf("failed to list suppliers")
	}

	responses := make([]response.SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		responses[i] = response.SupplierToResponse(supplier)
	}

	return responses, nil
}

func (s *supplierService) Update(ctx context.Context, actorID, supplierID string, req *request.UpdateSupplierRequest) (*response.SupplierResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	supplierUUID, err := uuid.Parse(supplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier ID format %s: %w", supplierID, err)
	}

	supplier, err := s.repo.Supplier.FindByID(ctx, supplierUUID)
	if err != nil {
		s.log.Error("Failed to load supplier", zap.Error(err), zap.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to load supplier")
	}
	if supplier == nil {
		return nil, fmt.Errorf("supplier %s not found", supplierID)
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Email != nil {
		supplier.Email = req.Email
	}
	if req.Phone != nil {
		supplier.Phone = req.Phone
	}
	supplier.UpdatedAt = time.Now()

	if err := s.repo.Supplier.Update(ctx, supplier); err != nil {
		s.log.Error("Failed to update supplier", zap.Error(err), zap.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditUpdateSupplier,
		fmt.Sprintf("updated supplier %s", supplier.Name), nil, nil)

	resp := response.SupplierToResponse(supplier)
	return &resp, nil
}

func (s *supplierService) Delete(ctx context.Context, actorID, supplierID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	supplierUUID, err := uuid.Parse(supplierID)
	if err != nil {
		return fmt.Errorf("invalid supplier ID format %s: %w", supplierID, err)
	}

	supplier, err := s.repo.Supplier.FindByID(ctx, supplierUUID)
	if err != nil {
		s.log.Error("Failed to load supplier", zap.Error(err), zap.String("supplier_id", supplierID))
		return fmt.Errorf("failed to load supplier")
	}
	if supplier == nil {
		return fmt.Errorf("supplier %s not found", supplierID)
	}

	if supplier.Name == entity.DefaultSupplierName {
		return fmt.Errorf("cannot delete the default supplier")
	}

	bookingCount, err := s.repo.Participant.CountBySupplierID(ctx, supplierUUID)
	if err != nil {
		s.log.Error("Failed to count supplier bookings", zap.Error(err), zap.String("supplier_id", supplierID))
		return fmt.Errorf("failed to check supplier bookings")
	}
	if bookingCount > 0 {
		return fmt.Errorf("cannot delete supplier %s: %d bookings reference it", supplier.Name, bookingCount)
	}

	if err := s.repo.Supplier.Delete(ctx, supplierUUID); err != nil {
		s.log.Error("Failed to delete supplier", zap.Error(err), zap.String("supplier_id", supplierID))
		return fmt.Errorf("failed to delete supplier")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditDeleteSupplier,
		fmt.Sprintf("deleted supplier %s", supplier.Name), nil, nil)

	return nil
}
