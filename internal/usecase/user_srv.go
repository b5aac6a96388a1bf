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

type UserService interface {
	Create(ctx context.Context, actorID string, req *request.CreateUserRequest) (*response.CreatedUserResponse, error)
	List(ctx context.Context) ([]response.UserResponse, error)
	Update(ctx context.Context, actorID, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, actorID, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) Create(ctx context.Context, actorID string, req *request.CreateUserRequest) (*response.CreatedUserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	agencyID, err := parseOptionalUUID(req.AgencyID)
	if err != nil {
		return nil, fmt.Errorf("invalid agency ID: %w", err)
	}
	supplierID, err := parseOptionalUUID(req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier ID: %w", err)
	}

	var tempPassword *string
	password := ""
	if req.Password != nil {
		password = *req.Password
	} else {
		generated := utils.GenerateTempPassword(10)
		tempPassword = &generated
		password = generated
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:              req.Email,
		PasswordHash:       hashed,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Code:               req.Code,
		Role:               entity.UserRole(req.Role),
		AgencyID:           agencyID,
		SupplierID:         supplierID,
		MustChangePassword: true,
		IsActive:           true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditCreateUser,
		fmt.Sprintf("created user %s (%s)", user.Email, user.Role), nil, nil)

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return &response.CreatedUserResponse{
		User:         response.UserToResponse(user),
		TempPassword: tempPassword,
	}, nil
}

func (s *userService) List(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}

	return responses, nil
}

func (s *userService) Update(ctx context.Context, actorID, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to load user")
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Code != nil {
		user.Code = req.Code
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.AgencyID != nil {
		agencyID, err := parseOptionalUUID(req.AgencyID)
		if err != nil {
			return nil, fmt.Errorf("invalid agency ID: %w", err)
		}
		user.AgencyID = agencyID
	}
	if req.SupplierID != nil {
		supplierID, err := parseOptionalUUID(req.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("invalid supplier ID: %w", err)
		}
		user.SupplierID = supplierID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditUpdateUser,
		fmt.Sprintf("updated user %s", user.Email), nil, nil)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, actorID, userID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", actorID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if actorUUID == userUUID {
		return fmt.Errorf("cannot delete your own account")
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to load user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to load user")
	}
	if user == nil {
		return fmt.Errorf("user %s not found", userID)
	}

	if err := s.repo.Session.RevokeAllUserSessions(ctx, userUUID); err != nil {
		s.log.Warn("Failed to revoke sessions of deleted user", zap.Error(err))
	}

	if err := s.repo.User.Delete(ctx, userUUID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to delete user")
	}

	recordAudit(ctx, s.repo, s.log, actorUUID, auditDeleteUser,
		fmt.Sprintf("deleted user %s", user.Email), nil, nil)

	return nil
}

func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
