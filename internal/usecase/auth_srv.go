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

type AuthService interface {
	// Login returns the response and the session whose token goes into the
	// cookie. The session is short-lived while a password change is pending.
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, *entity.Session, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID string, token string, req *request.ChangePasswordRequest) (*response.LoginResponse, *entity.Session, error)
	Me(ctx context.Context, userID string) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, *entity.Session, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to look up user", zap.Error(err), zap.String("email", req.Email))
		return nil, nil, fmt.Errorf("failed to check credentials")
	}

	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, nil, fmt.Errorf("invalid email or password")
	}

	if !user.IsActive {
		return nil, nil, fmt.Errorf("account is disabled")
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		s.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", user.ID.String()))
		return nil, nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.Bool("must_change_password", user.MustChangePassword))

	return &response.LoginResponse{
		User:      response.UserToResponse(user),
		ExpiresAt: session.ExpiresAt,
	}, session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Warn("Failed to revoke session on logout", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, token string, req *request.ChangePasswordRequest) (*response.LoginResponse, *entity.Session, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil || user == nil {
		return nil, nil, fmt.Errorf("user not found")
	}

	if !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return nil, nil, fmt.Errorf("current password is incorrect")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to process password")
	}

	user.PasswordHash = hashed
	user.MustChangePassword = false
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("user_id", user.ID.String()))
		return nil, nil, fmt.Errorf("failed to update password")
	}

	// Old sessions die with the old password.
	if err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID); err != nil {
		s.log.Warn("Failed to revoke old sessions", zap.Error(err))
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		s.log.Error("Failed to create session after password change", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to create session")
	}

	recordAudit(ctx, s.repo, s.log, user.ID, auditChangePassword, "password changed", nil, nil)

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))

	return &response.LoginResponse{
		User:      response.UserToResponse(user),
		ExpiresAt: session.ExpiresAt,
	}, session, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*response.UserResponse, error) {
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
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) createSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	ttl := time.Duration(s.config.Session.TTLHours) * time.Hour
	if user.MustChangePassword {
		ttl = time.Duration(s.config.Session.TempTTLMinutes) * time.Minute
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(ttl),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
