package usecase

import (
	"context"
	"testing"
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/internal/dto/request"
	"corfumania-backoffice/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(repo *repository.Repository) AuthService {
	config := &utils.Config{Session: utils.SessionConfig{
		TTLHours:       24,
		TempTTLMinutes: 30,
	}}
	return NewAuthService(repo, config, zap.NewNop())
}

func authUser(t *testing.T, password string, mustChange bool) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		Base:               entity.Base{ID: uuid.New()},
		Email:              "maria@corfumania.gr",
		PasswordHash:       hash,
		FirstName:          "Maria",
		LastName:           "Rossi",
		Role:               entity.RoleUser,
		MustChangePassword: mustChange,
		IsActive:           true,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials get a full-length session", func(t *testing.T) {
		repo := newTestRepository()
		user := authUser(t, "s3cret-pass", false)
		repo.User.(*mockUserRepo).FindByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		}

		var stored *entity.Session
		repo.Session.(*mockSessionRepo).CreateFn = func(ctx context.Context, s *entity.Session) error {
			stored = s
			return nil
		}

		resp, session, err := newAuthService(repo).Login(ctx, &request.LoginRequest{
			Email:    user.Email,
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		require.NotNil(t, session)
		require.NotNil(t, stored)
		assert.Equal(t, user.ID, session.UserID)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
		assert.Equal(t, user.Email, resp.User.Email)
	})

	t.Run("a pending password change shortens the session", func(t *testing.T) {
		repo := newTestRepository()
		user := authUser(t, "s3cret-pass", true)
		repo.User.(*mockUserRepo).FindByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		}

		_, session, err := newAuthService(repo).Login(ctx, &request.LoginRequest{
			Email:    user.Email,
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), session.ExpiresAt, time.Minute)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		repo := newTestRepository()
		user := authUser(t, "s3cret-pass", false)
		repo.User.(*mockUserRepo).FindByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		}

		_, _, err := newAuthService(repo).Login(ctx, &request.LoginRequest{
			Email:    user.Email,
			Password: "wrong-pass",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("unknown email fails the same way", func(t *testing.T) {
		repo := newTestRepository()
		_, _, err := newAuthService(repo).Login(ctx, &request.LoginRequest{
			Email:    "nobody@corfumania.gr",
			Password: "whatever1",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("disabled account cannot log in", func(t *testing.T) {
		repo := newTestRepository()
		user := authUser(t, "s3cret-pass", false)
		user.IsActive = false
		repo.User.(*mockUserRepo).FindByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		}

		_, _, err := newAuthService(repo).Login(ctx, &request.LoginRequest{
			Email:    user.Email,
			Password: "s3cret-pass",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disabled")
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	repo := newTestRepository()
	user := authUser(t, "old-password", true)
	repo.User.(*mockUserRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return user, nil
	}

	var savedUser *entity.User
	repo.User.(*mockUserRepo).UpdateFn = func(ctx context.Context, u *entity.User) error {
		savedUser = u
		return nil
	}

	revoked := false
	repo.Session.(*mockSessionRepo).RevokeAllUserSessionsFn = func(ctx context.Context, userID uuid.UUID) error {
		revoked = true
		assert.Equal(t, user.ID, userID)
		return nil
	}

	resp, session, err := newAuthService(repo).ChangePassword(ctx, user.ID.String(), uuid.NewString(),
		&request.ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "brand-new-password",
		})
	require.NoError(t, err)
	require.NotNil(t, savedUser)

	assert.True(t, revoked)
	assert.False(t, savedUser.MustChangePassword)
	assert.True(t, utils.CheckPassword(savedUser.PasswordHash, "brand-new-password"))

	// The flag is cleared, so the replacement session runs at full length.
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
	assert.Equal(t, user.Email, resp.User.Email)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	repo := newTestRepository()
	user := authUser(t, "old-password", false)
	repo.User.(*mockUserRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return user, nil
	}
	repo.User.(*mockUserRepo).UpdateFn = func(ctx context.Context, u *entity.User) error {
		t.Fatal("must not store a password change with the wrong current password")
		return nil
	}

	_, _, err := newAuthService(repo).ChangePassword(context.Background(), user.ID.String(), uuid.NewString(),
		&request.ChangePasswordRequest{
			CurrentPassword: "guess",
			NewPassword:     "brand-new-password",
		})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current password is incorrect")
}
