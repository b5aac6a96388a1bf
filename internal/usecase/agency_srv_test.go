package usecase

import (
	"context"
	"testing"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAgencyCreateRejectsDuplicateName(t *testing.T) {
	repo := newTestRepository()
	repo.Agency.(*mockAgencyRepo).FindByNameFn = func(ctx context.Context, name string) (*entity.Agency, error) {
		return &entity.Agency{Name: name}, nil
	}

	svc := NewAgencyService(repo, zap.NewNop())
	_, err := svc.Create(context.Background(), uuid.New().String(), &request.CreateAgencyRequest{
		Name:              "Ionian Tours",
		DefaultCommission: 10,
		CommissionType:    "PERCENTAGE",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAgencyCreateStoresCommissionConfig(t *testing.T) {
	repo := newTestRepository()

	var created *entity.Agency
	repo.Agency.(*mockAgencyRepo).CreateFn = func(ctx context.Context, a *entity.Agency) error {
		created = a
		return nil
	}

	svc := NewAgencyService(repo, zap.NewNop())
	resp, err := svc.Create(context.Background(), uuid.New().String(), &request.CreateAgencyRequest{
		Name:              "Kerkyra Travel",
		DefaultCommission: 2.5,
		CommissionType:    "FIXED",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 2.5, created.DefaultCommission)
	assert.Equal(t, entity.CommissionFixed, created.CommissionType)
	assert.Equal(t, "Kerkyra Travel", resp.Name)
}

func TestAgencyDeleteGuardedByUsers(t *testing.T) {
	repo := newTestRepository()
	agencyID := uuid.New()

	repo.Agency.(*mockAgencyRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Agency, error) {
		return &entity.Agency{Base: entity.Base{ID: agencyID}, Name: "Ionian Tours"}, nil
	}
	repo.User.(*mockUserRepo).CountByAgencyIDFn = func(ctx context.Context, id uuid.UUID) (int64, error) {
		return 3, nil
	}

	svc := NewAgencyService(repo, zap.NewNop())
	err := svc.Delete(context.Background(), uuid.New().String(), agencyID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete agency")

	repo.User.(*mockUserRepo).CountByAgencyIDFn = func(ctx context.Context, id uuid.UUID) (int64, error) {
		return 0, nil
	}
	require.NoError(t, svc.Delete(context.Background(), uuid.New().String(), agencyID.String()))
}
