package usecase

import (
	"context"
	"testing"

	"corfumania-backoffice/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSupplierEnsureDefault(t *testing.T) {
	t.Run("seeds the house supplier when missing", func(t *testing.T) {
		repo := newTestRepository()

		var created *entity.Supplier
		repo.Supplier.(*mockSupplierRepo).CreateFn = func(ctx context.Context, s *entity.Supplier) error {
			created = s
			return nil
		}

		svc := NewSupplierService(repo, zap.NewNop())
		require.NoError(t, svc.EnsureDefault(context.Background()))
		require.NotNil(t, created)
		assert.Equal(t, entity.DefaultSupplierName, created.Name)
	})

	t.Run("does nothing when already seeded", func(t *testing.T) {
		repo := newTestRepository()
		repo.Supplier.(*mockSupplierRepo).FindByNameFn = func(ctx context.Context, name string) (*entity.Supplier, error) {
			return &entity.Supplier{Name: name}, nil
		}
		repo.Supplier.(*mockSupplierRepo).CreateFn = func(ctx context.Context, s *entity.Supplier) error {
			t.Fatal("must not reseed an existing default supplier")
			return nil
		}

		svc := NewSupplierService(repo, zap.NewNop())
		require.NoError(t, svc.EnsureDefault(context.Background()))
	})
}

func TestSupplierDeleteGuards(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New().String()

	t.Run("the default supplier is protected", func(t *testing.T) {
		repo := newTestRepository()
		repo.Supplier.(*mockSupplierRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
			return &entity.Supplier{Base: entity.Base{ID: id}, Name: entity.DefaultSupplierName}, nil
		}

		svc := NewSupplierService(repo, zap.NewNop())
		err := svc.Delete(ctx, actor, uuid.New().String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot delete the default supplier")
	})

	t.Run("a supplier with bookings is protected", func(t *testing.T) {
		repo := newTestRepository()
		repo.Supplier.(*mockSupplierRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
			return &entity.Supplier{Base: entity.Base{ID: id}, Name: "Blue Lagoon Cruises"}, nil
		}
		repo.Participant.(*mockParticipantRepo).CountBySupplierIDFn = func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 7, nil
		}

		svc := NewSupplierService(repo, zap.NewNop())
		err := svc.Delete(ctx, actor, uuid.New().String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot delete supplier")
	})

	t.Run("an unused supplier can go", func(t *testing.T) {
		repo := newTestRepository()
		repo.Supplier.(*mockSupplierRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
			return &entity.Supplier{Base: entity.Base{ID: id}, Name: "Blue Lagoon Cruises"}, nil
		}

		deleted := false
		repo.Supplier.(*mockSupplierRepo).DeleteFn = func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		}

		svc := NewSupplierService(repo, zap.NewNop())
		require.NoError(t, svc.Delete(ctx, actor, uuid.New().String()))
		assert.True(t, deleted)
	})
}
