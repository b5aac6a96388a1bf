package usecase

import (
	"context"
	"testing"
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/dto/request"
	"corfumania-backoffice/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTransferListSweepsAtStartOfDay(t *testing.T) {
	repo := newTestRepository()

	var cutoff time.Time
	repo.Participant.(*mockParticipantRepo).ExpireTransferParticipantsFn = func(ctx context.Context, startOfToday time.Time) (int64, error) {
		cutoff = startOfToday
		return 0, nil
	}

	svc := NewTransferService(repo, zap.NewNop())
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	// A transfer running today is still active, so the sweep cuts at midnight.
	assert.Equal(t, utils.StartOfDay(time.Now()), cutoff)
}

func transferUpdateFixture(t *testing.T) (*mockParticipantRepo, TransferService, uuid.UUID) {
	t.Helper()
	repo := newTestRepository()
	transferID := uuid.New()

	repo.Transfer.(*mockTransferRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Transfer, error) {
		if id != transferID {
			return nil, nil
		}
		return &entity.Transfer{
			Base:        entity.Base{ID: transferID},
			Title:       "Airport Shuttle",
			Date:        time.Now().AddDate(0, 0, -10),
			Origin:      "Airport",
			Destination: "Acharavi",
		}, nil
	}

	return repo.Participant.(*mockParticipantRepo), NewTransferService(repo, zap.NewNop()), transferID
}

func TestTransferUpdateFutureDateReactivates(t *testing.T) {
	participants, svc, transferID := transferUpdateFixture(t)

	reactivated := false
	participants.ReactivateByTransferIDFn = func(ctx context.Context, id uuid.UUID) error {
		reactivated = true
		assert.Equal(t, transferID, id)
		return nil
	}

	futureDate := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	_, err := svc.Update(context.Background(), uuid.New().String(), transferID.String(),
		&request.UpdateTransferRequest{Date: &futureDate})
	require.NoError(t, err)
	assert.True(t, reactivated)
}

func TestTransferUpdatePastDateDoesNotReactivate(t *testing.T) {
	participants, svc, transferID := transferUpdateFixture(t)

	participants.ReactivateByTransferIDFn = func(ctx context.Context, id uuid.UUID) error {
		t.Fatal("a past date must not reactivate passengers")
		return nil
	}

	pastDate := time.Now().AddDate(0, 0, -5).Format("2006-01-02")
	_, err := svc.Update(context.Background(), uuid.New().String(), transferID.String(),
		&request.UpdateTransferRequest{Date: &pastDate})
	require.NoError(t, err)
}

func TestTransferDeleteGuardedByPassengers(t *testing.T) {
	participants, svc, transferID := transferUpdateFixture(t)
	ctx := context.Background()
	actor := uuid.New().String()

	participants.CountByTransferIDFn = func(ctx context.Context, id uuid.UUID) (int64, error) {
		return 2, nil
	}
	err := svc.Delete(ctx, actor, transferID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete transfer")

	participants.CountByTransferIDFn = func(ctx context.Context, id uuid.UUID) (int64, error) {
		return 0, nil
	}
	require.NoError(t, svc.Delete(ctx, actor, transferID.String()))
}

func TestTransferCreateExpandsRecurrence(t *testing.T) {
	repo := newTestRepository()

	var created []*entity.Transfer
	repo.Transfer.(*mockTransferRepo).CreateFn = func(ctx context.Context, tr *entity.Transfer) error {
		created = append(created, tr)
		return nil
	}

	svc := NewTransferService(repo, zap.NewNop())
	responses, err := svc.Create(context.Background(), uuid.New().String(), &request.CreateTransferRequest{
		Title:       "Airport Shuttle",
		Date:        "2026-06-01",
		Origin:      "Airport",
		Destination: "Acharavi",
		Price:       30,
		Recurrence: &request.RecurrenceRule{
			Frequency: "WEEKLY",
			Days:      []int{1},
			EndDate:   "2026-06-30",
		},
	})
	require.NoError(t, err)

	// Mondays June 1 through June 29.
	assert.Len(t, responses, 5)
	require.Len(t, created, 5)
	for _, tr := range created {
		assert.Equal(t, time.Monday, tr.Date.Weekday())
	}
}
