package usecase

import (
	"context"
	"testing"
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExcursionListSweepsExpiredBookings(t *testing.T) {
	repo := newTestRepository()

	swept := false
	repo.Participant.(*mockParticipantRepo).ExpireExcursionParticipantsFn = func(ctx context.Context, now time.Time) (int64, error) {
		swept = true
		assert.WithinDuration(t, time.Now(), now, time.Minute)
		return 3, nil
	}

	svc := NewExcursionService(repo, zap.NewNop())
	_, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, swept)
}

func TestExcursionCreateExpandsRecurrence(t *testing.T) {
	repo := newTestRepository()

	var created []*entity.Excursion
	repo.Excursion.(*mockExcursionRepo).CreateFn = func(ctx context.Context, e *entity.Excursion) error {
		created = append(created, e)
		return nil
	}

	agencyID := uuid.New()
	var replaced int
	repo.AgencyCommission.(*mockAgencyCommissionRepo).ReplaceForExcursionFn = func(ctx context.Context, excursionID uuid.UUID, commissions []*entity.AgencyCommission) error {
		replaced++
		require.Len(t, commissions, 1)
		assert.Equal(t, agencyID, commissions[0].AgencyID)
		require.NotNil(t, commissions[0].ExcursionID)
		assert.Equal(t, excursionID, *commissions[0].ExcursionID)
		assert.False(t, commissions[0].CreatedAt.IsZero())
		return nil
	}

	svc := NewExcursionService(repo, zap.NewNop())
	responses, err := svc.Create(context.Background(), uuid.New().String(), &request.CreateExcursionRequest{
		Title:      "Paxos Cruise",
		StartDate:  "2026-06-01T09:00",
		EndDate:    "2026-06-01T17:00",
		PriceAdult: 50,
		PriceChild: 20,
		AgencyCommissions: []request.AgencyCommissionInput{{
			AgencyID:        agencyID.String(),
			CommissionValue: 10,
			CommissionType:  "PERCENTAGE",
		}},
		Recurrence: &request.RecurrenceRule{
			Frequency: "DAILY",
			EndDate:   "2026-06-05",
		},
	})
	require.NoError(t, err)

	// Base day plus four more, each with its own commission copy.
	assert.Len(t, responses, 5)
	assert.Len(t, created, 5)
	assert.Equal(t, 5, replaced)
	for i, e := range created {
		assert.Equal(t, 8*time.Hour, e.EndDate.Sub(e.StartDate))
		assert.Equal(t, created[0].StartDate.AddDate(0, 0, i), e.StartDate)
	}
}

func TestExcursionCreateRejectsBadDates(t *testing.T) {
	svc := NewExcursionService(newTestRepository(), zap.NewNop())
	ctx := context.Background()
	actor := uuid.New().String()

	_, err := svc.Create(ctx, actor, &request.CreateExcursionRequest{
		Title:     "Backwards",
		StartDate: "2026-06-02T09:00",
		EndDate:   "2026-06-01T17:00",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end date must not be before start date")

	_, err = svc.Create(ctx, actor, &request.CreateExcursionRequest{
		Title:                "Late deadline",
		StartDate:            "2026-06-01T09:00",
		EndDate:              "2026-06-01T17:00",
		ConfirmationDeadline: strPtr("2026-06-02T09:00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confirmation deadline must not be after the start date")
}

func excursionUpdateFixture(t *testing.T) (*mockExcursionRepo, *mockParticipantRepo, ExcursionService, uuid.UUID) {
	t.Helper()
	repo := newTestRepository()
	excursionID := uuid.New()

	excursions := repo.Excursion.(*mockExcursionRepo)
	excursions.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Excursion, error) {
		if id != excursionID {
			return nil, nil
		}
		start := time.Now().AddDate(0, 1, 0)
		end := start.Add(8 * time.Hour)
		return &entity.Excursion{
			Base:      entity.Base{ID: excursionID},
			Title:     "Paxos Cruise",
			StartDate: start,
			EndDate:   end,
		}, nil
	}

	return excursions, repo.Participant.(*mockParticipantRepo), NewExcursionService(repo, zap.NewNop()), excursionID
}

func TestExcursionUpdateFutureDeadlineReactivates(t *testing.T) {
	_, participants, svc, excursionID := excursionUpdateFixture(t)

	reactivated := false
	participants.ReactivateByExcursionIDFn = func(ctx context.Context, id uuid.UUID) error {
		reactivated = true
		assert.Equal(t, excursionID, id)
		return nil
	}

	futureDeadline := time.Now().AddDate(0, 0, 7).Format("2006-01-02T15:04")
	_, err := svc.Update(context.Background(), uuid.New().String(), excursionID.String(),
		&request.UpdateExcursionRequest{ConfirmationDeadline: &futureDeadline})
	require.NoError(t, err)
	assert.True(t, reactivated)
}

func TestExcursionUpdatePastDeadlineDoesNotReactivate(t *testing.T) {
	excursions, participants, svc, excursionID := excursionUpdateFixture(t)

	// Start date in the past so a past deadline passes validation.
	excursions.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Excursion, error) {
		start := time.Now().AddDate(0, 0, -1)
		return &entity.Excursion{
			Base:      entity.Base{ID: excursionID},
			Title:     "Paxos Cruise",
			StartDate: start,
			EndDate:   start.Add(8 * time.Hour),
		}, nil
	}
	participants.ReactivateByExcursionIDFn = func(ctx context.Context, id uuid.UUID) error {
		t.Fatal("a past deadline must not reactivate bookings")
		return nil
	}

	pastDeadline := time.Now().AddDate(0, 0, -3).Format("2006-01-02T15:04")
	_, err := svc.Update(context.Background(), uuid.New().String(), excursionID.String(),
		&request.UpdateExcursionRequest{ConfirmationDeadline: &pastDeadline})
	require.NoError(t, err)
}

func TestExcursionDeleteGuardedByBookings(t *testing.T) {
	_, participants, svc, excursionID := excursionUpdateFixture(t)
	ctx := context.Background()
	actor := uuid.New().String()

	participants.CountByExcursionIDFn = func(ctx context.Context, id uuid.UUID) (int64, error) {
		return 4, nil
	}
	err := svc.Delete(ctx, actor, excursionID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete excursion")

	participants.CountByExcursionIDFn = func(ctx context.Context, id uuid.UUID) (int64, error) {
		return 0, nil
	}
	require.NoError(t, svc.Delete(ctx, actor, excursionID.String()))
}
