package usecase

import (
	"context"
	"testing"
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/internal/data/repository"
	"corfumania-backoffice/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string            { return &s }
func floatPtr(f float64) *float64        { return &f }
func intPtr(i int) *int                  { return &i }
func uuidStrPtr(id uuid.UUID) *string    { s := id.String(); return &s }

type bookingFixture struct {
	repo        *repository.Repository
	svc         BookingService
	creatorID   uuid.UUID
	agencyID    uuid.UUID
	excursionID uuid.UUID
}

// newBookingFixture wires a regular staff user with an agency and one
// excursion listing adults at 50 and children at 20.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		repo:        newTestRepository(),
		creatorID:   uuid.New(),
		agencyID:    uuid.New(),
		excursionID: uuid.New(),
	}

	f.repo.User.(*mockUserRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		if id != f.creatorID {
			return nil, nil
		}
		return &entity.User{
			Base:     entity.Base{ID: f.creatorID},
			Role:     entity.RoleUser,
			AgencyID: &f.agencyID,
		}, nil
	}
	f.repo.Excursion.(*mockExcursionRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Excursion, error) {
		if id != f.excursionID {
			return nil, nil
		}
		return &entity.Excursion{
			Base:       entity.Base{ID: f.excursionID},
			Title:      "Paxos Cruise",
			PriceAdult: 50,
			PriceChild: 20,
		}, nil
	}

	f.svc = NewBookingService(f.repo, zap.NewNop())
	return f
}

func (f *bookingFixture) admin() {
	f.repo.User.(*mockUserRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return &entity.User{Base: entity.Base{ID: f.creatorID}, Role: entity.RoleAdmin}, nil
	}
}

func validExcursionBooking(f *bookingFixture) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		FirstName:   "Anna",
		LastName:    "Bianchi",
		ExcursionID: uuidStrPtr(f.excursionID),
		Price:       120,
		Deposit:     30,
		Adults:      2,
		Children:    1,
		PaymentType: "DEPOSIT",
	}
}

func TestBookingCreateRequiresSingleLinkage(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req := validExcursionBooking(f)
	req.TransferID = uuidStrPtr(uuid.New())
	_, err := f.svc.Create(ctx, f.creatorID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	req = validExcursionBooking(f)
	req.ExcursionID = nil
	_, err = f.svc.Create(ctx, f.creatorID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestBookingCreateAtListPrice(t *testing.T) {
	f := newBookingFixture(t)

	var created *entity.Participant
	f.repo.Participant.(*mockParticipantRepo).CreateFn = func(ctx context.Context, p *entity.Participant) error {
		created = p
		return nil
	}

	resp, err := f.svc.Create(context.Background(), f.creatorID.String(), validExcursionBooking(f))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, entity.ApprovalApproved, created.ApprovalStatus)
	assert.Nil(t, created.OriginalPrice)
	assert.Equal(t, 3, created.GroupSize)
	require.NotNil(t, created.AgencyID)
	assert.Equal(t, f.agencyID, *created.AgencyID)
	assert.Equal(t, f.creatorID, created.CreatedByID)
	assert.Equal(t, string(entity.ApprovalApproved), string(resp.ApprovalStatus))
}

func TestBookingCreateUnderpricedGoesPending(t *testing.T) {
	f := newBookingFixture(t)

	var created *entity.Participant
	f.repo.Participant.(*mockParticipantRepo).CreateFn = func(ctx context.Context, p *entity.Participant) error {
		created = p
		return nil
	}

	req := validExcursionBooking(f)
	req.Price = 100
	_, err := f.svc.Create(context.Background(), f.creatorID.String(), req)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, entity.ApprovalPending, created.ApprovalStatus)
	require.NotNil(t, created.OriginalPrice)
	assert.Equal(t, 120.0, *created.OriginalPrice)
	assert.Equal(t, 100.0, created.Price)
}

func TestBookingCreateOverpricedFails(t *testing.T) {
	f := newBookingFixture(t)

	req := validExcursionBooking(f)
	req.Price = 150
	_, err := f.svc.Create(context.Background(), f.creatorID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the list price")
}

func TestBookingCreateAdminBypassesGate(t *testing.T) {
	f := newBookingFixture(t)
	f.admin()

	var created *entity.Participant
	f.repo.Participant.(*mockParticipantRepo).CreateFn = func(ctx context.Context, p *entity.Participant) error {
		created = p
		return nil
	}

	req := validExcursionBooking(f)
	req.Price = 150
	_, err := f.svc.Create(context.Background(), f.creatorID.String(), req)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.ApprovalApproved, created.ApprovalStatus)
	assert.Nil(t, created.OriginalPrice)
}

func TestBookingCreateRespectsCapacity(t *testing.T) {
	f := newBookingFixture(t)
	max := 10

	f.repo.Excursion.(*mockExcursionRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Excursion, error) {
		return &entity.Excursion{
			Base:            entity.Base{ID: f.excursionID},
			Title:           "Paxos Cruise",
			PriceAdult:      50,
			PriceChild:      20,
			MaxParticipants: &max,
		}, nil
	}
	f.repo.Participant.(*mockParticipantRepo).FindByExcursionIDFn = func(ctx context.Context, id uuid.UUID) ([]*entity.Participant, error) {
		active := booking(100, 50, 5, entity.PaymentDeposit, entity.ApprovalApproved)
		expired := booking(100, 50, 5, entity.PaymentDeposit, entity.ApprovalApproved)
		expired.IsExpired = true
		refunded := booking(100, 0, 5, entity.PaymentRefunded, entity.ApprovalApproved)
		rejected := booking(100, 50, 5, entity.PaymentDeposit, entity.ApprovalRejected)
		return []*entity.Participant{active, expired, refunded, rejected}, nil
	}

	// 5 active seats taken; 3 more fit, 6 do not.
	req := validExcursionBooking(f)
	_, err := f.svc.Create(context.Background(), f.creatorID.String(), req)
	require.NoError(t, err)

	req = validExcursionBooking(f)
	req.Adults = 5
	req.Children = 1
	req.Price = 270
	_, err = f.svc.Create(context.Background(), f.creatorID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is full")
}

func TestBookingCreateDepositAbovePriceFails(t *testing.T) {
	f := newBookingFixture(t)

	req := validExcursionBooking(f)
	req.Deposit = 200
	_, err := f.svc.Create(context.Background(), f.creatorID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deposit")
}

func TestBookingCreateRentalNeedsItemAndStart(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req := validExcursionBooking(f)
	req.ExcursionID = nil
	req.IsRental = true
	_, err := f.svc.Create(ctx, f.creatorID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rental booking needs")

	var created *entity.Participant
	f.repo.Participant.(*mockParticipantRepo).CreateFn = func(ctx context.Context, p *entity.Participant) error {
		created = p
		return nil
	}

	req.RentalItem = strPtr("Scooter")
	req.RentalStartDate = strPtr("2026-07-01")
	req.RentalEndDate = strPtr("2026-07-05")
	_, err = f.svc.Create(ctx, f.creatorID.String(), req)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsRental)
	assert.Equal(t, "Scooter", *created.RentalItem)

	req.RentalEndDate = strPtr("2026-06-01")
	_, err = f.svc.Create(ctx, f.creatorID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end date must not be before")
}

func TestBookingCreateUpsertsClient(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	t.Run("new client is created", func(t *testing.T) {
		var createdClient *entity.Client
		f.repo.Client.(*mockClientRepo).CreateFn = func(ctx context.Context, c *entity.Client) error {
			createdClient = c
			return nil
		}

		req := validExcursionBooking(f)
		req.ClientEmail = strPtr("anna@example.com")
		req.ClientPhone = strPtr("+30 123456")
		_, err := f.svc.Create(ctx, f.creatorID.String(), req)
		require.NoError(t, err)
		require.NotNil(t, createdClient)
		assert.Equal(t, "anna@example.com", createdClient.Email)
		assert.Equal(t, "Anna", createdClient.FirstName)
	})

	t.Run("existing client is refreshed, not duplicated", func(t *testing.T) {
		existingID := uuid.New()
		f.repo.Client.(*mockClientRepo).FindByEmailFn = func(ctx context.Context, email string) (*entity.Client, error) {
			return &entity.Client{
				Base:      entity.Base{ID: existingID},
				Email:     email,
				FirstName: "Old",
				LastName:  "Name",
			}, nil
		}
		f.repo.Client.(*mockClientRepo).CreateFn = func(ctx context.Context, c *entity.Client) error {
			t.Fatal("must not create a second client for a known email")
			return nil
		}
		var updated *entity.Client
		f.repo.Client.(*mockClientRepo).UpdateFn = func(ctx context.Context, c *entity.Client) error {
			updated = c
			return nil
		}
		var createdBooking *entity.Participant
		f.repo.Participant.(*mockParticipantRepo).CreateFn = func(ctx context.Context, p *entity.Participant) error {
			createdBooking = p
			return nil
		}

		req := validExcursionBooking(f)
		req.ClientEmail = strPtr("anna@example.com")
		_, err := f.svc.Create(ctx, f.creatorID.String(), req)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Anna", updated.FirstName)
		require.NotNil(t, createdBooking.ClientID)
		assert.Equal(t, existingID, *createdBooking.ClientID)
	})
}

func storedBooking(f *bookingFixture, p *entity.Participant) {
	f.repo.Participant.(*mockParticipantRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
		if id == p.ID {
			return p, nil
		}
		return nil, nil
	}
}

func TestBookingUpdateReentersApprovalGate(t *testing.T) {
	f := newBookingFixture(t)

	p := booking(120, 30, 3, entity.PaymentDeposit, entity.ApprovalApproved)
	p.ID = uuid.New()
	p.Adults = 2
	p.Children = 1
	p.ExcursionID = &f.excursionID
	p.CreatedByID = f.creatorID
	storedBooking(f, p)

	var saved *entity.Participant
	f.repo.Participant.(*mockParticipantRepo).UpdateFn = func(ctx context.Context, up *entity.Participant) error {
		saved = up
		return nil
	}

	_, err := f.svc.Update(context.Background(), f.creatorID.String(), p.ID.String(),
		&request.UpdateBookingRequest{Price: floatPtr(90)})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, entity.ApprovalPending, saved.ApprovalStatus)
	require.NotNil(t, saved.OriginalPrice)
	assert.Equal(t, 120.0, *saved.OriginalPrice)
}

func TestBookingUpdateHeadCountRecomputesGroupSize(t *testing.T) {
	f := newBookingFixture(t)
	f.admin()

	p := booking(120, 30, 3, entity.PaymentDeposit, entity.ApprovalApproved)
	p.ID = uuid.New()
	p.Adults = 2
	p.Children = 1
	p.ExcursionID = &f.excursionID
	storedBooking(f, p)

	var saved *entity.Participant
	f.repo.Participant.(*mockParticipantRepo).UpdateFn = func(ctx context.Context, up *entity.Participant) error {
		saved = up
		return nil
	}

	_, err := f.svc.Update(context.Background(), f.creatorID.String(), p.ID.String(),
		&request.UpdateBookingRequest{Adults: intPtr(3)})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 4, saved.GroupSize)
}

func TestBookingRefund(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	newStored := func() *entity.Participant {
		p := booking(100, 40, 2, entity.PaymentDeposit, entity.ApprovalApproved)
		p.ID = uuid.New()
		storedBooking(f, p)
		return p
	}

	t.Run("full refund zeroes the deposit", func(t *testing.T) {
		p := newStored()
		resp, err := f.svc.Refund(ctx, f.creatorID.String(), p.ID.String(), &request.RefundRequest{})
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentRefunded, p.PaymentType)
		assert.Equal(t, 0.0, p.Deposit)
		assert.NotNil(t, resp)
	})

	t.Run("partial refund keeps the retained amount", func(t *testing.T) {
		p := newStored()
		_, err := f.svc.Refund(ctx, f.creatorID.String(), p.ID.String(),
			&request.RefundRequest{RetainedDeposit: floatPtr(60)})
		require.NoError(t, err)
		assert.Equal(t, 60.0, p.Deposit)
	})

	t.Run("retained amount must stay below the price", func(t *testing.T) {
		p := newStored()
		_, err := f.svc.Refund(ctx, f.creatorID.String(), p.ID.String(),
			&request.RefundRequest{RetainedDeposit: floatPtr(100)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be below the price")
	})

	t.Run("double refund is rejected", func(t *testing.T) {
		p := newStored()
		p.PaymentType = entity.PaymentRefunded
		_, err := f.svc.Refund(ctx, f.creatorID.String(), p.ID.String(), &request.RefundRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already refunded")
	})
}

func TestBookingDecide(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	pending := func() *entity.Participant {
		p := booking(100, 30, 3, entity.PaymentDeposit, entity.ApprovalPending)
		p.ID = uuid.New()
		p.OriginalPrice = floatPtr(120)
		storedBooking(f, p)
		return p
	}

	t.Run("approve keeps the discounted price", func(t *testing.T) {
		p := pending()
		_, err := f.svc.Decide(ctx, f.creatorID.String(), p.ID.String(),
			&request.ApprovalDecisionRequest{Decision: "APPROVED"})
		require.NoError(t, err)
		assert.Equal(t, entity.ApprovalApproved, p.ApprovalStatus)
		assert.Equal(t, 100.0, p.Price)
	})

	t.Run("approve with restore puts the list price back", func(t *testing.T) {
		p := pending()
		_, err := f.svc.Decide(ctx, f.creatorID.String(), p.ID.String(),
			&request.ApprovalDecisionRequest{Decision: "APPROVED", RestoreListPrice: true})
		require.NoError(t, err)
		assert.Equal(t, entity.ApprovalApproved, p.ApprovalStatus)
		assert.Equal(t, 120.0, p.Price)
	})

	t.Run("reject", func(t *testing.T) {
		p := pending()
		_, err := f.svc.Decide(ctx, f.creatorID.String(), p.ID.String(),
			&request.ApprovalDecisionRequest{Decision: "REJECTED"})
		require.NoError(t, err)
		assert.Equal(t, entity.ApprovalRejected, p.ApprovalStatus)
	})

	t.Run("only pending bookings can be decided", func(t *testing.T) {
		p := pending()
		p.ApprovalStatus = entity.ApprovalApproved
		_, err := f.svc.Decide(ctx, f.creatorID.String(), p.ID.String(),
			&request.ApprovalDecisionRequest{Decision: "APPROVED"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not pending")
	})
}

func TestBookingDeleteGuard(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	owner := f.creatorID
	stranger := uuid.New()
	f.repo.User.(*mockUserRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return &entity.User{Base: entity.Base{ID: id}, Role: entity.RoleUser}, nil
	}

	p := booking(100, 40, 2, entity.PaymentDeposit, entity.ApprovalApproved)
	p.ID = uuid.New()
	p.CreatedByID = owner
	storedBooking(f, p)

	deleted := false
	f.repo.Participant.(*mockParticipantRepo).DeleteFn = func(ctx context.Context, id uuid.UUID) error {
		deleted = true
		return nil
	}

	err := f.svc.Delete(ctx, stranger.String(), p.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only the creator or an admin")
	assert.False(t, deleted)

	require.NoError(t, f.svc.Delete(ctx, owner.String(), p.ID.String()))
	assert.True(t, deleted)

	// An admin may delete someone else's booking.
	deleted = false
	f.repo.User.(*mockUserRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return &entity.User{Base: entity.Base{ID: id}, Role: entity.RoleAdmin}, nil
	}
	require.NoError(t, f.svc.Delete(ctx, stranger.String(), p.ID.String()))
	assert.True(t, deleted)
}

func TestListRentalsSweepsFirst(t *testing.T) {
	f := newBookingFixture(t)

	var sweepCutoff time.Time
	f.repo.Participant.(*mockParticipantRepo).ExpireRentalParticipantsFn = func(ctx context.Context, startOfToday time.Time) (int64, error) {
		sweepCutoff = startOfToday
		return 2, nil
	}
	f.repo.Participant.(*mockParticipantRepo).FindRentalsFn = func(ctx context.Context) ([]*entity.Participant, error) {
		p := booking(45, 45, 1, entity.PaymentBalance, entity.ApprovalApproved)
		p.IsRental = true
		return []*entity.Participant{p}, nil
	}

	rentals, err := f.svc.ListRentals(context.Background())
	require.NoError(t, err)
	assert.Len(t, rentals, 1)

	// Same-day rentals stay active: the cutoff is midnight, not now.
	assert.Equal(t, 0, sweepCutoff.Hour())
	assert.Equal(t, 0, sweepCutoff.Minute())
}
