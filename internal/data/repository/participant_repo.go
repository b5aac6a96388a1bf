package repository

import (
	"context"
	"fmt"
	"time"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entity.Participant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error)
	FindByExcursionID(ctx context.Context, excursionID uuid.UUID) ([]*entity.Participant, error)
	FindByTransferID(ctx context.Context, transferID uuid.UUID) ([]*entity.Participant, error)
	FindRentals(ctx context.Context) ([]*entity.Participant, error)
	FindRentalsBetween(ctx context.Context, from, to time.Time) ([]*entity.Participant, error)
	Update(ctx context.Context, participant *entity.Participant) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByExcursionID(ctx context.Context, excursionID uuid.UUID) (int64, error)
	CountByTransferID(ctx context.Context, transferID uuid.UUID) (int64, error)
	CountBySupplierID(ctx context.Context, supplierID uuid.UUID) (int64, error)

	// Expiration sweep. The is_expired = false predicate makes concurrent
	// sweeps idempotent without locking.
	ExpireExcursionParticipants(ctx context.Context, now time.Time) (int64, error)
	ExpireTransferParticipants(ctx context.Context, startOfToday time.Time) (int64, error)
	ExpireRentalParticipants(ctx context.Context, startOfToday time.Time) (int64, error)
	// Reactivation when an event's deadline is pushed into the future.
	ReactivateByExcursionID(ctx context.Context, excursionID uuid.UUID) error
	ReactivateByTransferID(ctx context.Context, transferID uuid.UUID) error
}

type participantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewParticipantRepository(db database.PgxIface, log *zap.Logger) ParticipantRepository {
	return &participantRepository{
		db:  db,
		log: log.With(zap.String("repository", "participant")),
	}
}

const participantColumns = `id, first_name, last_name, nationality, document_number,
       excursion_id, transfer_id, is_rental, rental_item, rental_start_date, rental_end_date,
       price, deposit, tax, commission_percentage, adults, children, group_size,
       payment_type, is_option, is_expired, approval_status, original_price,
       client_id, created_by_id, agency_id, created_at, updated_at`

func scanParticipant(row pgx.Row) (*entity.Participant, error) {
	var p entity.Participant
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Nationality,
		&p.DocumentNumber,
		&p.ExcursionID,
		&p.TransferID,
		&p.IsRental,
		&p.RentalItem,
		&p.RentalStartDate,
		&p.RentalEndDate,
		&p.Price,
		&p.Deposit,
		&p.Tax,
		&p.CommissionPercentage,
		&p.Adults,
		&p.Children,
		&p.GroupSize,
		&p.PaymentType,
		&p.IsOption,
		&p.IsExpired,
		&p.ApprovalStatus,
		&p.OriginalPrice,
		&p.ClientID,
		&p.CreatedByID,
		&p.AgencyID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) Create(ctx context.Context, participant *entity.Participant) error {
	query := `
		INSERT INTO participants (id, first_name, last_name, nationality, document_number,
		                          excursion_id, transfer_id, is_rental, rental_item,
		                          rental_start_date, rental_end_date, price, deposit, tax,
		                          commission_percentage, adults, children, group_size,
		                          payment_type, is_option, is_expired, approval_status,
		                          original_price, client_id, created_by_id, agency_id,
		                          created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`

	_, err := r.db.Exec(ctx, query,
		participant.ID,
		participant.FirstName,
		participant.LastName,
		participant.Nationality,
		participant.DocumentNumber,
		participant.ExcursionID,
		participant.TransferID,
		participant.IsRental,
		participant.RentalItem,
		participant.RentalStartDate,
		participant.RentalEndDate,
		participant.Price,
		participant.Deposit,
		participant.Tax,
		participant.CommissionPercentage,
		participant.Adults,
		participant.Children,
		participant.GroupSize,
		participant.PaymentType,
		participant.IsOption,
		participant.IsExpired,
		participant.ApprovalStatus,
		participant.OriginalPrice,
		participant.ClientID,
		participant.CreatedByID,
		participant.AgencyID,
		participant.CreatedAt,
		participant.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create participant",
			zap.Error(err),
			zap.String("name", participant.FullName()),
		)
		return fmt.Errorf("create participant %s: %w", participant.FullName(), err)
	}

	return nil
}

func (r *participantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`

	participant, err := scanParticipant(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find participant by ID",
			zap.Error(err),
			zap.String("participant_id", id.String()),
		)
		return nil, fmt.Errorf("find participant by ID %s: %w", id.String(), err)
	}

	return participant, nil
}

func (r *participantRepository) FindByExcursionID(ctx context.Context, excursionID uuid.UUID) ([]*entity.Participant, error) {
	query := `SELECT ` + participantColumns + `
		FROM participants
		WHERE excursion_id = $1
		ORDER BY created_at`

	return r.queryParticipants(ctx, query, excursionID)
}

func (r *participantRepository) FindByTransferID(ctx context.Context, transferID uuid.UUID) ([]*entity.Participant, error) {
	query := `SELECT ` + participantColumns + `
		FROM participants
		WHERE transfer_id = $1
		ORDER BY created_at`

	return r.queryParticipants(ctx, query, transferID)
}

func (r *participantRepository) FindRentals(ctx context.Context) ([]*entity.Participant, error) {
	query := `SELECT ` + participantColumns + `
		FROM participants
		WHERE is_rental = true
		ORDER BY rental_start_date`

	return r.queryParticipants(ctx, query)
}

func (r *participantRepository) FindRentalsBetween(ctx context.Context, from, to time.Time) ([]*entity.Participant, error) {
	query := `SELECT ` + participantColumns + `
		FROM participants
		WHERE is_rental = true
		  AND rental_start_date >= $1 AND rental_start_date <= $2
		ORDER BY rental_start_date`

	return r.queryParticipants(ctx, query, from, to)
}

func (r *participantRepository) queryParticipants(ctx context.Context, query string, args ...any) ([]*entity.Participant, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list participants", zap.Error(err))
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var participants []*entity.Participant
	for rows.Next() {
		participant, err := scanParticipant(rows)
		if err != nil {
			r.log.Error("Failed to scan participant row", zap.Error(err))
			return nil, fmt.Errorf("scan participant row: %w", err)
		}
		participants = append(participants, participant)
	}

	return participants, nil
}

func (r *participantRepository) Update(ctx context.Context, participant *entity.Participant) error {
	query := `
		UPDATE participants
		SET first_name = $2, last_name = $3, nationality = $4, document_number = $5,
		    excursion_id = $6, transfer_id = $7, is_rental = $8, rental_item = $9,
		    rental_start_date = $10, rental_end_date = $11, price = $12, deposit = $13,
		    tax = $14, commission_percentage = $15, adults = $16, children = $17,
		    group_size = $18, payment_type = $19, is_option = $20, is_expired = $21,
		    approval_status = $22, original_price = $23, client_id = $24,
		    created_by_id = $25, agency_id = $26, updated_at = $27
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		participant.ID,
		participant.FirstName,
		participant.LastName,
		participant.Nationality,
		participant.DocumentNumber,
		participant.ExcursionID,
		participant.TransferID,
		participant.IsRental,
		participant.RentalItem,
		participant.RentalStartDate,
		participant.RentalEndDate,
		participant.Price,
		participant.Deposit,
		participant.Tax,
		participant.CommissionPercentage,
		participant.Adults,
		participant.Children,
		participant.GroupSize,
		participant.PaymentType,
		participant.IsOption,
		participant.IsExpired,
		participant.ApprovalStatus,
		participant.OriginalPrice,
		participant.ClientID,
		participant.CreatedByID,
		participant.AgencyID,
		participant.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update participant",
			zap.Error(err),
			zap.String("participant_id", participant.ID.String()),
		)
		return fmt.Errorf("update participant %s: %w", participant.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("participant %s not found", participant.ID.String())
	}

	return nil
}

func (r *participantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM participants WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete participant",
			zap.Error(err),
			zap.String("participant_id", id.String()),
		)
		return fmt.Errorf("delete participant %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("participant %s not found", id.String())
	}

	r.log.Info("Participant deleted", zap.String("participant_id", id.String()))
	return nil
}

func (r *participantRepository) CountByExcursionID(ctx context.Context, excursionID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM participants WHERE excursion_id = $1`, excursionID)
}

func (r *participantRepository) CountByTransferID(ctx context.Context, transferID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM participants WHERE transfer_id = $1`, transferID)
}

func (r *participantRepository) CountBySupplierID(ctx context.Context, supplierID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM participants p
		LEFT JOIN excursions e ON p.excursion_id = e.id
		LEFT JOIN transfers t ON p.transfer_id = t.id
		WHERE e.supplier_id = $1 OR t.supplier_id = $1
	`
	return r.count(ctx, query, supplierID)
}

func (r *participantRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count participants", zap.Error(err))
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return count, nil
}

func (r *participantRepository) ExpireExcursionParticipants(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE participants p
		SET is_expired = true, updated_at = NOW()
		FROM excursions e
		WHERE p.excursion_id = e.id
		  AND e.confirmation_deadline IS NOT NULL
		  AND e.confirmation_deadline < $1
		  AND p.is_expired = false
		  AND (p.is_option = true OR p.payment_type = 'DEPOSIT')
	`
	return r.expire(ctx, query, now)
}

func (r *participantRepository) ExpireTransferParticipants(ctx context.Context, startOfToday time.Time) (int64, error) {
	query := `
		UPDATE participants p
		SET is_expired = true, updated_at = NOW()
		FROM transfers t
		WHERE p.transfer_id = t.id
		  AND t.date < $1
		  AND p.is_expired = false
		  AND (p.is_option = true OR p.payment_type = 'DEPOSIT')
	`
	return r.expire(ctx, query, startOfToday)
}

func (r *participantRepository) ExpireRentalParticipants(ctx context.Context, startOfToday time.Time) (int64, error) {
	query := `
		UPDATE participants
		SET is_expired = true, updated_at = NOW()
		WHERE is_rental = true
		  AND rental_start_date IS NOT NULL
		  AND rental_start_date < $1
		  AND is_expired = false
		  AND (is_option = true OR payment_type = 'DEPOSIT')
	`
	return r.expire(ctx, query, startOfToday)
}

func (r *participantRepository) expire(ctx context.Context, query string, deadline time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, query, deadline)
	if err != nil {
		r.log.Error("Failed to expire participants", zap.Error(err))
		return 0, fmt.Errorf("expire participants: %w", err)
	}

	if result.RowsAffected() > 0 {
		r.log.Info("Participants expired", zap.Int64("count", result.RowsAffected()))
	}

	return result.RowsAffected(), nil
}

func (r *participantRepository) ReactivateByExcursionID(ctx context.Context, excursionID uuid.UUID) error {
	query := `
		UPDATE participants
		SET is_expired = false, updated_at = NOW()
		WHERE excursion_id = $1 AND is_expired = true
	`
	return r.reactivate(ctx, query, excursionID)
}

func (r *participantRepository) ReactivateByTransferID(ctx context.Context, transferID uuid.UUID) error {
	query := `
		UPDATE participants
		SET is_expired = false, updated_at = NOW()
		WHERE transfer_id = $1 AND is_expired = true
	`
	return r.reactivate(ctx, query, transferID)
}

func (r *participantRepository) reactivate(ctx context.Context, query string, eventID uuid.UUID) error {
	result, err := r.db.Exec(ctx, query, eventID)
	if err != nil {
		r.log.Error("Failed to reactivate participants",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return fmt.Errorf("reactivate participants for %s: %w", eventID.String(), err)
	}

	if result.RowsAffected() > 0 {
		r.log.Info("Participants reactivated",
			zap.String("event_id", eventID.String()),
			zap.Int64("count", result.RowsAffected()),
		)
	}

	return nil
}
