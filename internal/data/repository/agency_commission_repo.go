package repository

import (
	"context"
	"fmt"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AgencyCommissionRepository interface {
	FindByExcursionID(ctx context.Context, excursionID uuid.UUID) ([]*entity.AgencyCommission, error)
	FindByTransferID(ctx context.Context, transferID uuid.UUID) ([]*entity.AgencyCommission, error)
	// ReplaceForExcursion swaps the event's commission list in one transaction
	// so readers never observe the empty intermediate state.
	ReplaceForExcursion(ctx context.Context, excursionID uuid.UUID, commissions []*entity.AgencyCommission) error
	ReplaceForTransfer(ctx context.Context, transferID uuid.UUID, commissions []*entity.AgencyCommission) error
}

type agencyCommissionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAgencyCommissionRepository(db database.PgxIface, log *zap.Logger) AgencyCommissionRepository {
	return &agencyCommissionRepository{
		db:  db,
		log: log.With(zap.String("repository", "agency_commission")),
	}
}

const agencyCommissionColumns = `id, excursion_id, transfer_id, agency_id, commission_value, commission_type, created_at`

func scanAgencyCommission(row pgx.Row) (*entity.AgencyCommission, error) {
	var commission entity.AgencyCommission
	err := row.Scan(
		&commission.ID,
		&commission.ExcursionID,
		&commission.TransferID,
		&commission.AgencyID,
		&commission.CommissionValue,
		&commission.CommissionType,
		&commission.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &commission, nil
}

func (r *agencyCommissionRepository) FindByExcursionID(ctx context.Context, excursionID uuid.UUID) ([]*entity.AgencyCommission, error) {
	query := `SELECT ` + agencyCommissionColumns + ` FROM agency_commissions WHERE excursion_id = $1`
	return r.queryCommissions(ctx, query, excursionID)
}

func (r *agencyCommissionRepository) FindByTransferID(ctx context.Context, transferID uuid.UUID) ([]*entity.AgencyCommission, error) {
	query := `SELECT ` + agencyCommissionColumns + ` FROM agency_commissions WHERE transfer_id = $1`
	return r.queryCommissions(ctx, query, transferID)
}

func (r *agencyCommissionRepository) queryCommissions(ctx context.Context, query string, args ...any) ([]*entity.AgencyCommission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list agency commissions", zap.Error(err))
		return nil, fmt.Errorf("list agency commissions: %w", err)
	}
	defer rows.Close()

	var commissions []*entity.AgencyCommission
	for rows.Next() {
		commission, err := scanAgencyCommission(rows)
		if err != nil {
			r.log.Error("Failed to scan agency commission row", zap.Error(err))
			return nil, fmt.Errorf("scan agency commission row: %w", err)
		}
		commissions = append(commissions, commission)
	}

	return commissions, nil
}

func (r *agencyCommissionRepository) ReplaceForExcursion(ctx context.Context, excursionID uuid.UUID, commissions []*entity.AgencyCommission) error {
	return r.replace(ctx, "excursion_id", excursionID, commissions)
}

func (r *agencyCommissionRepository) ReplaceForTransfer(ctx context.Context, transferID uuid.UUID, commissions []*entity.AgencyCommission) error {
	return r.replace(ctx, "transfer_id", transferID, commissions)
}

func (r *agencyCommissionRepository) replace(ctx context.Context, eventColumn string, eventID uuid.UUID, commissions []*entity.AgencyCommission) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin commission replace", zap.Error(err))
		return fmt.Errorf("begin commission replace: %w", err)
	}
	defer tx.Rollback(ctx)

	deleteQuery := fmt.Sprintf(`DELETE FROM agency_commissions WHERE %s = $1`, eventColumn)
	if _, err := tx.Exec(ctx, deleteQuery, eventID); err != nil {
		r.log.Error("Failed to clear agency commissions",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return fmt.Errorf("clear agency commissions for %s: %w", eventID.String(), err)
	}

	insertQuery := `
		INSERT INTO agency_commissions (id, excursion_id, transfer_id, agency_id,
		                                commission_value, commission_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, commission := range commissions {
		_, err := tx.Exec(ctx, insertQuery,
			commission.ID,
			commission.ExcursionID,
			commission.TransferID,
			commission.AgencyID,
			commission.CommissionValue,
			commission.CommissionType,
			commission.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert agency commission",
				zap.Error(err),
				zap.String("agency_id", commission.AgencyID.String()),
			)
			return fmt.Errorf("insert agency commission for agency %s: %w", commission.AgencyID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit commission replace", zap.Error(err))
		return fmt.Errorf("commit commission replace: %w", err)
	}

	return nil
}
