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

type ExcursionRepository interface {
	Create(ctx context.Context, excursion *entity.Excursion) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Excursion, error)
	FindAll(ctx context.Context) ([]*entity.Excursion, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Excursion, error)
	Update(ctx context.Context, excursion *entity.Excursion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type excursionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewExcursionRepository(db database.PgxIface, log *zap.Logger) ExcursionRepository {
	return &excursionRepository{
		db:  db,
		log: log.With(zap.String("repository", "excursion")),
	}
}

const excursionColumns = `id, title, description, start_date, end_date, confirmation_deadline,
       price_adult, price_child, supplier_id, max_participants, created_at, updated_at`

func scanExcursion(row pgx.Row) (*entity.Excursion, error) {
	var excursion entity.Excursion
	err := row.Scan(
		&excursion.ID,
		&excursion.Title,
		&excursion.Description,
		&excursion.StartDate,
		&excursion.EndDate,
		&excursion.ConfirmationDeadline,
		&excursion.PriceAdult,
		&excursion.PriceChild,
		&excursion.SupplierID,
		&excursion.MaxParticipants,
		&excursion.CreatedAt,
		&excursion.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &excursion, nil
}

func (r *excursionRepository) Create(ctx context.Context, excursion *entity.Excursion) error {
	query := `
		INSERT INTO excursions (id, title, description, start_date, end_date,
		                        confirmation_deadline, price_adult, price_child,
		                        supplier_id, max_participants, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		excursion.ID,
		excursion.Title,
		excursion.Description,
		excursion.StartDate,
		excursion.EndDate,
		excursion.ConfirmationDeadline,
		excursion.PriceAdult,
		excursion.PriceChild,
		excursion.SupplierID,
		excursion.MaxParticipants,
		excursion.CreatedAt,
		excursion.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create excursion",
			zap.Error(err),
			zap.String("title", excursion.Title),
		)
		return fmt.Errorf("create excursion %s: %w", excursion.Title, err)
	}

	return nil
}

func (r *excursionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Excursion, error) {
	query := `SELECT ` + excursionColumns + ` FROM excursions WHERE id = $1`

	excursion, err := scanExcursion(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find excursion by ID",
			zap.Error(err),
			zap.String("excursion_id", id.String()),
		)
		return nil, fmt.Errorf("find excursion by ID %s: %w", id.String(), err)
	}

	return excursion, nil
}

func (r *excursionRepository) FindAll(ctx context.Context) ([]*entity.Excursion, error) {
	query := `SELECT ` + excursionColumns + ` FROM excursions ORDER BY start_date`

	return r.queryExcursions(ctx, query)
}

func (r *excursionRepository) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Excursion, error) {
	query := `SELECT ` + excursionColumns + `
		FROM excursions
		WHERE start_date >= $1 AND start_date <= $2
		ORDER BY start_date`

	return r.queryExcursions(ctx, query, from, to)
}

func (r *excursionRepository) queryExcursions(ctx context.Context, query string, args ...any) ([]*entity.Excursion, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list excursions", zap.Error(err))
		return nil, fmt.Errorf("list excursions: %w", err)
	}
	defer rows.Close()

	var excursions []*entity.Excursion
	for rows.Next() {
		excursion, err := scanExcursion(rows)
		if err != nil {
			r.log.Error("Failed to scan excursion row", zap.Error(err))
			return nil, fmt.Errorf("scan excursion row: %w", err)
		}
		excursions = append(excursions, excursion)
	}

	return excursions, nil
}

func (r *excursionRepository) Update(ctx context.Context, excursion *entity.Excursion) error {
	query := `
		UPDATE excursions
		SET title = $2, description = $3, start_date = $4, end_date = $5,
		    confirmation_deadline = $6, price_adult = $7, price_child = $8,
		    supplier_id = $9, max_participants = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		excursion.ID,
		excursion.Title,
		excursion.Description,
		excursion.StartDate,
		excursion.EndDate,
		excursion.ConfirmationDeadline,
		excursion.PriceAdult,
		excursion.PriceChild,
		excursion.SupplierID,
		excursion.MaxParticipants,
		excursion.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update excursion",
			zap.Error(err),
			zap.String("excursion_id", excursion.ID.String()),
		)
		return fmt.Errorf("update excursion %s: %w", excursion.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("excursion %s not found", excursion.ID.String())
	}

	return nil
}

func (r *excursionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM excursions WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete excursion",
			zap.Error(err),
			zap.String("excursion_id", id.String()),
		)
		return fmt.Errorf("delete excursion %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("excursion %s not found", id.String())
	}

	r.log.Info("Excursion deleted", zap.String("excursion_id", id.String()))
	return nil
}
