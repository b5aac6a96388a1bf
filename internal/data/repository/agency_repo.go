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

type AgencyRepository interface {
	Create(ctx context.Context, agency *entity.Agency) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Agency, error)
	FindByName(ctx context.Context, name string) (*entity.Agency, error)
	FindAll(ctx context.Context) ([]*entity.Agency, error)
	Update(ctx context.Context, agency *entity.Agency) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type agencyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAgencyRepository(db database.PgxIface, log *zap.Logger) AgencyRepository {
	return &agencyRepository{
		db:  db,
		log: log.With(zap.String("repository", "agency")),
	}
}

const agencyColumns = `id, name, email, phone, default_commission, commission_type, created_at, updated_at`

func scanAgency(row pgx.Row) (*entity.Agency, error) {
	var agency entity.Agency
	err := row.Scan(
		&agency.ID,
		&agency.Name,
		&agency.Email,
		&agency.Phone,
		&agency.DefaultCommission,
		&agency.CommissionType,
		&agency.CreatedAt,
		&agency.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

func (r *agencyRepository) Create(ctx context.Context, agency *entity.Agency) error {
	query := `
		INSERT INTO agencies (id, name, email, phone, default_commission, commission_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		agency.ID,
		agency.Name,
		agency.Email,
		agency.Phone,
		agency.DefaultCommission,
		agency.CommissionType,
		agency.CreatedAt,
		agency.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create agency",
			zap.Error(err),
			zap.String("name", agency.Name),
		)
		return fmt.Errorf("create agency %s: %w", agency.Name, err)
	}

	return nil
}

func (r *agencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE id = $1`

	agency, err := scanAgency(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find agency by ID",
			zap.Error(err),
			zap.String("agency_id", id.String()),
		)
		return nil, fmt.Errorf("find agency by ID %s: %w", id.String(), err)
	}

	return agency, nil
}

func (r *agencyRepository) FindByName(ctx context.Context, name string) (*entity.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE LOWER(name) = LOWER($1)`

	agency, err := scanAgency(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find agency by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find agency by name %s: %w", name, err)
	}

	return agency, nil
}

func (r *agencyRepository) FindAll(ctx context.Context) ([]*entity.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list agencies", zap.Error(err))
		return nil, fmt.Errorf("list agencies: %w", err)
	}
	defer rows.Close()

	var agencies []*entity.Agency
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			r.log.Error("Failed to scan agency row", zap.Error(err))
			return nil, fmt.Errorf("scan agency row: %w", err)
		}
		agencies = append(agencies, agency)
	}

	return agencies, nil
}

func (r *agencyRepository) Update(ctx context.Context, agency *entity.Agency) error {
	query := `
		UPDATE agencies
		SET name = $2, email = $3, phone = $4, default_commission = $5,
		    commission_type = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		agency.ID,
		agency.Name,
		agency.Email,
		agency.Phone,
		agency.DefaultCommission,
		agency.CommissionType,
		agency.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update agency",
			zap.Error(err),
			zap.String("agency_id", agency.ID.String()),
		)
		return fmt.Errorf("update agency %s: %w", agency.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("agency %s not found", agency.ID.String())
	}

	return nil
}

func (r *agencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM agencies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete agency",
			zap.Error(err),
			zap.String("agency_id", id.String()),
		)
		return fmt.Errorf("delete agency %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("agency %s not found", id.String())
	}

	r.log.Info("Agency deleted", zap.String("agency_id", id.String()))
	return nil
}
