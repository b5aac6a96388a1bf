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

type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	FindByName(ctx context.Context, name string) (*entity.Supplier, error)
	FindAll(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSupplierRepository(db database.PgxIface, log *zap.Logger) SupplierRepository {
	return &supplierRepository{
		db:  db,
		log: log.With(zap.String("repository", "supplier")),
	}
}

const supplierColumns = `id, name, email, phone, created_at, updated_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := row.Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.Email,
		&supplier.Phone,
		&supplier.CreatedAt,
		&supplier.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.Email,
		supplier.Phone,
		supplier.CreatedAt,
		supplier.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create supplier",
			zap.Error(err),
			zap.String("name", supplier.Name),
		)
		return fmt.Errorf("create supplier %s: %w", supplier.Name, err)
	}

	return nil
}

func (r *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`

	supplier, err := scanSupplier(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find supplier by ID",
			zap.Error(err),
			zap.String("supplier_id", id.String()),
		)
		return nil, fmt.Errorf("find supplier by ID %s: %w", id.String(), err)
	}

	return supplier, nil
}

func (r *supplierRepository) FindByName(ctx context.Context, name string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE LOWER(name) = LOWER($1)`

	supplier, err := scanSupplier(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find supplier by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find supplier by name %s: %w", name, err)
	}

	return supplier, nil
}

func (r *supplierRepository) FindAll(ctx context.Context) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list suppliers", zap.Error(err))
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			r.log.Error("Failed to scan supplier row", zap.Error(err))
			return nil, fmt.Errorf("scan supplier row: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}

	return suppliers, nil
}

func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.Email,
		supplier.Phone,
		supplier.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update supplier",
			zap.Error(err),
			zap.String("supplier_id", supplier.ID.String()),
		)
		return fmt.Errorf("update supplier %s: %w", supplier.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("supplier %s not found", supplier.ID.String())
	}

	return nil
}

func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM suppliers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete supplier",
			zap.Error(err),
			zap.String("supplier_id", id.String()),
		)
		return fmt.Errorf("delete supplier %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("supplier %s not found", id.String())
	}

	r.log.Info("Supplier deleted", zap.String("supplier_id", id.String()))
	return nil
}
