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

type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.Transfer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transfer, error)
	FindAll(ctx context.Context) ([]*entity.Transfer, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Transfer, error)
	Update(ctx context.Context, transfer *entity.Transfer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transferRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransferRepository(db database.PgxIface, log *zap.Logger) TransferRepository {
	return &transferRepository{
		db:  db,
		log: log.With(zap.String("repository", "transfer")),
	}
}

const transferColumns = `id, title, date, time, origin, destination, price,
       supplier_id, max_passengers, created_at, updated_at`

func scanTransfer(row pgx.Row) (*entity.Transfer, error) {
	var transfer entity.Transfer
	err := row.Scan(
		&transfer.ID,
		&transfer.Title,
		&transfer.Date,
		&transfer.Time,
		&transfer.Origin,
		&transfer.Destination,
		&transfer.Price,
		&transfer.SupplierID,
		&transfer.MaxPassengers,
		&transfer.CreatedAt,
		&transfer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (r *transferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, title, date, time, origin, destination, price,
		                       supplier_id, max_passengers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		transfer.ID,
		transfer.Title,
		transfer.Date,
		transfer.Time,
		transfer.Origin,
		transfer.Destination,
		transfer.Price,
		transfer.SupplierID,
		transfer.MaxPassengers,
		transfer.CreatedAt,
		transfer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create transfer",
			zap.Error(err),
			zap.String("title", transfer.Title),
		)
		return fmt.Errorf("create transfer %s: %w", transfer.Title, err)
	}

	return nil
}

func (r *transferRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`

	transfer, err := scanTransfer(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find transfer by ID",
			zap.Error(err),
			zap.String("transfer_id", id.String()),
		)
		return nil, fmt.Errorf("find transfer by ID %s: %w", id.String(), err)
	}

	return transfer, nil
}

func (r *transferRepository) FindAll(ctx context.Context) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers ORDER BY date`

	return r.queryTransfers(ctx, query)
}

func (r *transferRepository) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + `
		FROM transfers
		WHERE date >= $1 AND date <= $2
		ORDER BY date`

	return r.queryTransfers(ctx, query, from, to)
}

func (r *transferRepository) queryTransfers(ctx context.Context, query string, args ...any) ([]*entity.Transfer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list transfers", zap.Error(err))
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*entity.Transfer
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			r.log.Error("Failed to scan transfer row", zap.Error(err))
			return nil, fmt.Errorf("scan transfer row: %w", err)
		}
		transfers = append(transfers, transfer)
	}

	return transfers, nil
}

func (r *transferRepository) Update(ctx context.Context, transfer *entity.Transfer) error {
	query := `
		UPDATE transfers
		SET title = $2, date = $3, time = $4, origin = $5, destination = $6,
		    price = $7, supplier_id = $8, max_passengers = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		transfer.ID,
		transfer.Title,
		transfer.Date,
		transfer.Time,
		transfer.Origin,
		transfer.Destination,
		transfer.Price,
		transfer.SupplierID,
		transfer.MaxPassengers,
		transfer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update transfer",
			zap.Error(err),
			zap.String("transfer_id", transfer.ID.String()),
		)
		return fmt.Errorf("update transfer %s: %w", transfer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transfer %s not found", transfer.ID.String())
	}

	return nil
}

func (r *transferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transfers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete transfer",
			zap.Error(err),
			zap.String("transfer_id", id.String()),
		)
		return fmt.Errorf("delete transfer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transfer %s not found", id.String())
	}

	r.log.Info("Transfer deleted", zap.String("transfer_id", id.String()))
	return nil
}
