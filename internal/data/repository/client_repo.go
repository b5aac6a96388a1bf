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

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	FindByEmail(ctx context.Context, email string) (*entity.Client, error)
	FindAll(ctx context.Context) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
}

type clientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClientRepository(db database.PgxIface, log *zap.Logger) ClientRepository {
	return &clientRepository{
		db:  db,
		log: log.With(zap.String("repository", "client")),
	}
}

const clientColumns = `id, email, first_name, last_name, phone, nationality, document_number, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var client entity.Client
	err := row.Scan(
		&client.ID,
		&client.Email,
		&client.FirstName,
		&client.LastName,
		&client.Phone,
		&client.Nationality,
		&client.DocumentNumber,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, email, first_name, last_name, phone, nationality,
		                     document_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		client.ID,
		client.Email,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Nationality,
		client.DocumentNumber,
		client.CreatedAt,
		client.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create client",
			zap.Error(err),
			zap.String("email", client.Email),
		)
		return fmt.Errorf("create client %s: %w", client.Email, err)
	}

	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := scanClient(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find client by ID",
			zap.Error(err),
			zap.String("client_id", id.String()),
		)
		return nil, fmt.Errorf("find client by ID %s: %w", id.String(), err)
	}

	return client, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE LOWER(email) = LOWER($1)`

	client, err := scanClient(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find client by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find client by email %s: %w", email, err)
	}

	return client, nil
}

func (r *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list clients", zap.Error(err))
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			r.log.Error("Failed to scan client row", zap.Error(err))
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, client)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients
		SET email = $2, first_name = $3, last_name = $4, phone = $5,
		    nationality = $6, document_number = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		client.ID,
		client.Email,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Nationality,
		client.DocumentNumber,
		client.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update client",
			zap.Error(err),
			zap.String("client_id", client.ID.String()),
		)
		return fmt.Errorf("update client %s: %w", client.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("client %s not found", client.ID.String())
	}

	return nil
}
