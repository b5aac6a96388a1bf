package repository

import (
	"context"
	"fmt"

	"corfumania-backoffice/internal/data/entity"
	"corfumania-backoffice/pkg/database"

	"go.uber.org/zap"
)

type AuditRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error)
	Count(ctx context.Context) (int64, error)
}

type auditRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditRepository(db database.PgxIface, log *zap.Logger) AuditRepository {
	return &auditRepository{
		db:  db,
		log: log.With(zap.String("repository", "audit")),
	}
}

func (r *auditRepository) Create(ctx context.Context, auditLog *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_id, action, details, excursion_id, transfer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		auditLog.ID,
		auditLog.UserID,
		auditLog.Action,
		auditLog.Details,
		auditLog.ExcursionID,
		auditLog.TransferID,
		auditLog.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create audit log",
			zap.Error(err),
			zap.String("action", auditLog.Action),
		)
		return fmt.Errorf("create audit log %s: %w", auditLog.Action, err)
	}

	return nil
}

func (r *auditRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, user_id, action, details, excursion_id, transfer_id, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list audit logs", zap.Error(err))
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.AuditLog
	for rows.Next() {
		var auditLog entity.AuditLog
		err := rows.Scan(
			&auditLog.ID,
			&auditLog.UserID,
			&auditLog.Action,
			&auditLog.Details,
			&auditLog.ExcursionID,
			&auditLog.TransferID,
			&auditLog.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan audit log row", zap.Error(err))
			return nil, fmt.Errorf("scan audit log row: %w", err)
		}
		logs = append(logs, &auditLog)
	}

	return logs, nil
}

func (r *auditRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM audit_logs`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count audit logs", zap.Error(err))
		return 0, fmt.Errorf("count audit logs: %w", err)
	}

	return count, nil
}
