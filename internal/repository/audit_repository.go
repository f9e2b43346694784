package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/fundledger/internal/models"
)

type auditRepo struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) ListEntries(ctx context.Context, action models.Action, limit, offset int) ([]models.ManagementLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id::text, action, actor_id, actor_email, details, created_at
		FROM management_logs
		WHERE $1::text = '' OR action = $1::text
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, string(action), limit, offset)
	if err != nil {
		return nil, storageError("query management logs", err)
	}
	defer closeRows(rows)

	var entries []models.ManagementLogEntry
	for rows.Next() {
		var e models.ManagementLogEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.ActorID, &e.ActorEmail, &e.Details, &e.CreatedAt); err != nil {
			return nil, storageError("scan management log", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate management logs", err)
	}
	return entries, nil
}

func (r *auditRepo) CountEntries(ctx context.Context, action models.Action) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM management_logs WHERE $1::text = '' OR action = $1::text
	`, string(action)).Scan(&total)
	if err != nil {
		return 0, storageError("count management logs", err)
	}
	return total, nil
}
