package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/fundledger/internal/apperrors"
	"github.com/a2sh3r/fundledger/internal/logger"
	"github.com/a2sh3r/fundledger/internal/models"
	"go.uber.org/zap"
)

type financeRepo struct {
	db *sql.DB
}

func NewFinanceRepository(db *sql.DB) FinanceRepository {
	return &financeRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

const requestColumns = `id::text, amount, note, requested_by, status, approved_by, reviewed_at, created_at`

func scanRequest(row rowScanner) (models.WithdrawalRequest, error) {
	var (
		req        models.WithdrawalRequest
		approvedBy sql.NullString
		reviewedAt sql.NullTime
	)
	err := row.Scan(&req.ID, &req.Amount, &req.Note, &req.RequestedBy, &req.Status, &approvedBy, &reviewedAt, &req.CreatedAt)
	if err != nil {
		return models.WithdrawalRequest{}, err
	}
	if approvedBy.Valid {
		req.ApprovedBy = &approvedBy.String
	}
	if reviewedAt.Valid {
		req.ReviewedAt = &reviewedAt.Time
	}
	return req, nil
}

const withdrawalColumns = `id::text, request_id::text, amount, note, admin_id, created_at`

func scanWithdrawal(row rowScanner) (models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(&w.ID, &w.RequestID, &w.Amount, &w.Note, &w.AdminID, &w.CreatedAt)
	return w, err
}

func (r *financeRepo) Overview(ctx context.Context) (models.Overview, error) {
	var overview models.Overview
	err := withTx(ctx, r.db, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			SELECT
				(SELECT COALESCE(SUM(amount), 0)::bigint FROM donations),
				(SELECT COUNT(*) FROM donations),
				(SELECT COALESCE(SUM(amount), 0)::bigint FROM withdrawals),
				(SELECT COUNT(*) FROM withdrawals),
				(SELECT COUNT(*) FROM withdrawal_requests WHERE status = 'pending'),
				(SELECT COALESCE(SUM(amount), 0)::bigint FROM withdrawal_requests WHERE status = 'pending')
		`).Scan(
			&overview.TotalReceived,
			&overview.DonationCount,
			&overview.TotalWithdrawn,
			&overview.WithdrawalCount,
			&overview.PendingRequestCount,
			&overview.PendingRequestedAmount,
		)
		if err != nil {
			return storageError("aggregate ledgers", err)
		}

		last, err := scanWithdrawal(tx.QueryRowContext(ctx, `
			SELECT `+withdrawalColumns+` FROM withdrawals ORDER BY created_at DESC, id DESC LIMIT 1
		`))
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return storageError("load last withdrawal", err)
		default:
			overview.LastWithdrawal = &last
		}
		return nil
	})
	if err != nil {
		logger.Log.Error("failed to compute overview", zap.Error(err))
		return models.Overview{}, err
	}

	overview.Balance = overview.TotalReceived - overview.TotalWithdrawn
	return overview, nil
}

func (r *financeRepo) CreateRequest(ctx context.Context, req *models.WithdrawalRequest, entry *models.ManagementLogEntry) error {
	return withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		err := checkTotalFits(ctx, tx, `SELECT COALESCE(SUM(amount), 0) FROM withdrawal_requests WHERE status = 'pending'`, req.Amount)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO withdrawal_requests (id, amount, note, requested_by, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, req.ID, int64(req.Amount), req.Note, req.RequestedBy, string(req.Status), req.CreatedAt)
		if err != nil {
			return storageError("insert withdrawal request", err)
		}
		return insertLogEntry(ctx, tx, entry)
	})
}

func currentBalance(ctx context.Context, tx *sql.Tx) (models.Amount, error) {
	var balance models.Amount
	err := tx.QueryRowContext(ctx, `
		SELECT (SELECT COALESCE(SUM(amount), 0)::bigint FROM donations)
		     - (SELECT COALESCE(SUM(amount), 0)::bigint FROM withdrawals)
	`).Scan(&balance)
	if err != nil {
		return 0, storageError("read balance", err)
	}
	return balance, nil
}

func (r *financeRepo) ReviewRequest(ctx context.Context, review models.Review) (models.ReviewResult, error) {
	var result models.ReviewResult
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		if err := lockFund(ctx, tx); err != nil {
			return err
		}

		req, err := scanRequest(tx.QueryRowContext(ctx, `
			SELECT `+requestColumns+` FROM withdrawal_requests WHERE id = $1 FOR UPDATE
		`, review.RequestID))
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return storageError("load withdrawal request", err)
		}
		if req.Status != models.StatusPending {
			return apperrors.ErrConflict
		}

		if review.Action == models.ReviewApprove {
			balance, err := currentBalance(ctx, tx)
			if err != nil {
				return err
			}
			if req.Amount > balance {
				return apperrors.ErrInsufficientBalance
			}

			w := review.Withdrawal(req)
			_, err = tx.ExecContext(ctx, `
				INSERT INTO withdrawals (id, request_id, amount, note, admin_id, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, w.ID, w.RequestID, int64(w.Amount), w.Note, w.AdminID, w.CreatedAt)
			if isUniqueViolation(err) {
				return apperrors.ErrConflict
			}
			if err != nil {
				return storageError("insert withdrawal", err)
			}
			result.Withdrawal = &w
		}

		review.Apply(&req)
		res, err := tx.ExecContext(ctx, `
			UPDATE withdrawal_requests
			SET status = $2, approved_by = $3, reviewed_at = $4
			WHERE id = $1 AND status = 'pending'
		`, req.ID, string(req.Status), *req.ApprovedBy, *req.ReviewedAt)
		if err != nil {
			return storageError("update withdrawal request", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return storageError("update withdrawal request", err)
		}
		if affected == 0 {
			return apperrors.ErrConflict
		}

		entry := review.LogEntry(req)
		if err := insertLogEntry(ctx, tx, &entry); err != nil {
			return err
		}

		result.Request = req
		return nil
	})
	if err != nil {
		return models.ReviewResult{}, err
	}
	return result, nil
}

func (r *financeRepo) ListWithdrawals(ctx context.Context, limit, offset int) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, storageError("query withdrawals", err)
	}
	defer closeRows(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, storageError("scan withdrawal", err)
		}
		withdrawals = append(withdrawals, w)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate withdrawals", err)
	}
	return withdrawals, nil
}

func (r *financeRepo) CountWithdrawals(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM withdrawals`).Scan(&total); err != nil {
		return 0, storageError("count withdrawals", err)
	}
	return total, nil
}

func (r *financeRepo) ListRequests(ctx context.Context, status models.RequestStatus, limit, offset int) ([]models.WithdrawalRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+requestColumns+` FROM withdrawal_requests
		WHERE $1::text = '' OR status = $1::text
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, string(status), limit, offset)
	if err != nil {
		logger.Log.Error("failed to query withdrawal requests", zap.Error(err))
		return nil, storageError("query withdrawal requests", err)
	}
	defer closeRows(rows)

	var requests []models.WithdrawalRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal request", zap.Error(err))
			return nil, storageError("scan withdrawal request", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate withdrawal requests", err)
	}
	return requests, nil
}

func (r *financeRepo) CountRequests(ctx context.Context, status models.RequestStatus) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM withdrawal_requests WHERE $1::text = '' OR status = $1::text
	`, string(status)).Scan(&total)
	if err != nil {
		return 0, storageError("count withdrawal requests", err)
	}
	return total, nil
}
