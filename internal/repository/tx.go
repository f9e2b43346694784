package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/a2sh3r/fundledger/internal/apperrors"
	"github.com/a2sh3r/fundledger/internal/logger"
	"github.com/a2sh3r/fundledger/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// fundLockKey serializes every balance-affecting review on the single fund.
const fundLockKey int64 = 0x66756e64

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrStorage, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func withTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return storageError("begin transaction", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return storageError("commit transaction", err)
	}
	return nil
}

func lockFund(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, fundLockKey); err != nil {
		return storageError("acquire fund lock", err)
	}
	return nil
}

// checkTotalFits takes the fund lock and rejects an amount that would push
// the numeric total returned by sumQuery past the bigint range.
func checkTotalFits(ctx context.Context, tx *sql.Tx, sumQuery string, amount models.Amount) error {
	if err := lockFund(ctx, tx); err != nil {
		return err
	}

	var overflows bool
	err := tx.QueryRowContext(ctx, `SELECT (`+sumQuery+`) + $1::bigint > $2::bigint`, int64(amount), int64(math.MaxInt64)).Scan(&overflows)
	if err != nil {
		return storageError("check ledger total", err)
	}
	if overflows {
		return apperrors.ErrTotalOverflow
	}
	return nil
}

func insertLogEntry(ctx context.Context, tx *sql.Tx, entry *models.ManagementLogEntry) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO management_logs (id, action, actor_id, actor_email, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ID, string(entry.Action), entry.ActorID, entry.ActorEmail, entry.Details, entry.CreatedAt)
	if err != nil {
		return storageError("insert management log", err)
	}
	return nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Log.Error("failed to close rows", zap.Error(err))
	}
}
