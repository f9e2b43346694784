package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/a2sh3r/fundledger/internal/logger"
	"github.com/a2sh3r/fundledger/internal/models"
	"go.uber.org/zap"
)

type donationRepo struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) DonationRepository {
	return &donationRepo{db: db}
}

func (r *donationRepo) SaveDonation(ctx context.Context, d *models.Donation, entry *models.ManagementLogEntry) error {
	return withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		if err := checkTotalFits(ctx, tx, `SELECT COALESCE(SUM(amount), 0) FROM donations`, d.Amount); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO donations (id, name, country, email, phone, amount, donation_type, payment_method, selected_quote, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, d.ID, d.Name, d.Country, d.Email, d.Phone, int64(d.Amount),
			string(d.DonationType), string(d.PaymentMethod), d.SelectedQuote, d.CreatedAt)
		if err != nil {
			return storageError("insert donation", err)
		}
		return insertLogEntry(ctx, tx, entry)
	})
}

func donationWhere(f models.DonationFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Country != "" {
		add("lower(country) = lower($%d)", strings.TrimSpace(f.Country))
	}
	if f.PaymentMethod != "" {
		add("payment_method = $%d", string(f.PaymentMethod))
	}
	if f.DateFrom != nil {
		add("created_at >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("created_at <= $%d", *f.DateTo)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *donationRepo) ListDonations(ctx context.Context, filter models.DonationFilter, limit, offset int) ([]models.Donation, error) {
	where, args := donationWhere(filter)
	args = append(args, limit, offset)
	query := `
		SELECT id::text, name, country, email, phone, amount, donation_type, payment_method, selected_quote, created_at
		FROM donations` + where + fmt.Sprintf(`
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query donations", zap.Error(err))
		return nil, storageError("query donations", err)
	}
	defer closeRows(rows)

	var donations []models.Donation
	for rows.Next() {
		var d models.Donation
		if err := rows.Scan(&d.ID, &d.Name, &d.Country, &d.Email, &d.Phone, &d.Amount,
			&d.DonationType, &d.PaymentMethod, &d.SelectedQuote, &d.CreatedAt); err != nil {
			logger.Log.Error("failed to scan donation", zap.Error(err))
			return nil, storageError("scan donation", err)
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate donations", err)
	}
	return donations, nil
}

func (r *donationRepo) CountDonations(ctx context.Context, filter models.DonationFilter) (int, error) {
	where, args := donationWhere(filter)
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM donations`+where, args...).Scan(&total); err != nil {
		return 0, storageError("count donations", err)
	}
	return total, nil
}
