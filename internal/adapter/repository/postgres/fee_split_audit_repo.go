package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/usecase"
)

// FeeSplitAuditRepository implements usecase.FeeSplitAuditRepository.
type FeeSplitAuditRepository struct {
	db querier
}

// NewFeeSplitAuditRepository creates a new FeeSplitAuditRepository.
func NewFeeSplitAuditRepository(pool *pgxpool.Pool) *FeeSplitAuditRepository {
	return &FeeSplitAuditRepository{db: pool}
}

// Create inserts an audit and its details within a transaction.
func (r *FeeSplitAuditRepository) Create(ctx context.Context, tx usecase.Transaction, audit *domain.FeeSplitAudit) error {
	q := pgxTx(tx)

	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now().UTC()
	}

	_, err := q.Exec(ctx, `
		INSERT INTO fee_split_audits (id, external_transaction_id, charge_id, total_fee_amount, split_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		audit.ID,
		audit.ExternalTransactionID,
		audit.ChargeID,
		decimalToNumeric(audit.TotalFeeAmount),
		timeToPgDate(audit.SplitDate),
		timeToPgTimestamptz(audit.CreatedAt),
	)
	if err != nil {
		return err
	}

	for _, d := range audit.Details {
		_, err := q.Exec(ctx, `
			INSERT INTO fee_split_details (id, audit_id, fund_id, gl_account_id, journal_entry_id, split_amount, split_percentage)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			d.ID,
			audit.ID,
			d.FundID,
			d.GLAccountID,
			d.JournalEntryID,
			decimalToNumeric(d.SplitAmount),
			optionalToNumeric(d.SplitPercentage),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// ListByExternalID returns every audit recorded for an external transaction, details included.
func (r *FeeSplitAuditRepository) ListByExternalID(ctx context.Context, externalTransactionID string) ([]*domain.FeeSplitAudit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, external_transaction_id, charge_id, total_fee_amount, split_date, created_at
		FROM fee_split_audits
		WHERE external_transaction_id = $1
		ORDER BY created_at, id`, externalTransactionID)
	if err != nil {
		return nil, err
	}

	var (
		audits []*domain.FeeSplitAudit
		ids    []string
	)
	byID := make(map[string]*domain.FeeSplitAudit)

	for rows.Next() {
		var (
			a         domain.FeeSplitAudit
			total     pgtype.Numeric
			splitDate pgtype.Date
		)

		if err := rows.Scan(&a.ID, &a.ExternalTransactionID, &a.ChargeID, &total, &splitDate, &a.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}

		a.TotalFeeAmount = numericToDecimal(total)
		if splitDate.Valid {
			a.SplitDate = splitDate.Time
		}

		audits = append(audits, &a)
		ids = append(ids, a.ID)
		byID[a.ID] = &a
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return audits, nil
	}

	rows, err = r.db.Query(ctx, `
		SELECT id, audit_id, fund_id, gl_account_id, journal_entry_id, split_amount, split_percentage
		FROM fee_split_details
		WHERE audit_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			d                  domain.FeeSplitDetail
			auditID            string
			amount, percentage pgtype.Numeric
		)

		if err := rows.Scan(&d.ID, &auditID, &d.FundID, &d.GLAccountID, &d.JournalEntryID, &amount, &percentage); err != nil {
			return nil, err
		}

		d.SplitAmount = numericToDecimal(amount)
		d.SplitPercentage = numericToOptional(percentage)

		if a, ok := byID[auditID]; ok {
			a.Details = append(a.Details, d)
		}
	}

	return audits, rows.Err()
}
