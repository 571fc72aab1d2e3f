package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/usecase"
)

var journalEntryColumns = []string{
	"id", "office_id", "gl_account_id", "currency_code", "group_transaction_id",
	"savings_transaction_id", "external_transaction_id", "entry_date", "side",
	"amount", "memo", "is_reversal", "created_at",
}

const selectJournalEntries = `
	SELECT id, office_id, gl_account_id, currency_code, group_transaction_id,
	       savings_transaction_id, external_transaction_id, entry_date, side,
	       amount, memo, is_reversal, created_at
	FROM journal_entries`

// JournalEntryRepository implements usecase.JournalEntryRepository.
type JournalEntryRepository struct {
	db querier
}

// NewJournalEntryRepository creates a new JournalEntryRepository.
func NewJournalEntryRepository(pool *pgxpool.Pool) *JournalEntryRepository {
	return &JournalEntryRepository{db: pool}
}

// CreateBatch inserts all entries of a group with a single COPY.
func (r *JournalEntryRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(entries))

	for _, e := range entries {
		createdAt := e.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		rows = append(rows, []any{
			e.ID,
			e.OfficeID,
			e.GLAccountID,
			e.CurrencyCode,
			e.GroupTransactionID,
			textOrNull(e.SavingsTransactionID),
			textOrNull(e.ExternalTransactionID),
			timeToPgDate(e.Date),
			string(e.Side),
			decimalToNumeric(e.Amount),
			textOrNull(e.Memo),
			e.IsReversal,
			timeToPgTimestamptz(createdAt),
		})
	}

	n, err := pgxTx(tx).CopyFrom(ctx, pgx.Identifier{"journal_entries"}, journalEntryColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return err
	}

	if int(n) != len(entries) {
		return fmt.Errorf("copied %d of %d journal entries", n, len(entries))
	}

	return nil
}

// ExistsByGroup reports whether any entry already carries the group transaction id.
func (r *JournalEntryRepository) ExistsByGroup(ctx context.Context, tx usecase.Transaction, groupTransactionID string) (bool, error) {
	var exists bool

	err := pgxTx(tx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM journal_entries WHERE group_transaction_id = $1)`,
		groupTransactionID,
	).Scan(&exists)

	return exists, err
}

// GetByGroup returns the entries of a group in insertion order.
func (r *JournalEntryRepository) GetByGroup(ctx context.Context, groupTransactionID string) ([]*domain.JournalEntry, error) {
	rows, err := r.db.Query(ctx, selectJournalEntries+` WHERE group_transaction_id = $1 ORDER BY id`, groupTransactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.JournalEntry

	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func scanJournalEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var (
		e                  domain.JournalEntry
		side               string
		savingsTxID, extID pgtype.Text
		memo               pgtype.Text
		entryDate          pgtype.Date
		amount             pgtype.Numeric
	)

	err := row.Scan(
		&e.ID,
		&e.OfficeID,
		&e.GLAccountID,
		&e.CurrencyCode,
		&e.GroupTransactionID,
		&savingsTxID,
		&extID,
		&entryDate,
		&side,
		&amount,
		&memo,
		&e.IsReversal,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Side = domain.Side(side)
	e.Amount = numericToDecimal(amount)
	e.SavingsTransactionID = savingsTxID.String
	e.ExternalTransactionID = extID.String
	e.Memo = memo.String

	if entryDate.Valid {
		e.Date = entryDate.Time
	}

	return &e, nil
}
