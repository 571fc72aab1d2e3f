package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/usecase"
)

// ChargeRepository implements usecase.ChargeRepository.
type ChargeRepository struct {
	db querier
}

// NewChargeRepository creates a new ChargeRepository.
func NewChargeRepository(pool *pgxpool.Pool) *ChargeRepository {
	return &ChargeRepository{db: pool}
}

// GetByID retrieves a charge definition.
func (r *ChargeRepository) GetByID(ctx context.Context, id string) (*domain.Charge, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, calculation_kind, amount, min_cap, max_cap,
		       is_penalty, fee_split_enabled, income_account_id
		FROM charges
		WHERE id = $1`, id)

	charge, err := scanCharge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "charge", ID: id}
		}
		return nil, err
	}

	return charge, nil
}

func scanCharge(row pgx.Row, extra ...any) (*domain.Charge, error) {
	var (
		c              domain.Charge
		kind           string
		amount         pgtype.Numeric
		minCap, maxCap pgtype.Numeric
		incomeAccount  pgtype.Text
	)

	dest := append([]any{
		&c.ID,
		&c.Name,
		&kind,
		&amount,
		&minCap,
		&maxCap,
		&c.IsPenalty,
		&c.FeeSplitEnabled,
		&incomeAccount,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	c.CalculationKind = domain.CalculationKind(kind)
	c.Amount = numericToDecimal(amount)
	c.MinCap = numericToOptional(minCap)
	c.MaxCap = numericToOptional(maxCap)
	c.IncomeAccountID = incomeAccount.String

	return &c, nil
}

// AccountChargeRepository implements usecase.AccountChargeRepository.
type AccountChargeRepository struct {
	db querier
}

// NewAccountChargeRepository creates a new AccountChargeRepository.
func NewAccountChargeRepository(pool *pgxpool.Pool) *AccountChargeRepository {
	return &AccountChargeRepository{db: pool}
}

// GetByID retrieves an account charge together with its charge definition.
// A persisted working percentage replaces the definition's percentage.
func (r *AccountChargeRepository) GetByID(ctx context.Context, id string) (*domain.AccountCharge, error) {
	var (
		ac                               domain.AccountCharge
		amount, paid, waived, writtenOff pgtype.Numeric
		workingPercentage                pgtype.Numeric
	)

	row := r.db.QueryRow(ctx, `
		SELECT c.id, c.name, c.calculation_kind, c.amount, c.min_cap, c.max_cap,
		       c.is_penalty, c.fee_split_enabled, c.income_account_id,
		       ac.id, ac.savings_account_id, ac.amount, ac.amount_paid,
		       ac.amount_waived, ac.amount_written_off, ac.working_percentage
		FROM account_charges ac
		JOIN charges c ON c.id = ac.charge_id
		WHERE ac.id = $1`, id)

	charge, err := scanCharge(row,
		&ac.ID,
		&ac.SavingsAccountID,
		&amount,
		&paid,
		&waived,
		&writtenOff,
		&workingPercentage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "account charge", ID: id}
		}
		return nil, err
	}

	if workingPercentage.Valid && charge.CalculationKind == domain.CalculationPercentageOfAmount {
		charge.Amount = numericToDecimal(workingPercentage)
	}

	ac.Charge = *charge
	ac.Amount = numericToDecimal(amount)
	ac.AmountPaid = numericToDecimal(paid)
	ac.AmountWaived = numericToDecimal(waived)
	ac.AmountWrittenOff = numericToDecimal(writtenOff)

	return &ac, nil
}

// UpdateWorkingPercentage stores the effective percentage back-solved from a capped fee.
func (r *AccountChargeRepository) UpdateWorkingPercentage(ctx context.Context, tx usecase.Transaction, id string, percentage decimal.Decimal) error {
	tag, err := pgxTx(tx).Exec(ctx, `
		UPDATE account_charges
		SET working_percentage = $2, updated_at = $3
		WHERE id = $1`,
		id, decimalToNumeric(percentage), timeToPgTimestamptz(time.Now().UTC()),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "account charge", ID: id}
	}

	return nil
}

// OverrideRepository implements usecase.OverrideRepository.
type OverrideRepository struct {
	db querier
}

// NewOverrideRepository creates a new OverrideRepository.
func NewOverrideRepository(pool *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{db: pool}
}

// FindActive returns the client's active override for a charge.
func (r *OverrideRepository) FindActive(ctx context.Context, clientID, chargeID string) (*domain.ChargeOverride, error) {
	var (
		o                      domain.ChargeOverride
		amount, minCap, maxCap pgtype.Numeric
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, client_id, charge_id, amount, min_cap, max_cap, is_active
		FROM charge_overrides
		WHERE client_id = $1 AND charge_id = $2 AND is_active`,
		clientID, chargeID,
	).Scan(&o.ID, &o.ClientID, &o.ChargeID, &amount, &minCap, &maxCap, &o.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOverrideNotFound
		}
		return nil, err
	}

	o.Amount = numericToOptional(amount)
	o.MinCap = numericToOptional(minCap)
	o.MaxCap = numericToOptional(maxCap)

	return &o, nil
}

// SplitRepository implements usecase.SplitRepository.
type SplitRepository struct {
	db querier
}

// NewSplitRepository creates a new SplitRepository.
func NewSplitRepository(pool *pgxpool.Pool) *SplitRepository {
	return &SplitRepository{db: pool}
}

// FindActiveByCharge returns a charge's active splits in creation order.
func (r *SplitRepository) FindActiveByCharge(ctx context.Context, chargeID string) ([]domain.ChargeSplit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, charge_id, fund_id, gl_account_id, split_type, split_value, is_active
		FROM charge_splits
		WHERE charge_id = $1 AND is_active
		ORDER BY created_at, id`, chargeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var splits []domain.ChargeSplit

	for rows.Next() {
		var (
			s         domain.ChargeSplit
			splitType string
			value     pgtype.Numeric
		)

		if err := rows.Scan(&s.ID, &s.ChargeID, &s.FundID, &s.GLAccountID, &splitType, &value, &s.IsActive); err != nil {
			return nil, err
		}

		s.SplitType = domain.SplitType(splitType)
		s.SplitValue = numericToDecimal(value)
		splits = append(splits, s)
	}

	return splits, rows.Err()
}
