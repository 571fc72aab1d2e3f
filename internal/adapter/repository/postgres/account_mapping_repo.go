package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/savingsgl/internal/domain"
)

// AccountMappingRepository implements usecase.AccountMappingRepository.
type AccountMappingRepository struct {
	db querier
}

// NewAccountMappingRepository creates a new AccountMappingRepository.
func NewAccountMappingRepository(pool *pgxpool.Pool) *AccountMappingRepository {
	return &AccountMappingRepository{db: pool}
}

// GetChart assembles the product's chart of accounts for one basis.
func (r *AccountMappingRepository) GetChart(ctx context.Context, productID string, basis domain.AccountingBasis) (*domain.Chart, error) {
	chart := &domain.Chart{
		ProductID:   productID,
		Basis:       basis,
		Accounts:    make(map[domain.AccountRole]string),
		TaxAccounts: make(map[string]string),
	}

	rows, err := r.db.Query(ctx, `
		SELECT role, gl_account_id
		FROM product_account_mappings
		WHERE product_id = $1 AND accounting_basis = $2`,
		productID, string(basis))
	if err != nil {
		return nil, err
	}

	for rows.Next() {
		var role, account string
		if err := rows.Scan(&role, &account); err != nil {
			rows.Close()
			return nil, err
		}
		chart.Accounts[domain.AccountRole(role)] = account
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(chart.Accounts) == 0 {
		return nil, &domain.NotFoundError{Resource: "chart", ID: productID + "/" + string(basis)}
	}

	rows, err = r.db.Query(ctx, `
		SELECT tax_component_id, gl_account_id
		FROM product_tax_mappings
		WHERE product_id = $1 AND accounting_basis = $2`,
		productID, string(basis))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var component, account string
		if err := rows.Scan(&component, &account); err != nil {
			return nil, err
		}
		chart.TaxAccounts[component] = account
	}

	return chart, rows.Err()
}

// ChargeIncomeAccount returns the product's income account for a specific charge.
func (r *AccountMappingRepository) ChargeIncomeAccount(ctx context.Context, productID, chargeID string) (string, error) {
	return r.optionalAccount(ctx, `
		SELECT gl_account_id
		FROM product_charge_mappings
		WHERE product_id = $1 AND charge_id = $2`,
		productID, chargeID)
}

// FeeIncomeAccount returns the product's default fee income account.
// When both bases map one, the cash mapping wins.
func (r *AccountMappingRepository) FeeIncomeAccount(ctx context.Context, productID string) (string, error) {
	return r.optionalAccount(ctx, `
		SELECT gl_account_id
		FROM product_account_mappings
		WHERE product_id = $1 AND role = $2
		ORDER BY accounting_basis DESC
		LIMIT 1`,
		productID, string(domain.RoleIncomeFromFees))
}

func (r *AccountMappingRepository) optionalAccount(ctx context.Context, sql string, args ...any) (string, error) {
	var account string

	err := r.db.QueryRow(ctx, sql, args...).Scan(&account)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	return account, nil
}

// SavingsAccountRepository implements usecase.SavingsAccountRepository.
type SavingsAccountRepository struct {
	db querier
}

// NewSavingsAccountRepository creates a new SavingsAccountRepository.
func NewSavingsAccountRepository(pool *pgxpool.Pool) *SavingsAccountRepository {
	return &SavingsAccountRepository{db: pool}
}

// GetByID retrieves a savings account snapshot.
func (r *SavingsAccountRepository) GetByID(ctx context.Context, id string) (*domain.SavingsAccount, error) {
	var (
		a     domain.SavingsAccount
		basis string
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, COALESCE(client_id, ''), product_id, office_id, currency_code, accounting_basis
		FROM savings_accounts
		WHERE id = $1`, id,
	).Scan(&a.ID, &a.ClientID, &a.ProductID, &a.OfficeID, &a.CurrencyCode, &basis)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "savings account", ID: id}
		}
		return nil, err
	}

	a.Basis = domain.AccountingBasis(basis)

	return &a, nil
}
