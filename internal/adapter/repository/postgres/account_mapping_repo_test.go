package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/iho/savingsgl/internal/domain"
)

func TestAccountMappingRepositoryGetChart(t *testing.T) {
	mockPool := newMockPool(t)
	repo := &AccountMappingRepository{db: mockPool}

	mockPool.ExpectQuery("FROM product_account_mappings").
		WithArgs("prod-1", "cash").
		WillReturnRows(pgxmock.NewRows([]string{"role", "gl_account_id"}).
			AddRow("savings_control", "2000").
			AddRow("savings_reference", "1000").
			AddRow("income_from_fees", "4000"))
	mockPool.ExpectQuery("FROM product_tax_mappings").
		WithArgs("prod-1", "cash").
		WillReturnRows(pgxmock.NewRows([]string{"tax_component_id", "gl_account_id"}).
			AddRow("vat", "2500"))

	chart, err := repo.GetChart(context.Background(), "prod-1", domain.BasisCash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if chart.Basis != domain.BasisCash || chart.ProductID != "prod-1" {
		t.Errorf("unexpected chart identity: %+v", chart)
	}

	account, err := chart.Account(domain.RoleIncomeFromFees)
	if err != nil || account != "4000" {
		t.Errorf("expected fee income 4000, got %q (%v)", account, err)
	}

	if chart.TaxAccounts["vat"] != "2500" {
		t.Errorf("expected vat account 2500, got %q", chart.TaxAccounts["vat"])
	}

	assertExpectations(t, mockPool)
}

func TestAccountMappingRepositoryGetChartMissing(t *testing.T) {
	mockPool := newMockPool(t)
	repo := &AccountMappingRepository{db: mockPool}

	mockPool.ExpectQuery("FROM product_account_mappings").
		WithArgs("prod-1", "accrual").
		WillReturnRows(pgxmock.NewRows([]string{"role", "gl_account_id"}))

	_, err := repo.GetChart(context.Background(), "prod-1", domain.BasisAccrual)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestAccountMappingRepositoryIncomeAccounts(t *testing.T) {
	mockPool := newMockPool(t)
	repo := &AccountMappingRepository{db: mockPool}
	ctx := context.Background()

	mockPool.ExpectQuery("FROM product_charge_mappings").
		WithArgs("prod-1", "c1").
		WillReturnRows(pgxmock.NewRows([]string{"gl_account_id"}).AddRow("4200"))
	mockPool.ExpectQuery("FROM product_charge_mappings").
		WithArgs("prod-1", "c2").
		WillReturnError(pgx.ErrNoRows)
	mockPool.ExpectQuery("FROM product_account_mappings").
		WithArgs("prod-1", "income_from_fees").
		WillReturnRows(pgxmock.NewRows([]string{"gl_account_id"}).AddRow("4000"))

	if account, err := repo.ChargeIncomeAccount(ctx, "prod-1", "c1"); err != nil || account != "4200" {
		t.Errorf("expected 4200, got %q (%v)", account, err)
	}

	if account, err := repo.ChargeIncomeAccount(ctx, "prod-1", "c2"); err != nil || account != "" {
		t.Errorf("expected no mapping, got %q (%v)", account, err)
	}

	if account, err := repo.FeeIncomeAccount(ctx, "prod-1"); err != nil || account != "4000" {
		t.Errorf("expected 4000, got %q (%v)", account, err)
	}

	assertExpectations(t, mockPool)
}

func TestSavingsAccountRepositoryGetByID(t *testing.T) {
	mockPool := newMockPool(t)
	repo := &SavingsAccountRepository{db: mockPool}

	mockPool.ExpectQuery("FROM savings_accounts").
		WithArgs("sa1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "client_id", "product_id", "office_id", "currency_code", "accounting_basis"}).
			AddRow("sa1", "client-1", "prod-1", "1", "USD", "accrual"))

	account, err := repo.GetByID(context.Background(), "sa1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if account.Basis != domain.BasisAccrual || account.ClientID != "client-1" || account.ProductID != "prod-1" {
		t.Errorf("unexpected account: %+v", account)
	}

	mockPool.ExpectQuery("FROM savings_accounts").WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	assertExpectations(t, mockPool)
}
