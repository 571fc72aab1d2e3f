package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		txn         Transaction
		expectError bool
	}{
		{
			name: "valid deposit",
			txn: Transaction{
				ID:           "t1",
				Kind:         KindDeposit,
				Amount:       decimal.NewFromInt(100),
				CurrencyCode: "USD",
			},
		},
		{
			name: "zero amount is allowed",
			txn: Transaction{
				ID:           "t1",
				Kind:         KindInterestPosting,
				Amount:       decimal.Zero,
				CurrencyCode: "KES",
			},
		},
		{
			name: "missing id",
			txn: Transaction{
				Kind:         KindDeposit,
				Amount:       decimal.NewFromInt(100),
				CurrencyCode: "USD",
			},
			expectError: true,
		},
		{
			name: "unknown kind",
			txn: Transaction{
				ID:           "t1",
				Kind:         TransactionKind("loan_repayment"),
				Amount:       decimal.NewFromInt(100),
				CurrencyCode: "USD",
			},
			expectError: true,
		},
		{
			name: "negative amount",
			txn: Transaction{
				ID:           "t1",
				Kind:         KindWithdrawal,
				Amount:       decimal.NewFromInt(-1),
				CurrencyCode: "USD",
			},
			expectError: true,
		},
		{
			name: "overdraft larger than amount",
			txn: Transaction{
				ID:              "t1",
				Kind:            KindWithdrawal,
				Amount:          decimal.NewFromInt(100),
				OverdraftAmount: decimal.NewFromInt(101),
				CurrencyCode:    "USD",
			},
			expectError: true,
		},
		{
			name: "invalid currency",
			txn: Transaction{
				ID:           "t1",
				Kind:         KindDeposit,
				Amount:       decimal.NewFromInt(100),
				CurrencyCode: "XXZ",
			},
			expectError: true,
		},
		{
			name: "negative tax leg",
			txn: Transaction{
				ID:           "t1",
				Kind:         KindWithholdTax,
				Amount:       decimal.NewFromInt(10),
				CurrencyCode: "USD",
				TaxPayments:  []TaxPayment{{TaxComponentID: "t1", Amount: decimal.NewFromInt(-10)}},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTransaction_OverdraftSplit(t *testing.T) {
	tests := []struct {
		name          string
		amount        int64
		overdraft     int64
		wantOverdraft int64
		wantExcess    int64
	}{
		{name: "no overdraft", amount: 500, overdraft: 0, wantOverdraft: 0, wantExcess: 500},
		{name: "partial overdraft", amount: 500, overdraft: 300, wantOverdraft: 300, wantExcess: 200},
		{name: "fully overdrawn", amount: 500, overdraft: 500, wantOverdraft: 500, wantExcess: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{
				Amount:          decimal.NewFromInt(tt.amount),
				OverdraftAmount: decimal.NewFromInt(tt.overdraft),
			}

			od, excess := txn.OverdraftSplit()

			if !od.Equal(decimal.NewFromInt(tt.wantOverdraft)) {
				t.Errorf("overdraft portion = %s, want %d", od, tt.wantOverdraft)
			}
			if !excess.Equal(decimal.NewFromInt(tt.wantExcess)) {
				t.Errorf("excess portion = %s, want %d", excess, tt.wantExcess)
			}
			if !od.Add(excess).Equal(txn.Amount) {
				t.Errorf("portions %s + %s do not add up to %s", od, excess, txn.Amount)
			}
		})
	}
}
