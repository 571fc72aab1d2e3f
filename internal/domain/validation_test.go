package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		currency    string
		expectError bool
	}{
		{"USD", false},
		{"eur", false},
		{" KES ", false},
		{"", true},
		{"DOLLARS", true},
	}

	for _, tt := range tests {
		err := ValidateCurrency(tt.currency)
		if tt.expectError && !errors.Is(err, ErrValidation) {
			t.Errorf("ValidateCurrency(%q): expected validation error, got %v", tt.currency, err)
		}
		if !tt.expectError && err != nil {
			t.Errorf("ValidateCurrency(%q): unexpected error %v", tt.currency, err)
		}
	}
}

func TestRoundToCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"10.005", "USD", "10.01"},
		{"10.004", "USD", "10"},
		{"1234.5", "JPY", "1235"},
		{"1.23456", "UNKNOWN", "1.23"},
	}

	for _, tt := range tests {
		got := RoundToCurrency(decimal.RequireFromString(tt.amount), tt.currency)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("RoundToCurrency(%s, %s) = %s, want %s", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestStructuredErrorsUnwrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unbalanced", &UnbalancedPostingError{GroupTransactionID: "g"}, ErrUnbalancedPosting},
		{"over allocation", &SplitOverAllocationError{ChargeID: "c"}, ErrSplitOverAllocation},
		{"missing mapping", &MissingAccountMappingError{ProductID: "p", Role: "savings_control"}, ErrMissingAccountMapping},
		{"not found", &NotFoundError{Resource: "charge", ID: "c"}, ErrNotFound},
		{"override not found", ErrOverrideNotFound, ErrNotFound},
		{"validation", NewValidationError("amount", "bad"), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.want)
			}
			if tt.err.Error() == "" {
				t.Error("expected non-empty message")
			}
		})
	}
}
