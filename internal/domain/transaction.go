package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind enumerates the savings transaction types that produce postings.
type TransactionKind string

const (
	KindDeposit           TransactionKind = "deposit"
	KindWithdrawal        TransactionKind = "withdrawal"
	KindInterestPosting   TransactionKind = "interest_posting"
	KindAccrual           TransactionKind = "accrual"
	KindFeeDeduction      TransactionKind = "fee_deduction"
	KindWithholdTax       TransactionKind = "withhold_tax"
	KindDividendPayout    TransactionKind = "dividend_payout"
	KindEscheat           TransactionKind = "escheat"
	KindInitiateTransfer  TransactionKind = "initiate_transfer"
	KindWithdrawTransfer  TransactionKind = "withdraw_transfer"
	KindApproveTransfer   TransactionKind = "approve_transfer"
	KindOverdraftInterest TransactionKind = "overdraft_interest"
	KindOverdraftFee      TransactionKind = "overdraft_fee"
	KindWrittenOff        TransactionKind = "written_off"
	KindVatOnFees         TransactionKind = "vat_on_fees"
	KindEmtLevy           TransactionKind = "emt_levy"
)

var validKinds = map[TransactionKind]bool{
	KindDeposit:           true,
	KindWithdrawal:        true,
	KindInterestPosting:   true,
	KindAccrual:           true,
	KindFeeDeduction:      true,
	KindWithholdTax:       true,
	KindDividendPayout:    true,
	KindEscheat:           true,
	KindInitiateTransfer:  true,
	KindWithdrawTransfer:  true,
	KindApproveTransfer:   true,
	KindOverdraftInterest: true,
	KindOverdraftFee:      true,
	KindWrittenOff:        true,
	KindVatOnFees:         true,
	KindEmtLevy:           true,
}

// IsValid reports whether k is a known transaction kind.
func (k TransactionKind) IsValid() bool {
	return validKinds[k]
}

// ChargePayment is the part of a transaction amount settling one fee or penalty charge.
type ChargePayment struct {
	ChargeID string          `json:"charge_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// TaxPayment is the part of a transaction amount owed to one tax component.
type TaxPayment struct {
	TaxComponentID string          `json:"tax_component_id"`
	Amount         decimal.Decimal `json:"amount"`
}

// Transaction is an immutable snapshot of a savings account transaction.
type Transaction struct {
	TransactionDate        time.Time       `json:"transaction_date"`
	ID                     string          `json:"id"`
	SavingsAccountID       string          `json:"savings_account_id"`
	ProductID              string          `json:"product_id"`
	OfficeID               string          `json:"office_id"`
	PaymentTypeID          string          `json:"payment_type_id,omitempty"`
	ExternalTransactionID  string          `json:"external_transaction_id"`
	CurrencyCode           string          `json:"currency_code"`
	Kind                   TransactionKind `json:"kind"`
	Amount                 decimal.Decimal `json:"amount"`
	OverdraftAmount        decimal.Decimal `json:"overdraft_amount"`
	FeePayments            []ChargePayment `json:"fee_payments,omitempty"`
	PenaltyPayments        []ChargePayment `json:"penalty_payments,omitempty"`
	TaxPayments            []TaxPayment    `json:"tax_payments,omitempty"`
	IsReversal             bool            `json:"is_reversal"`
	IsAccountTransfer      bool            `json:"is_account_transfer"`
	IsOverdraftTransaction bool            `json:"is_overdraft_transaction"`
}

// Validate checks the structural invariants of a transaction snapshot.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return NewValidationError("id", "is required")
	}

	if !t.Kind.IsValid() {
		return NewValidationError("kind", fmt.Sprintf("unknown transaction kind %q", t.Kind))
	}

	if t.Amount.IsNegative() {
		return NewValidationError("amount", "must not be negative")
	}

	if t.OverdraftAmount.IsNegative() {
		return NewValidationError("overdraft_amount", "must not be negative")
	}

	if t.OverdraftAmount.GreaterThan(t.Amount) {
		return NewValidationError("overdraft_amount", "must not exceed amount")
	}

	if err := ValidateCurrency(t.CurrencyCode); err != nil {
		return err
	}

	for _, p := range t.FeePayments {
		if p.Amount.IsNegative() {
			return NewValidationError("fee_payments", "amount must not be negative")
		}
	}

	for _, p := range t.PenaltyPayments {
		if p.Amount.IsNegative() {
			return NewValidationError("penalty_payments", "amount must not be negative")
		}
	}

	for _, p := range t.TaxPayments {
		if p.Amount.IsNegative() {
			return NewValidationError("tax_payments", "amount must not be negative")
		}
	}

	return nil
}

// HasPenalty reports whether any penalty charge is settled by the transaction.
func (t *Transaction) HasPenalty() bool {
	return len(t.PenaltyPayments) > 0
}

// OverdraftSplit divides the amount into the part covering an overdrawn balance and the rest.
// The two portions always add up to Amount.
func (t *Transaction) OverdraftSplit() (overdraftPortion, excessPortion decimal.Decimal) {
	overdraftPortion = decimal.Min(t.Amount, t.OverdraftAmount)
	if overdraftPortion.IsNegative() {
		overdraftPortion = decimal.Zero
	}

	return overdraftPortion, t.Amount.Sub(overdraftPortion)
}
