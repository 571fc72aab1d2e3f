package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitType is how a split share of a fee is expressed.
type SplitType string

const (
	SplitPercentage SplitType = "percentage"
	SplitFlatAmount SplitType = "flat_amount"
)

// SplitScale is the number of decimal places split amounts are rounded to.
const SplitScale = 6

var hundred = decimal.NewFromInt(100)

// ChargeSplit redirects a share of a charge's fee income to a fund's GL account.
type ChargeSplit struct {
	ID          string
	ChargeID    string
	FundID      string
	GLAccountID string
	SplitType   SplitType
	SplitValue  decimal.Decimal
	IsActive    bool
}

// AmountOf returns the split's share of total. Percentage shares are rounded
// half-up to SplitScale places.
func (s *ChargeSplit) AmountOf(total decimal.Decimal) decimal.Decimal {
	if s.SplitType == SplitPercentage {
		return total.Mul(s.SplitValue).Div(hundred).Round(SplitScale)
	}
	return s.SplitValue
}

// ValidateSplits checks a set of active splits against the fee being distributed.
// Percentage splits may add up to at most 100 and flat splits to at most total.
func ValidateSplits(chargeID string, splits []ChargeSplit, total decimal.Decimal) error {
	percentSum, flatSum := decimal.Zero, decimal.Zero

	for _, s := range splits {
		if s.SplitValue.IsNegative() {
			return NewValidationError("split_value", "must not be negative")
		}

		switch s.SplitType {
		case SplitPercentage:
			percentSum = percentSum.Add(s.SplitValue)
		case SplitFlatAmount:
			flatSum = flatSum.Add(s.SplitValue)
		default:
			return NewValidationError("split_type", "unknown split type "+string(s.SplitType))
		}
	}

	if percentSum.GreaterThan(hundred) {
		return &SplitOverAllocationError{
			ChargeID: chargeID,
			Type:     SplitPercentage,
			Total:    percentSum,
			Limit:    hundred,
		}
	}

	if flatSum.GreaterThan(total) {
		return &SplitOverAllocationError{
			ChargeID: chargeID,
			Type:     SplitFlatAmount,
			Total:    flatSum,
			Limit:    total,
		}
	}

	return nil
}

// FeeSplitEvent identifies the fee recognition a split is applied to.
type FeeSplitEvent struct {
	Date                  time.Time
	ExternalTransactionID string
	SavingsTransactionID  string
	OfficeID              string
	ProductID             string
	CurrencyCode          string
	// Sequence is the first group disambiguator to use; zero means 1.
	Sequence int
}

// FeeSplitAudit records one application of a charge's splits. Append-only.
type FeeSplitAudit struct {
	SplitDate             time.Time
	CreatedAt             time.Time
	ID                    string
	ExternalTransactionID string
	ChargeID              string
	TotalFeeAmount        decimal.Decimal
	Details               []FeeSplitDetail
}

// FeeSplitDetail is the outcome of one split within an audit.
type FeeSplitDetail struct {
	SplitPercentage *decimal.Decimal
	ID              string
	FundID          string
	GLAccountID     string
	JournalEntryID  string
	SplitAmount     decimal.Decimal
}

// DistributedAmount sums the split amounts of all details.
func (a *FeeSplitAudit) DistributedAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range a.Details {
		sum = sum.Add(d.SplitAmount)
	}
	return sum
}
