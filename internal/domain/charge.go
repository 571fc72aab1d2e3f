package domain

import (
	"github.com/shopspring/decimal"
)

// CalculationKind is how a charge derives its amount.
type CalculationKind string

const (
	CalculationFlat               CalculationKind = "flat"
	CalculationPercentageOfAmount CalculationKind = "percentage_of_amount"
)

// Charge is the definition of a fee or penalty.
// For percentage charges Amount holds the percentage.
type Charge struct {
	MinCap          *decimal.Decimal
	MaxCap          *decimal.Decimal
	ID              string
	Name            string
	IncomeAccountID string
	CalculationKind CalculationKind
	Amount          decimal.Decimal
	IsPenalty       bool
	FeeSplitEnabled bool
}

// AccountCharge is a charge as attached to one savings account.
type AccountCharge struct {
	ID               string
	SavingsAccountID string
	Charge           Charge
	Amount           decimal.Decimal
	AmountPaid       decimal.Decimal
	AmountWaived     decimal.Decimal
	AmountWrittenOff decimal.Decimal
}

// Settled returns the part of the charge already paid, waived, or written off.
func (c *AccountCharge) Settled() decimal.Decimal {
	return c.AmountPaid.Add(c.AmountWaived).Add(c.AmountWrittenOff)
}

// ChargeOverride replaces a charge's amount or caps for one client.
// At most one active override exists per client and charge.
type ChargeOverride struct {
	Amount   *decimal.Decimal
	MinCap   *decimal.Decimal
	MaxCap   *decimal.Decimal
	ID       string
	ClientID string
	ChargeID string
	IsActive bool
}

// SavingsAccount is the account snapshot a charge is computed against.
type SavingsAccount struct {
	ID           string
	ClientID     string
	ProductID    string
	OfficeID     string
	CurrencyCode string
	Basis        AccountingBasis
}
