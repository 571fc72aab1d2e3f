package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a persisted debit or credit line against a GL account.
// Entries are never updated; a reversal is a new entry on the opposite side.
type JournalEntry struct {
	CreatedAt             time.Time
	Date                  time.Time
	ID                    string
	OfficeID              string
	GLAccountID           string
	CurrencyCode          string
	GroupTransactionID    string
	SavingsTransactionID  string
	ExternalTransactionID string
	Memo                  string
	Side                  Side
	Amount                decimal.Decimal
	IsReversal            bool
}

// SignedAmount returns the amount as positive for debits and negative for credits.
func (e *JournalEntry) SignedAmount() decimal.Decimal {
	if e.Side == SideCredit {
		return e.Amount.Neg()
	}
	return e.Amount
}
