package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Side is the debit or credit side of a posting line.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideDebit {
		return SideCredit
	}
	return SideDebit
}

// AccountingBasis selects which chart of GL accounts a product posts to.
type AccountingBasis string

const (
	BasisCash    AccountingBasis = "cash"
	BasisAccrual AccountingBasis = "accrual"
)

// ParseAccountingBasis parses a basis name, case-insensitively.
func ParseAccountingBasis(s string) (AccountingBasis, error) {
	switch AccountingBasis(strings.ToLower(strings.TrimSpace(s))) {
	case BasisCash:
		return BasisCash, nil
	case BasisAccrual:
		return BasisAccrual, nil
	default:
		return "", NewValidationError("basis", fmt.Sprintf("unknown accounting basis %q", s))
	}
}

// AccountRole names a GL account by its function in a savings product's chart.
type AccountRole string

const (
	RoleSavingsControl            AccountRole = "savings_control"
	RoleSavingsReference          AccountRole = "savings_reference"
	RoleLiabilityTransfer         AccountRole = "liability_transfer"
	RolePayableDividends          AccountRole = "payable_dividends"
	RoleEscheatLiability          AccountRole = "escheat_liability"
	RoleInterestOnSavings         AccountRole = "interest_on_savings"
	RoleInterestPayable           AccountRole = "interest_payable"
	RoleIncomeFromFees            AccountRole = "income_from_fees"
	RoleIncomeFromPenalties       AccountRole = "income_from_penalties"
	RoleIncomeFromInterest        AccountRole = "income_from_interest"
	RoleTransfersSuspense         AccountRole = "transfers_suspense"
	RoleOverdraftPortfolioControl AccountRole = "overdraft_portfolio_control"
	RoleLossesWrittenOff          AccountRole = "losses_written_off"
	RoleEMTLevy                   AccountRole = "emt_levy"
)

// Chart is the chart-of-accounts snapshot of one product under one accounting basis.
type Chart struct {
	ProductID   string                 `json:"product_id"`
	Basis       AccountingBasis        `json:"basis"`
	Accounts    map[AccountRole]string `json:"accounts"`
	TaxAccounts map[string]string      `json:"tax_accounts,omitempty"`
}

// Account returns the GL account mapped to role.
func (c *Chart) Account(role AccountRole) (string, error) {
	id, ok := c.Accounts[role]
	if !ok || id == "" {
		return "", &MissingAccountMappingError{ProductID: c.ProductID, Role: string(role)}
	}
	return id, nil
}

// PostingInstruction is one transient debit or credit line produced by the dispatcher.
type PostingInstruction struct {
	Side               Side            `json:"side"`
	GLAccountID        string          `json:"gl_account_id"`
	Amount             decimal.Decimal `json:"amount"`
	Memo               string          `json:"memo,omitempty"`
	GroupTransactionID string          `json:"group_transaction_id,omitempty"`
}

// PostingGroup is a set of instructions committed as one logical journal event.
type PostingGroup struct {
	Date                  time.Time
	GroupTransactionID    string
	OfficeID              string
	CurrencyCode          string
	SavingsTransactionID  string
	ExternalTransactionID string
	Instructions          []PostingInstruction
	IsReversal            bool
}

// Stamp assigns the group's transaction id to instructions that carry none.
func (g *PostingGroup) Stamp() {
	for i := range g.Instructions {
		if g.Instructions[i].GroupTransactionID == "" {
			g.Instructions[i].GroupTransactionID = g.GroupTransactionID
		}
	}
}

// Validate checks that the group can be committed as one balanced journal event.
func (g *PostingGroup) Validate() error {
	if g.GroupTransactionID == "" {
		return ErrEmptyGroupID
	}

	var hasDebit, hasCredit bool
	for _, in := range g.Instructions {
		if in.GroupTransactionID != g.GroupTransactionID {
			return fmt.Errorf("%w: %q in group %q", ErrMixedGroup, in.GroupTransactionID, g.GroupTransactionID)
		}

		if in.GLAccountID == "" {
			return NewValidationError("gl_account_id", "posting line has no GL account")
		}

		if err := ValidatePostingAmount(in.Amount); err != nil {
			return err
		}

		switch in.Side {
		case SideDebit:
			hasDebit = true
		case SideCredit:
			hasCredit = true
		default:
			return NewValidationError("side", fmt.Sprintf("unknown side %q", in.Side))
		}
	}

	if !hasDebit || !hasCredit {
		return ErrMissingSide
	}

	debits, credits := g.Totals()
	if !debits.Equal(credits) {
		return &UnbalancedPostingError{
			GroupTransactionID: g.GroupTransactionID,
			Debits:             debits,
			Credits:            credits,
		}
	}

	return nil
}

// Totals sums the debit and credit amounts of the group.
func (g *PostingGroup) Totals() (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, in := range g.Instructions {
		switch in.Side {
		case SideDebit:
			debits = debits.Add(in.Amount)
		case SideCredit:
			credits = credits.Add(in.Amount)
		}
	}
	return debits, credits
}
