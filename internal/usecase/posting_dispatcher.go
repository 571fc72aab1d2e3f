package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
)

// postingRule is the debit/credit account pair a transaction kind posts to.
type postingRule struct {
	debit  domain.AccountRole
	credit domain.AccountRole
	// overdraftAware rules post the overdraft portion against the overdraft
	// portfolio control account in place of savings control.
	overdraftAware bool
}

// PostingRuleDispatcher maps a transaction to the posting instructions it requires.
// It holds no state; identical input always yields identical instructions.
type PostingRuleDispatcher struct{}

// NewPostingRuleDispatcher creates a new PostingRuleDispatcher.
func NewPostingRuleDispatcher() *PostingRuleDispatcher {
	return &PostingRuleDispatcher{}
}

// Dispatch returns the ordered posting instructions for txn under basis, using
// accounts from chart only. Transactions with a zero amount produce no instructions.
func (d *PostingRuleDispatcher) Dispatch(txn domain.Transaction, basis domain.AccountingBasis, chart *domain.Chart) ([]domain.PostingInstruction, error) {
	if chart == nil {
		return nil, &domain.MissingAccountMappingError{ProductID: txn.ProductID, Role: "chart"}
	}

	if chart.Basis != basis {
		return nil, fmt.Errorf("%w: chart %s, requested %s", domain.ErrChartBasisMismatch, chart.Basis, basis)
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if !txn.Amount.IsPositive() {
		return nil, nil
	}

	b := &instructionBuilder{chart: chart, reversal: txn.IsReversal, memo: string(txn.Kind)}

	switch txn.Kind {
	case domain.KindWithholdTax, domain.KindVatOnFees:
		d.dispatchTax(b, txn)
	default:
		rule, err := ruleFor(txn, basis)
		if err != nil {
			return nil, err
		}

		if rule.overdraftAware {
			overdraftPortion, excessPortion := txn.OverdraftSplit()
			b.pair(overdraftRole(rule.debit), overdraftRole(rule.credit), overdraftPortion, "overdraft portion")
			b.pair(rule.debit, rule.credit, excessPortion, "")
		} else {
			b.pair(rule.debit, rule.credit, txn.Amount, "")
		}
	}

	if b.err != nil {
		return nil, b.err
	}

	return b.instructions, nil
}

func (d *PostingRuleDispatcher) dispatchTax(b *instructionBuilder, txn domain.Transaction) {
	if len(txn.TaxPayments) == 0 {
		b.pair(domain.RoleSavingsControl, domain.RoleSavingsReference, txn.Amount, "")
		return
	}

	for _, tp := range txn.TaxPayments {
		creditAccount := b.chart.TaxAccounts[tp.TaxComponentID]
		if creditAccount == "" {
			creditAccount = b.account(domain.RoleSavingsReference)
		}
		b.pairAccounts(b.account(domain.RoleSavingsControl), creditAccount, tp.Amount, "tax component "+tp.TaxComponentID)
	}
}

func ruleFor(txn domain.Transaction, basis domain.AccountingBasis) (postingRule, error) {
	switch txn.Kind {
	case domain.KindDeposit:
		if txn.IsAccountTransfer {
			return postingRule{domain.RoleLiabilityTransfer, domain.RoleSavingsControl, true}, nil
		}
		return postingRule{domain.RoleSavingsReference, domain.RoleSavingsControl, true}, nil

	case domain.KindWithdrawal:
		if txn.IsAccountTransfer {
			return postingRule{domain.RoleSavingsControl, domain.RoleLiabilityTransfer, true}, nil
		}
		return postingRule{domain.RoleSavingsControl, domain.RoleSavingsReference, true}, nil

	case domain.KindDividendPayout:
		return postingRule{domain.RolePayableDividends, domain.RoleSavingsControl, false}, nil

	case domain.KindEscheat:
		return postingRule{domain.RoleSavingsControl, domain.RoleEscheatLiability, false}, nil

	case domain.KindInterestPosting:
		if basis == domain.BasisAccrual {
			return postingRule{domain.RoleInterestPayable, domain.RoleSavingsControl, true}, nil
		}
		return postingRule{domain.RoleInterestOnSavings, domain.RoleSavingsControl, true}, nil

	case domain.KindAccrual:
		return postingRule{domain.RoleInterestOnSavings, domain.RoleInterestPayable, false}, nil

	case domain.KindFeeDeduction:
		if txn.HasPenalty() {
			return postingRule{domain.RoleSavingsControl, domain.RoleIncomeFromPenalties, true}, nil
		}
		return postingRule{domain.RoleSavingsControl, domain.RoleIncomeFromFees, true}, nil

	case domain.KindInitiateTransfer:
		return postingRule{domain.RoleSavingsControl, domain.RoleTransfersSuspense, false}, nil

	case domain.KindWithdrawTransfer, domain.KindApproveTransfer:
		return postingRule{domain.RoleTransfersSuspense, domain.RoleSavingsControl, false}, nil

	case domain.KindOverdraftInterest:
		return postingRule{domain.RoleSavingsReference, domain.RoleIncomeFromInterest, false}, nil

	case domain.KindWrittenOff:
		return postingRule{domain.RoleLossesWrittenOff, domain.RoleOverdraftPortfolioControl, false}, nil

	case domain.KindOverdraftFee:
		return postingRule{domain.RoleSavingsReference, domain.RoleIncomeFromFees, false}, nil

	case domain.KindEmtLevy:
		return postingRule{domain.RoleSavingsControl, domain.RoleEMTLevy, true}, nil
	}

	return postingRule{}, domain.NewValidationError("kind", fmt.Sprintf("no posting rule for %q", txn.Kind))
}

func overdraftRole(role domain.AccountRole) domain.AccountRole {
	if role == domain.RoleSavingsControl {
		return domain.RoleOverdraftPortfolioControl
	}
	return role
}

// instructionBuilder accumulates debit/credit pairs, keeping the first error.
type instructionBuilder struct {
	chart        *domain.Chart
	err          error
	memo         string
	instructions []domain.PostingInstruction
	reversal     bool
}

func (b *instructionBuilder) account(role domain.AccountRole) string {
	if b.err != nil {
		return ""
	}

	id, err := b.chart.Account(role)
	if err != nil {
		b.err = err
	}
	return id
}

func (b *instructionBuilder) pair(debit, credit domain.AccountRole, amount decimal.Decimal, note string) {
	if !amount.IsPositive() {
		return
	}
	b.pairAccounts(b.account(debit), b.account(credit), amount, note)
}

func (b *instructionBuilder) pairAccounts(debitAccount, creditAccount string, amount decimal.Decimal, note string) {
	if b.err != nil || !amount.IsPositive() {
		return
	}

	memo := b.memo
	if note != "" {
		memo += " (" + note + ")"
	}

	debitSide, creditSide := domain.SideDebit, domain.SideCredit
	if b.reversal {
		debitSide, creditSide = creditSide, debitSide
		memo += " reversal"
	}

	b.instructions = append(b.instructions,
		domain.PostingInstruction{Side: debitSide, GLAccountID: debitAccount, Amount: amount, Memo: memo},
		domain.PostingInstruction{Side: creditSide, GLAccountID: creditAccount, Amount: amount, Memo: memo},
	)
}
