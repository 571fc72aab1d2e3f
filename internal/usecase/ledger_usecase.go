package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
)

var (
	// ErrInconsistentLedger is returned when a posted group is not balanced.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: debits do not equal credits")
)

// GroupReport summarises the journal entries posted under one group transaction id.
type GroupReport struct {
	GroupTransactionID string
	Entries            []*domain.JournalEntry
	Debits             decimal.Decimal
	Credits            decimal.Decimal
}

// LedgerUseCase handles read-side checks over posted journal groups and fee split audits.
type LedgerUseCase struct {
	entryRepo JournalEntryRepository
	auditRepo FeeSplitAuditRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(entryRepo JournalEntryRepository, auditRepo FeeSplitAuditRepository) *LedgerUseCase {
	return &LedgerUseCase{
		entryRepo: entryRepo,
		auditRepo: auditRepo,
	}
}

// InspectGroup loads a posted group and verifies that it balances.
func (uc *LedgerUseCase) InspectGroup(ctx context.Context, groupTransactionID string) (*GroupReport, error) {
	entries, err := uc.entryRepo.GetByGroup(ctx, groupTransactionID)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, &domain.NotFoundError{Resource: "journal group", ID: groupTransactionID}
	}

	report := &GroupReport{
		GroupTransactionID: groupTransactionID,
		Entries:            entries,
		Debits:             decimal.Zero,
		Credits:            decimal.Zero,
	}

	// Signed amounts of a balanced group sum to zero.
	net := decimal.Zero
	for _, e := range entries {
		if e.Side == domain.SideDebit {
			report.Debits = report.Debits.Add(e.Amount)
		} else {
			report.Credits = report.Credits.Add(e.Amount)
		}
		net = net.Add(e.SignedAmount())
	}

	if !net.IsZero() {
		return report, ErrInconsistentLedger
	}

	return report, nil
}

// FeeSplits returns the fee split audits recorded for an external transaction,
// checking that each audit's details add up to no more than its total.
func (uc *LedgerUseCase) FeeSplits(ctx context.Context, externalTransactionID string) ([]*domain.FeeSplitAudit, error) {
	audits, err := uc.auditRepo.ListByExternalID(ctx, externalTransactionID)
	if err != nil {
		return nil, err
	}

	for _, a := range audits {
		if a.DistributedAmount().GreaterThan(a.TotalFeeAmount) {
			return audits, &domain.SplitOverAllocationError{
				ChargeID: a.ChargeID,
				Total:    a.DistributedAmount(),
				Limit:    a.TotalFeeAmount,
			}
		}
	}

	return audits, nil
}
