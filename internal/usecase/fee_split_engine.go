package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/infrastructure/metrics"
)

// FeeSplitEngine redistributes recognised fee income across stakeholder funds.
type FeeSplitEngine struct {
	splitRepo   SplitRepository
	mappingRepo AccountMappingRepository
	auditRepo   FeeSplitAuditRepository
	outboxRepo  OutboxRepository
	writer      *JournalEntryWriter
	idGen       IDGenerator
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewFeeSplitEngine creates a new FeeSplitEngine.
func NewFeeSplitEngine(
	splitRepo SplitRepository,
	mappingRepo AccountMappingRepository,
	auditRepo FeeSplitAuditRepository,
	outboxRepo OutboxRepository,
	writer *JournalEntryWriter,
	idGen IDGenerator,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *FeeSplitEngine {
	return &FeeSplitEngine{
		splitRepo:   splitRepo,
		mappingRepo: mappingRepo,
		auditRepo:   auditRepo,
		outboxRepo:  outboxRepo,
		writer:      writer,
		idGen:       idGen,
		logger:      logger,
		metrics:     metrics,
	}
}

// Apply posts one balanced group per active split of charge and records a single
// audit. It returns nil, nil when the charge has splitting disabled, no active
// splits, or nothing to distribute. On error the caller must roll back tx.
func (e *FeeSplitEngine) Apply(
	ctx context.Context,
	tx Transaction,
	charge *domain.Charge,
	total decimal.Decimal,
	event domain.FeeSplitEvent,
) (*domain.FeeSplitAudit, error) {
	if charge == nil || !charge.FeeSplitEnabled || !total.IsPositive() {
		return nil, nil
	}

	splits, err := e.splitRepo.FindActiveByCharge(ctx, charge.ID)
	if err != nil {
		return nil, err
	}

	active := splits[:0:0]
	for _, s := range splits {
		if s.IsActive {
			active = append(active, s)
		}
	}

	if len(active) == 0 {
		return nil, nil
	}

	if event.SavingsTransactionID == "" {
		return nil, domain.NewValidationError("savings_transaction_id", "is required to derive fee split groups")
	}

	if err := domain.ValidateSplits(charge.ID, active, total); err != nil {
		e.recordError(err)
		return nil, err
	}

	incomeAccount, err := e.incomeAccount(ctx, charge, event.ProductID)
	if err != nil {
		e.recordError(err)
		return nil, err
	}

	now := time.Now().UTC()
	audit := &domain.FeeSplitAudit{
		ID:                    e.idGen.Generate(),
		ExternalTransactionID: event.ExternalTransactionID,
		ChargeID:              charge.ID,
		TotalFeeAmount:        total,
		SplitDate:             event.Date,
		CreatedAt:             now,
	}

	seq := max(event.Sequence, 1) - 1
	for _, split := range active {
		amount := split.AmountOf(total)
		if !amount.IsPositive() {
			continue
		}
		seq++

		groupID := fmt.Sprintf("%s%s-%s-%d", FeeSplitGroupPrefix, event.OfficeID, event.SavingsTransactionID, seq)
		memo := fmt.Sprintf("fee split %s to fund %s", charge.ID, split.FundID)

		entries, err := e.writer.Post(ctx, tx, domain.PostingGroup{
			GroupTransactionID:    groupID,
			OfficeID:              event.OfficeID,
			CurrencyCode:          event.CurrencyCode,
			Date:                  event.Date,
			SavingsTransactionID:  event.SavingsTransactionID,
			ExternalTransactionID: event.ExternalTransactionID,
			Instructions: []domain.PostingInstruction{
				{Side: domain.SideDebit, GLAccountID: incomeAccount, Amount: amount, Memo: memo},
				{Side: domain.SideCredit, GLAccountID: split.GLAccountID, Amount: amount, Memo: memo},
			},
		})
		if err != nil {
			e.recordError(err)
			return nil, fmt.Errorf("fee split %s: %w", groupID, err)
		}

		detail := domain.FeeSplitDetail{
			ID:             e.idGen.Generate(),
			FundID:         split.FundID,
			GLAccountID:    split.GLAccountID,
			JournalEntryID: creditEntryID(entries),
			SplitAmount:    amount,
		}
		if split.SplitType == domain.SplitPercentage {
			pct := split.SplitValue
			detail.SplitPercentage = &pct
		}

		audit.Details = append(audit.Details, detail)
	}

	if len(audit.Details) == 0 {
		return nil, nil
	}

	if err := e.auditRepo.Create(ctx, tx, audit); err != nil {
		return nil, err
	}

	if e.outboxRepo != nil {
		outboxEvent := &domain.OutboxEvent{
			ID:            e.idGen.Generate(),
			AggregateID:   audit.ID,
			AggregateType: domain.AggregateTypeFeeSplit,
			EventType:     domain.EventTypeFeeSplitApplied,
			Payload: map[string]any{
				"audit_id":                audit.ID,
				"charge_id":               audit.ChargeID,
				"external_transaction_id": audit.ExternalTransactionID,
				"total_fee_amount":        audit.TotalFeeAmount.String(),
				"splits":                  len(audit.Details),
			},
			CreatedAt: now,
			Published: false,
		}
		if err := e.outboxRepo.Create(ctx, tx, outboxEvent); err != nil {
			return nil, err
		}
	}

	if e.metrics != nil {
		e.metrics.FeeSplitsApplied.Inc()
		e.metrics.FeeSplitDetails.Add(float64(len(audit.Details)))
		amount, _ := audit.DistributedAmount().Float64()
		e.metrics.FeeSplitAmount.Observe(amount)
	}

	e.logger.Info().
		Str("charge_id", charge.ID).
		Str("external_id", event.ExternalTransactionID).
		Str("total", total.String()).
		Int("splits", len(audit.Details)).
		Msg("fee split applied")

	return audit, nil
}

// incomeAccount resolves the GL account the fee was recognised in: the charge's
// own account, then the product's charge mapping, then its default fee income.
func (e *FeeSplitEngine) incomeAccount(ctx context.Context, charge *domain.Charge, productID string) (string, error) {
	if charge.IncomeAccountID != "" {
		return charge.IncomeAccountID, nil
	}

	account, err := e.mappingRepo.ChargeIncomeAccount(ctx, productID, charge.ID)
	if err != nil {
		return "", err
	}
	if account != "" {
		return account, nil
	}

	account, err = e.mappingRepo.FeeIncomeAccount(ctx, productID)
	if err != nil {
		return "", err
	}
	if account != "" {
		return account, nil
	}

	return "", &domain.MissingAccountMappingError{
		ProductID: productID,
		ChargeID:  charge.ID,
		Role:      string(domain.RoleIncomeFromFees),
	}
}

func (e *FeeSplitEngine) recordError(err error) {
	if e.metrics != nil {
		e.metrics.FeeSplitErrors.WithLabelValues(metrics.ErrorReason(err)).Inc()
	}
}

func creditEntryID(entries []*domain.JournalEntry) string {
	for _, entry := range entries {
		if entry.Side == domain.SideCredit {
			return entry.ID
		}
	}
	return ""
}
