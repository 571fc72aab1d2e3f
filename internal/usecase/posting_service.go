package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/infrastructure/metrics"
)

// PostingOptions tunes PostingService behaviour.
type PostingOptions struct {
	// PersistCappedPercentage stores a cap back-solved percentage on the account charge.
	PersistCappedPercentage bool
	IdempotencyTTL          time.Duration
	// ClaimTTL is how long an unfinished claim holds an event's key.
	ClaimTTL time.Duration
}

// errAlreadyPosted marks a transaction whose own journal group exists already.
var errAlreadyPosted = errors.New("savings transaction already posted")

// PostingResult is the outcome of processing one transaction event.
type PostingResult struct {
	GroupTransactionID string                  `json:"group_transaction_id,omitempty"`
	Entries            []*domain.JournalEntry  `json:"-"`
	Audits             []*domain.FeeSplitAudit `json:"-"`
	EntryCount         int                     `json:"entries"`
	AuditCount         int                     `json:"audits"`
	Duplicate          bool                    `json:"duplicate"`
}

// PostingService runs the posting pipeline for savings transaction events.
type PostingService struct {
	txManager         TransactionManager
	accountRepo       SavingsAccountRepository
	mappingRepo       AccountMappingRepository
	chargeRepo        ChargeRepository
	accountChargeRepo AccountChargeRepository
	dispatcher        *PostingRuleDispatcher
	writer            *JournalEntryWriter
	splitEngine       *FeeSplitEngine
	calculator        *ChargeFeeCalculator
	idempotency       IdempotencyStore
	retrier           Retrier
	logger            zerolog.Logger
	metrics           *metrics.Metrics
	opts              PostingOptions
}

// NewPostingService creates a new PostingService.
func NewPostingService(
	txManager TransactionManager,
	accountRepo SavingsAccountRepository,
	mappingRepo AccountMappingRepository,
	chargeRepo ChargeRepository,
	accountChargeRepo AccountChargeRepository,
	dispatcher *PostingRuleDispatcher,
	writer *JournalEntryWriter,
	splitEngine *FeeSplitEngine,
	calculator *ChargeFeeCalculator,
	idempotency IdempotencyStore,
	retrier Retrier,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
	opts PostingOptions,
) *PostingService {
	if opts.IdempotencyTTL <= 0 {
		opts.IdempotencyTTL = IdempotencyKeyTTL
	}
	if opts.ClaimTTL <= 0 {
		opts.ClaimTTL = IdempotencyClaimTTL
	}

	return &PostingService{
		txManager:         txManager,
		accountRepo:       accountRepo,
		mappingRepo:       mappingRepo,
		chargeRepo:        chargeRepo,
		accountChargeRepo: accountChargeRepo,
		dispatcher:        dispatcher,
		writer:            writer,
		splitEngine:       splitEngine,
		calculator:        calculator,
		idempotency:       idempotency,
		retrier:           retrier,
		logger:            logger,
		metrics:           metrics,
		opts:              opts,
	}
}

// Process posts the journal entries for one transaction event and applies fee
// splits for its split-enabled charges, all in one database transaction.
// Redelivered events are reported as duplicates without writing anything. An
// event claimed by a delivery that has not finished yet returns
// domain.ErrEventInProgress so it can be redelivered later.
func (s *PostingService) Process(ctx context.Context, event domain.TransactionEvent) (*PostingResult, error) {
	start := time.Now()
	txn := event.Transaction
	key := event.Key()

	log := s.logger.With().
		Str("external_id", txn.ExternalTransactionID).
		Str("kind", string(txn.Kind)).
		Logger()

	if s.idempotency != nil && key != "" {
		exists, stored, err := s.idempotency.CheckAndSet(ctx, key, nil, s.opts.ClaimTTL)
		if err != nil {
			return nil, err
		}
		if exists && (len(stored) == 0 || string(stored) == IdempotencyProcessingMarker) {
			log.Warn().Msg("transaction event still in progress")
			s.observe(txn.Kind, "in_progress", start)
			return nil, fmt.Errorf("%w: %s", domain.ErrEventInProgress, key)
		}
		if exists {
			log.Info().Msg("duplicate transaction event skipped")
			s.observe(txn.Kind, "duplicate", start)
			if s.metrics != nil {
				s.metrics.EventsDuplicate.Inc()
			}
			return &PostingResult{Duplicate: true}, nil
		}
	}

	var result *PostingResult
	err := s.retry(ctx, func() error {
		var err error
		result, err = s.process(ctx, txn)
		return err
	})

	if errors.Is(err, errAlreadyPosted) {
		// Posted by an earlier delivery whose idempotency key has expired.
		log.Info().Msg("transaction already posted")
		result, err = &PostingResult{GroupTransactionID: postingGroupID(txn), Duplicate: true}, nil
	}

	if err != nil {
		log.Error().Err(err).Msg("transaction event failed")
		s.observe(txn.Kind, "failed", start)
		if s.idempotency != nil && key != "" {
			if relErr := s.idempotency.Release(ctx, key); relErr != nil {
				log.Warn().Err(relErr).Msg("failed to release idempotency key")
			}
		}
		return nil, err
	}

	if s.idempotency != nil && key != "" {
		if body, mErr := json.Marshal(result); mErr == nil {
			if upErr := s.idempotency.Update(ctx, key, body, s.opts.IdempotencyTTL); upErr != nil {
				log.Warn().Err(upErr).Msg("failed to store idempotency result")
			}
		}
	}

	status := "posted"
	if result.Duplicate {
		status = "duplicate"
	}
	s.observe(txn.Kind, status, start)

	log.Info().
		Str("group_id", result.GroupTransactionID).
		Int("entries", result.EntryCount).
		Int("audits", result.AuditCount).
		Msg("transaction event processed")

	return result, nil
}

func (s *PostingService) process(ctx context.Context, txn domain.Transaction) (*PostingResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	account, err := s.accountRepo.GetByID(txCtx, txn.SavingsAccountID)
	if err != nil {
		return nil, err
	}

	if txn.OfficeID == "" {
		txn.OfficeID = account.OfficeID
	}
	if txn.ProductID == "" {
		txn.ProductID = account.ProductID
	}

	chart, err := s.mappingRepo.GetChart(txCtx, account.ProductID, account.Basis)
	if err != nil {
		return nil, err
	}

	instructions, err := s.dispatcher.Dispatch(txn, account.Basis, chart)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	result := &PostingResult{GroupTransactionID: postingGroupID(txn)}

	if len(instructions) > 0 {
		entries, err := s.writer.Post(txCtx, tx, domain.PostingGroup{
			GroupTransactionID:    result.GroupTransactionID,
			OfficeID:              txn.OfficeID,
			CurrencyCode:          txn.CurrencyCode,
			Date:                  txn.TransactionDate,
			SavingsTransactionID:  txn.ID,
			ExternalTransactionID: txn.ExternalTransactionID,
			Instructions:          instructions,
			IsReversal:            txn.IsReversal,
		})
		if errors.Is(err, domain.ErrDuplicateGroup) {
			return nil, fmt.Errorf("%w: %s", errAlreadyPosted, result.GroupTransactionID)
		}
		if err != nil {
			return nil, err
		}
		result.Entries = entries
	}

	// Reversing the fee does not undo a split already distributed.
	if !txn.IsReversal && recognisesChargeIncome(txn.Kind) {
		seq := 1
		for _, payment := range chargePayments(txn) {
			charge, err := s.chargeRepo.GetByID(txCtx, payment.ChargeID)
			if err != nil {
				return nil, err
			}

			audit, err := s.splitEngine.Apply(txCtx, tx, charge, payment.Amount, domain.FeeSplitEvent{
				Date:                  txn.TransactionDate,
				ExternalTransactionID: txn.ExternalTransactionID,
				SavingsTransactionID:  txn.ID,
				OfficeID:              txn.OfficeID,
				ProductID:             txn.ProductID,
				CurrencyCode:          txn.CurrencyCode,
				Sequence:              seq,
			})
			if err != nil {
				return nil, err
			}

			if audit != nil {
				seq += len(audit.Details)
				result.Audits = append(result.Audits, audit)
			}
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	result.EntryCount = len(result.Entries)
	result.AuditCount = len(result.Audits)

	return result, nil
}

// ApplyChargeFee computes the fee owed for an account charge against a deposit or
// withdrawal amount. A cap back-solved percentage is stored only when configured.
func (s *PostingService) ApplyChargeFee(ctx context.Context, accountChargeID string, account *domain.SavingsAccount, amount decimal.Decimal) (FeeComputation, error) {
	accountCharge, err := s.accountChargeRepo.GetByID(ctx, accountChargeID)
	if err != nil {
		return FeeComputation{}, err
	}

	result, err := s.calculator.Compute(ctx, accountCharge, account, amount)
	if err != nil {
		return FeeComputation{}, err
	}

	if s.metrics != nil {
		s.metrics.FeesComputed.WithLabelValues(string(accountCharge.Charge.CalculationKind)).Inc()
		if result.Capped {
			s.metrics.FeesCapped.Inc()
		}
	}

	if !result.Capped || !s.opts.PersistCappedPercentage {
		return result, nil
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := s.txManager.Begin(txCtx)
	if err != nil {
		return FeeComputation{}, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := s.calculator.PersistWorkingPercentage(txCtx, tx, accountCharge, result); err != nil {
		return FeeComputation{}, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return FeeComputation{}, err
	}

	s.logger.Info().
		Str("charge_id", accountCharge.Charge.ID).
		Str("account_id", account.ID).
		Str("percentage", result.Percentage.String()).
		Msg("working percentage updated")

	return result, nil
}

func (s *PostingService) retry(ctx context.Context, op func() error) error {
	if s.retrier == nil {
		return op()
	}
	return s.retrier.Retry(ctx, op)
}

func (s *PostingService) observe(kind domain.TransactionKind, status string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.EventsProcessed.WithLabelValues(string(kind), status).Inc()
	s.metrics.ProcessingDuration.Observe(time.Since(start).Seconds())
}

// postingGroupID derives the journal group id of a savings transaction.
func postingGroupID(txn domain.Transaction) string {
	groupID := SavingsGroupPrefix + txn.ID
	if txn.IsReversal {
		groupID += ReversalGroupSuffix
	}
	return groupID
}

// recognisesChargeIncome reports whether the posting rule of kind credits a fee
// or penalty income account. Only that income can be split across funds.
func recognisesChargeIncome(kind domain.TransactionKind) bool {
	switch kind {
	case domain.KindFeeDeduction, domain.KindOverdraftFee:
		return true
	}
	return false
}

func chargePayments(txn domain.Transaction) []domain.ChargePayment {
	payments := make([]domain.ChargePayment, 0, len(txn.FeePayments)+len(txn.PenaltyPayments))
	payments = append(payments, txn.FeePayments...)
	payments = append(payments, txn.PenaltyPayments...)
	return payments
}
