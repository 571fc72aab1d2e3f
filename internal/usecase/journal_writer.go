package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/infrastructure/metrics"
)

// JournalEntryWriter persists posting groups as balanced journal entries.
type JournalEntryWriter struct {
	entryRepo  JournalEntryRepository
	outboxRepo OutboxRepository
	idGen      IDGenerator
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewJournalEntryWriter creates a new JournalEntryWriter.
func NewJournalEntryWriter(
	entryRepo JournalEntryRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) *JournalEntryWriter {
	return &JournalEntryWriter{
		entryRepo:  entryRepo,
		outboxRepo: outboxRepo,
		idGen:      idGen,
		logger:     logger,
		metrics:    metrics,
	}
}

// Post writes every instruction of group inside tx, or nothing. Instructions
// without a group transaction id take the group's. Entries are returned in
// instruction order.
func (w *JournalEntryWriter) Post(ctx context.Context, tx Transaction, group domain.PostingGroup) ([]*domain.JournalEntry, error) {
	// Stamping must not touch the caller's slice.
	group.Instructions = append([]domain.PostingInstruction(nil), group.Instructions...)
	group.Stamp()

	if err := group.Validate(); err != nil {
		w.recordError(err)
		return nil, err
	}

	exists, err := w.entryRepo.ExistsByGroup(ctx, tx, group.GroupTransactionID)
	if err != nil {
		return nil, err
	}

	if exists {
		w.recordError(domain.ErrDuplicateGroup)
		return nil, domain.ErrDuplicateGroup
	}

	now := time.Now().UTC()

	entries := make([]*domain.JournalEntry, 0, len(group.Instructions))
	for _, in := range group.Instructions {
		entries = append(entries, &domain.JournalEntry{
			ID:                    w.idGen.Generate(),
			OfficeID:              group.OfficeID,
			GLAccountID:           in.GLAccountID,
			CurrencyCode:          group.CurrencyCode,
			GroupTransactionID:    group.GroupTransactionID,
			SavingsTransactionID:  group.SavingsTransactionID,
			ExternalTransactionID: group.ExternalTransactionID,
			Memo:                  in.Memo,
			Side:                  in.Side,
			Amount:                in.Amount,
			IsReversal:            group.IsReversal,
			Date:                  group.Date,
			CreatedAt:             now,
		})
	}

	if err := w.entryRepo.CreateBatch(ctx, tx, entries); err != nil {
		return nil, err
	}

	debits, _ := group.Totals()

	if w.outboxRepo != nil {
		event := &domain.OutboxEvent{
			ID:            w.idGen.Generate(),
			AggregateID:   group.GroupTransactionID,
			AggregateType: domain.AggregateTypeJournalGroup,
			EventType:     domain.EventTypeJournalPosted,
			Payload: map[string]any{
				"group_transaction_id":    group.GroupTransactionID,
				"external_transaction_id": group.ExternalTransactionID,
				"office_id":               group.OfficeID,
				"currency_code":           group.CurrencyCode,
				"amount":                  debits.String(),
				"lines":                   len(entries),
				"is_reversal":             group.IsReversal,
			},
			CreatedAt: now,
			Published: false,
		}
		if err := w.outboxRepo.Create(ctx, tx, event); err != nil {
			return nil, err
		}
	}

	if w.metrics != nil {
		w.metrics.PostingGroups.WithLabelValues(strconv.FormatBool(group.IsReversal)).Inc()
		for _, e := range entries {
			w.metrics.JournalEntries.WithLabelValues(string(e.Side)).Inc()
		}
		amount, _ := debits.Float64()
		w.metrics.PostedAmount.WithLabelValues(group.CurrencyCode).Observe(amount)
	}

	w.logger.Debug().
		Str("group_transaction_id", group.GroupTransactionID).
		Str("external_transaction_id", group.ExternalTransactionID).
		Int("lines", len(entries)).
		Str("amount", debits.String()).
		Msg("posting group written")

	return entries, nil
}

func (w *JournalEntryWriter) recordError(err error) {
	if w.metrics != nil {
		w.metrics.PostingErrors.WithLabelValues(metrics.ErrorReason(err)).Inc()
	}
}
