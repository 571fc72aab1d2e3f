package domain

import "time"

// Event types
const (
	EventTypeJournalPosted   = "journal.posted"
	EventTypeFeeSplitApplied = "feesplit.applied"
)

// Aggregate types
const (
	AggregateTypeJournalGroup = "journal_group"
	AggregateTypeFeeSplit     = "fee_split"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// JournalPostedEvent payload
type JournalPostedEvent struct {
	GroupTransactionID    string `json:"group_transaction_id"`
	ExternalTransactionID string `json:"external_transaction_id"`
	OfficeID              string `json:"office_id"`
	CurrencyCode          string `json:"currency_code"`
	Amount                string `json:"amount"`
	Lines                 int    `json:"lines"`
	IsReversal            bool   `json:"is_reversal"`
}

// FeeSplitAppliedEvent payload
type FeeSplitAppliedEvent struct {
	AuditID               string `json:"audit_id"`
	ChargeID              string `json:"charge_id"`
	ExternalTransactionID string `json:"external_transaction_id"`
	TotalFeeAmount        string `json:"total_fee_amount"`
	Splits                int    `json:"splits"`
}

// TransactionEvent is the inbound message announcing a savings transaction to post.
type TransactionEvent struct {
	Transaction    Transaction `json:"transaction"`
	IdempotencyKey string      `json:"idempotency_key,omitempty"`
	ReceivedAt     time.Time   `json:"-"`
}

// Key returns the key used to detect duplicate deliveries.
func (e *TransactionEvent) Key() string {
	if e.IdempotencyKey != "" {
		return e.IdempotencyKey
	}
	return e.Transaction.ExternalTransactionID
}
