package usecase

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
)

// JournalEntryRepository defines data access for journal entries.
type JournalEntryRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, entries []*domain.JournalEntry) error
	ExistsByGroup(ctx context.Context, tx Transaction, groupTransactionID string) (bool, error)
	GetByGroup(ctx context.Context, groupTransactionID string) ([]*domain.JournalEntry, error)
}

// ChargeRepository defines read access to charge definitions.
type ChargeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Charge, error)
}

// AccountChargeRepository defines access to charges attached to savings accounts.
type AccountChargeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AccountCharge, error)
	UpdateWorkingPercentage(ctx context.Context, tx Transaction, id string, percentage decimal.Decimal) error
}

// OverrideRepository defines read access to client charge overrides.
type OverrideRepository interface {
	// FindActive returns domain.ErrOverrideNotFound when the client has no active override.
	FindActive(ctx context.Context, clientID, chargeID string) (*domain.ChargeOverride, error)
}

// SplitRepository defines read access to charge splits.
type SplitRepository interface {
	FindActiveByCharge(ctx context.Context, chargeID string) ([]domain.ChargeSplit, error)
}

// FeeSplitAuditRepository defines data access for fee split audits.
type FeeSplitAuditRepository interface {
	Create(ctx context.Context, tx Transaction, audit *domain.FeeSplitAudit) error
	ListByExternalID(ctx context.Context, externalTransactionID string) ([]*domain.FeeSplitAudit, error)
}

// AccountMappingRepository resolves product charts of accounts and fee income mappings.
type AccountMappingRepository interface {
	GetChart(ctx context.Context, productID string, basis domain.AccountingBasis) (*domain.Chart, error)
	// ChargeIncomeAccount returns "" when the product has no charge-specific mapping.
	ChargeIncomeAccount(ctx context.Context, productID, chargeID string) (string, error)
	// FeeIncomeAccount returns "" when the product has no default fee income mapping.
	FeeIncomeAccount(ctx context.Context, productID string) (string, error)
}

// SavingsAccountRepository defines read access to savings account snapshots.
type SavingsAccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SavingsAccount, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release removes a key so a failed event can be retried.
	Release(ctx context.Context, key string) error
}

// Retrier re-runs an operation on transient persistence failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
