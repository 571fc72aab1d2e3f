package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long processed event keys are remembered
	IdempotencyKeyTTL = 24 * time.Hour

	// IdempotencyClaimTTL bounds how long an in-flight claim blocks redeliveries
	// when the worker holding it dies before releasing it
	IdempotencyClaimTTL = 5 * time.Minute

	// IdempotencyProcessingMarker is the value of a claimed, unfinished key
	IdempotencyProcessingMarker = "processing"

	// SavingsGroupPrefix prefixes the group transaction ids of savings transaction postings
	SavingsGroupPrefix = "S"

	// ReversalGroupSuffix marks the group of a reversal posting
	ReversalGroupSuffix = "-R"

	// FeeSplitGroupPrefix prefixes the group transaction ids of fee split postings
	FeeSplitGroupPrefix = "FS"
)
