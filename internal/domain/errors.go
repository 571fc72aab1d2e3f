package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrUnbalancedPosting     = errors.New("debits do not equal credits")
	ErrSplitOverAllocation   = errors.New("fee splits over-allocated")
	ErrMissingAccountMapping = errors.New("no GL account mapping")
	ErrNotFound              = errors.New("not found")
	ErrOverrideNotFound      = fmt.Errorf("charge override %w", ErrNotFound)

	// Posting group errors
	ErrEmptyGroupID        = errors.New("group transaction id is required")
	ErrMixedGroup          = errors.New("instructions belong to different groups")
	ErrMissingSide         = errors.New("group needs at least one debit and one credit")
	ErrDuplicateGroup      = errors.New("group transaction id already posted")
	ErrChartBasisMismatch  = errors.New("chart accounting basis does not match requested basis")
	ErrUnsupportedCalcKind = errors.New("unsupported charge calculation kind")

	// ErrEventInProgress means another delivery holds the event's idempotency claim.
	ErrEventInProgress = errors.New("transaction event is being processed")
)

// ValidationError reports an invalid input field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UnbalancedPostingError is returned when a posting group's debits and credits differ.
type UnbalancedPostingError struct {
	GroupTransactionID string
	Debits             decimal.Decimal
	Credits            decimal.Decimal
}

func (e *UnbalancedPostingError) Error() string {
	return fmt.Sprintf("group %s unbalanced: debits=%s credits=%s",
		e.GroupTransactionID, e.Debits, e.Credits)
}

func (e *UnbalancedPostingError) Unwrap() error { return ErrUnbalancedPosting }

// SplitOverAllocationError is returned when active splits claim more than is available.
type SplitOverAllocationError struct {
	ChargeID string
	Type     SplitType
	Total    decimal.Decimal
	Limit    decimal.Decimal
}

func (e *SplitOverAllocationError) Error() string {
	return fmt.Sprintf("charge %s: %s splits total %s exceeds %s",
		e.ChargeID, e.Type, e.Total, e.Limit)
}

func (e *SplitOverAllocationError) Unwrap() error { return ErrSplitOverAllocation }

// MissingAccountMappingError is returned when no GL account resolves for a role or charge.
type MissingAccountMappingError struct {
	ProductID string
	ChargeID  string
	Role      string
}

func (e *MissingAccountMappingError) Error() string {
	switch {
	case e.ChargeID != "":
		return fmt.Sprintf("no %s account for charge %s (product %s)", e.Role, e.ChargeID, e.ProductID)
	default:
		return fmt.Sprintf("no %s account for product %s", e.Role, e.ProductID)
	}
}

func (e *MissingAccountMappingError) Unwrap() error { return ErrMissingAccountMapping }

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
