package dto

import (
	"time"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/usecase"
)

// JournalEntryResponse represents one posted journal line.
type JournalEntryResponse struct {
	ID                    string    `json:"id"`
	OfficeID              string    `json:"office_id"`
	GLAccountID           string    `json:"gl_account_id"`
	CurrencyCode          string    `json:"currency_code"`
	SavingsTransactionID  string    `json:"savings_transaction_id,omitempty"`
	ExternalTransactionID string    `json:"external_transaction_id,omitempty"`
	Side                  string    `json:"side"`
	Amount                string    `json:"amount"`
	Memo                  string    `json:"memo,omitempty"`
	IsReversal            bool      `json:"is_reversal"`
	EntryDate             string    `json:"entry_date"`
	CreatedAt             time.Time `json:"created_at"`
}

// JournalEntryFromDomain converts a domain journal entry to a response.
func JournalEntryFromDomain(e *domain.JournalEntry) *JournalEntryResponse {
	return &JournalEntryResponse{
		ID:                    e.ID,
		OfficeID:              e.OfficeID,
		GLAccountID:           e.GLAccountID,
		CurrencyCode:          e.CurrencyCode,
		SavingsTransactionID:  e.SavingsTransactionID,
		ExternalTransactionID: e.ExternalTransactionID,
		Side:                  string(e.Side),
		Amount:                e.Amount.String(),
		Memo:                  e.Memo,
		IsReversal:            e.IsReversal,
		EntryDate:             e.Date.Format(time.DateOnly),
		CreatedAt:             e.CreatedAt,
	}
}

// GroupResponse represents a posted group with its totals.
type GroupResponse struct {
	GroupTransactionID string                  `json:"group_transaction_id"`
	Debits             string                  `json:"debits"`
	Credits            string                  `json:"credits"`
	Balanced           bool                    `json:"balanced"`
	Entries            []*JournalEntryResponse `json:"entries"`
}

// GroupFromReport converts a group report to a response.
func GroupFromReport(r *usecase.GroupReport) *GroupResponse {
	entries := make([]*JournalEntryResponse, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = JournalEntryFromDomain(e)
	}

	return &GroupResponse{
		GroupTransactionID: r.GroupTransactionID,
		Debits:             r.Debits.String(),
		Credits:            r.Credits.String(),
		Balanced:           r.Debits.Equal(r.Credits),
		Entries:            entries,
	}
}

// FeeSplitDetailResponse represents one fund's share of a split fee.
type FeeSplitDetailResponse struct {
	ID              string  `json:"id"`
	FundID          string  `json:"fund_id"`
	GLAccountID     string  `json:"gl_account_id"`
	JournalEntryID  string  `json:"journal_entry_id"`
	SplitAmount     string  `json:"split_amount"`
	SplitPercentage *string `json:"split_percentage,omitempty"`
}

// FeeSplitAuditResponse represents a fee split audit.
type FeeSplitAuditResponse struct {
	ID                    string                    `json:"id"`
	ExternalTransactionID string                    `json:"external_transaction_id"`
	ChargeID              string                    `json:"charge_id"`
	TotalFeeAmount        string                    `json:"total_fee_amount"`
	DistributedAmount     string                    `json:"distributed_amount"`
	SplitDate             string                    `json:"split_date"`
	CreatedAt             time.Time                 `json:"created_at"`
	Details               []*FeeSplitDetailResponse `json:"details"`
}

// FeeSplitAuditFromDomain converts a domain audit to a response.
func FeeSplitAuditFromDomain(a *domain.FeeSplitAudit) *FeeSplitAuditResponse {
	details := make([]*FeeSplitDetailResponse, len(a.Details))
	for i, d := range a.Details {
		resp := &FeeSplitDetailResponse{
			ID:             d.ID,
			FundID:         d.FundID,
			GLAccountID:    d.GLAccountID,
			JournalEntryID: d.JournalEntryID,
			SplitAmount:    d.SplitAmount.String(),
		}
		if d.SplitPercentage != nil {
			pct := d.SplitPercentage.String()
			resp.SplitPercentage = &pct
		}
		details[i] = resp
	}

	return &FeeSplitAuditResponse{
		ID:                    a.ID,
		ExternalTransactionID: a.ExternalTransactionID,
		ChargeID:              a.ChargeID,
		TotalFeeAmount:        a.TotalFeeAmount.String(),
		DistributedAmount:     a.DistributedAmount().String(),
		SplitDate:             a.SplitDate.Format(time.DateOnly),
		CreatedAt:             a.CreatedAt,
		Details:               details,
	}
}

// FeeSplitAuditsFromDomain converts a list of domain audits.
func FeeSplitAuditsFromDomain(audits []*domain.FeeSplitAudit) []*FeeSplitAuditResponse {
	result := make([]*FeeSplitAuditResponse, len(audits))
	for i, a := range audits {
		result[i] = FeeSplitAuditFromDomain(a)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
