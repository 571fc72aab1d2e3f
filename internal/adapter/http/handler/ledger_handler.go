package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/savingsgl/internal/adapter/http/dto"
	"github.com/iho/savingsgl/internal/usecase"
)

// LedgerHandler serves read-only views of posted groups and fee split audits.
type LedgerHandler struct {
	ledgerUC *usecase.LedgerUseCase
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// GetGroup returns the journal entries of one group and whether it balances.
func (h *LedgerHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		writeError(w, http.StatusBadRequest, "missing group ID", "")
		return
	}

	report, err := h.ledgerUC.InspectGroup(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, usecase.ErrInconsistentLedger) && report != nil {
			writeJSON(w, http.StatusConflict, dto.GroupFromReport(report))
			return
		}
		writeError(w, mapDomainError(err), "failed to inspect group", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GroupFromReport(report))
}

// ListFeeSplits returns the fee split audits of an external transaction.
func (h *LedgerHandler) ListFeeSplits(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalID")
	if externalID == "" {
		writeError(w, http.StatusBadRequest, "missing external transaction ID", "")
		return
	}

	audits, err := h.ledgerUC.FeeSplits(r.Context(), externalID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list fee splits", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FeeSplitAuditsFromDomain(audits))
}
