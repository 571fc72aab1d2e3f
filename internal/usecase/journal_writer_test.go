package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/infrastructure/metrics"
)

func newTestWriter(store *fakeStore) (*JournalEntryWriter, *fakeEntryRepository) {
	repo := &fakeEntryRepository{store: store}
	return NewJournalEntryWriter(repo, &fakeOutboxRepository{}, &seqIDGenerator{}, zerolog.Nop(), nil), repo
}

func line(side domain.Side, account, amount string) domain.PostingInstruction {
	return domain.PostingInstruction{Side: side, GLAccountID: account, Amount: dec(amount)}
}

func TestJournalEntryWriter_Post(t *testing.T) {
	store := &fakeStore{}
	w, _ := newTestWriter(store)
	ctx := context.Background()
	tx := newFakeTx(store)

	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries, err := w.Post(ctx, tx, domain.PostingGroup{
		GroupTransactionID:    "S42",
		OfficeID:              "1",
		CurrencyCode:          "USD",
		Date:                  date,
		SavingsTransactionID:  "42",
		ExternalTransactionID: "ext-42",
		Instructions: []domain.PostingInstruction{
			line(domain.SideDebit, "1000", "300"),
			line(domain.SideCredit, "2000", "300"),
			line(domain.SideDebit, "1100", "200"),
			line(domain.SideCredit, "2000", "200"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantAccounts := []string{"1000", "2000", "1100", "2000"}
	if len(entries) != len(wantAccounts) {
		t.Fatalf("expected %d entries, got %d", len(wantAccounts), len(entries))
	}

	for i, e := range entries {
		if e.GLAccountID != wantAccounts[i] {
			t.Errorf("entry %d: expected account %s, got %s", i, wantAccounts[i], e.GLAccountID)
		}
		if e.GroupTransactionID != "S42" || e.OfficeID != "1" || e.CurrencyCode != "USD" {
			t.Errorf("entry %d: group fields not copied: %+v", i, e)
		}
		if !e.Date.Equal(date) || e.ExternalTransactionID != "ext-42" || e.SavingsTransactionID != "42" {
			t.Errorf("entry %d: transaction links not copied: %+v", i, e)
		}
		if e.ID == "" {
			t.Errorf("entry %d: missing id", i)
		}
	}

	if len(tx.pending.entries) != 4 {
		t.Errorf("expected 4 staged entries, got %d", len(tx.pending.entries))
	}

	if len(tx.pending.events) != 1 || tx.pending.events[0].EventType != domain.EventTypeJournalPosted {
		t.Errorf("expected one journal.posted outbox event, got %+v", tx.pending.events)
	}
}

func TestJournalEntryWriter_RejectsIncoherentGroups(t *testing.T) {
	tests := []struct {
		name        string
		group       domain.PostingGroup
		expectedErr error
	}{
		{
			name: "unbalanced",
			group: domain.PostingGroup{
				GroupTransactionID: "S1",
				Instructions: []domain.PostingInstruction{
					line(domain.SideDebit, "1000", "100"),
					line(domain.SideCredit, "2000", "99.99"),
				},
			},
			expectedErr: domain.ErrUnbalancedPosting,
		},
		{
			name: "mixed group ids",
			group: domain.PostingGroup{
				GroupTransactionID: "S1",
				Instructions: []domain.PostingInstruction{
					line(domain.SideDebit, "1000", "100"),
					{Side: domain.SideCredit, GLAccountID: "2000", Amount: dec("100"), GroupTransactionID: "S2"},
				},
			},
			expectedErr: domain.ErrMixedGroup,
		},
		{
			name: "debits only",
			group: domain.PostingGroup{
				GroupTransactionID: "S1",
				Instructions: []domain.PostingInstruction{
					line(domain.SideDebit, "1000", "100"),
					line(domain.SideDebit, "1100", "100"),
				},
			},
			expectedErr: domain.ErrMissingSide,
		},
		{
			name:        "empty group",
			group:       domain.PostingGroup{GroupTransactionID: "S1"},
			expectedErr: domain.ErrMissingSide,
		},
		{
			name: "missing group id",
			group: domain.PostingGroup{
				Instructions: []domain.PostingInstruction{
					line(domain.SideDebit, "1000", "100"),
					line(domain.SideCredit, "2000", "100"),
				},
			},
			expectedErr: domain.ErrEmptyGroupID,
		},
		{
			name: "zero amount line",
			group: domain.PostingGroup{
				GroupTransactionID: "S1",
				Instructions: []domain.PostingInstruction{
					line(domain.SideDebit, "1000", "0"),
					line(domain.SideCredit, "2000", "0"),
				},
			},
			expectedErr: domain.ErrValidation,
		},
		{
			name: "missing gl account",
			group: domain.PostingGroup{
				GroupTransactionID: "S1",
				Instructions: []domain.PostingInstruction{
					line(domain.SideDebit, "", "10"),
					line(domain.SideCredit, "2000", "10"),
				},
			},
			expectedErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			w, _ := newTestWriter(store)
			tx := newFakeTx(store)

			entries, err := w.Post(context.Background(), tx, tt.group)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}

			if entries != nil {
				t.Errorf("expected no entries, got %d", len(entries))
			}

			if len(tx.pending.entries) != 0 || len(tx.pending.events) != 0 {
				t.Errorf("expected nothing staged, got %d entries %d events", len(tx.pending.entries), len(tx.pending.events))
			}
		})
	}
}

func TestJournalEntryWriter_UnbalancedDetails(t *testing.T) {
	w, _ := newTestWriter(&fakeStore{})

	_, err := w.Post(context.Background(), newFakeTx(&fakeStore{}), domain.PostingGroup{
		GroupTransactionID: "S7",
		Instructions: []domain.PostingInstruction{
			line(domain.SideDebit, "1000", "10.000001"),
			line(domain.SideCredit, "2000", "10"),
		},
	})

	var unbalanced *domain.UnbalancedPostingError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("expected UnbalancedPostingError, got %v", err)
	}

	if unbalanced.GroupTransactionID != "S7" || !unbalanced.Debits.Equal(dec("10.000001")) || !unbalanced.Credits.Equal(dec("10")) {
		t.Errorf("unexpected details: %+v", unbalanced)
	}
}

func TestJournalEntryWriter_StampsWithoutMutatingInput(t *testing.T) {
	store := &fakeStore{}
	w, _ := newTestWriter(store)

	instructions := []domain.PostingInstruction{
		line(domain.SideDebit, "1000", "5"),
		line(domain.SideCredit, "2000", "5"),
	}

	entries, err := w.Post(context.Background(), newFakeTx(store), domain.PostingGroup{GroupTransactionID: "S9", Instructions: instructions})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entries[0].GroupTransactionID != "S9" {
		t.Errorf("expected stamped group id, got %q", entries[0].GroupTransactionID)
	}

	if instructions[0].GroupTransactionID != "" {
		t.Errorf("caller instructions mutated: %+v", instructions[0])
	}
}

func TestJournalEntryWriter_DuplicateGroup(t *testing.T) {
	store := &fakeStore{}
	w, _ := newTestWriter(store)
	ctx := context.Background()

	group := domain.PostingGroup{
		GroupTransactionID: "S5",
		Instructions: []domain.PostingInstruction{
			line(domain.SideDebit, "1000", "5"),
			line(domain.SideCredit, "2000", "5"),
		},
	}

	tx := newFakeTx(store)
	if _, err := w.Post(ctx, tx, group); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if _, err := w.Post(ctx, newFakeTx(store), group); !errors.Is(err, domain.ErrDuplicateGroup) {
		t.Fatalf("expected ErrDuplicateGroup, got %v", err)
	}

	if len(store.entries) != 2 {
		t.Errorf("expected 2 committed entries, got %d", len(store.entries))
	}
}

func TestJournalEntryWriter_RepositoryError(t *testing.T) {
	store := &fakeStore{}
	repoErr := errors.New("insert failed")
	w := NewJournalEntryWriter(&fakeEntryRepository{store: store, createErr: repoErr}, &fakeOutboxRepository{}, &seqIDGenerator{}, zerolog.Nop(), nil)
	tx := newFakeTx(store)

	_, err := w.Post(context.Background(), tx, domain.PostingGroup{
		GroupTransactionID: "S3",
		Instructions: []domain.PostingInstruction{
			line(domain.SideDebit, "1000", "5"),
			line(domain.SideCredit, "2000", "5"),
		},
	})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}

	if len(tx.pending.events) != 0 {
		t.Errorf("expected no outbox event after failed insert")
	}
}

func TestJournalEntryWriter_Metrics(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	store := &fakeStore{}
	w := NewJournalEntryWriter(&fakeEntryRepository{store: store}, nil, &seqIDGenerator{}, zerolog.Nop(), m)
	ctx := context.Background()

	_, err := w.Post(ctx, newFakeTx(store), domain.PostingGroup{
		GroupTransactionID: "S8",
		CurrencyCode:       "USD",
		Instructions: []domain.PostingInstruction{
			line(domain.SideDebit, "1000", "5"),
			line(domain.SideCredit, "2000", "5"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _ = w.Post(ctx, newFakeTx(store), domain.PostingGroup{GroupTransactionID: "S9"})

	if got := testutil.ToFloat64(m.PostingGroups.WithLabelValues("false")); got != 1 {
		t.Errorf("expected 1 posting group, got %v", got)
	}
	if got := testutil.ToFloat64(m.JournalEntries.WithLabelValues("credit")); got != 1 {
		t.Errorf("expected 1 credit entry, got %v", got)
	}
	if got := testutil.ToFloat64(m.PostingErrors.WithLabelValues("malformed_group")); got != 1 {
		t.Errorf("expected 1 malformed group error, got %v", got)
	}
}
