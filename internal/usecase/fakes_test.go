package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
)

// fakeStore is committed state; fakeTx stages writes until Commit.
type fakeStore struct {
	entries     []*domain.JournalEntry
	audits      []*domain.FeeSplitAudit
	events      []*domain.OutboxEvent
	percentages map[string]decimal.Decimal
}

func (s *fakeStore) merge(o *fakeStore) {
	s.entries = append(s.entries, o.entries...)
	s.audits = append(s.audits, o.audits...)
	s.events = append(s.events, o.events...)
	for k, v := range o.percentages {
		if s.percentages == nil {
			s.percentages = make(map[string]decimal.Decimal)
		}
		s.percentages[k] = v
	}
}

type fakeTx struct {
	store      *fakeStore
	pending    fakeStore
	commitErr  error
	committed  bool
	rolledBack bool
}

func newFakeTx(store *fakeStore) *fakeTx {
	return &fakeTx{store: store}
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	if t.rolledBack {
		return errors.New("tx already rolled back")
	}
	t.store.merge(&t.pending)
	t.pending = fakeStore{}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return nil
	}
	t.pending = fakeStore{}
	t.rolledBack = true
	return nil
}

type fakeTxManager struct {
	store     *fakeStore
	beginErr  error
	commitErr error
	txs       []*fakeTx
}

func (m *fakeTxManager) Begin(ctx context.Context) (Transaction, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	tx := newFakeTx(m.store)
	tx.commitErr = m.commitErr
	m.txs = append(m.txs, tx)
	return tx, nil
}

type fakeEntryRepository struct {
	store     *fakeStore
	err       error
	createErr error
}

func (r *fakeEntryRepository) CreateBatch(ctx context.Context, tx Transaction, entries []*domain.JournalEntry) error {
	if r.createErr != nil {
		return r.createErr
	}
	ftx := tx.(*fakeTx)
	ftx.pending.entries = append(ftx.pending.entries, entries...)
	return nil
}

func (r *fakeEntryRepository) ExistsByGroup(ctx context.Context, tx Transaction, groupTransactionID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, e := range r.store.entries {
		if e.GroupTransactionID == groupTransactionID {
			return true, nil
		}
	}
	for _, e := range tx.(*fakeTx).pending.entries {
		if e.GroupTransactionID == groupTransactionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEntryRepository) GetByGroup(ctx context.Context, groupTransactionID string) ([]*domain.JournalEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.JournalEntry
	for _, e := range r.store.entries {
		if e.GroupTransactionID == groupTransactionID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeAuditRepository struct {
	store     *fakeStore
	createErr error
}

func (r *fakeAuditRepository) Create(ctx context.Context, tx Transaction, audit *domain.FeeSplitAudit) error {
	if r.createErr != nil {
		return r.createErr
	}
	ftx := tx.(*fakeTx)
	ftx.pending.audits = append(ftx.pending.audits, audit)
	return nil
}

func (r *fakeAuditRepository) ListByExternalID(ctx context.Context, externalTransactionID string) ([]*domain.FeeSplitAudit, error) {
	var out []*domain.FeeSplitAudit
	for _, a := range r.store.audits {
		if a.ExternalTransactionID == externalTransactionID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeOutboxRepository struct {
	createErr error
}

func (r *fakeOutboxRepository) Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error {
	if r.createErr != nil {
		return r.createErr
	}
	ftx := tx.(*fakeTx)
	ftx.pending.events = append(ftx.pending.events, event)
	return nil
}

func (r *fakeOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	return nil, nil
}

func (r *fakeOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	return nil
}

func (r *fakeOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	return nil
}

type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fakeSplitRepository struct {
	splits map[string][]domain.ChargeSplit
	err    error
}

func (r *fakeSplitRepository) FindActiveByCharge(ctx context.Context, chargeID string) ([]domain.ChargeSplit, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.splits[chargeID], nil
}

type fakeMappingRepository struct {
	charts       map[string]*domain.Chart
	chargeIncome map[string]string
	feeIncome    map[string]string
	err          error
}

func (r *fakeMappingRepository) GetChart(ctx context.Context, productID string, basis domain.AccountingBasis) (*domain.Chart, error) {
	if r.err != nil {
		return nil, r.err
	}
	chart, ok := r.charts[productID+"/"+string(basis)]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "chart", ID: productID}
	}
	return chart, nil
}

func (r *fakeMappingRepository) ChargeIncomeAccount(ctx context.Context, productID, chargeID string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.chargeIncome[productID+"/"+chargeID], nil
}

func (r *fakeMappingRepository) FeeIncomeAccount(ctx context.Context, productID string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.feeIncome[productID], nil
}

type fakeOverrideRepository struct {
	overrides map[string]*domain.ChargeOverride
	err       error
	calls     int
}

func (r *fakeOverrideRepository) FindActive(ctx context.Context, clientID, chargeID string) (*domain.ChargeOverride, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	o, ok := r.overrides[clientID+"/"+chargeID]
	if !ok {
		return nil, domain.ErrOverrideNotFound
	}
	return o, nil
}

type fakeAccountChargeRepository struct {
	charges   map[string]*domain.AccountCharge
	updateErr error
}

func (r *fakeAccountChargeRepository) GetByID(ctx context.Context, id string) (*domain.AccountCharge, error) {
	c, ok := r.charges[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "account charge", ID: id}
	}
	return c, nil
}

func (r *fakeAccountChargeRepository) UpdateWorkingPercentage(ctx context.Context, tx Transaction, id string, percentage decimal.Decimal) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	ftx := tx.(*fakeTx)
	if ftx.pending.percentages == nil {
		ftx.pending.percentages = make(map[string]decimal.Decimal)
	}
	ftx.pending.percentages[id] = percentage
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
