package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/savingsgl/internal/domain"
)

type countingMappingRepo struct {
	charts       int
	chargeIncome int
	feeIncome    int
	err          error
}

func (r *countingMappingRepo) GetChart(_ context.Context, productID string, basis domain.AccountingBasis) (*domain.Chart, error) {
	r.charts++
	if r.err != nil {
		return nil, r.err
	}
	return &domain.Chart{
		ProductID:   productID,
		Basis:       basis,
		Accounts:    map[domain.AccountRole]string{domain.RoleSavingsControl: "2000"},
		TaxAccounts: map[string]string{"vat": "2500"},
	}, nil
}

func (r *countingMappingRepo) ChargeIncomeAccount(_ context.Context, _, chargeID string) (string, error) {
	r.chargeIncome++
	if chargeID == "c1" {
		return "4200", nil
	}
	return "", nil
}

func (r *countingMappingRepo) FeeIncomeAccount(context.Context, string) (string, error) {
	r.feeIncome++
	return "4000", nil
}

func TestAccountMappingCache_GetChartCachesHit(t *testing.T) {
	client, _ := newTestRedisClient(t)

	next := &countingMappingRepo{}
	cache := NewAccountMappingCache(client, next, time.Minute, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		chart, err := cache.GetChart(ctx, "prod-1", domain.BasisCash)
		if err != nil {
			t.Fatalf("get chart failed: %v", err)
		}
		if chart.Accounts[domain.RoleSavingsControl] != "2000" || chart.TaxAccounts["vat"] != "2500" {
			t.Fatalf("unexpected chart: %+v", chart)
		}
	}

	if next.charts != 1 {
		t.Fatalf("expected one load, got %d", next.charts)
	}

	if _, err := cache.GetChart(ctx, "prod-1", domain.BasisAccrual); err != nil {
		t.Fatalf("get chart failed: %v", err)
	}
	if next.charts != 2 {
		t.Fatalf("expected bases to be cached separately, got %d loads", next.charts)
	}
}

func TestAccountMappingCache_ErrorsAreNotCached(t *testing.T) {
	client, _ := newTestRedisClient(t)

	missing := &domain.NotFoundError{Resource: "chart", ID: "prod-1/cash"}
	next := &countingMappingRepo{err: missing}
	cache := NewAccountMappingCache(client, next, time.Minute, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := cache.GetChart(ctx, "prod-1", domain.BasisCash); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	}

	if next.charts != 2 {
		t.Fatalf("expected every miss to reach the repository, got %d", next.charts)
	}
}

func TestAccountMappingCache_IncomeAccounts(t *testing.T) {
	client, _ := newTestRedisClient(t)

	next := &countingMappingRepo{}
	cache := NewAccountMappingCache(client, next, time.Minute, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if account, _ := cache.ChargeIncomeAccount(ctx, "prod-1", "c1"); account != "4200" {
			t.Fatalf("expected 4200, got %q", account)
		}
		if account, _ := cache.ChargeIncomeAccount(ctx, "prod-1", "c2"); account != "" {
			t.Fatalf("expected no mapping, got %q", account)
		}
		if account, _ := cache.FeeIncomeAccount(ctx, "prod-1"); account != "4000" {
			t.Fatalf("expected 4000, got %q", account)
		}
	}

	if next.chargeIncome != 2 || next.feeIncome != 1 {
		t.Fatalf("expected cached lookups, got charge=%d fee=%d", next.chargeIncome, next.feeIncome)
	}
}

func TestAccountMappingCache_Invalidate(t *testing.T) {
	client, _ := newTestRedisClient(t)

	next := &countingMappingRepo{}
	cache := NewAccountMappingCache(client, next, time.Minute, zerolog.Nop())
	ctx := context.Background()

	_, _ = cache.GetChart(ctx, "prod-1", domain.BasisCash)
	_, _ = cache.GetChart(ctx, "prod-2", domain.BasisCash)

	if err := cache.Invalidate(ctx, "prod-1"); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	_, _ = cache.GetChart(ctx, "prod-1", domain.BasisCash)
	_, _ = cache.GetChart(ctx, "prod-2", domain.BasisCash)

	if next.charts != 3 {
		t.Fatalf("expected only prod-1 to reload, got %d loads", next.charts)
	}
}

func TestAccountMappingCache_RedisDownFallsThrough(t *testing.T) {
	client, mr := newTestRedisClient(t)

	next := &countingMappingRepo{}
	cache := NewAccountMappingCache(client, next, time.Minute, zerolog.Nop())
	mr.Close()

	chart, err := cache.GetChart(context.Background(), "prod-1", domain.BasisCash)
	if err != nil || chart == nil {
		t.Fatalf("expected fallback to repository, got chart=%v err=%v", chart, err)
	}
}

func TestAccountMappingCache_ExpiresAfterTTL(t *testing.T) {
	client, mr := newTestRedisClient(t)

	next := &countingMappingRepo{}
	cache := NewAccountMappingCache(client, next, time.Minute, zerolog.Nop())
	ctx := context.Background()

	_, _ = cache.GetChart(ctx, "prod-1", domain.BasisCash)
	mr.FastForward(2 * time.Minute)
	_, _ = cache.GetChart(ctx, "prod-1", domain.BasisCash)

	if next.charts != 2 {
		t.Fatalf("expected reload after ttl, got %d loads", next.charts)
	}
}
