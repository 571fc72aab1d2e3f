package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
)

// ChargeOverrideResolver resolves the effective amount and caps of a charge for a client.
type ChargeOverrideResolver struct {
	overrideRepo OverrideRepository
}

// NewChargeOverrideResolver creates a new ChargeOverrideResolver.
func NewChargeOverrideResolver(overrideRepo OverrideRepository) *ChargeOverrideResolver {
	return &ChargeOverrideResolver{
		overrideRepo: overrideRepo,
	}
}

// ResolveAmount returns, in order of precedence, the active override's amount,
// the supplied amount, or the charge's default amount.
func (r *ChargeOverrideResolver) ResolveAmount(ctx context.Context, clientID string, charge *domain.Charge, supplied *decimal.Decimal) (decimal.Decimal, error) {
	override, err := r.activeOverride(ctx, clientID, charge.ID)
	if err != nil {
		return decimal.Zero, err
	}

	if override != nil && override.Amount != nil {
		return *override.Amount, nil
	}

	if supplied != nil {
		return *supplied, nil
	}

	return charge.Amount, nil
}

// ResolveMinCap returns the override's minimum cap if set, else the charge's.
func (r *ChargeOverrideResolver) ResolveMinCap(ctx context.Context, clientID string, charge *domain.Charge) (*decimal.Decimal, error) {
	override, err := r.activeOverride(ctx, clientID, charge.ID)
	if err != nil {
		return nil, err
	}

	if override != nil && override.MinCap != nil {
		return override.MinCap, nil
	}

	return charge.MinCap, nil
}

// ResolveMaxCap returns the override's maximum cap if set, else the charge's.
func (r *ChargeOverrideResolver) ResolveMaxCap(ctx context.Context, clientID string, charge *domain.Charge) (*decimal.Decimal, error) {
	override, err := r.activeOverride(ctx, clientID, charge.ID)
	if err != nil {
		return nil, err
	}

	if override != nil && override.MaxCap != nil {
		return override.MaxCap, nil
	}

	return charge.MaxCap, nil
}

func (r *ChargeOverrideResolver) activeOverride(ctx context.Context, clientID, chargeID string) (*domain.ChargeOverride, error) {
	// Group and entity accounts have no client and never carry overrides.
	if clientID == "" || r.overrideRepo == nil {
		return nil, nil
	}

	override, err := r.overrideRepo.FindActive(ctx, clientID, chargeID)
	if err != nil {
		if errors.Is(err, domain.ErrOverrideNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !override.IsActive {
		return nil, nil
	}

	return override, nil
}
