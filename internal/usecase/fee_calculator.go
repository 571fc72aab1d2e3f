package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// FeeComputation is the result of computing a charge against one transaction.
type FeeComputation struct {
	Owed decimal.Decimal `json:"owed"`
	// Percentage is the effective percentage for percentage charges, after any
	// back-solve from a cap. Zero for flat charges.
	Percentage decimal.Decimal `json:"percentage"`
	Capped     bool            `json:"capped"`
}

// ChargeFeeCalculator computes the amount owed for a fee or penalty on a transaction.
type ChargeFeeCalculator struct {
	resolver          *ChargeOverrideResolver
	accountChargeRepo AccountChargeRepository
	logger            zerolog.Logger
}

// NewChargeFeeCalculator creates a new ChargeFeeCalculator.
func NewChargeFeeCalculator(
	resolver *ChargeOverrideResolver,
	accountChargeRepo AccountChargeRepository,
	logger zerolog.Logger,
) *ChargeFeeCalculator {
	return &ChargeFeeCalculator{
		resolver:          resolver,
		accountChargeRepo: accountChargeRepo,
		logger:            logger,
	}
}

// ComputeOwed returns the amount owed, or zero when nothing should be charged.
func (c *ChargeFeeCalculator) ComputeOwed(ctx context.Context, charge *domain.AccountCharge, account *domain.SavingsAccount, transactionAmount decimal.Decimal) (decimal.Decimal, error) {
	result, err := c.Compute(ctx, charge, account, transactionAmount)
	if err != nil {
		return decimal.Zero, err
	}
	return result.Owed, nil
}

// Compute is ComputeOwed with the effective percentage and cap outcome.
func (c *ChargeFeeCalculator) Compute(ctx context.Context, charge *domain.AccountCharge, account *domain.SavingsAccount, transactionAmount decimal.Decimal) (FeeComputation, error) {
	var (
		result FeeComputation
		err    error
	)

	switch charge.Charge.CalculationKind {
	case domain.CalculationFlat:
		result, err = c.computeFlat(ctx, charge, account)
	case domain.CalculationPercentageOfAmount:
		result, err = c.computePercentage(ctx, charge, account, transactionAmount)
	default:
		return FeeComputation{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedCalcKind, charge.Charge.CalculationKind)
	}
	if err != nil {
		return FeeComputation{}, err
	}

	if result.Owed.LessThanOrEqual(decimal.Zero) {
		result.Owed = decimal.Zero
	}

	return result, nil
}

func (c *ChargeFeeCalculator) computeFlat(ctx context.Context, charge *domain.AccountCharge, account *domain.SavingsAccount) (FeeComputation, error) {
	current := charge.Amount
	amount, err := c.resolver.ResolveAmount(ctx, account.ClientID, &charge.Charge, &current)
	if err != nil {
		return FeeComputation{}, err
	}

	owed := domain.RoundToCurrency(amount.Sub(charge.Settled()), account.CurrencyCode)

	return FeeComputation{Owed: owed}, nil
}

func (c *ChargeFeeCalculator) computePercentage(ctx context.Context, charge *domain.AccountCharge, account *domain.SavingsAccount, transactionAmount decimal.Decimal) (FeeComputation, error) {
	percentage, err := c.resolver.ResolveAmount(ctx, account.ClientID, &charge.Charge, nil)
	if err != nil {
		return FeeComputation{}, err
	}

	minCap, err := c.resolver.ResolveMinCap(ctx, account.ClientID, &charge.Charge)
	if err != nil {
		return FeeComputation{}, err
	}

	maxCap, err := c.resolver.ResolveMaxCap(ctx, account.ClientID, &charge.Charge)
	if err != nil {
		return FeeComputation{}, err
	}

	computed := transactionAmount.Mul(percentage).Div(hundred)
	desired := clamp(computed, minCap, maxCap)

	capped := !desired.Equal(computed)
	if capped && transactionAmount.IsPositive() {
		// Consumers read the percentage, so the cap is expressed as one.
		percentage = desired.Mul(hundred).Div(transactionAmount)
		computed = transactionAmount.Mul(percentage).Div(hundred)

		c.logger.Debug().
			Str("charge_id", charge.Charge.ID).
			Str("account_id", account.ID).
			Str("desired", desired.String()).
			Str("percentage", percentage.String()).
			Msg("fee capped, percentage back-solved")
	}

	return FeeComputation{
		Owed:       domain.RoundToCurrency(computed, account.CurrencyCode),
		Percentage: percentage,
		Capped:     capped,
	}, nil
}

// PersistWorkingPercentage stores a back-solved percentage on the account charge.
// It is a no-op unless the computation was capped.
func (c *ChargeFeeCalculator) PersistWorkingPercentage(ctx context.Context, tx Transaction, charge *domain.AccountCharge, result FeeComputation) error {
	if !result.Capped || c.accountChargeRepo == nil {
		return nil
	}

	return c.accountChargeRepo.UpdateWorkingPercentage(ctx, tx, charge.ID, result.Percentage)
}

func clamp(v decimal.Decimal, lower, upper *decimal.Decimal) decimal.Decimal {
	if lower != nil && v.LessThan(*lower) {
		v = *lower
	}
	if upper != nil && v.GreaterThan(*upper) {
		v = *upper
	}
	return v
}
