package domain

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrencyScale is used when a currency has no known minor unit.
const DefaultCurrencyScale = 2

// ValidateCurrency validates an ISO 4217 currency code.
func ValidateCurrency(currency string) error {
	code := strings.ToUpper(strings.TrimSpace(currency))

	if money.GetCurrency(code) == nil {
		return NewValidationError("currency_code", fmt.Sprintf("%q is not a valid ISO 4217 currency code", currency))
	}

	return nil
}

// CurrencyScale returns the number of minor-unit digits of a currency.
func CurrencyScale(currency string) int32 {
	c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(currency)))
	if c == nil {
		return DefaultCurrencyScale
	}
	return int32(c.Fraction)
}

// RoundToCurrency rounds amount half-up to the currency's minor unit.
func RoundToCurrency(amount decimal.Decimal, currency string) decimal.Decimal {
	return amount.Round(CurrencyScale(currency))
}

// ValidatePostingAmount validates the amount of a single posting line.
func ValidatePostingAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("amount", "posting amount must be positive")
	}
	return nil
}
