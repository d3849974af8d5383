package utils

import (
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RoundToPrecision rounds amount to precision decimal places, halves away from zero.
// Example: 48.00016 with precision 2 returns 48.00
// Example: 12.5 with precision 0 returns 13
func RoundToPrecision(amount decimal.Decimal, precision int32) decimal.Decimal {
	return amount.Round(precision)
}

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(currency.Precision)
}
