package domain

import "github.com/shopspring/decimal"

// AmountScale is the number of decimals persisted for rates and amounts.
const AmountScale int32 = 8

// FitsAmountScale reports whether d is stored without losing decimals.
func FitsAmountScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}
