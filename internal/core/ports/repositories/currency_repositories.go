package repositories

import (
	"context"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its id.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
// Currencies are reference data seeded by migrations, so there is no writer.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
