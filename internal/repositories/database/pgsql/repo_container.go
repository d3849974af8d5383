package pgsql

import (
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		QuoteRepo:    newPgxQuoteRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		PaymentRepo:  newPgxPaymentRepository(dbPool),
		CommerceRepo: newPgxCommerceRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
