package services

import (
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/SscSPs/fx_settlement/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Listeners are notified after an invoice settlement commits.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, listeners ...portssvc.SettlementListener) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Quote = NewQuoteService(repos.QuoteRepo, repos.CurrencyRepo)
	container.Conversion = NewConversionService(repos.QuoteRepo)

	// Settlement side effects run inside the payment transaction, in this order.
	container.Settlement = NewSettlementDispatcher(
		NewCommerceSettlementHandler(repos.CommerceRepo),
	)

	options := []PaymentServiceOption{WithPaymentTxTimeout(cfg.PaymentTxTimeout)}
	for _, l := range listeners {
		options = append(options, WithSettlementListener(l))
	}
	container.Payment = NewPaymentService(
		repos.InvoiceRepo,
		repos.PaymentRepo,
		container.Conversion,
		container.Settlement,
		options...,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.QuoteSvcFacade          = (*quoteService)(nil)
	_ portssvc.PaymentSvcFacade        = (*paymentService)(nil)
	_ portssvc.SettlementDispatcherSvc = (*settlementDispatcher)(nil)
)
