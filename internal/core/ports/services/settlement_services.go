package services

import (
	"context"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SettlementHandler reacts to an invoice being settled, inside the settling transaction.
type SettlementHandler interface {
	// Name identifies the handler in logs.
	Name() string

	// HandleInvoiceSettled applies the handler's side effect using tx. Returning an error
	// rolls back the payment that settled the invoice.
	HandleInvoiceSettled(ctx context.Context, tx pgx.Tx, event domain.InvoiceSettled) error
}

// SettlementDispatcherSvc fans an InvoiceSettled event out to the registered handlers.
type SettlementDispatcherSvc interface {
	Register(handler SettlementHandler)
	Dispatch(ctx context.Context, tx pgx.Tx, event domain.InvoiceSettled) error
}

// SettlementListener is notified after a settling transaction has committed.
type SettlementListener interface {
	InvoiceSettled(ctx context.Context, event domain.InvoiceSettled)
}
