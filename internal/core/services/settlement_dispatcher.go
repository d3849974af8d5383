package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

// settlementDispatcher runs settlement handlers synchronously, in registration order,
// inside the transaction that settled the invoice.
type settlementDispatcher struct {
	BaseService
	mu       sync.RWMutex
	handlers []portssvc.SettlementHandler
}

// NewSettlementDispatcher creates a dispatcher with the given handlers registered in order.
func NewSettlementDispatcher(handlers ...portssvc.SettlementHandler) portssvc.SettlementDispatcherSvc {
	d := &settlementDispatcher{}
	for _, h := range handlers {
		d.Register(h)
	}
	return d
}

var _ portssvc.SettlementDispatcherSvc = (*settlementDispatcher)(nil)

func (d *settlementDispatcher) Register(handler portssvc.SettlementHandler) {
	if handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handler)
}

// Dispatch stops at the first failing handler and returns its error.
func (d *settlementDispatcher) Dispatch(ctx context.Context, tx pgx.Tx, event domain.InvoiceSettled) error {
	d.mu.RLock()
	handlers := make([]portssvc.SettlementHandler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	for _, h := range handlers {
		if err := h.HandleInvoiceSettled(ctx, tx, event); err != nil {
			d.LogError(ctx, err, "Settlement handler failed",
				slog.String("handler", h.Name()),
				slog.Int64("invoice_id", event.InvoiceID))
			return fmt.Errorf("settlement handler %s: %w", h.Name(), err)
		}
		d.LogDebug(ctx, "Settlement handler applied",
			slog.String("handler", h.Name()),
			slog.Int64("invoice_id", event.InvoiceID))
	}
	return nil
}
