package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

// commerceSettlementHandler approves the payment step of a commerce verification
// once the invoice billing it is settled.
type commerceSettlementHandler struct {
	BaseService
	commerceRepo portsrepo.CommerceRepositoryFacade
}

// NewCommerceSettlementHandler creates the handler that advances commerce verifications on settlement.
func NewCommerceSettlementHandler(commerceRepo portsrepo.CommerceRepositoryFacade) portssvc.SettlementHandler {
	return &commerceSettlementHandler{commerceRepo: commerceRepo}
}

var _ portssvc.SettlementHandler = (*commerceSettlementHandler)(nil)

func (h *commerceSettlementHandler) Name() string {
	return "commerce_verification"
}

// HandleInvoiceSettled moves AWAITING_PAYMENT to PAYMENT_APPROVED. Any other status, or an
// invoice not linked to a commerce, is left alone.
func (h *commerceSettlementHandler) HandleInvoiceSettled(ctx context.Context, tx pgx.Tx, event domain.InvoiceSettled) error {
	commerce, err := h.commerceRepo.FindCommerceByInvoiceIDForUpdate(ctx, tx, event.InvoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load commerce for invoice %d: %w", event.InvoiceID, err)
	}

	if commerce.Status != domain.CommerceAwaitingPayment {
		h.LogDebug(ctx, "Commerce not awaiting payment, leaving status unchanged",
			slog.Int64("commerce_id", commerce.CommerceID),
			slog.String("status", string(commerce.Status)))
		return nil
	}

	if err := h.commerceRepo.UpdateCommerceStatusInTx(ctx, tx, commerce.CommerceID,
		domain.CommerceAwaitingPayment, domain.CommercePaymentApproved, event.ActorID, event.SettledAt); err != nil {
		return fmt.Errorf("failed to approve payment of commerce %d: %w", commerce.CommerceID, err)
	}

	h.LogInfo(ctx, "Commerce payment approved",
		slog.Int64("commerce_id", commerce.CommerceID),
		slog.Int64("invoice_id", event.InvoiceID),
		slog.String("actor_id", event.ActorID))
	return nil
}
