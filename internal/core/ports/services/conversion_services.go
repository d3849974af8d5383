package services

import (
	"context"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ConversionSvc resolves amounts from one currency to another through a stored quote.
type ConversionSvc interface {
	// Convert resolves the conversion reading the quote from the pool.
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.Conversion, error)

	// ConvertInTx resolves the conversion reading the quote inside the caller's transaction.
	ConvertInTx(ctx context.Context, tx pgx.Tx, req domain.ConversionRequest) (*domain.Conversion, error)
}
