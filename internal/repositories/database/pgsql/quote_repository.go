package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	"github.com/SscSPs/fx_settlement/internal/models"
	"github.com/SscSPs/fx_settlement/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const quoteColumns = `q.id, q.origin_currency_id, q.destination_currency_id, q.buy_rate, q.sell_rate,
	q.active, q.created_by, q.created_at, q.updated_at, q.deactivated_by, q.deactivated_at`

// PgxQuoteRepository implements the QuoteRepositoryWithTx port using pgxpool.
type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepositoryWithTx {
	return &PgxQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.QuoteRepositoryWithTx = (*PgxQuoteRepository)(nil)

func quoteScanTargets(m *models.Quote) []any {
	return []any{
		&m.QuoteID,
		&m.OriginCurrencyID,
		&m.DestinationCurrencyID,
		&m.BuyRate,
		&m.SellRate,
		&m.Active,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeactivatedBy,
		&m.DeactivatedAt,
	}
}

func findQuoteByID(ctx context.Context, q querier, quoteID int64) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes q WHERE q.id = $1;`

	var modelQuote models.Quote
	if err := q.QueryRow(ctx, query, quoteID).Scan(quoteScanTargets(&modelQuote)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("quote %d not found", quoteID))
		}
		return nil, fmt.Errorf("failed to find quote by id %d: %w", quoteID, err)
	}

	domainQuote := mapping.ToDomainQuote(modelQuote)
	return &domainQuote, nil
}

// FindQuoteByID retrieves a quote by its id, active or not.
func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID int64) (*domain.Quote, error) {
	return findQuoteByID(ctx, r.Pool, quoteID)
}

// FindQuoteByIDInTx retrieves a quote by its id within tx.
func (r *PgxQuoteRepository) FindQuoteByIDInTx(ctx context.Context, tx pgx.Tx, quoteID int64) (*domain.Quote, error) {
	return findQuoteByID(ctx, tx, quoteID)
}

// ListActiveQuoteListings retrieves every active quote joined with currency names and author name.
// Picking the latest quote per pair happens in the domain layer.
func (r *PgxQuoteRepository) ListActiveQuoteListings(ctx context.Context) ([]domain.QuoteListing, error) {
	query := `
		SELECT ` + quoteColumns + `,
			oc.name, oc.iso_code, dc.name, dc.iso_code, u.name
		FROM quotes q
		JOIN currencies oc ON oc.id = q.origin_currency_id
		JOIN currencies dc ON dc.id = q.destination_currency_id
		LEFT JOIN users u ON u.id = q.created_by
		WHERE q.active = TRUE;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active quotes: %w", err)
	}
	defer rows.Close()

	listings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.QuoteListing, error) {
		var l models.QuoteListing
		targets := append(quoteScanTargets(&l.Quote),
			&l.OriginName,
			&l.OriginISO,
			&l.DestinationName,
			&l.DestinationISO,
			&l.RegisteredByName,
		)
		err := row.Scan(targets...)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan active quotes: %w", err)
	}

	return mapping.ToDomainQuoteListingSlice(listings), nil
}

// SaveQuote inserts a new quote and returns it with the generated id and timestamps.
func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) (*domain.Quote, error) {
	m := mapping.ToModelQuote(quote)
	query := `
		INSERT INTO quotes (origin_currency_id, destination_currency_id, buy_rate, sell_rate, active, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, origin_currency_id, destination_currency_id, buy_rate, sell_rate,
			active, created_by, created_at, updated_at, deactivated_by, deactivated_at;
	`
	var saved models.Quote
	err := r.Pool.QueryRow(ctx, query,
		m.OriginCurrencyID,
		m.DestinationCurrencyID,
		m.BuyRate,
		m.SellRate,
		m.Active,
		m.CreatedBy,
		m.CreatedAt,
	).Scan(quoteScanTargets(&saved)...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quote %d->%d: %w", m.OriginCurrencyID, m.DestinationCurrencyID, err)
	}

	domainQuote := mapping.ToDomainQuote(saved)
	return &domainQuote, nil
}

// DeactivateQuote marks an active quote inactive. A quote that is missing or already inactive yields ErrNotFound.
func (r *PgxQuoteRepository) DeactivateQuote(ctx context.Context, quoteID int64, actorID string, at time.Time) (*domain.Quote, error) {
	query := `
		UPDATE quotes
		SET active = FALSE, deactivated_by = $2, deactivated_at = $3, updated_at = $3
		WHERE id = $1 AND active = TRUE
		RETURNING id, origin_currency_id, destination_currency_id, buy_rate, sell_rate,
			active, created_by, created_at, updated_at, deactivated_by, deactivated_at;
	`
	var m models.Quote
	if err := r.Pool.QueryRow(ctx, query, quoteID, actorID, at).Scan(quoteScanTargets(&m)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("active quote %d not found", quoteID))
		}
		return nil, fmt.Errorf("failed to deactivate quote %d: %w", quoteID, err)
	}

	domainQuote := mapping.ToDomainQuote(m)
	return &domainQuote, nil
}
