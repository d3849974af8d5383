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

// PgxCommerceRepository reads and advances commerce verification records.
type PgxCommerceRepository struct {
	BaseRepository
}

func newPgxCommerceRepository(pool *pgxpool.Pool) portsrepo.CommerceRepositoryFacade {
	return &PgxCommerceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CommerceRepositoryFacade = (*PgxCommerceRepository)(nil)

// FindCommerceByInvoiceIDForUpdate retrieves and locks the commerce record billed through invoiceID.
func (r *PgxCommerceRepository) FindCommerceByInvoiceIDForUpdate(ctx context.Context, tx pgx.Tx, invoiceID int64) (*domain.CommerceVerification, error) {
	query := `
		SELECT id, invoice_id, business_name, status, last_updated_by, last_updated_at, created_at
		FROM commerce_verifications
		WHERE invoice_id = $1
		FOR UPDATE;
	`
	var m models.CommerceVerification
	err := tx.QueryRow(ctx, query, invoiceID).Scan(
		&m.CommerceID,
		&m.InvoiceID,
		&m.BusinessName,
		&m.Status,
		&m.LastUpdatedBy,
		&m.LastUpdatedAt,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no commerce linked to invoice %d", invoiceID))
		}
		return nil, fmt.Errorf("failed to find commerce for invoice %d: %w", invoiceID, err)
	}

	c := mapping.ToDomainCommerceVerification(m)
	return &c, nil
}

// UpdateCommerceStatusInTx moves a commerce record from one status to another within tx.
func (r *PgxCommerceRepository) UpdateCommerceStatusInTx(ctx context.Context, tx pgx.Tx, commerceID int64, from, to domain.CommerceStatus, actorID string, at time.Time) error {
	query := `
		UPDATE commerce_verifications
		SET status = $3, last_updated_by = $4, last_updated_at = $5
		WHERE id = $1 AND status = $2;
	`
	tag, err := tx.Exec(ctx, query, commerceID, string(from), string(to), actorID, at)
	if err != nil {
		return fmt.Errorf("failed to update commerce %d status: %w", commerceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: commerce %d is no longer %s", apperrors.ErrInvalidState, commerceID, from)
	}
	return nil
}
