package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory stand-in for the postgres repositories. Reads see committed
// data plus the caller's own pending writes, and FindInvoiceByIDForUpdate holds a
// per-invoice lock until commit or rollback, mirroring SELECT ... FOR UPDATE.
type memStore struct {
	mu            sync.Mutex
	currencies    map[int64]domain.Currency
	quotes        map[int64]domain.Quote
	invoices      map[int64]domain.Invoice
	payments      []domain.Payment
	commerces     map[int64]domain.CommerceVerification
	invoiceLocks  map[int64]*sync.Mutex
	nextPaymentID int64

	// failSavePayment, when set, is returned by SavePaymentInTx.
	failSavePayment error
	commits         int
	rollbacks       int
}

type memTx struct {
	pgx.Tx
	payments        []domain.Payment
	invoiceUpdates  map[int64]domain.Invoice
	commerceUpdates map[int64]domain.CommerceVerification
	locked          []*sync.Mutex
	done            bool
}

var (
	_ portsrepo.CurrencyRepositoryFacade = (*memStore)(nil)
	_ portsrepo.QuoteRepositoryWithTx    = (*memStore)(nil)
	_ portsrepo.InvoiceRepositoryFacade  = (*memStore)(nil)
	_ portsrepo.PaymentRepositoryWithTx  = (*memStore)(nil)
	_ portsrepo.CommerceRepositoryFacade = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		currencies:   map[int64]domain.Currency{},
		quotes:       map[int64]domain.Quote{},
		invoices:     map[int64]domain.Invoice{},
		commerces:    map[int64]domain.CommerceVerification{},
		invoiceLocks: map[int64]*sync.Mutex{},
	}
}

func (s *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: s,
		QuoteRepo:    s,
		InvoiceRepo:  s,
		PaymentRepo:  s,
		CommerceRepo: s,
	}
}

func asMemTx(tx pgx.Tx) *memTx {
	mt, ok := tx.(*memTx)
	if !ok {
		panic(fmt.Sprintf("unexpected transaction type %T", tx))
	}
	return mt
}

// --- TransactionManager ---

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{
		invoiceUpdates:  map[int64]domain.Invoice{},
		commerceUpdates: map[int64]domain.CommerceVerification{},
	}, nil
}

func (s *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	mt := asMemTx(tx)
	if mt.done {
		return pgx.ErrTxClosed
	}
	s.mu.Lock()
	s.payments = append(s.payments, mt.payments...)
	for id, inv := range mt.invoiceUpdates {
		s.invoices[id] = inv
	}
	for id, c := range mt.commerceUpdates {
		s.commerces[id] = c
	}
	s.commits++
	s.mu.Unlock()
	s.release(mt)
	return nil
}

func (s *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	mt := asMemTx(tx)
	if mt.done {
		return nil
	}
	s.mu.Lock()
	s.rollbacks++
	s.mu.Unlock()
	s.release(mt)
	return nil
}

func (s *memStore) release(mt *memTx) {
	mt.done = true
	for _, l := range mt.locked {
		l.Unlock()
	}
	mt.locked = nil
}

// --- Currencies ---

func (s *memStore) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.currencies[currencyID]
	if !ok {
		return nil, apperrors.NewNotFoundError("currency not found")
	}
	return &c, nil
}

func (s *memStore) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		out = append(out, c)
	}
	return out, nil
}

// --- Quotes ---

func (s *memStore) FindQuoteByID(ctx context.Context, quoteID int64) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[quoteID]
	if !ok {
		return nil, apperrors.NewNotFoundError("quote not found")
	}
	return &q, nil
}

func (s *memStore) FindQuoteByIDInTx(ctx context.Context, tx pgx.Tx, quoteID int64) (*domain.Quote, error) {
	return s.FindQuoteByID(ctx, quoteID)
}

func (s *memStore) ListActiveQuoteListings(ctx context.Context) ([]domain.QuoteListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.QuoteListing
	for _, q := range s.quotes {
		if q.IsActive {
			out = append(out, domain.QuoteListing{Quote: q})
		}
	}
	return out, nil
}

func (s *memStore) SaveQuote(ctx context.Context, quote domain.Quote) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quote.QuoteID = int64(len(s.quotes) + 1)
	s.quotes[quote.QuoteID] = quote
	return &quote, nil
}

func (s *memStore) DeactivateQuote(ctx context.Context, quoteID int64, actorID string, at time.Time) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[quoteID]
	if !ok || !q.IsActive {
		return nil, apperrors.NewNotFoundError("active quote not found")
	}
	q.IsActive = false
	q.DeactivatedBy = &actorID
	q.DeactivatedAt = &at
	q.UpdatedAt = &at
	s.quotes[quoteID] = q
	return &q, nil
}

// --- Invoices ---

func (s *memStore) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices[invoiceID]
	if !ok {
		return nil, apperrors.NewNotFoundError("invoice not found")
	}
	return &inv, nil
}

func (s *memStore) FindInvoiceByIDForUpdate(ctx context.Context, tx pgx.Tx, invoiceID int64) (*domain.Invoice, error) {
	mt := asMemTx(tx)

	s.mu.Lock()
	if _, ok := s.invoices[invoiceID]; !ok {
		s.mu.Unlock()
		return nil, apperrors.NewNotFoundError("invoice not found")
	}
	lock, ok := s.invoiceLocks[invoiceID]
	if !ok {
		lock = &sync.Mutex{}
		s.invoiceLocks[invoiceID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	mt.locked = append(mt.locked, lock)

	if inv, ok := mt.invoiceUpdates[invoiceID]; ok {
		return &inv, nil
	}
	return s.FindInvoiceByID(ctx, invoiceID)
}

func (s *memStore) MarkInvoicePaidInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, at time.Time) error {
	mt := asMemTx(tx)
	inv, ok := mt.invoiceUpdates[invoiceID]
	if !ok {
		current, err := s.FindInvoiceByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		inv = *current
	}
	if inv.Status != domain.InvoicePending {
		return fmt.Errorf("%w: invoice %d is not pending", apperrors.ErrInvalidState, invoiceID)
	}
	inv.Status = domain.InvoicePaid
	inv.PaidAt = &at
	inv.UpdatedAt = at
	mt.invoiceUpdates[invoiceID] = inv
	return nil
}

// --- Payments ---

func (s *memStore) visiblePayments(mt *memTx) []domain.Payment {
	s.mu.Lock()
	out := append([]domain.Payment(nil), s.payments...)
	s.mu.Unlock()
	if mt != nil {
		out = append(out, mt.payments...)
	}
	return out
}

func (s *memStore) ListSuccessfulPaymentsInTx(ctx context.Context, tx pgx.Tx, invoiceID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range s.visiblePayments(asMemTx(tx)) {
		if p.InvoiceID == invoiceID && p.Status == domain.PaymentSuccessful {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) ListSuccessfulPayments(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range s.visiblePayments(nil) {
		if p.InvoiceID == invoiceID && p.Status == domain.PaymentSuccessful {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) FindPaymentByIdempotencyKeyInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, key string) (*domain.Payment, error) {
	for _, p := range s.visiblePayments(asMemTx(tx)) {
		if p.InvoiceID == invoiceID && p.IdempotencyKey != nil && *p.IdempotencyKey == key {
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("payment not found")
}

func (s *memStore) ListPaymentsByInvoice(ctx context.Context, invoiceID int64, limit int, afterCreatedAt *time.Time, afterID *int64) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range s.visiblePayments(nil) {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].PaymentID > out[j].PaymentID
	})
	if afterCreatedAt != nil && afterID != nil {
		filtered := out[:0]
		for _, p := range out {
			if p.CreatedAt.Before(*afterCreatedAt) || (p.CreatedAt.Equal(*afterCreatedAt) && p.PaymentID < *afterID) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) (*domain.Payment, error) {
	if s.failSavePayment != nil {
		return nil, s.failSavePayment
	}
	mt := asMemTx(tx)
	if payment.IdempotencyKey != nil {
		if _, err := s.FindPaymentByIdempotencyKeyInTx(ctx, tx, payment.InvoiceID, *payment.IdempotencyKey); err == nil {
			return nil, fmt.Errorf("%w: payment already registered", apperrors.ErrDuplicate)
		}
	}
	s.mu.Lock()
	s.nextPaymentID++
	payment.PaymentID = s.nextPaymentID
	s.mu.Unlock()
	mt.payments = append(mt.payments, payment)
	return &payment, nil
}

// --- Commerce verifications ---

func (s *memStore) FindCommerceByInvoiceIDForUpdate(ctx context.Context, tx pgx.Tx, invoiceID int64) (*domain.CommerceVerification, error) {
	mt := asMemTx(tx)
	for _, c := range mt.commerceUpdates {
		if c.InvoiceID != nil && *c.InvoiceID == invoiceID {
			return &c, nil
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.commerces {
		if c.InvoiceID != nil && *c.InvoiceID == invoiceID {
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("no commerce linked")
}

func (s *memStore) UpdateCommerceStatusInTx(ctx context.Context, tx pgx.Tx, commerceID int64, from, to domain.CommerceStatus, actorID string, at time.Time) error {
	mt := asMemTx(tx)
	c, ok := mt.commerceUpdates[commerceID]
	if !ok {
		s.mu.Lock()
		c, ok = s.commerces[commerceID]
		s.mu.Unlock()
		if !ok {
			return apperrors.NewNotFoundError("commerce not found")
		}
	}
	if c.Status != from {
		return fmt.Errorf("%w: commerce %d is %s", apperrors.ErrInvalidState, commerceID, c.Status)
	}
	c.Status = to
	c.LastUpdatedBy = actorID
	c.LastUpdatedAt = at
	mt.commerceUpdates[commerceID] = c
	return nil
}

// --- helpers for assertions ---

func (s *memStore) invoice(id int64) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoices[id]
}

func (s *memStore) commerce(id int64) domain.CommerceVerification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commerces[id]
}

func (s *memStore) paymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}
