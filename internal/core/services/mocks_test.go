package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID int64) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindQuoteByIDInTx(ctx context.Context, tx pgx.Tx, quoteID int64) (*domain.Quote, error) {
	args := m.Called(ctx, tx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListActiveQuoteListings(ctx context.Context) ([]domain.QuoteListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteListing), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) (*domain.Quote, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) DeactivateQuote(ctx context.Context, quoteID int64, actorID string, at time.Time) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

// --- Mock CommerceRepository ---
type MockCommerceRepository struct {
	mock.Mock
}

func (m *MockCommerceRepository) FindCommerceByInvoiceIDForUpdate(ctx context.Context, tx pgx.Tx, invoiceID int64) (*domain.CommerceVerification, error) {
	args := m.Called(ctx, tx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommerceVerification), args.Error(1)
}

func (m *MockCommerceRepository) UpdateCommerceStatusInTx(ctx context.Context, tx pgx.Tx, commerceID int64, from, to domain.CommerceStatus, actorID string, at time.Time) error {
	args := m.Called(ctx, tx, commerceID, from, to, actorID, at)
	return args.Error(0)
}

// --- Mock SettlementHandler ---
type MockSettlementHandler struct {
	mock.Mock
	name string
}

func (m *MockSettlementHandler) Name() string {
	return m.name
}

func (m *MockSettlementHandler) HandleInvoiceSettled(ctx context.Context, tx pgx.Tx, event domain.InvoiceSettled) error {
	args := m.Called(ctx, tx, event)
	return args.Error(0)
}

// fakeTx stands in for a pgx transaction when the code under test only passes it through.
type fakeTx struct {
	pgx.Tx
}
