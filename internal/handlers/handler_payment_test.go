package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/dto"
	"github.com/SscSPs/fx_settlement/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestRegisterPayment_Success() {
	quoteID := int64(41)
	payment := &domain.Payment{
		PaymentID:         501,
		InvoiceID:         9,
		QuoteID:           &quoteID,
		PaymentCurrencyID: 1,
		RawAmount:         decimal.NewFromInt(10),
		BaseAmount:        decimal.NewFromInt(52),
		Status:            domain.PaymentSuccessful,
		Method:            "wire",
		ActorID:           testActorID,
		CreatedAt:         time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
	}
	suite.mockPaymentService.On("RegisterPayment", requestCtx,
		mock.MatchedBy(func(reg domain.PaymentRegistration) bool {
			return reg.InvoiceID == 9 && reg.QuoteID != nil && *reg.QuoteID == 41 &&
				reg.PaymentCurrencyID == 1 && reg.Amount.Equal(decimal.NewFromInt(10)) &&
				reg.Method == "wire" && reg.IdempotencyKey != nil && *reg.IdempotencyKey == "retry-1"
		}),
		testActorID,
	).Return(payment, nil).Once()

	body := `{"invoiceId":9,"quoteId":41,"paymentCurrencyId":1,"amount":"10","paymentMethod":"wire"}`
	w := suite.do(suite.router, http.MethodPost, "/api/v1/payments", body, "Idempotency-Key", " retry-1 ")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.PaymentResponse
	suite.decode(w, &res)
	suite.Equal(int64(501), res.PaymentID)
	suite.True(res.BaseAmount.Equal(decimal.NewFromInt(52)))
	suite.Equal("SUCCESSFUL", res.Status)
}

func (suite *HandlerTestSuite) TestRegisterPayment_WithoutIdempotencyKey() {
	suite.mockPaymentService.On("RegisterPayment", requestCtx,
		mock.MatchedBy(func(reg domain.PaymentRegistration) bool {
			return reg.IdempotencyKey == nil && reg.QuoteID == nil
		}),
		testActorID,
	).Return(&domain.Payment{PaymentID: 502, InvoiceID: 9, Status: domain.PaymentSuccessful}, nil).Once()

	body := `{"invoiceId":9,"paymentCurrencyId":1,"amount":"10","paymentMethod":"card"}`
	w := suite.do(suite.router, http.MethodPost, "/api/v1/payments", body)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestRegisterPayment_ClientSuppliedConvertedAmountIsIgnored() {
	suite.mockPaymentService.On("RegisterPayment", requestCtx, mock.Anything, testActorID).
		Return(&domain.Payment{PaymentID: 503, BaseAmount: decimal.NewFromInt(52)}, nil).Once()

	body := `{"invoiceId":9,"quoteId":41,"paymentCurrencyId":1,"amount":"10","paymentMethod":"wire","baseAmount":"100"}`
	w := suite.do(suite.router, http.MethodPost, "/api/v1/payments", body)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.PaymentResponse
	suite.decode(w, &res)
	suite.True(res.BaseAmount.Equal(decimal.NewFromInt(52)))
}

func (suite *HandlerTestSuite) TestRegisterPayment_InvalidBody() {
	bodies := []string{
		`{"invoiceId":9,"paymentCurrencyId":1,"amount":"0","paymentMethod":"wire"}`,
		`{"invoiceId":9,"paymentCurrencyId":1,"amount":"-3","paymentMethod":"wire"}`,
		`{"invoiceId":9,"paymentCurrencyId":1,"amount":"10"}`,
		`{"paymentCurrencyId":1,"amount":"10","paymentMethod":"wire"}`,
		`not json`,
	}

	for _, body := range bodies {
		w := suite.do(suite.router, http.MethodPost, "/api/v1/payments", body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
	suite.mockPaymentService.AssertNotCalled(suite.T(), "RegisterPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRegisterPayment_IdempotencyKeyTooLong() {
	body := `{"invoiceId":9,"paymentCurrencyId":1,"amount":"10","paymentMethod":"wire"}`
	key := strings.Repeat("k", domain.MaxIdempotencyKeyLength+1)

	w := suite.do(suite.router, http.MethodPost, "/api/v1/payments", body, "Idempotency-Key", key)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "Idempotency-Key")
	suite.mockPaymentService.AssertNotCalled(suite.T(), "RegisterPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRegisterPayment_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"overpayment", fmt.Errorf("%w: 10 > 0", apperrors.ErrOverpayment), http.StatusConflict},
		{"cancelled invoice", fmt.Errorf("%w: invoice 9 is CANCELLED", apperrors.ErrInvalidState), http.StatusConflict},
		{"missing base currency", fmt.Errorf("%w: invoice 9", apperrors.ErrMissingBaseCurrency), http.StatusBadRequest},
		{"pair mismatch", fmt.Errorf("%w: quote 41", apperrors.ErrPairMismatch), http.StatusBadRequest},
		{"unknown invoice", apperrors.NewNotFoundError("invoice 9"), http.StatusNotFound},
		{"duplicate key", fmt.Errorf("%w: idempotency key", apperrors.ErrDuplicate), http.StatusConflict},
		{"storage failure", errors.New("deadline exceeded"), http.StatusInternalServerError},
	}

	body := `{"invoiceId":9,"quoteId":41,"paymentCurrencyId":1,"amount":"10","paymentMethod":"wire"}`
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockPaymentService.On("RegisterPayment", requestCtx, mock.Anything, testActorID).Return(nil, tt.err).Once()

			w := suite.do(suite.router, http.MethodPost, "/api/v1/payments", body)
			suite.Equal(tt.status, w.Code)
			if tt.status == http.StatusInternalServerError {
				suite.Equal("Failed to register payment", suite.errorMessage(w))
			}
		})
	}
}

func (suite *HandlerTestSuite) TestGetInvoice() {
	usd := int64(1)
	paidAt := time.Date(2026, 5, 4, 11, 0, 0, 0, time.UTC)
	balance := &domain.InvoiceBalance{
		Invoice: domain.Invoice{
			InvoiceID:      9,
			SubscriptionID: 3,
			BaseCurrencyID: &usd,
			BaseCurrency:   &domain.Currency{CurrencyID: 1, ISOCode: "USD", Precision: 2},
			TotalAmount:    decimal.NewFromInt(100),
			Status:         domain.InvoicePaid,
			PaidAt:         &paidAt,
		},
		TotalPaid:   decimal.NewFromInt(100),
		Outstanding: decimal.Zero,
	}
	suite.mockPaymentService.On("GetInvoiceBalance", requestCtx, int64(9)).Return(balance, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/invoices/9", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.InvoiceResponse
	suite.decode(w, &res)
	suite.Equal("PAID", res.Status)
	suite.Equal("USD", res.BaseCurrency)
	suite.True(res.Outstanding.IsZero())
	suite.Require().NotNil(res.PaidAt)
}

func (suite *HandlerTestSuite) TestGetInvoice_Errors() {
	suite.mockPaymentService.On("GetInvoiceBalance", requestCtx, int64(404)).
		Return(nil, apperrors.NewNotFoundError("invoice 404")).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/invoices/404", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(suite.router, http.MethodGet, "/api/v1/invoices/0", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListInvoicePayments() {
	next := "MjAyNi0wNS0wNFQxMDowMDowMFp8NTAx"
	page := &dto.ListPaymentsResponse{
		Payments:  []dto.PaymentResponse{{PaymentID: 502}, {PaymentID: 501}},
		NextToken: &next,
	}
	suite.mockPaymentService.On("ListInvoicePayments", requestCtx, int64(9),
		mock.MatchedBy(func(p dto.ListPaymentsParams) bool {
			return p.Limit == 2 && p.NextToken == nil
		}),
	).Return(page, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/invoices/9/payments?limit=2", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListPaymentsResponse
	suite.decode(w, &res)
	suite.Len(res.Payments, 2)
	suite.Require().NotNil(res.NextToken)
	suite.Equal(next, *res.NextToken)
}

func (suite *HandlerTestSuite) TestListInvoicePayments_InvalidLimit() {
	w := suite.do(suite.router, http.MethodGet, "/api/v1/invoices/9/payments?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "ListInvoicePayments", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestMutatingRoutesAreRateLimited() {
	l, err := middleware.NewRateLimiter("1-M", nil)
	suite.Require().NoError(err)
	router := suite.newRouter(l)

	suite.mockPaymentService.On("RegisterPayment", requestCtx, mock.Anything, testActorID).
		Return(&domain.Payment{PaymentID: 1}, nil).Once()
	suite.mockPaymentService.On("GetInvoiceBalance", requestCtx, int64(9)).
		Return(&domain.InvoiceBalance{Invoice: domain.Invoice{InvoiceID: 9}}, nil).Twice()

	body := `{"invoiceId":9,"paymentCurrencyId":1,"amount":"10","paymentMethod":"wire"}`
	first := suite.do(router, http.MethodPost, "/api/v1/payments", body)
	second := suite.do(router, http.MethodPost, "/api/v1/payments", body)

	suite.Equal(http.StatusOK, first.Code)
	suite.Equal(http.StatusTooManyRequests, second.Code)

	// Reads are not limited.
	suite.Equal(http.StatusOK, suite.do(router, http.MethodGet, "/api/v1/invoices/9", nil).Code)
	suite.Equal(http.StatusOK, suite.do(router, http.MethodGet, "/api/v1/invoices/9", nil).Code)
}
