package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestRegisterQuote_Created() {
	created := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	quote := &domain.Quote{
		QuoteID:               41,
		OriginCurrencyID:      1,
		DestinationCurrencyID: 4,
		BuyRate:               decimal.RequireFromString("5.0"),
		SellRate:              decimal.RequireFromString("5.2"),
		IsActive:              true,
		CreatedBy:             testActorID,
		CreatedAt:             created,
	}

	suite.mockQuoteService.On("RegisterQuote", requestCtx,
		mock.MatchedBy(func(req dto.RegisterQuoteRequest) bool {
			return req.OriginCurrencyID == 1 && req.DestinationCurrencyID == 4 &&
				req.BuyRate.Equal(decimal.RequireFromString("5")) &&
				req.SellRate.Equal(decimal.RequireFromString("5.2"))
		}),
		testActorID,
	).Return(quote, nil).Once()

	body := `{"originCurrencyId":1,"destinationCurrencyId":4,"buyRate":"5.0","sellRate":"5.2"}`
	w := suite.do(suite.router, http.MethodPost, "/api/v1/quotes", body)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.QuoteResponse
	suite.decode(w, &res)
	suite.Equal(int64(41), res.QuoteID)
	suite.True(res.Active)
	suite.Equal(testActorID, res.CreatedBy)
	suite.True(res.SellRate.Equal(decimal.RequireFromString("5.2")))
}

func (suite *HandlerTestSuite) TestRegisterQuote_BindingRejectsBadRates() {
	bodies := []string{
		`{"originCurrencyId":1,"destinationCurrencyId":4,"sellRate":"5.2"}`,
		`{"originCurrencyId":1,"destinationCurrencyId":4,"buyRate":"0","sellRate":"5.2"}`,
		`{"originCurrencyId":1,"destinationCurrencyId":4,"buyRate":"5","sellRate":"-1"}`,
		`{"originCurrencyId":1,"buyRate":"5","sellRate":"5.2"}`,
		`{"originCurrencyId":1,`,
	}

	for _, body := range bodies {
		w := suite.do(suite.router, http.MethodPost, "/api/v1/quotes", body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
	suite.mockQuoteService.AssertNotCalled(suite.T(), "RegisterQuote", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRegisterQuote_ServiceErrors() {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: 3/3", apperrors.ErrInvalidPair), http.StatusBadRequest},
		{apperrors.NewValidationError("origin currency 99 does not exist"), http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	body := `{"originCurrencyId":3,"destinationCurrencyId":3,"buyRate":"1","sellRate":"1"}`
	for _, tt := range tests {
		suite.mockQuoteService.On("RegisterQuote", requestCtx, mock.Anything, testActorID).Return(nil, tt.err).Once()

		w := suite.do(suite.router, http.MethodPost, "/api/v1/quotes", body)
		suite.Equal(tt.status, w.Code, tt.err.Error())
		if tt.status == http.StatusInternalServerError {
			suite.Equal("Failed to register quote", suite.errorMessage(w))
		}
	}
}

func (suite *HandlerTestSuite) TestListCurrentQuotes() {
	listings := []domain.QuoteListing{
		{
			Quote: domain.Quote{
				QuoteID: 41, OriginCurrencyID: 1, DestinationCurrencyID: 4,
				BuyRate: decimal.RequireFromString("5"), SellRate: decimal.RequireFromString("5.2"),
				IsActive: true, CreatedAt: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
			},
			OriginISO:        "USD",
			DestinationISO:   "BRL",
			RegisteredByName: "Treasury Desk",
		},
	}
	suite.mockQuoteService.On("ListCurrentQuotes", requestCtx).Return(listings, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/quotes", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CurrentQuoteResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 1)
	suite.Equal("USD", res[0].OriginISO)
	suite.Equal("BRL", res[0].DestinationISO)
	suite.Equal("Treasury Desk", res[0].RegisteredByName)
	suite.True(res[0].SellAmount.Equal(decimal.RequireFromString("5.2")))
}

func (suite *HandlerTestSuite) TestGetQuote() {
	suite.mockQuoteService.On("GetQuote", requestCtx, int64(41)).
		Return(&domain.Quote{QuoteID: 41, IsActive: false}, nil).Once()
	suite.mockQuoteService.On("GetQuote", requestCtx, int64(42)).
		Return(nil, apperrors.NewNotFoundError("quote 42")).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/quotes/41", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(suite.router, http.MethodGet, "/api/v1/quotes/42", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(suite.router, http.MethodGet, "/api/v1/quotes/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAnnulQuote() {
	now := time.Now().UTC()
	actor := testActorID
	suite.mockQuoteService.On("AnnulQuote", requestCtx, int64(41), testActorID).
		Return(&domain.Quote{QuoteID: 41, IsActive: false, DeactivatedBy: &actor, DeactivatedAt: &now}, nil).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/quotes/41/annul", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.AnnulQuoteResponse
	suite.decode(w, &res)
	suite.Equal("Quote annulled successfully", res.Message)
	suite.False(res.Quote.Active)
	suite.Require().NotNil(res.Quote.DeactivatedBy)
	suite.Equal(testActorID, *res.Quote.DeactivatedBy)
}

func (suite *HandlerTestSuite) TestAnnulQuote_AlreadyAnnulled() {
	suite.mockQuoteService.On("AnnulQuote", requestCtx, int64(41), testActorID).
		Return(nil, apperrors.NewNotFoundError("active quote 41")).Once()

	w := suite.do(suite.router, http.MethodPost, "/api/v1/quotes/41/annul", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(suite.errorMessage(w), "active quote 41")
}
