package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestPreviewConversion() {
	quoteID := int64(41)
	conv := &domain.Conversion{
		QuoteID:          &quoteID,
		SourceCurrencyID: 4,
		TargetCurrencyID: 1,
		Amount:           decimal.NewFromInt(26),
		ConvertedBuy:     decimal.RequireFromString("5.2"),
		ConvertedSell:    decimal.NewFromInt(5),
		BuyRateApplied:   decimal.RequireFromString("0.2"),
		SellRateApplied:  decimal.RequireFromString("0.1923076923076923"),
		Route:            domain.RouteInverse,
	}
	suite.mockConversionService.On("Convert", requestCtx,
		mock.MatchedBy(func(req domain.ConversionRequest) bool {
			return req.QuoteID != nil && *req.QuoteID == 41 &&
				req.SourceCurrencyID == 4 && req.TargetCurrencyID == 1 &&
				req.Amount.Equal(decimal.NewFromInt(26))
		}),
	).Return(conv, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/conversions?quoteId=41&from=4&to=1&amount=26", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ConversionResponse
	suite.decode(w, &res)
	suite.Equal("INVERSE", res.Route)
	suite.True(res.ConvertedSell.Equal(decimal.NewFromInt(5)))
	suite.True(res.ConvertedBuy.Equal(decimal.RequireFromString("5.2")))
}

func (suite *HandlerTestSuite) TestPreviewConversion_ServiceErrors() {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: quote 41", apperrors.ErrPairMismatch), http.StatusBadRequest},
		{fmt.Errorf("%w: quote 41", apperrors.ErrInvalidRate), http.StatusBadRequest},
		{fmt.Errorf("%w: quote 41 is no longer active", apperrors.ErrInvalidState), http.StatusConflict},
		{apperrors.NewNotFoundError("quote 41"), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.mockConversionService.On("Convert", requestCtx, mock.Anything).Return(nil, tt.err).Once()

		w := suite.do(suite.router, http.MethodGet, "/api/v1/conversions?quoteId=41&from=2&to=3&amount=1", nil)
		suite.Equal(tt.status, w.Code, tt.err.Error())
	}
}

func (suite *HandlerTestSuite) TestPreviewConversion_InvalidQuery() {
	urls := []string{
		"/api/v1/conversions?from=1&to=2",
		"/api/v1/conversions?from=1&to=2&amount=abc",
		"/api/v1/conversions?from=1&to=2&amount=-5",
		"/api/v1/conversions?to=2&amount=5",
	}

	for _, url := range urls {
		w := suite.do(suite.router, http.MethodGet, url, nil)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.mockConversionService.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything)
}
