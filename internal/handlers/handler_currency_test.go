package handlers_test

import (
	"net/http"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/dto"
)

func (suite *HandlerTestSuite) TestListCurrencies() {
	currencies := []domain.Currency{
		{CurrencyID: 1, ISOCode: "USD", Name: "US Dollar", Symbol: "$", Precision: 2},
		{CurrencyID: 6, ISOCode: "JPY", Name: "Japanese Yen", Symbol: "¥", Precision: 0},
	}
	suite.mockCurrencyService.On("ListCurrencies", requestCtx).Return(currencies, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CurrencyResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 2)
	suite.Equal("JPY", res[1].ISOCode)
	suite.Equal(int32(0), res[1].Precision)
}

func (suite *HandlerTestSuite) TestGetCurrency_NotFound() {
	suite.mockCurrencyService.On("GetCurrencyByID", requestCtx, int64(99)).
		Return(nil, apperrors.NewNotFoundError("currency 99")).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/currencies/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
