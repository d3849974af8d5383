package dto

import "github.com/SscSPs/fx_settlement/internal/core/domain"

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID int64  `json:"currencyId"`
	ISOCode    string `json:"isoCode"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	Precision  int32  `json:"precision"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID: curr.CurrencyID,
		ISOCode:    curr.ISOCode,
		Name:       curr.Name,
		Symbol:     curr.Symbol,
		Precision:  curr.Precision,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
