package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyID int64  `json:"currencyID"` // Primary Key
	ISOCode    string `json:"isoCode"`    // e.g., "USD"
	Name       string `json:"name"`       // e.g., "US Dollar"
	Symbol     string `json:"symbol"`     // e.g., "$"
	Precision  int32  `json:"precision"`  // Minor unit digits, 2 for USD, 0 for JPY
}
