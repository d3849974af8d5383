package models

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID int64
	ISOCode    string
	Name       string
	Symbol     string
	Precision  int32
}
