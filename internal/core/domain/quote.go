package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a stored buy/sell exchange rate pair between two currencies.
// Apart from the active flag a quote is never changed after creation.
type Quote struct {
	QuoteID               int64           `json:"quoteID"`
	OriginCurrencyID      int64           `json:"originCurrencyID"`
	DestinationCurrencyID int64           `json:"destinationCurrencyID"`
	BuyRate               decimal.Decimal `json:"buyRate"`
	SellRate              decimal.Decimal `json:"sellRate"`
	IsActive              bool            `json:"isActive"`
	CreatedBy             string          `json:"createdBy"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             *time.Time      `json:"updatedAt"`
	DeactivatedBy         *string         `json:"deactivatedBy"`
	DeactivatedAt         *time.Time      `json:"deactivatedAt"`
}

// CurrencyPair is an ordered (origin, destination) pair.
type CurrencyPair struct {
	OriginCurrencyID      int64
	DestinationCurrencyID int64
}

// Pair returns the ordered currency pair the quote was registered for.
func (q Quote) Pair() CurrencyPair {
	return CurrencyPair{OriginCurrencyID: q.OriginCurrencyID, DestinationCurrencyID: q.DestinationCurrencyID}
}

// LastChangedAt is the update timestamp, or the creation timestamp when the quote was never updated.
func (q Quote) LastChangedAt() time.Time {
	if q.UpdatedAt != nil && !q.UpdatedAt.IsZero() {
		return *q.UpdatedAt
	}
	return q.CreatedAt
}

// QuoteListing is a quote annotated with the display metadata of its currencies and author.
type QuoteListing struct {
	Quote
	OriginName       string `json:"originName"`
	OriginISO        string `json:"originIso"`
	DestinationName  string `json:"destinationName"`
	DestinationISO   string `json:"destinationIso"`
	RegisteredByName string `json:"registeredByName"`
}

// QuoteIsNewer reports whether a supersedes b when picking the current quote of a pair.
// Newer LastChangedAt wins; on equal timestamps the higher id wins.
func QuoteIsNewer(a, b Quote) bool {
	at, bt := a.LastChangedAt(), b.LastChangedAt()
	if !at.Equal(bt) {
		return at.After(bt)
	}
	return a.QuoteID > b.QuoteID
}

// LatestQuotesPerPair keeps one listing per ordered currency pair, the newest according to QuoteIsNewer.
// Inactive quotes are ignored. The result is ordered by origin then destination currency id.
func LatestQuotesPerPair(listings []QuoteListing) []QuoteListing {
	latest := make(map[CurrencyPair]QuoteListing)
	for _, l := range listings {
		if !l.IsActive {
			continue
		}
		current, ok := latest[l.Pair()]
		if !ok || QuoteIsNewer(l.Quote, current.Quote) {
			latest[l.Pair()] = l
		}
	}

	result := make([]QuoteListing, 0, len(latest))
	for _, l := range latest {
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].OriginCurrencyID != result[j].OriginCurrencyID {
			return result[i].OriginCurrencyID < result[j].OriginCurrencyID
		}
		return result[i].DestinationCurrencyID < result[j].DestinationCurrencyID
	})
	return result
}
