// Package rates fetches exchange rates from a REST provider.
package rates

import (
	"context"
	"time"
)

// Provider defines the rate lookups used by the converter.
type Provider interface {
	Rate(ctx context.Context, base, target string) (Quote, error)
}

// Quote says 1 unit of Base equals Rate units of Target.
type Quote struct {
	Base      string
	Target    string
	Rate      float64
	FetchedAt time.Time
}

// Table is a full rate table for one base currency.
type Table struct {
	Base      string
	Date      string
	UpdatedAt time.Time
	Rates     map[string]float64
	FetchedAt time.Time
}

// latestResponse is the provider's /latest/{base} payload.
type latestResponse struct {
	Base            string             `json:"base"`
	Date            string             `json:"date"`
	TimeLastUpdated int64              `json:"time_last_updated"`
	Rates           map[string]float64 `json:"rates"`
}
