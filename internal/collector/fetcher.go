package collector

import (
	"context"
	"time"

	"NextVWAP/internal/model"
)

// Fetcher defines the interface for fetching intraday market data.
type Fetcher interface {
	// FetchIntradayBars returns bars covering the last days calendar days at
	// the given bar interval, with times in the exchange's location.
	FetchIntradayBars(ctx context.Context, symbol string, days int, interval time.Duration) ([]model.Bar, error)
	Name() string
}
