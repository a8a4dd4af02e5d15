package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"NextVWAP/internal/model"
)

// AlpacaExchangeTimezone is where Alpaca-listed US equities trade.
const AlpacaExchangeTimezone = "America/New_York"

// AlpacaFetcher implements Fetcher using the Alpaca market data API.
type AlpacaFetcher struct {
	Client   *marketdata.Client
	Feed     marketdata.Feed
	Location *time.Location
	Now      func() time.Time
}

// NewAlpacaFetcher creates a new fetcher. feed is "iex" (free plans) or "sip".
func NewAlpacaFetcher(apiKey, apiSecret, baseURL, feed string) *AlpacaFetcher {
	loc, err := time.LoadLocation(AlpacaExchangeTimezone)
	if err != nil {
		loc = time.Local
	}
	f := &AlpacaFetcher{
		Client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
			BaseURL:   baseURL,
		}),
		Feed:     marketdata.IEX,
		Location: loc,
		Now:      time.Now,
	}
	if feed == "sip" {
		f.Feed = marketdata.SIP
	}
	return f
}

func (f *AlpacaFetcher) Name() string { return "alpaca" }

func (f *AlpacaFetcher) FetchIntradayBars(ctx context.Context, symbol string, days int, interval time.Duration) ([]model.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	end := f.Now()
	start := end.AddDate(0, 0, -days)

	raw, err := f.Client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.NewTimeFrame(int(interval/time.Minute), marketdata.Min),
		Start:     start,
		End:       end,
		Feed:      f.Feed,
	})
	if err != nil {
		if looksNotFound(err.Error()) {
			return nil, &NotFoundError{Symbol: symbol, Provider: f.Name(), Reason: err.Error()}
		}
		return nil, fmt.Errorf("alpaca bars for %s: %w", symbol, err)
	}

	bars := make([]model.Bar, len(raw))
	for i, b := range raw {
		bars[i] = model.Bar{
			Time:   b.Timestamp.In(f.Location),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: float64(b.Volume),
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
