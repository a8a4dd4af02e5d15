package collector

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"NextVWAP/internal/model"
)

// FinanceGoFetcher implements Fetcher on top of the piquette/finance-go
// chart iterator.
type FinanceGoFetcher struct {
	Client chart.Client
	Now    func() time.Time
}

// NewFinanceGoFetcher creates a fetcher on finance-go's shared Yahoo backend.
func NewFinanceGoFetcher() *FinanceGoFetcher {
	return &FinanceGoFetcher{
		Client: chart.Client{B: finance.GetBackend(finance.YFinBackend)},
		Now:    time.Now,
	}
}

func (f *FinanceGoFetcher) Name() string { return "financego" }

func (f *FinanceGoFetcher) FetchIntradayBars(ctx context.Context, symbol string, days int, interval time.Duration) ([]model.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	end := f.Now()
	// Intraday ranges must start inside the provider's lookback window.
	start := end.AddDate(0, 0, -days).Add(time.Hour)

	iter := f.Client.Get(&chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.Interval(yahooInterval(interval)),
	})

	var bars []model.Bar
	for iter.Next() {
		b := iter.Bar()
		// finance-go decodes null quotes as zero.
		if b.Close.IsZero() {
			continue
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(int64(b.Timestamp), 0),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  b.Close.InexactFloat64(),
			Volume: float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if looksNotFound(err.Error()) {
			return nil, &NotFoundError{Symbol: symbol, Provider: f.Name(), Reason: err.Error()}
		}
		return nil, fmt.Errorf("finance-go chart for %s: %w", symbol, err)
	}

	meta := iter.Meta()
	loc := exchangeLocation(meta.ExchangeTimezoneName, meta.Gmtoffset)
	for i := range bars {
		bars[i].Time = bars[i].Time.In(loc)
	}
	return bars, nil
}
