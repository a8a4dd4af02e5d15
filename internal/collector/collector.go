package collector

import (
	"context"
	"fmt"
	"time"

	"NextVWAP/internal/model"
)

// StaticFetcher returns fixed bars. It backs tests and offline runs.
type StaticFetcher struct {
	Bars  []model.Bar
	Err   error
	Calls int
}

func (s *StaticFetcher) Name() string { return "static" }

func (s *StaticFetcher) FetchIntradayBars(_ context.Context, _ string, _ int, _ time.Duration) ([]model.Bar, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Bars, nil
}

// Collector performs the single data fetch of a forecast run.
type Collector struct {
	Fetcher  Fetcher
	Days     int
	Interval time.Duration
	// Location, when set, overrides the location reported by the provider.
	Location *time.Location
	Now      func() time.Time
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, days int, interval time.Duration) *Collector {
	return &Collector{Fetcher: fetcher, Days: days, Interval: interval, Now: time.Now}
}

// Collect fetches intraday bars once and keeps only those strictly before
// midnight of the current day in the bars' location. A provider answer with
// no rows is reported as *NotFoundError.
func (c *Collector) Collect(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchIntradayBars(ctx, symbol, c.Days, c.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetch intraday bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, &NotFoundError{Symbol: symbol, Provider: c.Fetcher.Name(), Reason: "provider returned no rows"}
	}

	loc := c.Location
	if loc == nil {
		loc = bars[0].Time.Location()
	}
	cutoff := StartOfDay(c.now().In(loc))

	kept := make([]model.Bar, 0, len(bars))
	for _, b := range bars {
		b.Time = b.Time.In(loc)
		if b.Time.Before(cutoff) {
			kept = append(kept, b)
		}
	}

	return &model.PriceSeries{
		Symbol:    symbol,
		Provider:  c.Fetcher.Name(),
		Bars:      kept,
		FetchedAt: c.now(),
	}, nil
}

func (c *Collector) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
