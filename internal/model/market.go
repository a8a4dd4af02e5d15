package model

import "time"

// Bar represents a single intraday candlestick. Time is expressed in the
// exchange's location so calendar-day grouping follows the trading day.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the raw bars returned by a provider for one symbol.
type PriceSeries struct {
	Symbol    string
	Provider  string
	Bars      []Bar
	FetchedAt time.Time
}

// Location returns the location of the first bar, or time.Local when empty.
func (p *PriceSeries) Location() *time.Location {
	if len(p.Bars) == 0 {
		return time.Local
	}
	return p.Bars[0].Time.Location()
}
