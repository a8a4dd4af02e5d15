package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"NextVWAP/internal/collector"
	"NextVWAP/internal/config"
	"NextVWAP/internal/forecast"
	"NextVWAP/internal/session"
	"NextVWAP/internal/simulation"
)

// NewFetcher selects the data provider named in the configuration.
func NewFetcher(cfg *config.Config) (collector.Fetcher, error) {
	ds := cfg.DataSource
	switch ds.Provider {
	case "", "yahoo":
		return collector.NewYahooFetcher(ds.BaseURL, cfg.Proxy, ds.Timeout), nil
	case "financego":
		return collector.NewFinanceGoFetcher(), nil
	case "alpaca":
		return collector.NewAlpacaFetcher(ds.Alpaca.APIKey, ds.Alpaca.APISecret, ds.Alpaca.BaseURL, ds.Alpaca.Feed), nil
	default:
		return nil, fmt.Errorf("unknown data provider %q", ds.Provider)
	}
}

// NewPipeline assembles a forecast pipeline from configuration.
func NewPipeline(cfg *config.Config, fetcher collector.Fetcher, log zerolog.Logger) (*forecast.Pipeline, error) {
	col := collector.NewCollector(fetcher, cfg.DataSource.Days, cfg.DataSource.Interval)
	col.Location = cfg.Location()

	cal, err := session.NewCalendar(cfg.Market.SessionCloseCron, cfg.Location())
	if err != nil {
		return nil, err
	}

	sim := simulation.NewRandom()
	if cfg.Forecast.Seed != 0 {
		sim = simulation.New(cfg.Forecast.Seed)
	}

	p := forecast.New(col, sim, cal, log)
	p.IncludeSeedChange = cfg.IncludeSeedChange()
	return p, nil
}
