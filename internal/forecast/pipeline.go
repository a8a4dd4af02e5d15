package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"NextVWAP/internal/calculator"
	"NextVWAP/internal/collector"
	"NextVWAP/internal/model"
	"NextVWAP/internal/session"
	"NextVWAP/internal/simulation"
)

// Pipeline runs one forecast: collect, derive daily VWAP, estimate change
// statistics, simulate, summarize. It stops at the first failing step.
type Pipeline struct {
	Collector *collector.Collector
	Simulator *simulation.Simulator
	Calendar  *session.Calendar
	Log       zerolog.Logger
	// IncludeSeedChange keeps the first day's zero change in the estimate.
	IncludeSeedChange bool
	Now               func() time.Time
}

// New creates a Pipeline with the leading zero change included.
func New(col *collector.Collector, sim *simulation.Simulator, cal *session.Calendar, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		Collector:         col,
		Simulator:         sim,
		Calendar:          cal,
		Log:               log,
		IncludeSeedChange: true,
		Now:               time.Now,
	}
}

// Run forecasts the next session's closing VWAP of ticker with the given
// number of Monte Carlo trials.
func (p *Pipeline) Run(ctx context.Context, ticker string, simulations int) (*model.Forecast, error) {
	if simulations < 1 {
		return nil, simulation.ErrInvalidSimulations
	}

	runID := uuid.New().String()
	log := p.Log.With().Str("run_id", runID).Str("ticker", ticker).Logger()

	series, err := p.Collector.Collect(ctx, ticker)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("provider", series.Provider).
		Int("bars", len(series.Bars)).
		Msg("fetched intraday bars")

	records, err := calculator.DeriveDailyVWAP(series.Bars)
	if err != nil {
		return nil, fmt.Errorf("derive daily vwap: %w", err)
	}
	last := records[len(records)-1]
	log.Debug().
		Int("days", len(records)).
		Time("last_session", last.Date).
		Float64("last_vwap", last.VWAP).
		Msg("derived daily vwap")

	stats, err := calculator.EstimateChangeStats(records, p.IncludeSeedChange)
	if err != nil {
		return nil, fmt.Errorf("estimate change stats over %d days: %w", len(records), err)
	}
	log.Debug().
		Float64("mean", stats.Mean).
		Float64("std", stats.StdDev).
		Int("samples", stats.Samples).
		Msg("estimated daily change")

	run, err := p.Simulator.Simulate(simulations, last.VWAP, stats)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	summary, err := simulation.Summarize(run.Outcomes)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	f := &model.Forecast{
		RunID:       runID,
		Ticker:      ticker,
		Provider:    series.Provider,
		Simulations: simulations,
		Records:     records,
		Stats:       stats,
		LastSession: last.Date,
		LastVWAP:    last.VWAP,
		Run:         run,
		Summary:     summary,
		GeneratedAt: p.now(),
	}
	if p.Calendar != nil {
		f.TargetSession = p.Calendar.NextSession(last.Date)
	}

	log.Info().
		Str("simulations", humanize.Comma(int64(simulations))).
		Float64("expected_vwap", summary.Mean).
		Float64("std", summary.StdDev).
		Msg("forecast complete")
	return f, nil
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
