package model

import "time"

// SimulationRun holds one Monte Carlo run. Every trial starts from Seed and
// ends at Outcomes[i].
type SimulationRun struct {
	Seed     float64
	Outcomes []float64
}

// Len returns the number of trials.
func (r SimulationRun) Len() int { return len(r.Outcomes) }

// Trajectory returns the two points of trial i.
func (r SimulationRun) Trajectory(i int) (seed, next float64) {
	return r.Seed, r.Outcomes[i]
}

// Summary buckets simulated outcomes into ±1 standard deviation bands.
// Percentages are in [0, 100].
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Upper  float64 `json:"upper"`
	Lower  float64 `json:"lower"`

	AboveUpper  float64 `json:"above_upper_pct"`
	MeanToUpper float64 `json:"mean_to_upper_pct"`
	LowerToMean float64 `json:"lower_to_mean_pct"`
	BelowLower  float64 `json:"below_lower_pct"`
	AtMean      float64 `json:"at_mean_pct"`
}

// AboveMean is the share of outcomes strictly above the mean.
func (s Summary) AboveMean() float64 { return s.MeanToUpper + s.AboveUpper }

// BelowMean is the share of outcomes strictly below the mean.
func (s Summary) BelowMean() float64 { return s.LowerToMean + s.BelowLower }

// Total sums all five buckets; it is 100 up to rounding.
func (s Summary) Total() float64 {
	return s.AboveUpper + s.MeanToUpper + s.LowerToMean + s.BelowLower + s.AtMean
}

// Forecast is the full result of one pipeline run.
type Forecast struct {
	RunID       string
	Ticker      string
	Provider    string
	Simulations int

	Records []DailyVWAP
	Stats   ChangeStats

	// LastSession is the date of the last complete trading day in the data.
	LastSession time.Time
	LastVWAP    float64
	// TargetSession is the close being forecast.
	TargetSession time.Time

	Run     SimulationRun
	Summary Summary

	GeneratedAt time.Time
}
