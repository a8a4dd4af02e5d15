package calculator

import (
	"errors"
	"math"
	"sort"
	"time"

	"NextVWAP/internal/model"
)

// ErrNoBars is returned when there is nothing to derive a VWAP from.
var ErrNoBars = errors.New("no bars provided")

// TypicalPrice returns (high+low+close)/3 for a bar.
func TypicalPrice(b model.Bar) float64 {
	return (b.High + b.Low + b.Close) / 3
}

// IntradayVWAP returns the running VWAP after each bar, treating all bars as
// one session. Positions with zero cumulative volume are NaN.
func IntradayVWAP(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	var cumPV, cumVol float64
	for i, b := range bars {
		cumPV += TypicalPrice(b) * b.Volume
		cumVol += b.Volume
		if cumVol == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = cumPV / cumVol
	}
	return out
}

// DeriveDailyVWAP groups bars by calendar day in the bars' own location and
// returns the closing VWAP of each day in ascending date order. The change of
// the first day is 0. Days that traded no volume have no VWAP and are skipped.
func DeriveDailyVWAP(bars []model.Bar) ([]model.DailyVWAP, error) {
	if len(bars) == 0 {
		return nil, ErrNoBars
	}

	sorted := make([]model.Bar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	var records []model.DailyVWAP
	var day time.Time
	var cumPV, cumVol float64
	started := false

	flush := func() {
		if cumVol == 0 {
			return
		}
		rec := model.DailyVWAP{Date: day, VWAP: cumPV / cumVol}
		if n := len(records); n > 0 {
			rec.Change = rec.VWAP - records[n-1].VWAP
		}
		records = append(records, rec)
	}

	for _, b := range sorted {
		d := dateOf(b.Time)
		if !started || !d.Equal(day) {
			if started {
				flush()
			}
			day = d
			cumPV, cumVol = 0, 0
			started = true
		}
		cumPV += TypicalPrice(b) * b.Volume
		cumVol += b.Volume
	}
	flush()

	if len(records) == 0 {
		return nil, ErrNoBars
	}
	return records, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func extractChanges(records []model.DailyVWAP) []float64 {
	changes := make([]float64, len(records))
	for i, r := range records {
		changes[i] = r.Change
	}
	return changes
}
