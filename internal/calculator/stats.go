package calculator

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"NextVWAP/internal/model"
)

// ErrInsufficientHistory is returned when fewer than two changes are available.
var ErrInsufficientHistory = errors.New("not enough daily VWAP history")

// EstimateChangeStats computes the mean and sample standard deviation of the
// day-over-day VWAP changes. When includeSeed is true the leading zero change
// of the first day takes part in both estimates.
func EstimateChangeStats(records []model.DailyVWAP, includeSeed bool) (model.ChangeStats, error) {
	changes := extractChanges(records)
	if !includeSeed && len(changes) > 0 {
		changes = changes[1:]
	}
	if len(changes) < 2 {
		return model.ChangeStats{}, ErrInsufficientHistory
	}
	mean, std := stat.MeanStdDev(changes, nil)
	return model.ChangeStats{Mean: mean, StdDev: std, Samples: len(changes)}, nil
}
