package simulation

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"NextVWAP/internal/model"
)

// ErrNoOutcomes is returned when there is nothing to summarize.
var ErrNoOutcomes = errors.New("no simulated outcomes")

// Summarize computes the mean and population standard deviation of the
// outcomes and the share of outcomes in each band around the mean:
// above mean+σ, (mean, mean+σ], exactly mean, [mean-σ, mean), below mean-σ.
func Summarize(outcomes []float64) (model.Summary, error) {
	if len(outcomes) == 0 {
		return model.Summary{}, ErrNoOutcomes
	}
	mean, std := stat.PopMeanStdDev(outcomes, nil)
	s := model.Summary{
		Mean:   mean,
		StdDev: std,
		Upper:  mean + std,
		Lower:  mean - std,
	}

	var above, upperBand, at, lowerBand, below int
	for _, v := range outcomes {
		switch {
		case v > s.Upper:
			above++
		case v > mean:
			upperBand++
		case v == mean:
			at++
		case v >= s.Lower:
			lowerBand++
		default:
			below++
		}
	}

	n := float64(len(outcomes))
	s.AboveUpper = float64(above) / n * 100
	s.MeanToUpper = float64(upperBand) / n * 100
	s.AtMean = float64(at) / n * 100
	s.LowerToMean = float64(lowerBand) / n * 100
	s.BelowLower = float64(below) / n * 100
	return s, nil
}
