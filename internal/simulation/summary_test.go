package simulation

import (
	"errors"
	"math"
	"testing"

	"NextVWAP/internal/model"
)

func TestSummarize_Buckets(t *testing.T) {
	sum, err := Summarize([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Mean != 5.5 {
		t.Errorf("Mean = %v, want 5.5", sum.Mean)
	}
	if math.Abs(sum.StdDev-math.Sqrt(8.25)) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", sum.StdDev, math.Sqrt(8.25))
	}
	want := map[string][2]float64{
		"above upper":   {sum.AboveUpper, 20},
		"mean to upper": {sum.MeanToUpper, 30},
		"lower to mean": {sum.LowerToMean, 30},
		"below lower":   {sum.BelowLower, 20},
		"at mean":       {sum.AtMean, 0},
		"above mean":    {sum.AboveMean(), 50},
		"below mean":    {sum.BelowMean(), 50},
	}
	for name, pair := range want {
		if math.Abs(pair[0]-pair[1]) > 1e-9 {
			t.Errorf("%s = %v%%, want %v%%", name, pair[0], pair[1])
		}
	}
}

func TestSummarize_AtMean(t *testing.T) {
	sum, err := Summarize([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third := 100.0 / 3
	if math.Abs(sum.AtMean-third) > 1e-9 {
		t.Errorf("AtMean = %v, want %v", sum.AtMean, third)
	}
	if math.Abs(sum.AboveUpper-third) > 1e-9 || math.Abs(sum.BelowLower-third) > 1e-9 {
		t.Errorf("outer bands = %v / %v, want %v each", sum.AboveUpper, sum.BelowLower, third)
	}
}

func TestSummarize_BandEdgesInclusive(t *testing.T) {
	// mean 0, population std 1: the edges themselves sit inside the inner bands.
	sum, err := Summarize([]float64{-1, 1, -1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.MeanToUpper != 50 || sum.LowerToMean != 50 {
		t.Errorf("inner bands = %v / %v, want 50 / 50", sum.MeanToUpper, sum.LowerToMean)
	}
	if sum.AboveUpper != 0 || sum.BelowLower != 0 {
		t.Errorf("outer bands = %v / %v, want 0 / 0", sum.AboveUpper, sum.BelowLower)
	}
}

func TestSummarize_PercentagesSumTo100(t *testing.T) {
	for _, n := range []int{1000, 20000} {
		run, err := New(uint64(n)).Simulate(n, 50, model.ChangeStats{Mean: -0.2, StdDev: 0.8})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum, err := Summarize(run.Outcomes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(sum.Total()-100) > 0.01 {
			t.Errorf("n=%d: buckets sum to %v, want 100", n, sum.Total())
		}
	}
}

func TestSummarize_Empty(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrNoOutcomes) {
		t.Errorf("expected ErrNoOutcomes, got %v", err)
	}
}
