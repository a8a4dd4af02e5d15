package presenter

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"NextVWAP/internal/model"
)

// RenderChart draws every simulated trajectory as a line from the last
// closing VWAP (left edge) to its simulated next-day value (right edge).
// Values are plotted as the change from the last close so the axis keeps two
// decimals at any price level; the caption carries the absolute base.
func RenderChart(run model.SimulationRun, width, height int) string {
	if run.Len() == 0 {
		return ""
	}
	series := make([][]float64, run.Len())
	for i := range series {
		seed, next := run.Trajectory(i)
		series[i] = []float64{0, next - seed}
	}
	return asciigraph.PlotMany(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("Next Day (change from %.2f)", run.Seed)),
	)
}
