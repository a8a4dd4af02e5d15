package simulation

import (
	"errors"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"NextVWAP/internal/model"
)

// ErrInvalidSimulations is returned when the requested trial count is below one.
var ErrInvalidSimulations = errors.New("number of simulations must be positive")

// Simulator draws next-day VWAP outcomes from a normal model of daily changes.
type Simulator struct {
	Rand *rand.Rand
}

// New returns a Simulator whose draws are fully determined by seed.
func New(seed uint64) *Simulator {
	return &Simulator{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a Simulator seeded from the clock.
func NewRandom() *Simulator {
	return New(uint64(time.Now().UnixNano()))
}

// InverseNormal is the percent-point function of N(mu, sigma).
func InverseNormal(u, mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma}.Quantile(u)
}

// Simulate runs n independent trials starting at seed. Each trial adds
// Φ⁻¹(u; μ, σ) to seed for a fresh uniform u in (0, 1).
func (s *Simulator) Simulate(n int, seed float64, stats model.ChangeStats) (model.SimulationRun, error) {
	if n < 1 {
		return model.SimulationRun{}, ErrInvalidSimulations
	}
	dist := distuv.Normal{Mu: stats.Mean, Sigma: stats.StdDev}
	outcomes := make([]float64, n)
	for i := range outcomes {
		outcomes[i] = seed + dist.Quantile(s.uniform())
	}
	return model.SimulationRun{Seed: seed, Outcomes: outcomes}, nil
}

// uniform draws from [0, 1) and rejects 0, whose quantile is -Inf.
func (s *Simulator) uniform() float64 {
	for {
		if u := s.Rand.Float64(); u > 0 {
			return u
		}
	}
}
