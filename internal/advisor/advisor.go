package advisor

import (
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
)

// Advisor carries the random source and logger the heuristic needs when it
// plays on its own.
type Advisor struct {
	rng    *rand.Rand
	logger *log.Logger
}

// New returns an advisor drawing case picks from rng.
func New(rng *rand.Rand, logger *log.Logger) *Advisor {
	if logger == nil {
		logger = log.Default()
	}
	return &Advisor{
		rng:    rng,
		logger: logger.WithPrefix("advisor"),
	}
}

// Evaluate assesses an offer and logs the verdict.
func (a *Advisor) Evaluate(remaining []float64, offer float64) Assessment {
	assessment := Assess(remaining, offer, len(remaining))
	a.logger.Debug("Assessed offer",
		"offer", offer,
		"ev", assessment.ExpectedValue,
		"stddev", assessment.StdDev,
		"risk", assessment.RiskFactor,
		"phase", assessment.Phase,
		"accept", assessment.Accept)
	return assessment
}

// SelectCases picks n cases to open from closed.
func (a *Advisor) SelectCases(closed []int, n int) []int {
	return SelectCases(a.rng, closed, n)
}

// PickCase picks a single case uniformly from candidates.
func (a *Advisor) PickCase(candidates []int) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[a.rng.IntN(len(candidates))], true
}

// SelectCases returns min(n, len(closed)) distinct indices drawn uniformly
// from closed. It has no notion of the player's case; callers pass only the
// cases they are willing to open.
func SelectCases(rng *rand.Rand, closed []int, n int) []int {
	if n <= 0 || len(closed) == 0 {
		return nil
	}
	pool := slices.Clone(closed)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:min(n, len(pool))]
}
