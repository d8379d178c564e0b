// Package advisor implements the deal heuristic shared by the computer player
// and the hints shown to human players.
package advisor

import "math"

// Policy thresholds, keyed by how many cases are still closed.
const (
	earlyGameCases = 10 // more than this: early game
	endGameCases   = 5  // this many or fewer: end game

	earlyAcceptRatio = 0.90
	midAcceptRatio   = 0.85
	endAcceptRatio   = 0.80

	riskPenaltyWeight = 0.3
	riskAcceptBelow   = 0.4
)

// ExpectedValue returns the arithmetic mean of remaining.
func ExpectedValue(remaining []float64) float64 {
	if len(remaining) == 0 {
		return 0
	}
	var sum float64
	for _, v := range remaining {
		sum += v
	}
	return sum / float64(len(remaining))
}

// StandardDeviation returns the population standard deviation of remaining.
// The remaining prizes are the whole population, not a sample, so the sum of
// squared deviations is divided by N.
func StandardDeviation(remaining []float64) float64 {
	if len(remaining) < 2 {
		return 0
	}
	mean := ExpectedValue(remaining)
	var variance float64
	for _, v := range remaining {
		d := v - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(remaining)))
}

// ProbabilityBetter returns the fraction of remaining prizes strictly greater
// than offer.
func ProbabilityBetter(remaining []float64, offer float64) float64 {
	if len(remaining) == 0 {
		return 0
	}
	better := 0
	for _, v := range remaining {
		if v > offer {
			better++
		}
	}
	return float64(better) / float64(len(remaining))
}

// RiskFactor blends the chance of beating offer against a variance penalty.
// The +1 keeps the ratio finite when every remaining prize is zero.
func RiskFactor(remaining []float64, offer float64) float64 {
	ev := ExpectedValue(remaining)
	penalty := StandardDeviation(remaining) / (ev + 1)
	return ProbabilityBetter(remaining, offer) - riskPenaltyWeight*penalty
}

// ShouldAcceptDeal decides whether offer should be taken with casesRemaining
// cases still closed.
func ShouldAcceptDeal(remaining []float64, offer float64, casesRemaining int) bool {
	if len(remaining) == 0 {
		return true
	}

	ev := ExpectedValue(remaining)
	switch {
	case casesRemaining > earlyGameCases:
		return offer >= earlyAcceptRatio*ev
	case casesRemaining > endGameCases:
		return offer >= midAcceptRatio*ev
	default:
		return RiskFactor(remaining, offer) < riskAcceptBelow || offer >= endAcceptRatio*ev
	}
}
