package advisor

import (
	"fmt"
	"strings"
)

// Phase names the branch of the policy in effect.
type Phase int

const (
	EarlyGame Phase = iota
	MidGame
	EndGame
)

func (p Phase) String() string {
	switch p {
	case EarlyGame:
		return "early"
	case MidGame:
		return "mid"
	case EndGame:
		return "end"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// PhaseFor returns the policy branch used with casesRemaining closed cases.
func PhaseFor(casesRemaining int) Phase {
	switch {
	case casesRemaining > earlyGameCases:
		return EarlyGame
	case casesRemaining > endGameCases:
		return MidGame
	default:
		return EndGame
	}
}

// Assessment is everything the advisor knows about one offer.
type Assessment struct {
	Offer             float64
	ExpectedValue     float64
	StdDev            float64
	RiskFactor        float64
	ProbabilityBetter float64
	CasesRemaining    int
	Phase             Phase
	Accept            bool
}

// Assess evaluates offer against remaining. Accept always matches
// ShouldAcceptDeal for the same arguments.
func Assess(remaining []float64, offer float64, casesRemaining int) Assessment {
	return Assessment{
		Offer:             offer,
		ExpectedValue:     ExpectedValue(remaining),
		StdDev:            StandardDeviation(remaining),
		RiskFactor:        RiskFactor(remaining, offer),
		ProbabilityBetter: ProbabilityBetter(remaining, offer),
		CasesRemaining:    casesRemaining,
		Phase:             PhaseFor(casesRemaining),
		Accept:            ShouldAcceptDeal(remaining, offer, casesRemaining),
	}
}

// OfferPercent is the offer as a percentage of the expected value.
func (a Assessment) OfferPercent() float64 {
	if a.ExpectedValue == 0 {
		return 0
	}
	return a.Offer / a.ExpectedValue * 100
}

// RiskPercent is the standard deviation as a percentage of the expected value.
func (a Assessment) RiskPercent() float64 {
	if a.ExpectedValue == 0 {
		return 0
	}
	return a.StdDev / a.ExpectedValue * 100
}

// Recommendation is the one-line verdict.
func (a Assessment) Recommendation() string {
	if a.Accept {
		return "DEAL! The offer is favorable."
	}
	return "NO DEAL! You can likely do better."
}

// String renders the advisory text shown to human players.
func (a Assessment) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Expected Value: $%.2f\n", a.ExpectedValue)
	fmt.Fprintf(&b, "Bank Offer: $%.2f\n", a.Offer)
	fmt.Fprintf(&b, "Offer vs Expected: %.1f%%\n", a.OfferPercent())
	fmt.Fprintf(&b, "Risk Level: %.1f%%\n", a.RiskPercent())
	fmt.Fprintf(&b, "RECOMMENDATION: %s", a.Recommendation())
	return b.String()
}
