package advisor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dealornodeal/internal/randutil"
)

func TestSelectCasesDistinctMembers(t *testing.T) {
	rng := randutil.New(7)
	closed := []int{0, 2, 3, 5, 8, 13, 21, 25}

	for n := 0; n <= len(closed)+3; n++ {
		got := SelectCases(rng, closed, n)
		assert.Len(t, got, min(n, len(closed)))

		seen := map[int]bool{}
		for _, idx := range got {
			assert.Contains(t, closed, idx)
			assert.False(t, seen[idx], "index %d repeated", idx)
			seen[idx] = true
		}
	}
}

func TestSelectCasesDoesNotMutateInput(t *testing.T) {
	closed := []int{1, 2, 3, 4, 5}
	SelectCases(randutil.New(1), closed, 3)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, closed)
}

func TestSelectCasesCoversEveryCase(t *testing.T) {
	rng := randutil.New(11)
	closed := indices(10)
	hits := map[int]int{}
	for i := 0; i < 2000; i++ {
		for _, idx := range SelectCases(rng, closed, 1) {
			hits[idx]++
		}
	}
	require.Len(t, hits, 10)
	for idx, n := range hits {
		assert.InDelta(t, 200, n, 80, "case %d picked %d times", idx, n)
	}
}

func TestAssessMatchesPolicy(t *testing.T) {
	rng := randutil.New(5)
	for i := 0; i < 200; i++ {
		remaining := make([]float64, 1+rng.IntN(26))
		for j := range remaining {
			remaining[j] = float64(rng.IntN(1000000))
		}
		offer := rng.Float64() * ExpectedValue(remaining) * 1.2
		a := Assess(remaining, offer, len(remaining))
		assert.Equal(t, ShouldAcceptDeal(remaining, offer, len(remaining)), a.Accept)
	}
}

func TestAssessmentString(t *testing.T) {
	a := Assess([]float64{1000000, 0.01}, 275000.00275, 2)
	text := a.String()

	assert.Contains(t, text, "Expected Value: $500000.0")
	assert.Contains(t, text, "Bank Offer: $275000.00")
	assert.Contains(t, text, "Offer vs Expected: 55.0%")
	assert.Contains(t, text, "Risk Level: 100.0%")
	assert.Contains(t, text, "RECOMMENDATION: DEAL!")
	assert.Equal(t, EndGame, a.Phase)
}

func TestAssessmentZeroExpectedValue(t *testing.T) {
	a := Assess([]float64{0, 0}, 0, 2)
	assert.Zero(t, a.OfferPercent())
	assert.Zero(t, a.RiskPercent())
	assert.False(t, strings.Contains(a.String(), "NaN"))
}

func TestPhaseFor(t *testing.T) {
	assert.Equal(t, EarlyGame, PhaseFor(20))
	assert.Equal(t, EarlyGame, PhaseFor(11))
	assert.Equal(t, MidGame, PhaseFor(10))
	assert.Equal(t, MidGame, PhaseFor(6))
	assert.Equal(t, EndGame, PhaseFor(5))
	assert.Equal(t, "mid", MidGame.String())
}

func TestAdvisorPickCase(t *testing.T) {
	a := New(randutil.New(3), log.NewWithOptions(io.Discard, log.Options{}))

	_, ok := a.PickCase(nil)
	assert.False(t, ok)

	idx, ok := a.PickCase([]int{4, 9})
	require.True(t, ok)
	assert.Contains(t, []int{4, 9}, idx)

	assert.Len(t, a.SelectCases([]int{1, 2, 3}, 2), 2)
	assert.True(t, a.Evaluate([]float64{10, 10}, 10).Accept)
}

func TestNewWithoutLogger(t *testing.T) {
	adv := New(randutil.New(1), nil)
	idx, ok := adv.PickCase([]int{4})
	assert.True(t, ok)
	assert.Equal(t, 4, idx)
}
