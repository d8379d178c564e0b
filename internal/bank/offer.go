// Package bank computes the banker's offer for the current round.
package bank

const (
	basePercentage  = 0.10
	roundIncrement  = 0.05
	maxPercentage   = 0.90
	saturationRound = 16
)

// Percentage returns the share of the expected value offered in round:
// 15% in round 1, five points more per round, capped at 90%.
func Percentage(round int) float64 {
	if round >= saturationRound {
		return maxPercentage
	}
	return min(maxPercentage, basePercentage+roundIncrement*float64(round))
}

// Offer returns mean(remaining) scaled by Percentage(round). An empty board
// is worth nothing.
func Offer(remaining []float64, round int) float64 {
	if len(remaining) == 0 {
		return 0
	}
	var sum float64
	for _, v := range remaining {
		sum += v
	}
	return sum / float64(len(remaining)) * Percentage(round)
}
