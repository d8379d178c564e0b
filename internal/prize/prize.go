// Package prize models the fixed prize pool and the 26 cases holding it.
package prize

import (
	"errors"
	"fmt"
	"slices"
)

// NumCases is the number of cases on the board.
const NumCases = 26

// LowPrizeLimit splits the board's low and high prize columns.
const LowPrizeLimit = 500.0

var (
	ErrPrizeCount     = errors.New("prize set must contain exactly 26 values")
	ErrDuplicatePrize = errors.New("prize set contains a duplicate value")
	ErrNegativePrize  = errors.New("prize set contains a negative value")
)

// Set is the ordered list of prize values hidden in the cases.
type Set []float64

// Standard returns the classic US board, $0.01 to $1,000,000.
func Standard() Set {
	return Set{
		0.01, 1, 5, 10, 25, 50, 75, 100, 200, 300,
		400, 500, 750, 1000, 5000, 10000, 25000, 50000,
		75000, 100000, 200000, 300000, 400000, 500000, 750000, 1000000,
	}
}

// Validate checks the set has 26 distinct non-negative values.
func (s Set) Validate() error {
	if len(s) != NumCases {
		return fmt.Errorf("%w: got %d", ErrPrizeCount, len(s))
	}
	seen := make(map[float64]struct{}, len(s))
	for _, v := range s {
		if v < 0 {
			return fmt.Errorf("%w: %.2f", ErrNegativePrize, v)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: %.2f", ErrDuplicatePrize, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Max returns the largest prize in the set.
func (s Set) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	return slices.Max(s)
}

// Min returns the smallest prize in the set.
func (s Set) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	return slices.Min(s)
}
