package prize

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
)

var (
	ErrCaseOutOfRange = errors.New("case number out of range")
	ErrCaseOpened     = errors.New("case already opened")
	ErrPlayerCase     = errors.New("cannot open the player's case")
	ErrNoPlayerCase   = errors.New("player case not chosen")
	ErrPlayerChosen   = errors.New("player case already chosen")
)

// Board is one game's case assignment and open/closed state.
// Case indices are zero-based; the console adds one when displaying them.
type Board struct {
	values     []float64 // case index -> prize, fixed after NewBoard
	opened     []bool
	remaining  []float64 // unopened prizes, descending
	playerCase int
}

// NewBoard validates set and shuffles it into the cases using rng.
func NewBoard(set Set, rng *rand.Rand) (*Board, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	values := slices.Clone([]float64(set))
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	b := &Board{
		values:     values,
		opened:     make([]bool, len(values)),
		playerCase: -1,
	}
	b.refresh()
	return b, nil
}

// ChoosePlayerCase fixes the player's case for the rest of the game.
func (b *Board) ChoosePlayerCase(idx int) error {
	if b.playerCase >= 0 {
		return ErrPlayerChosen
	}
	if err := b.checkRange(idx); err != nil {
		return err
	}
	if b.opened[idx] {
		return fmt.Errorf("%w: case %d", ErrCaseOpened, idx+1)
	}
	b.playerCase = idx
	return nil
}

// PlayerCase returns the player's case index, or -1 before one is chosen.
func (b *Board) PlayerCase() int {
	return b.playerCase
}

// PlayerPrize returns the prize inside the player's case.
func (b *Board) PlayerPrize() (float64, error) {
	if b.playerCase < 0 {
		return 0, ErrNoPlayerCase
	}
	return b.values[b.playerCase], nil
}

// CanOpen reports why idx may not be opened, or nil if it may.
func (b *Board) CanOpen(idx int) error {
	if err := b.checkRange(idx); err != nil {
		return err
	}
	if idx == b.playerCase {
		return fmt.Errorf("%w: case %d", ErrPlayerCase, idx+1)
	}
	if b.opened[idx] {
		return fmt.Errorf("%w: case %d", ErrCaseOpened, idx+1)
	}
	return nil
}

// Open marks idx opened and returns its prize.
func (b *Board) Open(idx int) (float64, error) {
	if err := b.CanOpen(idx); err != nil {
		return 0, err
	}
	b.opened[idx] = true
	b.refresh()
	return b.values[idx], nil
}

// IsOpened reports whether idx has been opened.
func (b *Board) IsOpened(idx int) bool {
	return idx >= 0 && idx < len(b.opened) && b.opened[idx]
}

// Size returns the number of cases on the board.
func (b *Board) Size() int {
	return len(b.values)
}

// OpenedCount returns how many cases have been opened.
func (b *Board) OpenedCount() int {
	n := 0
	for _, o := range b.opened {
		if o {
			n++
		}
	}
	return n
}

// Remaining returns the unopened prizes (player's case included), sorted
// descending. The slice is a copy.
func (b *Board) Remaining() []float64 {
	return slices.Clone(b.remaining)
}

// RemainingCount is len(Remaining()) without the copy.
func (b *Board) RemainingCount() int {
	return len(b.remaining)
}

// Closed returns the unopened case indices in ascending order, player's case
// included.
func (b *Board) Closed() []int {
	closed := make([]int, 0, len(b.remaining))
	for i, o := range b.opened {
		if !o {
			closed = append(closed, i)
		}
	}
	return closed
}

// Openable returns the closed cases other than the player's.
func (b *Board) Openable() []int {
	return slices.DeleteFunc(b.Closed(), func(i int) bool { return i == b.playerCase })
}

func (b *Board) checkRange(idx int) error {
	if idx < 0 || idx >= len(b.values) {
		return fmt.Errorf("%w: %d (valid 1-%d)", ErrCaseOutOfRange, idx+1, len(b.values))
	}
	return nil
}

func (b *Board) refresh() {
	b.remaining = b.remaining[:0]
	for i, v := range b.values {
		if !b.opened[i] {
			b.remaining = append(b.remaining, v)
		}
	}
	slices.SortFunc(b.remaining, func(a, c float64) int {
		switch {
		case a > c:
			return -1
		case a < c:
			return 1
		}
		return 0
	})
}
