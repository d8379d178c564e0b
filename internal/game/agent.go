package game

import (
	"context"

	"github.com/lox/dealornodeal/internal/advisor"
)

// State is a read-only snapshot of the board handed to agents and observers.
type State struct {
	Round      int
	PlayerCase int       // -1 while choosing
	Opened     []bool    // per case
	Remaining  []float64 // unopened prizes, descending, player's case included
	Openable   []int     // closed cases other than the player's
}

// CasesRemaining is the number of unopened cases, player's case included.
func (s State) CasesRemaining() int {
	return len(s.Remaining)
}

// Agent makes every choice in a game. Agents never touch the board; the
// engine validates and applies what they return.
type Agent interface {
	// ChooseCase picks the player's case from state.Openable.
	ChooseCase(ctx context.Context, state State) (int, error)
	// SelectCases picks n cases to open this round.
	SelectCases(ctx context.Context, state State, n int) ([]int, error)
	// Decide returns true to take offer.
	Decide(ctx context.Context, state State, offer float64) (bool, error)
}

// ComputerAgent plays using the advisor heuristic.
type ComputerAgent struct {
	advisor *advisor.Advisor
}

// NewComputerAgent returns an agent that plays by adv's policy.
func NewComputerAgent(adv *advisor.Advisor) *ComputerAgent {
	return &ComputerAgent{advisor: adv}
}

func (c *ComputerAgent) ChooseCase(_ context.Context, state State) (int, error) {
	idx, ok := c.advisor.PickCase(state.Openable)
	if !ok {
		return 0, ErrNoCasesLeft
	}
	return idx, nil
}

func (c *ComputerAgent) SelectCases(_ context.Context, state State, n int) ([]int, error) {
	return c.advisor.SelectCases(state.Openable, n), nil
}

func (c *ComputerAgent) Decide(_ context.Context, state State, offer float64) (bool, error) {
	return c.advisor.Evaluate(state.Remaining, offer).Accept, nil
}
