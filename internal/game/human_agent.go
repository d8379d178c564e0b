package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/lox/dealornodeal/internal/advisor"
)

// Prompter is the console surface a human player answers through. Int and
// YesNo re-prompt on bad input themselves and only fail when input is gone
// or ctx ends.
type Prompter interface {
	Int(ctx context.Context, prompt string, min, max int) (int, error)
	YesNo(ctx context.Context, prompt string) (bool, error)
	Warn(msg string)
	Advise(a advisor.Assessment)
}

// HumanAgent asks a person for every choice.
type HumanAgent struct {
	prompter   Prompter
	showAdvice bool
}

// NewHumanAgent returns an agent backed by p. With showAdvice set the
// advisor's recommendation is shown before each deal decision.
func NewHumanAgent(p Prompter, showAdvice bool) *HumanAgent {
	return &HumanAgent{prompter: p, showAdvice: showAdvice}
}

func (h *HumanAgent) ChooseCase(ctx context.Context, state State) (int, error) {
	n, err := h.prompter.Int(ctx, fmt.Sprintf("Choose your lucky case (1-%d): ", len(state.Opened)), 1, len(state.Opened))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

func (h *HumanAgent) SelectCases(ctx context.Context, state State, n int) ([]int, error) {
	picked := make([]int, 0, n)
	for len(picked) < n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		num, err := h.prompter.Int(ctx, fmt.Sprintf("Case %d: ", len(picked)+1), 1, len(state.Opened))
		if err != nil {
			return nil, err
		}
		idx := num - 1

		switch {
		case idx == state.PlayerCase:
			h.prompter.Warn("You can't open your own case!")
		case state.Opened[idx]:
			h.prompter.Warn("Case already opened!")
		case slices.Contains(picked, idx):
			h.prompter.Warn("Case already selected for this round!")
		default:
			picked = append(picked, idx)
		}
	}
	return picked, nil
}

func (h *HumanAgent) Decide(ctx context.Context, state State, offer float64) (bool, error) {
	if h.showAdvice {
		h.prompter.Advise(advisor.Assess(state.Remaining, offer, state.CasesRemaining()))
	}
	return h.prompter.YesNo(ctx, "Deal or No Deal?")
}
