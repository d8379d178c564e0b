package game

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dealornodeal/internal/bank"
	"github.com/lox/dealornodeal/internal/gameid"
	"github.com/lox/dealornodeal/internal/prize"
	"github.com/lox/dealornodeal/internal/randutil"
)

var (
	ErrDuplicateSelection = errors.New("case selected twice in one round")
	ErrShortBatch         = errors.New("agent selected too few cases")
	ErrNoCasesLeft        = errors.New("no cases left to choose from")
	ErrGameFinished       = errors.New("game already played")
)

// schedule is how many cases are opened in each round.
var schedule = []int{6, 5, 4, 3, 2, 1, 1, 1, 1}

// Schedule returns a copy of the per-round batch sizes.
func Schedule() []int {
	return slices.Clone(schedule)
}

// Outcome is how a game ended.
type Outcome int

const (
	DealAccepted Outcome = iota
	CasesExhausted
)

func (o Outcome) String() string {
	switch o {
	case DealAccepted:
		return "deal"
	case CasesExhausted:
		return "no deal"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result summarises a finished game.
type Result struct {
	ID          string
	Outcome     Outcome
	Winnings    float64
	PlayerCase  int
	PlayerPrize float64
	Round       int       // round the game ended in
	Offers      []float64 // every offer made, in round order
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Duration is the wall time between choosing a case and the final reveal.
func (r Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// LastOffer returns the final offer made, or 0 if none was.
func (r Result) LastOffer() float64 {
	if len(r.Offers) == 0 {
		return 0
	}
	return r.Offers[len(r.Offers)-1]
}

// Config holds the optional collaborators of an Engine. Zero values pick
// sensible defaults.
type Config struct {
	Prizes   prize.Set // defaults to prize.Standard()
	Rand     *rand.Rand
	Clock    quartz.Clock
	Logger   *log.Logger
	Observer Observer
}

// Engine drives one game from case choice to payout.
type Engine struct {
	id       string
	board    *prize.Board
	agent    Agent
	clock    quartz.Clock
	logger   *log.Logger
	observer Observer

	round  int
	played bool
}

// NewEngine shuffles a board for agent. An invalid prize set is returned as
// an error and no engine is built.
func NewEngine(agent Agent, cfg Config) (*Engine, error) {
	if cfg.Prizes == nil {
		cfg.Prizes = prize.Standard()
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Rand == nil {
		cfg.Rand = randutil.FromClock(cfg.Clock)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}

	board, err := prize.NewBoard(cfg.Prizes, cfg.Rand)
	if err != nil {
		return nil, fmt.Errorf("initialize game: %w", err)
	}

	// The ID draws from its own generator so seeded games shuffle the same
	// with or without it.
	id := gameid.Generate(cfg.Clock.Now(), randutil.FromClock(cfg.Clock))

	return &Engine{
		id:       id,
		board:    board,
		agent:    agent,
		clock:    cfg.Clock,
		logger:   cfg.Logger.WithPrefix("engine").With("game", id),
		observer: cfg.Observer,
	}, nil
}

// ID identifies this game in logs and results.
func (e *Engine) ID() string {
	return e.id
}

// Board exposes the engine's board for inspection.
func (e *Engine) Board() *prize.Board {
	return e.board
}

// Round returns the current round, 0 before play starts.
func (e *Engine) Round() int {
	return e.round
}

// State snapshots the board for agents and observers.
func (e *Engine) State() State {
	opened := make([]bool, e.board.Size())
	for i := range opened {
		opened[i] = e.board.IsOpened(i)
	}
	return State{
		Round:      e.round,
		PlayerCase: e.board.PlayerCase(),
		Opened:     opened,
		Remaining:  e.board.Remaining(),
		Openable:   e.board.Openable(),
	}
}

// Play runs the game to completion. Any error means the game was abandoned
// and no result should be recorded.
func (e *Engine) Play(ctx context.Context) (*Result, error) {
	if e.played {
		return nil, ErrGameFinished
	}
	e.played = true
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{ID: e.id, StartedAt: e.clock.Now()}

	if err := e.chooseCase(ctx); err != nil {
		return nil, err
	}
	result.PlayerCase = e.board.PlayerCase()

	e.round = 1
	for _, batch := range schedule {
		if e.board.RemainingCount() <= 1 {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := e.openBatch(ctx, batch); err != nil {
			return nil, err
		}
		if e.board.RemainingCount() <= 1 {
			break
		}

		state := e.State()
		offer := bank.Offer(state.Remaining, e.round)
		result.Offers = append(result.Offers, offer)
		e.logger.Debug("Bank offer", "round", e.round, "offer", offer, "remaining", state.CasesRemaining())
		e.observer.OnEvent(OfferEvent{State: state, Offer: offer, timestamp: e.clock.Now()})

		accept, err := e.agent.Decide(ctx, state, offer)
		if err != nil {
			return nil, fmt.Errorf("round %d decision: %w", e.round, err)
		}
		e.observer.OnEvent(DecisionEvent{Round: e.round, Offer: offer, Accepted: accept, timestamp: e.clock.Now()})

		if accept {
			result.Outcome = DealAccepted
			result.Winnings = offer
			return e.finish(result)
		}
		e.round++
	}

	// The loop increments past the last rejected round.
	e.round = min(e.round, len(schedule))
	result.Outcome = CasesExhausted
	prizeValue, err := e.board.PlayerPrize()
	if err != nil {
		return nil, err
	}
	result.Winnings = prizeValue
	return e.finish(result)
}

func (e *Engine) chooseCase(ctx context.Context) error {
	idx, err := e.agent.ChooseCase(ctx, e.State())
	if err != nil {
		return fmt.Errorf("choose case: %w", err)
	}
	if err := e.board.ChoosePlayerCase(idx); err != nil {
		return fmt.Errorf("choose case: %w", err)
	}
	e.logger.Debug("Player case chosen", "case", idx+1)
	e.observer.OnEvent(CaseChosenEvent{PlayerCase: idx, timestamp: e.clock.Now()})
	return nil
}

func (e *Engine) openBatch(ctx context.Context, batch int) error {
	state := e.State()
	want := min(batch, len(state.Openable))
	e.observer.OnEvent(RoundStartEvent{State: state, CasesToOpen: want, timestamp: e.clock.Now()})

	picks, err := e.agent.SelectCases(ctx, state, want)
	if err != nil {
		return fmt.Errorf("round %d selection: %w", e.round, err)
	}
	if err := e.checkBatch(picks, want); err != nil {
		return fmt.Errorf("round %d selection: %w", e.round, err)
	}

	for _, idx := range picks {
		value, err := e.board.Open(idx)
		if err != nil {
			return fmt.Errorf("round %d: %w", e.round, err)
		}
		e.logger.Debug("Opened case", "round", e.round, "case", idx+1, "value", value)
		e.observer.OnEvent(CaseOpenedEvent{Round: e.round, Case: idx, Value: value, timestamp: e.clock.Now()})
	}
	return nil
}

// checkBatch validates a whole batch before any case in it is opened.
func (e *Engine) checkBatch(picks []int, want int) error {
	if len(picks) < want {
		return fmt.Errorf("%w: got %d, want %d", ErrShortBatch, len(picks), want)
	}
	if len(picks) > want {
		return fmt.Errorf("agent selected %d cases, want %d", len(picks), want)
	}
	seen := make(map[int]bool, len(picks))
	for _, idx := range picks {
		if seen[idx] {
			return fmt.Errorf("%w: case %d", ErrDuplicateSelection, idx+1)
		}
		seen[idx] = true
		if err := e.board.CanOpen(idx); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) finish(result *Result) (*Result, error) {
	prizeValue, err := e.board.PlayerPrize()
	if err != nil {
		return nil, err
	}
	result.PlayerPrize = prizeValue
	result.Round = e.round
	result.FinishedAt = e.clock.Now()

	e.logger.Info("Game over",
		"outcome", result.Outcome,
		"winnings", result.Winnings,
		"case", result.PlayerCase+1,
		"case_value", result.PlayerPrize,
		"round", result.Round)
	e.observer.OnEvent(GameOverEvent{Result: *result, timestamp: result.FinishedAt})
	return result, nil
}
