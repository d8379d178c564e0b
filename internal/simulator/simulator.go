// Package simulator plays batches of computer games and summarises how the
// advisor's policy pays out.
package simulator

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dealornodeal/internal/advisor"
	"github.com/lox/dealornodeal/internal/game"
	"github.com/lox/dealornodeal/internal/randutil"
	"github.com/lox/dealornodeal/internal/statistics"
)

// ErrNoGames is returned when a simulation is configured with nothing to play.
var ErrNoGames = errors.New("simulation needs at least one game")

// Config holds configuration for running simulations
type Config struct {
	Games  int
	Seed   int64 // 0 seeds from the clock
	Clock  quartz.Clock
	Logger *log.Logger
}

// Summary aggregates a batch of finished games.
type Summary struct {
	Stats      statistics.GameStats
	Deals      int
	NoDeals    int
	DealRounds map[int]int // round -> deals taken in that round
	BestOffer  float64     // highest offer seen in any game
	Elapsed    time.Duration
}

// Add folds a finished game into the summary.
func (s *Summary) Add(r *game.Result) {
	s.Stats.Record(r.Winnings)
	switch r.Outcome {
	case game.DealAccepted:
		s.Deals++
		if s.DealRounds == nil {
			s.DealRounds = make(map[int]int)
		}
		s.DealRounds[r.Round]++
	case game.CasesExhausted:
		s.NoDeals++
	}
	for _, offer := range r.Offers {
		if offer > s.BestOffer {
			s.BestOffer = offer
		}
	}
}

// DealRate returns the percentage of games that ended in a deal.
func (s Summary) DealRate() float64 {
	if s.Stats.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Deals) / float64(s.Stats.GamesPlayed) * 100
}

// Simulator runs computer games one at a time so callers can report
// progress between them.
type Simulator struct {
	config Config
	seeds  *rand.Rand
	played int
	start  time.Time

	summary Summary
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Games <= 0 {
		return nil, ErrNoGames
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	config.Logger = config.Logger.WithPrefix("sim")

	return &Simulator{
		config: config,
		seeds:  randutil.Seeded(config.Seed, config.Clock),
		start:  config.Clock.Now(),
	}, nil
}

// Total is the number of games the simulation will play.
func (s *Simulator) Total() int {
	return s.config.Games
}

// Played is the number of games finished so far.
func (s *Simulator) Played() int {
	return s.played
}

// Done reports whether every game has been played.
func (s *Simulator) Done() bool {
	return s.played >= s.config.Games
}

// Summary returns the totals so far with the elapsed time filled in.
func (s *Simulator) Summary() Summary {
	summary := s.summary
	summary.Elapsed = s.config.Clock.Now().Sub(s.start)
	return summary
}

// Step plays the next game.
func (s *Simulator) Step(ctx context.Context) (*game.Result, error) {
	if s.Done() {
		return nil, game.ErrGameFinished
	}

	rng := randutil.New(s.seeds.Int64())
	agent := game.NewComputerAgent(advisor.New(rng, s.config.Logger))
	engine, err := game.NewEngine(agent, game.Config{
		Rand:   rng,
		Clock:  s.config.Clock,
		Logger: s.config.Logger,
	})
	if err != nil {
		return nil, err
	}

	result, err := engine.Play(ctx)
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", s.played+1, err)
	}

	s.played++
	s.summary.Add(result)
	s.config.Logger.Debug("Game finished",
		"game", s.played,
		"outcome", result.Outcome,
		"round", result.Round,
		"winnings", result.Winnings)
	return result, nil
}

// Run plays every remaining game, calling progress after each one when it
// is non-nil.
func (s *Simulator) Run(ctx context.Context, progress func(played, total int)) (Summary, error) {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.Summary(), err
		}
		if _, err := s.Step(ctx); err != nil {
			return s.Summary(), err
		}
		if progress != nil {
			progress(s.played, s.config.Games)
		}
	}

	summary := s.Summary()
	if err := summary.Stats.Validate(); err != nil {
		return summary, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.config.Logger.Info("Simulation complete",
		"games", summary.Stats.GamesPlayed,
		"deals", summary.Deals,
		"average", summary.Stats.Average())
	return summary, nil
}
