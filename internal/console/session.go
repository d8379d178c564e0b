package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dealornodeal/internal/advisor"
	"github.com/lox/dealornodeal/internal/game"
	"github.com/lox/dealornodeal/internal/randutil"
	"github.com/lox/dealornodeal/internal/statistics"
)

type menuItem struct {
	label  string
	action func(ctx context.Context, s *Session) (quit bool, err error)
}

var menuItems = []menuItem{
	{"Play Game (Human Player)", func(ctx context.Context, s *Session) (bool, error) {
		_, err := s.PlayHuman(ctx)
		return false, err
	}},
	{"Computer Auto-Play", func(ctx context.Context, s *Session) (bool, error) {
		_, err := s.PlayComputer(ctx)
		return false, err
	}},
	{"View Statistics", func(_ context.Context, s *Session) (bool, error) {
		s.ShowStats()
		return false, nil
	}},
	{"Reset Statistics", func(_ context.Context, s *Session) (bool, error) {
		s.ResetStats()
		return false, nil
	}},
	{"Game Rules", func(_ context.Context, s *Session) (bool, error) {
		s.renderer.Rules()
		return false, nil
	}},
	{"Exit", func(_ context.Context, s *Session) (bool, error) {
		s.renderer.Success("Thank you for playing Deal or No Deal!")
		return true, nil
	}},
}

// SessionConfig wires a Session.
type SessionConfig struct {
	In         io.Reader
	Out        io.Writer
	Color      bool
	ShowAdvice bool
	Seed       int64 // 0 seeds every game from the clock
	Store      *statistics.Store
	Clock      quartz.Clock
	Logger     *log.Logger
}

// Session is one run of the program: a stats store shared by any number of
// games played from the menu.
type Session struct {
	prompter   *Prompter
	renderer   *Renderer
	store      *statistics.Store
	clock      quartz.Clock
	logger     *log.Logger
	seed       int64
	showAdvice bool
	games      int
}

// NewSession builds a session from cfg.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	styles := NewStyles(cfg.Out, cfg.Color)
	return &Session{
		prompter:   NewPrompter(cfg.In, cfg.Out, styles),
		renderer:   NewRenderer(cfg.Out, styles),
		store:      cfg.Store,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
		seed:       cfg.Seed,
		showAdvice: cfg.ShowAdvice,
	}
}

// Renderer exposes the session's renderer.
func (s *Session) Renderer() *Renderer {
	return s.renderer
}

// Run shows the main menu until the player exits or input ends. Errors from
// a single game are reported and the menu carries on.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		s.renderer.Menu()
		choice, err := s.prompter.Int(ctx, fmt.Sprintf("Enter your choice (1-%d): ", len(menuItems)), 1, len(menuItems))
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		quit, err := menuItems[choice-1].action(ctx, s)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			s.renderer.Error("Game Error: " + err.Error())
			s.logger.Error("Game aborted", "error", err)
		}
		if quit {
			return nil
		}
	}
}

// PlayHuman plays one game with the person at the console.
func (s *Session) PlayHuman(ctx context.Context) (*game.Result, error) {
	s.renderer.Title("Welcome to Deal or No Deal!")
	agent := game.NewHumanAgent(s.prompter, s.showAdvice)
	return s.play(ctx, agent, s.renderer, s.nextRand())
}

// PlayComputer lets the advisor play one game on its own.
func (s *Session) PlayComputer(ctx context.Context) (*game.Result, error) {
	s.renderer.Info("Computer Player is playing...")
	rng := s.nextRand()
	agent := game.NewComputerAgent(advisor.New(rng, s.logger))
	return s.play(ctx, agent, s.renderer.Narrator(), rng)
}

func (s *Session) play(ctx context.Context, agent game.Agent, obs game.Observer, rng *rand.Rand) (*game.Result, error) {
	engine, err := game.NewEngine(agent, game.Config{
		Rand:     rng,
		Clock:    s.clock,
		Logger:   s.logger,
		Observer: obs,
	})
	if err != nil {
		return nil, err
	}

	result, err := engine.Play(ctx)
	if err != nil {
		return nil, err
	}

	s.store.Record(result.Winnings)
	s.SaveStats()
	return result, nil
}

// nextRand returns the generator for the next game. With a fixed seed games
// are reproducible in order.
func (s *Session) nextRand() *rand.Rand {
	s.games++
	if s.seed != 0 {
		return randutil.New(s.seed + int64(s.games-1))
	}
	return randutil.FromClock(s.clock)
}

// SaveStats persists the store, printing a warning if that fails.
func (s *Session) SaveStats() {
	if err := s.store.Save(); err != nil {
		s.logger.Warn("Could not save statistics", "error", err)
		s.renderer.Warning("Warning: Could not save statistics: " + err.Error())
	}
}

// ShowStats prints the cumulative statistics.
func (s *Session) ShowStats() {
	s.renderer.Stats(s.store.Stats())
}

// ResetStats zeroes the statistics and deletes the file.
func (s *Session) ResetStats() {
	if err := s.store.Reset(); err != nil {
		s.renderer.Warning("Warning: Could not delete statistics file: " + err.Error())
		return
	}
	s.renderer.Success("Statistics reset successfully!")
}
