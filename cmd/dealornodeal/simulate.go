package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lox/dealornodeal/internal/simulator"
)

type SimulateCmd struct {
	Games  int  `kong:"default='0',help='Number of games to play (0 uses the config value)'"`
	Record bool `kong:"help='Add the results to the saved statistics'"`
	NoTUI  bool `kong:"name='no-tui',help='Print plain progress instead of the progress bar'"`
}

func (c *SimulateCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.Close()

	games := a.cfg.Simulation.Games
	if c.Games > 0 {
		games = c.Games
	}
	sim, err := simulator.New(simulator.Config{
		Games:  games,
		Seed:   a.cfg.Game.Seed,
		Clock:  a.clock,
		Logger: a.logger,
	})
	if err != nil {
		return err
	}

	session := a.session()
	renderer := session.Renderer()
	renderer.Info("Simulating games with the computer player...")

	var summary simulator.Summary
	if c.NoTUI || !isatty.IsTerminal(os.Stdout.Fd()) {
		summary, err = sim.Run(ctx, dotProgress(a.out))
	} else {
		summary, err = simulator.RunWithProgress(ctx, sim, a.in, a.out)
	}
	if err != nil {
		return ignoreQuit(err)
	}

	renderer.Simulation(summary)
	if c.Record {
		a.store.Merge(summary.Stats)
		session.SaveStats()
		renderer.Success("Results added to statistics.")
	}
	return nil
}
