package main

import (
	"context"
	"errors"
	"io"
)

type MenuCmd struct{}

func (c *MenuCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.Close()

	session := a.session()
	if err := session.Run(ctx); err != nil {
		return err
	}
	session.SaveStats()
	return nil
}

type PlayCmd struct{}

func (c *PlayCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = a.session().PlayHuman(ctx)
	return ignoreQuit(err)
}

type AutoCmd struct{}

func (c *AutoCmd) Run(ctx context.Context, g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = a.session().PlayComputer(ctx)
	return ignoreQuit(err)
}

type StatsCmd struct{}

func (c *StatsCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.Close()

	a.session().ShowStats()
	return nil
}

type ResetStatsCmd struct{}

func (c *ResetStatsCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.Close()

	a.session().ResetStats()
	return nil
}

type RulesCmd struct{}

func (c *RulesCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	defer a.Close()

	a.session().Renderer().Rules()
	return nil
}

// ignoreQuit treats closed input and Ctrl-C as a normal exit.
func ignoreQuit(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
