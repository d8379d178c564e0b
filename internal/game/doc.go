// Package game runs one game of Deal or No Deal.
//
// An Engine owns a prize.Board and drives it through a fixed schedule of
// rounds. Each round an Agent opens a batch of cases, the bank makes an
// offer, and the agent takes it or plays on:
//
//	ChoosingCase -> Round(1..9) -> DealAccepted | CasesExhausted
//
// Agents only choose; the engine validates every choice and mutates the
// board. Observers receive GameEvents for display.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	agent := game.NewComputerAgent(advisor.New(rng, logger))
//	engine, err := game.NewEngine(agent, game.Config{Rand: rng, Logger: logger})
//	result, err := engine.Play(ctx)
//
// Invalid choices (out of range, the player's own case, an opened case, a
// repeated case) are state violations: Play stops and returns an error that
// wraps the matching sentinel from this package or package prize.
package game
