package main

import (
	"context"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Menu       MenuCmd          `cmd:"" default:"1" help:"Show the interactive main menu"`
	Play       PlayCmd          `cmd:"" help:"Play one game at the console"`
	Auto       AutoCmd          `cmd:"" help:"Watch the computer play one game"`
	Stats      StatsCmd         `cmd:"" help:"Show cumulative statistics"`
	ResetStats ResetStatsCmd    `cmd:"reset-stats" help:"Zero the statistics and delete the stats file"`
	Rules      RulesCmd         `cmd:"" help:"Explain how the game works"`
	Simulate   SimulateCmd      `cmd:"" help:"Play many computer games and summarise the payouts"`
}

func main() {
	ctx, stop := setupSignalHandler()
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("dealornodeal"),
		kong.Description("Deal or No Deal at the console, with an AI advisor and computer player"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}
