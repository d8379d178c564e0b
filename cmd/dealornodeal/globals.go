package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dealornodeal/internal/config"
	"github.com/lox/dealornodeal/internal/console"
	"github.com/lox/dealornodeal/internal/statistics"
)

// Globals are the flags shared by every command. Set flags win over the
// config file.
type Globals struct {
	Config    string `kong:"default='dealornodeal.hcl',help='Config file (HCL, or YAML by .yaml/.yml extension)'"`
	StatsFile string `kong:"name='stats-file',help='Statistics file'"`
	LogLevel  string `kong:"name='log-level',help='Log level: debug, info, warn, error'"`
	LogFile   string `kong:"name='log-file',help='Write logs to this file instead of stderr'"`
	NoColor   bool   `kong:"name='no-color',help='Disable coloured output'"`
	Seed      int64  `kong:"default='0',help='RNG seed (0 for random)'"`
}

// resolve loads the config file and applies flag overrides.
func (g *Globals) resolve() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", g.Config, err)
	}
	if g.StatsFile != "" {
		cfg.Game.StatsFile = g.StatsFile
	}
	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}
	if g.NoColor {
		cfg.UI.Color = false
	}
	if g.Seed != 0 {
		cfg.Game.Seed = g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// app is everything a command needs once flags and config are resolved.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	store  *statistics.Store
	clock  quartz.Clock
	in     io.Reader
	out    io.Writer

	logCloser io.Closer
}

func (g *Globals) setup() (*app, error) {
	cfg, err := g.resolve()
	if err != nil {
		return nil, err
	}

	logOut := io.Writer(os.Stderr)
	var logCloser io.Closer
	if cfg.UI.LogFile != "" {
		f, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logOut, logCloser = f, f
	}
	logger := newLogger(logOut, cfg.Level())

	store := statistics.NewStore(cfg.Game.StatsFile, logger)
	store.Load()

	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		clock:     quartz.NewReal(),
		in:        os.Stdin,
		out:       os.Stdout,
		logCloser: logCloser,
	}, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

func (a *app) session() *console.Session {
	return console.NewSession(console.SessionConfig{
		In:         a.in,
		Out:        a.out,
		Color:      a.cfg.UI.Color,
		ShowAdvice: a.cfg.Game.ShowAdvice,
		Seed:       a.cfg.Game.Seed,
		Store:      a.store,
		Clock:      a.clock,
		Logger:     a.logger,
	})
}

func (a *app) Close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
