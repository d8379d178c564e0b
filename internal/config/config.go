// Package config loads the optional game configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/lox/dealornodeal/internal/statistics"
)

// DefaultFile is looked up in the working directory when --config is unset.
const DefaultFile = "dealornodeal.hcl"

// Config is the resolved configuration with every default applied.
type Config struct {
	Game       GameSettings
	UI         UISettings
	Simulation SimulationSettings
}

// GameSettings controls play.
type GameSettings struct {
	StatsFile  string
	ShowAdvice bool
	Seed       int64 // 0 seeds from the clock
}

// UISettings controls console output and logging.
type UISettings struct {
	LogLevel string
	LogFile  string // empty logs to stderr
	Color    bool
}

// SimulationSettings controls the simulate command.
type SimulationSettings struct {
	Games int
}

// fileConfig mirrors the file layout. Pointers tell "absent" from "false".
type fileConfig struct {
	Game       *fileGame       `hcl:"game,block" yaml:"game"`
	UI         *fileUI         `hcl:"ui,block" yaml:"ui"`
	Simulation *fileSimulation `hcl:"simulation,block" yaml:"simulation"`
}

type fileGame struct {
	StatsFile  *string `hcl:"stats_file,optional" yaml:"stats_file"`
	ShowAdvice *bool   `hcl:"show_advice,optional" yaml:"show_advice"`
	Seed       *int64  `hcl:"seed,optional" yaml:"seed"`
}

type fileUI struct {
	LogLevel *string `hcl:"log_level,optional" yaml:"log_level"`
	LogFile  *string `hcl:"log_file,optional" yaml:"log_file"`
	Color    *bool   `hcl:"color,optional" yaml:"color"`
}

type fileSimulation struct {
	Games *int `hcl:"games,optional" yaml:"games"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			StatsFile:  statistics.DefaultFile,
			ShowAdvice: true,
		},
		UI: UISettings{
			LogLevel: "warn",
			Color:    true,
		},
		Simulation: SimulationSettings{
			Games: 1000,
		},
	}
}

// Load reads filename as HCL, or as YAML when it ends in .yaml or .yml. A
// missing file yields Default().
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCL(data, filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, nil, &fc)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	}

	cfg := Default()
	fc.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc fileConfig) applyTo(cfg *Config) {
	if g := fc.Game; g != nil {
		if g.StatsFile != nil {
			cfg.Game.StatsFile = *g.StatsFile
		}
		if g.ShowAdvice != nil {
			cfg.Game.ShowAdvice = *g.ShowAdvice
		}
		if g.Seed != nil {
			cfg.Game.Seed = *g.Seed
		}
	}
	if ui := fc.UI; ui != nil {
		if ui.LogLevel != nil {
			cfg.UI.LogLevel = *ui.LogLevel
		}
		if ui.LogFile != nil {
			cfg.UI.LogFile = *ui.LogFile
		}
		if ui.Color != nil {
			cfg.UI.Color = *ui.Color
		}
	}
	if sim := fc.Simulation; sim != nil && sim.Games != nil {
		cfg.Simulation.Games = *sim.Games
	}
}

// Validate checks every field holds a usable value.
func (c *Config) Validate() error {
	if c.Game.StatsFile == "" {
		return fmt.Errorf("stats file path is required")
	}
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("simulation games must be positive, got %d", c.Simulation.Games)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
