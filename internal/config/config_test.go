package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Game.ShowAdvice)
	assert.True(t, cfg.UI.Color)
	assert.Equal(t, "dealornodeal_stats.txt", cfg.Game.StatsFile)
	assert.Equal(t, 1000, cfg.Simulation.Games)
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

func TestLoadHCL(t *testing.T) {
	path := writeConfig(t, "game.hcl", `
game {
  stats_file  = "custom_stats.txt"
  show_advice = false
  seed        = 42
}

ui {
  log_level = "debug"
  color     = false
}

simulation {
  games = 250
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom_stats.txt", cfg.Game.StatsFile)
	assert.False(t, cfg.Game.ShowAdvice)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.False(t, cfg.UI.Color)
	assert.Empty(t, cfg.UI.LogFile)
	assert.Equal(t, 250, cfg.Simulation.Games)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadHCLPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "game.hcl", `
ui {
  log_file = "game.log"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "game.log", cfg.UI.LogFile)
	assert.True(t, cfg.UI.Color)
	assert.True(t, cfg.Game.ShowAdvice)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "game.yaml", `
game:
  stats_file: yaml_stats.txt
  show_advice: false
ui:
  log_level: error
simulation:
  games: 10
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml_stats.txt", cfg.Game.StatsFile)
	assert.False(t, cfg.Game.ShowAdvice)
	assert.Equal(t, "error", cfg.UI.LogLevel)
	assert.True(t, cfg.UI.Color)
	assert.Equal(t, 10, cfg.Simulation.Games)
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad hcl syntax", "bad.hcl", "game {", "failed to parse HCL"},
		{"unknown hcl attribute", "bad.hcl", "game {\n  colour = true\n}\n", "failed to decode HCL"},
		{"unknown yaml key", "bad.yaml", "game:\n  colour: true\n", "failed to decode YAML"},
		{"bad log level", "bad.hcl", "ui {\n  log_level = \"loud\"\n}\n", "invalid log level"},
		{"zero games", "bad.hcl", "simulation {\n  games = 0\n}\n", "simulation games must be positive"},
		{"empty stats file", "bad.yaml", "game:\n  stats_file: \"\"\n", "stats file path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
