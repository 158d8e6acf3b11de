package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	cfg = nil
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
match:
  victory_score: 12
  max_turns: 60
  max_energy: 15
sim:
  games: 500
  agent_a: random
storage:
  path: matches.db
`
	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	resetGlobals()
	require.NoError(t, Init(configFile))

	c := Get()
	assert.Equal(t, 12, c.Match.VictoryScore)
	assert.Equal(t, 60, c.Match.MaxTurns)
	assert.Equal(t, 15, c.Match.MaxEnergy)
	assert.Equal(t, 500, c.Sim.Games)
	assert.Equal(t, "random", c.Sim.AgentA)
	assert.Equal(t, "matches.db", c.Storage.Path)

	// Untouched keys keep their defaults.
	assert.Equal(t, 2, c.Match.Battlefields)
	assert.Equal(t, 1, c.Match.ChannelRate)
	assert.Equal(t, 5, c.Match.OpeningHand)
	assert.Equal(t, "control", c.Sim.AgentB)
}

func TestInitWithDefaults(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	assert.Equal(t, 8, c.Match.VictoryScore)
	assert.Equal(t, 40, c.Match.MaxTurns)
	assert.Equal(t, 10, c.Match.MaxEnergy)
	assert.Equal(t, 0, c.Match.StartingEnergy)
	assert.Equal(t, 100, c.Sim.Games)
	assert.Equal(t, int64(42), c.Sim.Seed)
	assert.Equal(t, "info", c.Log.Level)
	assert.Empty(t, c.Storage.Path, "recording is off by default")
}

func TestDefaultRunes(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	c := Get()
	assert.Equal(t, 2, c.Match.Runes["calm"])
	assert.Equal(t, 2, c.Match.Runes["fury"])
}

func TestEnvironmentVariables(t *testing.T) {
	resetGlobals()

	os.Setenv("LANEBOUND_MATCH_VICTORY_SCORE", "3")
	os.Setenv("LANEBOUND_SIM_GAMES", "7")
	defer os.Unsetenv("LANEBOUND_MATCH_VICTORY_SCORE")
	defer os.Unsetenv("LANEBOUND_SIM_GAMES")

	require.NoError(t, Init(""))

	c := Get()
	assert.Equal(t, 3, c.Match.VictoryScore)
	assert.Equal(t, 7, c.Sim.Games)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Match: MatchConfig{
				VictoryScore: 8,
				MaxTurns:     40,
				MaxEnergy:    10,
				ChannelRate:  1,
				OpeningHand:  5,
				Battlefields: 2,
				Runes:        map[string]int{"calm": 2},
			},
			Sim: SimConfig{Games: 10, Parallelism: 1},
			Log: LogConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero victory score", func(c *Config) { c.Match.VictoryScore = 0 }, "victory_score"},
		{"zero max turns", func(c *Config) { c.Match.MaxTurns = 0 }, "max_turns"},
		{"zero max energy", func(c *Config) { c.Match.MaxEnergy = 0 }, "max_energy"},
		{"zero channel rate", func(c *Config) { c.Match.ChannelRate = 0 }, "channel_rate"},
		{"negative starting energy", func(c *Config) { c.Match.StartingEnergy = -1 }, "starting_energy"},
		{"wrong lane count", func(c *Config) { c.Match.Battlefields = 3 }, "battlefields"},
		{"unknown rune domain", func(c *Config) { c.Match.Runes = map[string]int{"void": 1} }, "unknown domain"},
		{"negative rune count", func(c *Config) { c.Match.Runes = map[string]int{"calm": -1} }, "non-negative"},
		{"zero games", func(c *Config) { c.Sim.Games = 0 }, "games"},
		{"zero parallelism", func(c *Config) { c.Sim.Parallelism = 0 }, "parallelism"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace2" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
