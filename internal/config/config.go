package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/lanebound/lanebound/internal/game/core"
)

// Config holds all configuration for the simulator.
type Config struct {
	Match   MatchConfig   `mapstructure:"match"`
	Sim     SimConfig     `mapstructure:"sim"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
}

// MatchConfig holds the rule tunables fixed for the duration of one
// match.
type MatchConfig struct {
	VictoryScore   int            `mapstructure:"victory_score"`
	MaxTurns       int            `mapstructure:"max_turns"`
	MaxEnergy      int            `mapstructure:"max_energy"`
	ChannelRate    int            `mapstructure:"channel_rate"`
	StartingEnergy int            `mapstructure:"starting_energy"`
	OpeningHand    int            `mapstructure:"opening_hand"`
	Battlefields   int            `mapstructure:"battlefields"`
	Runes          map[string]int `mapstructure:"runes"`
}

// SimConfig holds batch simulation settings.
type SimConfig struct {
	Games       int    `mapstructure:"games"`
	Seed        int64  `mapstructure:"seed"`
	AgentA      string `mapstructure:"agent_a"`
	AgentB      string `mapstructure:"agent_b"`
	Parallelism int    `mapstructure:"parallelism"`
	Verbose     bool   `mapstructure:"verbose"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig holds match-recording settings. An empty path disables
// recording entirely.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Match defaults
	v.SetDefault("match.victory_score", 8)
	v.SetDefault("match.max_turns", 40)
	v.SetDefault("match.max_energy", 10)
	v.SetDefault("match.channel_rate", 1)
	v.SetDefault("match.starting_energy", 0)
	v.SetDefault("match.opening_hand", 5)
	v.SetDefault("match.battlefields", 2)
	v.SetDefault("match.runes", map[string]int{"calm": 2, "fury": 2})

	// Sim defaults
	v.SetDefault("sim.games", 100)
	v.SetDefault("sim.seed", 42)
	v.SetDefault("sim.agent_a", "aggro")
	v.SetDefault("sim.agent_b", "control")
	v.SetDefault("sim.parallelism", 1)
	v.SetDefault("sim.verbose", true)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Storage defaults
	v.SetDefault("storage.path", "")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/lanebound")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("LANEBOUND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Match.VictoryScore <= 0 {
		return fmt.Errorf("match.victory_score must be positive")
	}
	if c.Match.MaxTurns <= 0 {
		return fmt.Errorf("match.max_turns must be positive")
	}
	// The energy cap is a required value, not an implied default: the
	// core resource model does not cap on its own.
	if c.Match.MaxEnergy <= 0 {
		return fmt.Errorf("match.max_energy must be positive")
	}
	if c.Match.ChannelRate <= 0 {
		return fmt.Errorf("match.channel_rate must be positive")
	}
	if c.Match.StartingEnergy < 0 {
		return fmt.Errorf("match.starting_energy must be non-negative")
	}
	if c.Match.OpeningHand < 0 {
		return fmt.Errorf("match.opening_hand must be non-negative")
	}
	// The lane count is part of the rules, not a tunable; the key exists
	// so a stale config fails loudly instead of being ignored.
	if c.Match.Battlefields != 2 {
		return fmt.Errorf("match.battlefields must be 2")
	}
	for name, count := range c.Match.Runes {
		if _, err := core.ParseDomain(name); err != nil {
			return fmt.Errorf("match.runes: unknown domain %q", name)
		}
		if count < 0 {
			return fmt.Errorf("match.runes.%s must be non-negative", name)
		}
	}

	if c.Sim.Games <= 0 {
		return fmt.Errorf("sim.games must be positive")
	}
	if c.Sim.Parallelism <= 0 {
		return fmt.Errorf("sim.parallelism must be positive")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json")
	}

	return nil
}
