package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"ludo/internal/common"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Render  RenderConfig  `mapstructure:"render"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GameConfig holds the rule knobs for a single simulation
type GameConfig struct {
	Rules RulesConfig `mapstructure:"rules"`
}

// RulesConfig holds the board geometry and movement rules
type RulesConfig struct {
	PiecesPerPlayer int   `mapstructure:"pieces_per_player"`
	DieFaces        int   `mapstructure:"die_faces"`
	TrackLength     int   `mapstructure:"track_length"`
	HomeColumn      int   `mapstructure:"home_column"`
	SafeCells       []int `mapstructure:"safe_cells"`
	MaxTurns        int   `mapstructure:"max_turns"`
}

// RenderConfig holds GIF rendering settings
type RenderConfig struct {
	CellSize    int `mapstructure:"cell_size"`
	FrameMillis int `mapstructure:"frame_millis"`
}

// LoggingConfig holds diagnostic logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	mu  sync.RWMutex
	v   *viper.Viper
	cfg *Config
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.rules.pieces_per_player", 4)
	v.SetDefault("game.rules.die_faces", 6)
	v.SetDefault("game.rules.track_length", 40)
	v.SetDefault("game.rules.home_column", 4)
	// Each start cell plus the cell eight past it
	v.SetDefault("game.rules.safe_cells", []int{0, 8, 10, 18, 20, 28, 30, 38})
	v.SetDefault("game.rules.max_turns", 2000)

	v.SetDefault("render.cell_size", 28)
	v.SetDefault("render.frame_millis", 250)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init loads configuration from the given path, falling back to defaults.
// An empty path searches the usual locations for a config.yaml.
func Init(configPath string) error {
	mu.Lock()
	defer mu.Unlock()

	v = viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/ludo")
	}

	v.SetEnvPrefix("LUDO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not readable; fall back to defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	cfg = c
	return nil
}

// Get returns the current configuration, initializing defaults if needed
func Get() *Config {
	mu.RLock()
	if cfg != nil {
		defer mu.RUnlock()
		return cfg
	}
	mu.RUnlock()

	if err := Init(""); err != nil {
		panic(fmt.Sprintf("failed to initialize config: %v", err))
	}
	return cfg
}

// Set overrides a single key, mainly for tests
func Set(key string, value interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return
	}
	v.Set(key, value)
	c := &Config{}
	if err := v.Unmarshal(c); err == nil {
		cfg = c
	}
}

// Watch re-reads the config file on change and invokes onChange
func Watch(onChange func()) {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return
	}
	v.OnConfigChange(func(_ fsnotify.Event) {
		mu.Lock()
		c := &Config{}
		if err := v.Unmarshal(c); err == nil && Validate(c) == nil {
			cfg = c
		}
		mu.Unlock()
		if onChange != nil {
			onChange()
		}
	})
	v.WatchConfig()
}

// Validate checks configuration values for consistency
func Validate(c *Config) error {
	r := c.Game.Rules
	if r.PiecesPerPlayer < 1 {
		return fmt.Errorf("game.rules.pieces_per_player must be at least 1, got %d", r.PiecesPerPlayer)
	}
	if r.DieFaces < 2 {
		return fmt.Errorf("game.rules.die_faces must be at least 2, got %d", r.DieFaces)
	}
	if r.TrackLength < common.MaxPlayers || r.TrackLength%common.MaxPlayers != 0 {
		return fmt.Errorf("game.rules.track_length must be a positive multiple of %d, got %d", common.MaxPlayers, r.TrackLength)
	}
	if r.HomeColumn < 1 {
		return fmt.Errorf("game.rules.home_column must be at least 1, got %d", r.HomeColumn)
	}
	if r.MaxTurns < 1 {
		return fmt.Errorf("game.rules.max_turns must be at least 1, got %d", r.MaxTurns)
	}
	for _, cell := range r.SafeCells {
		if cell < 0 || cell >= r.TrackLength {
			return fmt.Errorf("game.rules.safe_cells entry %d outside track [0,%d)", cell, r.TrackLength)
		}
	}
	if c.Render.CellSize < 8 {
		return fmt.Errorf("render.cell_size must be at least 8, got %d", c.Render.CellSize)
	}
	if c.Render.FrameMillis < 10 {
		return fmt.Errorf("render.frame_millis must be at least 10, got %d", c.Render.FrameMillis)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
