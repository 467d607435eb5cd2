package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Map         MapConfig         `mapstructure:"map"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Events      EventsConfig      `mapstructure:"events"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds the starting conditions of a game
type GameConfig struct {
	StartingTreasury TreasuryConfig `mapstructure:"starting_treasury"`
	StartingPlayer   string         `mapstructure:"starting_player"`
	// TurnPolicy selects the turn-start phase: "none" or "resupply"
	TurnPolicy string `mapstructure:"turn_policy"`
}

// TreasuryConfig holds the money each side starts with
type TreasuryConfig struct {
	P1 int `mapstructure:"p1"`
	P2 int `mapstructure:"p2"`
}

// MapConfig selects where the board comes from. A non-empty Path wins over
// the generator.
type MapConfig struct {
	Path      string          `mapstructure:"path"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// GeneratorConfig holds random map generation settings
type GeneratorConfig struct {
	Ranks       int   `mapstructure:"ranks"`
	Files       int   `mapstructure:"files"`
	Towns       int   `mapstructure:"towns"`
	Cities      int   `mapstructure:"cities"`
	BorderDepth int   `mapstructure:"border_depth"`
	Seed        int64 `mapstructure:"seed"`
}

// LoggingConfig holds process-wide logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EventsConfig controls the event logger subscriber
type EventsConfig struct {
	LogLevel string   `mapstructure:"log_level"`
	DevMode  bool     `mapstructure:"dev_mode"`
	Filter   []string `mapstructure:"filter"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging  bool `mapstructure:"verbose_logging"`
	ShowCoordinates bool `mapstructure:"show_coordinates"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.starting_treasury.p1", 5)
	v.SetDefault("game.starting_treasury.p2", 5)
	v.SetDefault("game.starting_player", "p1")
	v.SetDefault("game.turn_policy", "none")

	// Map defaults
	v.SetDefault("map.path", "")
	v.SetDefault("map.generator.ranks", 8)
	v.SetDefault("map.generator.files", 8)
	v.SetDefault("map.generator.towns", 4)
	v.SetDefault("map.generator.cities", 2)
	v.SetDefault("map.generator.border_depth", 1)
	v.SetDefault("map.generator.seed", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Event logger defaults
	v.SetDefault("events.log_level", "debug")
	v.SetDefault("events.dev_mode", false)
	v.SetDefault("events.filter", []string{})

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_coordinates", true)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/frontline")
	}

	// FRONTLINE_GAME_STARTING_PLAYER overrides game.starting_player
	v.SetEnvPrefix("FRONTLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath != "" && errors.Is(err, os.ErrNotExist):
			// Specific file requested but not found - use defaults
		case configPath == "" && errors.As(err, &notFound):
			// No config in the default locations - use defaults
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

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

// LoadEnvironmentConfig merges config.<env>.yaml from the working directory
// over the loaded configuration. A missing overlay is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(merged); err != nil {
		return fmt.Errorf("environment config %s: %w", envFile, err)
	}
	cfg = merged

	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. A reloaded config
// that fails validation is dropped and reported through onError; the
// previous values stay in effect.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		reloaded := &Config{}
		err := v.Unmarshal(reloaded)
		if err == nil {
			err = Validate(reloaded)
		}
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		cfg = reloaded
		if onChange != nil {
			onChange(reloaded)
		}
	})
	v.WatchConfig()
}

var (
	validLogLevels   = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true, "disabled": true}
	validLogFormats  = map[string]bool{"console": true, "json": true}
	validTurnPolicy  = map[string]bool{"none": true, "resupply": true}
	validPlayerNames = map[string]bool{"p1": true, "p2": true, "1": true, "2": true}
)

// Validate validates the configuration values
func Validate(c *Config) error {
	// Validate game settings
	if c.Game.StartingTreasury.P1 < 0 || c.Game.StartingTreasury.P1 > 255 {
		return fmt.Errorf("game.starting_treasury.p1 must be between 0 and 255")
	}
	if c.Game.StartingTreasury.P2 < 0 || c.Game.StartingTreasury.P2 > 255 {
		return fmt.Errorf("game.starting_treasury.p2 must be between 0 and 255")
	}
	if !validPlayerNames[strings.ToLower(c.Game.StartingPlayer)] {
		return fmt.Errorf("game.starting_player must be p1 or p2, got %q", c.Game.StartingPlayer)
	}
	if !validTurnPolicy[c.Game.TurnPolicy] {
		return fmt.Errorf("game.turn_policy must be none or resupply, got %q", c.Game.TurnPolicy)
	}

	// Validate generator settings
	gen := c.Map.Generator
	if gen.Ranks < 2 || gen.Ranks > 255 || gen.Files < 1 || gen.Files > 255 {
		return fmt.Errorf("map.generator dimensions must be between 2x1 and 255x255")
	}
	if gen.Towns < 0 || gen.Cities < 0 {
		return fmt.Errorf("map.generator town and city counts must be non-negative")
	}
	if gen.BorderDepth < 1 || gen.BorderDepth*2 > gen.Ranks {
		return fmt.Errorf("map.generator.border_depth must be at least 1 and leave room for both sides")
	}

	// Validate logging
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be console or json")
	}
	if !validLogLevels[c.Events.LogLevel] {
		return fmt.Errorf("events.log_level %q is not a valid level", c.Events.LogLevel)
	}

	return nil
}
