// Package config loads terrain CLI settings from flags, TERRAIN_* environment
// variables and an optional .terrain.yaml file.
//
// Precedence, highest first: changed flags, environment, config file, defaults.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TERRAIN_ALTITUDE.
const EnvPrefix = "TERRAIN"

// ConfigFileEnv names the environment variable holding an explicit config path.
const ConfigFileEnv = "TERRAIN_CONFIG_FILE"

var (
	ErrNoInput    = errors.New("config: input path is required")
	ErrNoOutput   = errors.New("config: output path is required")
	ErrBadWorkers = errors.New("config: workers must be >= 1")
	ErrBadSteps   = errors.New("config: max_steps must be >= 0")
	ErrBadWindow  = errors.New("config: window must have positive size and non-negative offset")
	ErrBadSeed    = errors.New("config: malformed seed")
)

// Config is the unmarshalled CLI configuration.
type Config struct {
	Input     string       `mapstructure:"input"`
	Output    string       `mapstructure:"output"`
	Method    string       `mapstructure:"method"`
	Altitude  float64      `mapstructure:"altitude"`
	Azimuth   float64      `mapstructure:"azimuth"`
	Clamp     bool         `mapstructure:"clamp"`
	Seeds     []string     `mapstructure:"seeds"`
	SeedsFile string       `mapstructure:"seeds_file"`
	MaxSteps  int          `mapstructure:"max_steps"`
	Workers   int          `mapstructure:"workers"`
	Window    WindowConfig `mapstructure:"window"`
	Log       LogConfig    `mapstructure:"log"`
}

// WindowConfig selects a sub-window of the input; all zero means the full raster.
type WindowConfig struct {
	OffsetX int `mapstructure:"offset_x"`
	OffsetY int `mapstructure:"offset_y"`
	Width   int `mapstructure:"width"`
	Height  int `mapstructure:"height"`
}

// Enabled reports whether any window field was set.
func (w WindowConfig) Enabled() bool {
	return w != WindowConfig{}
}

// LogConfig selects log level and format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers every key so that environment overrides resolve.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("output", "")
	v.SetDefault("method", "")
	v.SetDefault("altitude", 45.0)
	v.SetDefault("azimuth", 315.0)
	v.SetDefault("clamp", true)
	v.SetDefault("seeds", []string{})
	v.SetDefault("seeds_file", "")
	v.SetDefault("max_steps", 0)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("window.offset_x", 0)
	v.SetDefault("window.offset_y", 0)
	v.SetDefault("window.width", 0)
	v.SetDefault("window.height", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// New returns a viper instance wired for TERRAIN_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// ReadFile reads the config file. An explicit path (flag, then
// TERRAIN_CONFIG_FILE) must exist; otherwise .terrain.yaml in the working
// directory is optional.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		path = v.GetString("config_file")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	}

	v.AddConfigPath(".")
	v.SetConfigName(".terrain")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Decode unmarshals v without validation.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// Load unmarshals v and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	cfg, err := Decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks fields that do not depend on the selected method.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ErrNoInput
	}
	if strings.TrimSpace(c.Output) == "" {
		return ErrNoOutput
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, c.Workers)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: %d", ErrBadSteps, c.MaxSteps)
	}
	if w := c.Window; w.Enabled() && (w.Width <= 0 || w.Height <= 0 || w.OffsetX < 0 || w.OffsetY < 0) {
		return fmt.Errorf("%w: %+v", ErrBadWindow, w)
	}
	return nil
}
