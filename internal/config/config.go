// Package config resolves mercdex settings from defaults, an optional YAML
// file and MERCDEX_* environment variables. Command-line flags are applied
// on top by the CLI.
package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
	"github.com/KirkDiggler/mercdex/internal/repositories/mercenary"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "MERCDEX_"

// Dataset sources
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// Config holds every setting the CLI needs
type Config struct {
	DataDir     string `yaml:"data_dir" env:"DATA_DIR"`
	RosterFile  string `yaml:"roster_file" env:"ROSTER_FILE"`
	FiltersFile string `yaml:"filters_file" env:"FILTERS_FILE"`

	// Source selects where the dataset is read from
	Source    string `yaml:"source" env:"SOURCE"`
	RedisAddr string `yaml:"redis_addr" env:"REDIS_ADDR"`

	MaxLevel  int `yaml:"max_level" env:"MAX_LEVEL"`
	MaxReboot int `yaml:"max_reboot" env:"MAX_REBOOT"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		DataDir:     "data",
		RosterFile:  mercenary.DefaultRosterFile,
		FiltersFile: mercenary.DefaultFiltersFile,
		Source:      SourceFile,
		RedisAddr:   "localhost:6379",
		MaxLevel:    entities.DefaultMaxLevel,
		MaxReboot:   entities.DefaultMaxReboot,
		LogLevel:    "info",
	}
}

// Load starts from Default, overlays the YAML file at path when path is
// non-empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.NotFoundf("config file %s not found", path).WithMeta("path", path)
		}
		return errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config %s", path).
			WithMeta("path", path)
	}

	return nil
}

// Validate checks every field
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("source", c.Source, []string{SourceFile, SourceRedis}, vb)
	switch c.Source {
	case SourceFile:
		errors.ValidateRequired("data_dir", c.DataDir, vb)
		errors.ValidateRequired("roster_file", c.RosterFile, vb)
		errors.ValidateRequired("filters_file", c.FiltersFile, vb)
	case SourceRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	}

	errors.ValidateMin("max_level", c.MaxLevel, 1, vb)
	errors.ValidateMin("max_reboot", c.MaxReboot, 0, vb)

	if _, err := c.SlogLevel(); err != nil {
		vb.Field("log_level", "must be one of: debug, info, warn, error")
	}

	return vb.Build()
}

// Limits returns the progression bounds
func (c *Config) Limits() entities.ProgressionLimits {
	return entities.ProgressionLimits{
		MaxLevel:  c.MaxLevel,
		MaxReboot: c.MaxReboot,
	}
}

// FileConfig returns the settings for the file-backed repository
func (c *Config) FileConfig() *mercenary.FileConfig {
	return &mercenary.FileConfig{
		Dir:         c.DataDir,
		RosterFile:  c.RosterFile,
		FiltersFile: c.FiltersFile,
	}
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
