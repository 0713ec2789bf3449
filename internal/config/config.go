// Package config loads goscwb settings.
//
// Configuration hierarchy (highest to lowest priority):
//  1. CLI flags (subcommands only)
//  2. Environment variables (SCWB_*), including those loaded from .env
//  3. Config file (scwb.yaml in the working directory)
//  4. Defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/goscwb/internal/nscp"
)

const (
	// FileName is the config file base name looked up in the working directory
	FileName = "scwb"
	// EnvPrefix is prepended to every environment override
	EnvPrefix = "SCWB"

	DefaultInput = "data/sample_data.csv"
	DefaultLevel = "warn"
)

// Config holds every goscwb setting
type Config struct {
	// Factor is the SCWB safety factor. Zero means take it from DesignCode.
	Factor     float64   `mapstructure:"factor" yaml:"factor"`
	DesignCode string    `mapstructure:"design_code" yaml:"design_code"`
	Input      string    `mapstructure:"input" yaml:"input"`
	Output     string    `mapstructure:"output" yaml:"output"` // empty: results.csv next to the input
	Log        LogConfig `mapstructure:"log" yaml:"log"`

	// File is the config file that was read, if any
	File string `mapstructure:"-" yaml:"-"`
}

// LogConfig controls the diagnostic logger
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	Debug bool   `mapstructure:"debug" yaml:"debug"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		Factor:     0,
		DesignCode: nscp.DefaultCode,
		Input:      filepath.FromSlash(DefaultInput),
		Output:     "",
		Log: LogConfig{
			Level: DefaultLevel,
			Debug: false,
		},
	}
}

// Load reads .env and scwb.yaml from dir, applies SCWB_* overrides and
// resolves the safety factor.
func Load(dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("factor", def.Factor)
	v.SetDefault("design_code", def.DesignCode)
	v.SetDefault("input", def.Input)
	v.SetDefault("output", def.Output)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.debug", def.Log.Debug)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve fills the factor from the design code when it is unset and checks
// that the result is usable.
func (c *Config) Resolve() error {
	code, err := nscp.Lookup(c.DesignCode)
	if err != nil {
		return err
	}
	c.DesignCode = code.ID

	if c.Factor == 0 {
		c.Factor = code.Factor
	}
	return ValidateFactor(c.Factor)
}

// ValidateFactor rejects factors that cannot scale a beam capacity
func ValidateFactor(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("invalid safety factor %v: must be a positive number", f)
	}
	return nil
}

// OutputPath returns the configured output path, or "" to let the batch
// processor choose the sibling results file.
func (c Config) OutputPath() string {
	return strings.TrimSpace(c.Output)
}
