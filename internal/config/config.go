// Package config loads the wrsolve settings and problem files.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WRSOLVE_SOLVER_STRICT.
const EnvPrefix = "WRSOLVE"

// Config holds the persistent wrsolve settings.
type Config struct {
	Solver SolverConfig `mapstructure:"solver"`
	Time   TimeConfig   `mapstructure:"time"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// SolverConfig configures assembly and the default scheme.
type SolverConfig struct {
	Scheme     string `mapstructure:"scheme"`
	Strict     bool   `mapstructure:"strict"`
	QuadPoints int    `mapstructure:"quad_points"` // 0 = sized from the basis
	NPoints    int    `mapstructure:"n_points"`
}

// TimeConfig holds the defaults of the time steppers.
type TimeConfig struct {
	Dt     float64 `mapstructure:"dt"`
	Steps  int     `mapstructure:"steps"`
	Lambda float64 `mapstructure:"lambda"`
}

type OutputConfig struct {
	Format    string `mapstructure:"format"` // table or csv
	Precision int    `mapstructure:"precision"`
}

type LogConfig struct {
	Verbosity int  `mapstructure:"verbosity"`
	JSON      bool `mapstructure:"json"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("solver.scheme", "rayleigh-ritz")
	v.SetDefault("solver.strict", false)
	v.SetDefault("solver.quad_points", 0)
	v.SetDefault("solver.n_points", 20)

	v.SetDefault("time.dt", 0.01)
	v.SetDefault("time.steps", 10)
	v.SetDefault("time.lambda", 1.0)

	v.SetDefault("output.format", "table")
	v.SetDefault("output.precision", 6)

	v.SetDefault("log.verbosity", 0)
	v.SetDefault("log.json", false)
}

// NewViper returns a viper instance with defaults and environment binding.
// A non-empty path is read as a TOML config file; otherwise wrsolve.toml is
// looked up in the working directory and skipped when absent.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wrsolve")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}
	return v, nil
}

// Load reads the configuration (see NewViper).
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case "table", "csv":
	default:
		return errors.WithHint(
			errors.Newf("unknown output format %q", c.Output.Format),
			"use table or csv",
		)
	}
	if c.Solver.QuadPoints < 0 {
		return errors.Newf("solver.quad_points must not be negative (got %d)", c.Solver.QuadPoints)
	}
	if c.Output.Precision < 0 {
		return errors.Newf("output.precision must not be negative (got %d)", c.Output.Precision)
	}
	return nil
}
