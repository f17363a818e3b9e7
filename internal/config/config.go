package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"hexprime/internal/primality"
)

// Config holds all hexprime configuration.
type Config struct {
	// Primality test settings
	Primality PrimalityConfig `yaml:"primality"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// PrimalityConfig configures the probabilistic test.
type PrimalityConfig struct {
	Rounds int `yaml:"rounds"` // Miller-Rabin rounds, must be >= 1
}

// Environment variables read by applyEnvOverrides.
const (
	EnvConfigPath = "HEXPRIME_CONFIG"
	EnvRounds     = "HEXPRIME_ROUNDS"
	EnvLogLevel   = "HEXPRIME_LOG_LEVEL"
	EnvLogFormat  = "HEXPRIME_LOG_FORMAT"
)

// DefaultRounds is the round count used when neither file, env nor flag sets one.
const DefaultRounds = primality.DefaultRounds

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Primality: PrimalityConfig{
			Rounds: DefaultRounds,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultConfigPath returns the config file named by HEXPRIME_CONFIG, or ""
// when no file should be read.
func DefaultConfigPath() string {
	return os.Getenv(EnvConfigPath)
}

// Load loads configuration from a YAML file.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// Defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvRounds); v != "" {
		// Unparsable values are ignored
		if n, err := strconv.Atoi(v); err == nil {
			c.Primality.Rounds = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Primality.Rounds < 1 {
		return fmt.Errorf("invalid primality rounds: %d (must be at least 1)", c.Primality.Rounds)
	}
	return c.Logging.Validate()
}
