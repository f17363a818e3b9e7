package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvRounds, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
}

func TestDefaultConfig(t *testing.T) {
	want := &Config{
		Primality: PrimalityConfig{Rounds: 25},
		Logging:   LoggingConfig{Level: "warn", Format: "console"},
	}
	if diff := cmp.Diff(want, DefaultConfig()); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRounds, cfg.Primality.Rounds)
}

func TestLoad_FullFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "hexprime.yaml")
	content := "primality:\n  rounds: 40\nlogging:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	want := &Config{
		Primality: PrimalityConfig{Rounds: 40},
		Logging:   LoggingConfig{Level: "debug", Format: "json"},
	}
	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, loaded); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "hexprime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primality:\n  rounds: 7\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Primality.Rounds)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "hexprime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primality: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("rounds", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvRounds, "64")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 64, cfg.Primality.Rounds)
	})

	t.Run("unparsable rounds ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvRounds, "many")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultRounds, cfg.Primality.Rounds)
	})

	t.Run("env wins over file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "hexprime.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644))
		t.Setenv(EnvLogLevel, "error")
		t.Setenv(EnvLogFormat, "json")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, "", DefaultConfigPath())

	t.Setenv(EnvConfigPath, "/etc/hexprime.yaml")
	assert.Equal(t, "/etc/hexprime.yaml", DefaultConfigPath())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"one round", func(c *Config) { c.Primality.Rounds = 1 }, ""},
		{"zero rounds", func(c *Config) { c.Primality.Rounds = 0 }, "invalid primality rounds"},
		{"negative rounds", func(c *Config) { c.Primality.Rounds = -2 }, "invalid primality rounds"},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
