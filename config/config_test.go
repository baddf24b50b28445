package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuenqlve/patterns/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.Path)
	assert.Empty(t, cfg.Demos)
}

func TestNewConfigEnv(t *testing.T) {
	t.Setenv("PATTERNS_LOG_LEVEL", "DEBUG")
	t.Setenv("PATTERNS_DEMOS", "observer,strategy")

	cfg, err := NewConfig("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"observer", "strategy"}, cfg.Demos)
}

func TestNewConfigFile(t *testing.T) {
	path := writeFile(t, `
log:
  level: warn
  path: /tmp/patterns
demos:
  - singleton
`)
	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/patterns", cfg.Log.Path)
	assert.Equal(t, []string{"singleton"}, cfg.Demos)
}

func TestNewConfigEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "log:\n  level: warn\n")
	t.Setenv("PATTERNS_LOG_LEVEL", "error")

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{name: "valid", cfg: Config{Log: Log{Level: "info"}}, ok: true},
		{name: "bad level", cfg: Config{Log: Log{Level: "trace"}}},
		{name: "empty demo", cfg: Config{Log: Log{Level: "info"}, Demos: []string{"observer", " "}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidArgument, errors.Code(err))
			assert.False(t, errors.Is(err, errors.ErrZeroDivisor))
		})
	}
}

func TestUsage(t *testing.T) {
	usage, err := Usage()
	require.NoError(t, err)
	assert.Contains(t, usage, "PATTERNS_LOG_LEVEL")
	assert.Contains(t, usage, "PATTERNS_DEMOS")
}
