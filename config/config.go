// Package config loads the settings of the patterns CLI from an optional YAML
// file and PATTERNS_* environment variables.
package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/xuenqlve/patterns/errors"
	"github.com/xuenqlve/patterns/log"
)

type Config struct {
	Log Log `yaml:"log"`

	// Demos run when the command line names none. Empty means all of them.
	Demos []string `yaml:"demos" env:"PATTERNS_DEMOS" env-separator:"," env-description:"Demos to run by default"`
}

type Log struct {
	Level string `yaml:"level" env:"PATTERNS_LOG_LEVEL" env-default:"info" env-description:"Log level (debug, info, warn, error)"`
	Path  string `yaml:"path" env:"PATTERNS_LOG_PATH" env-description:"Directory for patterns.log, empty disables the file"`
}

// NewConfig reads path when it is set and the environment otherwise.
// Environment variables override values from the file.
func NewConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Annotatef(err, "read config from %s", path)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.Annotate(err, "read config from environment")
		}
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case log.DebugLevel, log.InfoLevel, log.WarnLevel, log.ErrorLevel:
	default:
		return errors.NewPatternErrorf(errors.ErrCodeInvalidArgument, "invalid log level: %q", c.Log.Level)
	}
	for _, d := range c.Demos {
		if strings.TrimSpace(d) == "" {
			return errors.NewPatternErrorMessage(errors.ErrCodeInvalidArgument, "demos must not contain empty names")
		}
	}
	return nil
}

// Usage describes the environment variables Config understands.
func Usage() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}
