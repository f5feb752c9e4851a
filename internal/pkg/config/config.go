package config

import (
	"fmt"
	"os"
	"slices"
)

const (
	defaultLogLevel    = "info"
	defaultLogEncoding = "console"
)

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logEncodings = []string{"console", "json"}
)

type (
	Log struct {
		Level    string
		Encoding string
	}

	Config struct {
		Log Log
	}
)

func Load() (*Config, error) {
	cfg := loadFromEnv()

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() *Config {
	return &Config{
		Log: Log{
			Level:    osGetEnvDefault("LOG_LEVEL", defaultLogLevel),
			Encoding: osGetEnvDefault("LOG_ENCODING", defaultLogEncoding),
		},
	}
}

func validateConfig(cfg *Config) error {
	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("LOG_LEVEL=%q is invalid, expected one of %v", cfg.Log.Level, logLevels)
	}
	if !slices.Contains(logEncodings, cfg.Log.Encoding) {
		return fmt.Errorf("LOG_ENCODING=%q is invalid, expected one of %v", cfg.Log.Encoding, logEncodings)
	}

	return nil
}

func osGetEnvDefault(s, def string) string {
	val := os.Getenv(s)
	if val == "" {
		return def
	}
	return val
}
