package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/bloomnest/bloom/tracker/internal/risk"
)

// EnvLogLevel overrides log.level when set.
const EnvLogLevel = "BLOOM_LOG_LEVEL"

// Config is the top-level tracker configuration.
// Fields map 1:1 to bloom.example.yaml.
type Config struct {
	Log        LogConfig       `yaml:"log"`
	Thresholds risk.Thresholds `yaml:"thresholds"`
	Session    SessionConfig   `yaml:"session"`
	Metrics    MetricsConfig   `yaml:"metrics"`
}

// LogConfig controls the slog handler built by the binary.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level" default:"info"`

	// Format is one of: json | text.
	Format string `yaml:"format" default:"json"`
}

// SessionConfig holds per-login defaults.
type SessionConfig struct {
	// DefaultLMPWeeks places the initial LMP this many weeks before login.
	DefaultLMPWeeks int `yaml:"default_lmp_weeks" default:"16"`
}

// MetricsConfig controls the metrics dump.
type MetricsConfig struct {
	// Output is the file the exposition is written to at logout.
	// Empty disables the dump.
	Output string `yaml:"output"`
}

// Default returns a Config holding only default values.
func Default() *Config {
	cfg := &Config{}
	// Set only fails on malformed default tags, which would be a bug here.
	if err := defaults.Set(cfg); err != nil {
		panic(fmt.Sprintf("config: apply defaults: %v", err))
	}
	return cfg
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// validate checks enums and ranges.
func validate(cfg *Config) error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Log.Format)
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	if cfg.Session.DefaultLMPWeeks < 0 || cfg.Session.DefaultLMPWeeks > 42 {
		return fmt.Errorf("session.default_lmp_weeks must be between 0 and 42, got %d", cfg.Session.DefaultLMPWeeks)
	}
	return nil
}
