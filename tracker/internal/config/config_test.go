package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloomnest/bloom/tracker/internal/risk"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bloom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	return cfg
}

func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	return Load(writeConfig(t, content))
}

func TestLoad_Valid(t *testing.T) {
	yaml := `
log:
  level: debug
  format: text
thresholds:
  systolic: 135
  diastolic: 85
  glucose: 130
session:
  default_lmp_weeks: 20
metrics:
  output: /tmp/bloom.prom
`
	cfg := loadFromString(t, yaml)

	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log: got %+v", cfg.Log)
	}
	want := risk.Thresholds{Systolic: 135, Diastolic: 85, Glucose: 130}
	if cfg.Thresholds != want {
		t.Errorf("thresholds: got %+v, want %+v", cfg.Thresholds, want)
	}
	if cfg.Session.DefaultLMPWeeks != 20 {
		t.Errorf("default_lmp_weeks: got %d", cfg.Session.DefaultLMPWeeks)
	}
	if cfg.Metrics.Output != "/tmp/bloom.prom" {
		t.Errorf("metrics.output: got %q", cfg.Metrics.Output)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFromString(t, "metrics:\n  output: \"\"\n")

	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("default log: got %+v", cfg.Log)
	}
	if cfg.Thresholds != risk.DefaultThresholds {
		t.Errorf("default thresholds: got %+v, want %+v", cfg.Thresholds, risk.DefaultThresholds)
	}
	if cfg.Session.DefaultLMPWeeks != 16 {
		t.Errorf("default default_lmp_weeks: got %d, want 16", cfg.Session.DefaultLMPWeeks)
	}
}

func TestLoad_PartialThresholdsKeepDefaults(t *testing.T) {
	cfg := loadFromString(t, "thresholds:\n  glucose: 126\n")
	want := risk.Thresholds{Systolic: 140, Diastolic: 90, Glucose: 126}
	if cfg.Thresholds != want {
		t.Errorf("thresholds: got %+v, want %+v", cfg.Thresholds, want)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := validate(cfg); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown level", "log:\n  level: loud\n"},
		{"unknown format", "log:\n  format: xml\n"},
		{"zero threshold", "thresholds:\n  systolic: 0\n"},
		{"negative lmp weeks", "session:\n  default_lmp_weeks: -1\n"},
		{"lmp weeks past term", "session:\n  default_lmp_weeks: 60\n"},
		{"bad yaml", "log: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadStringErr(t, tc.yaml); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_EnvLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	cfg := loadFromString(t, "log:\n  level: debug\n")
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level: got %q, want warn", cfg.Log.Level)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "thresholds:\n  glucose: 140\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) {
			select {
			case changes <- c:
			default:
			}
		})
	}()

	// Rewrite until the watcher picks it up; the watch may not be armed yet.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(300 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-changes:
			// A write can be observed while the file is still truncated.
			if c.Thresholds.Glucose != 126 {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("thresholds:\n  glucose: 126\n"), 0o600); err != nil {
				t.Fatalf("rewrite config: %v", err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatch_MissingFile(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), func(*Config) {})
	if err == nil {
		t.Fatal("expected error watching a missing file")
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	path := writeConfig(t, "thresholds:\n  glucose: 140\n")
	sibling := filepath.Join(filepath.Dir(path), "notes.txt")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(*Config) {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(sibling, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case <-changed:
		t.Fatal("onChange called for an unrelated file")
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned %v", err)
		}
	}
}

func TestWatch_InvalidReloadKeepsPrevious(t *testing.T) {
	path := writeConfig(t, "thresholds:\n  glucose: 140\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) {
			select {
			case changes <- c:
			default:
			}
		})
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("thresholds:\n  glucose: 0\n"), 0o600); err != nil {
		t.Fatalf("write invalid config: %v", err)
	}

	// Several debounce windows pass without a delivery.
	select {
	case c := <-changes:
		t.Fatalf("onChange called for an invalid file: %+v", c.Thresholds)
	case <-time.After(4 * reloadDelay):
	}

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(300 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-changes:
			if c.Thresholds.Glucose == 0 {
				t.Fatal("invalid config delivered")
			}
			if c.Thresholds.Glucose != 126 {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("thresholds:\n  glucose: 126\n"), 0o600); err != nil {
				t.Fatalf("write valid config: %v", err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for the valid reload")
		}
	}
}
