package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloomnest/bloom/tracker/internal/config"
	"github.com/bloomnest/bloom/tracker/internal/console"
	"github.com/bloomnest/bloom/tracker/internal/metrics"
	"github.com/bloomnest/bloom/tracker/internal/risk"
	"github.com/bloomnest/bloom/tracker/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	name := flag.String("name", "", "full name; prompted when empty")
	role := flag.String("role", "", "patient or doctor; prompted when empty")
	lmpFlag := flag.String("lmp", "", "last menstrual period, YYYY-MM-DD")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bloom: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	setupLogging(cfg.Log)
	slog.Info("bloom starting", "config", *configPath)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	con := console.New(os.Stdin, os.Stdout)
	req := session.LoginRequest{Name: *name, Role: *role}
	if req.Name == "" || req.Role == "" {
		var err error
		if req, err = con.PromptLogin(); err != nil {
			slog.Error("login aborted", "err", err)
			os.Exit(1)
		}
	}

	now := time.Now()
	lmp := now.AddDate(0, 0, -7*cfg.Session.DefaultLMPWeeks)
	if *lmpFlag != "" {
		parsed, err := time.Parse(time.DateOnly, *lmpFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bloom: -lmp must be YYYY-MM-DD: %v\n", err)
			os.Exit(2)
		}
		lmp = parsed
	}

	eval := risk.NewEvaluator(cfg.Thresholds)
	rec := metrics.New()

	s, err := session.Login(req, session.Options{LMP: lmp, Evaluator: eval, Recorder: rec})
	if err != nil {
		fmt.Fprintf(os.Stderr, "bloom: %v\n", err)
		os.Exit(1)
	}

	// Threshold changes apply to the running session; other settings need a restart.
	if *configPath != "" {
		go func() {
			if err := config.Watch(ctx, *configPath, func(updated *config.Config) {
				eval.SetThresholds(updated.Thresholds)
				slog.Info("thresholds hot-reloaded",
					"systolic", updated.Thresholds.Systolic,
					"diastolic", updated.Thresholds.Diastolic,
					"glucose", updated.Thresholds.Glucose,
				)
			}); err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	done := make(chan error, 1)
	go func() { done <- con.Run(ctx, s) }()

	select {
	case err := <-done:
		if err != nil {
			slog.Error("console stopped", "err", err)
		}
	case <-ctx.Done():
		slog.Info("interrupted")
	}

	s.Close()
	if cfg.Metrics.Output != "" {
		if err := writeMetrics(rec, cfg.Metrics.Output); err != nil {
			slog.Error("failed to write metrics", "path", cfg.Metrics.Output, "err", err)
		}
	}
	slog.Info("bloom shutting down")
}

// setupLogging installs the default slog logger. Logs go to stderr so they
// do not interleave with console output.
func setupLogging(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewJSONHandler(os.Stderr, opts)
	if cfg.Format == "text" {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

func writeMetrics(rec *metrics.Recorder, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rec.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
