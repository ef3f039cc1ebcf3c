// Package config loads and watches the tracker configuration file (bloom.yaml).
//
// Top-level types:
//   - Config{Log, Thresholds, Session, Metrics}: full tree parsed from YAML
//   - LogConfig: level (debug|info|warn|error), format (json|text)
//   - risk.Thresholds: systolic, diastolic and glucose alert cut-offs
//   - SessionConfig: default_lmp_weeks, how far back the LMP starts before
//     the user enters one
//   - MetricsConfig: output, file the text exposition is written to at logout
//
// Load(path) applies struct-tag defaults (info/json, 140/90/140, 16 weeks),
// unmarshals the YAML over them, applies BLOOM_LOG_LEVEL, then validates.
// Default() returns the same defaults without reading a file.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config. A file that fails to load is logged
// and ignored; the previous config stays in effect.
package config
