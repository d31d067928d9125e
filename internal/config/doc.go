// Package config loads the jsapy configuration file (config.yaml).
//
// Top-level types:
//   - Config{Output, Logging, Thresholds}: full config tree parsed from YAML
//   - OutputConfig: format (text|json)
//   - LoggingConfig: level (debug|info|warn|error), optional log file path
//     and rotation settings (max_size_mb, max_backups, max_age_days)
//   - ThresholdsConfig: optional overrides for the built-in regulatory
//     thresholds, one section per assessment (hand_arm, whole_body, noise)
//
// Load(path) reads the YAML file, applies defaults (text output, info level,
// 10 MB rotation) and validates enums and threshold ordering. Default()
// returns the same defaults without touching the filesystem; the CLI uses it
// when no config file is given.
//
// Threshold values left at zero keep the built-in defaults from the
// assessment packages, so a config file only needs to name what it changes.
package config
