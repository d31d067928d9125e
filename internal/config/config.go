package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultOutputFormat  = "text"
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// Config is the top-level configuration for the jsapy CLI.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
}

// OutputConfig controls how assessment results are rendered.
type OutputConfig struct {
	// Format selects the rendering mode: text | json.
	Format string `yaml:"format"`
}

// LoggingConfig controls diagnostic log output.
type LoggingConfig struct {
	// Level is the minimum severity written: debug | info | warn | error.
	Level string `yaml:"level"`

	// File is an optional path for JSON log output. When set, logs are
	// written there with size-based rotation instead of standard error.
	File string `yaml:"file"`

	// MaxSizeMB is the size in megabytes at which the log file is rotated.
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups is the number of rotated log files to keep.
	MaxBackups int `yaml:"max_backups"`

	// MaxAgeDays is the number of days rotated log files are retained.
	MaxAgeDays int `yaml:"max_age_days"`
}

// ThresholdsConfig overrides the built-in regulatory thresholds.
// Values left at zero keep the corresponding built-in default.
type ThresholdsConfig struct {
	HandArm   VibrationThresholds `yaml:"hand_arm"`
	WholeBody VibrationThresholds `yaml:"whole_body"`
	Noise     NoiseThresholds     `yaml:"noise"`
}

// VibrationThresholds overrides one pair of vibration tiers in m/s².
type VibrationThresholds struct {
	// ActionValue is the exposure action value.
	ActionValue float64 `yaml:"action_value"`

	// LimitValue is the exposure limit value.
	LimitValue float64 `yaml:"limit_value"`
}

// NoiseThresholds overrides the three noise tiers in dB(A).
type NoiseThresholds struct {
	// InfActionValue is the inferior exposure action value.
	InfActionValue float64 `yaml:"inf_action_value"`

	// SupActionValue is the superior exposure action value.
	SupActionValue float64 `yaml:"sup_action_value"`

	// LimitValue is the exposure limit value.
	LimitValue float64 `yaml:"limit_value"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return defaults()
}

// defaults returns a Config pre-populated with default values.
// Threshold fields stay zero: the assessment packages own the regulatory
// defaults and apply them when no override is set.
func defaults() *Config {
	return &Config{
		Output: OutputConfig{Format: DefaultOutputFormat},
		Logging: LoggingConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
	}
}

// validate checks enum fields and structural constraints.
func validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json", "":
	default:
		return fmt.Errorf("output.format: unknown format %q", cfg.Output.Format)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level)
	}
	if cfg.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("logging.max_size_mb must not be negative")
	}
	if cfg.Logging.MaxBackups < 0 {
		return fmt.Errorf("logging.max_backups must not be negative")
	}
	if cfg.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging.max_age_days must not be negative")
	}
	if err := validateVibration("thresholds.hand_arm", cfg.Thresholds.HandArm); err != nil {
		return err
	}
	if err := validateVibration("thresholds.whole_body", cfg.Thresholds.WholeBody); err != nil {
		return err
	}
	return validateNoise("thresholds.noise", cfg.Thresholds.Noise)
}

// validateVibration checks one pair of vibration threshold overrides.
// Zero means the built-in default stays in effect, so ordering is only
// enforced when both tiers are set.
func validateVibration(section string, v VibrationThresholds) error {
	if v.ActionValue < 0 {
		return fmt.Errorf("%s.action_value must not be negative", section)
	}
	if v.LimitValue < 0 {
		return fmt.Errorf("%s.limit_value must not be negative", section)
	}
	if v.ActionValue > 0 && v.LimitValue > 0 && v.ActionValue >= v.LimitValue {
		return fmt.Errorf("%s: action_value must be below limit_value", section)
	}
	return nil
}

// validateNoise checks the noise threshold overrides pairwise.
func validateNoise(section string, n NoiseThresholds) error {
	if n.InfActionValue < 0 {
		return fmt.Errorf("%s.inf_action_value must not be negative", section)
	}
	if n.SupActionValue < 0 {
		return fmt.Errorf("%s.sup_action_value must not be negative", section)
	}
	if n.LimitValue < 0 {
		return fmt.Errorf("%s.limit_value must not be negative", section)
	}
	if n.InfActionValue > 0 && n.SupActionValue > 0 && n.InfActionValue >= n.SupActionValue {
		return fmt.Errorf("%s: inf_action_value must be below sup_action_value", section)
	}
	if n.SupActionValue > 0 && n.LimitValue > 0 && n.SupActionValue >= n.LimitValue {
		return fmt.Errorf("%s: sup_action_value must be below limit_value", section)
	}
	if n.InfActionValue > 0 && n.LimitValue > 0 && n.InfActionValue >= n.LimitValue {
		return fmt.Errorf("%s: inf_action_value must be below limit_value", section)
	}
	return nil
}
