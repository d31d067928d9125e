package noise

import (
	"math"

	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

// Regulatory default thresholds, in dB(A).
const (
	DefaultInfActionValue = 80.0
	DefaultSupActionValue = 85.0
	DefaultLimitValue     = 87.0
)

// Unit labels noise levels in rendered output.
const Unit = "dB(A)"

// ReferenceMinutes is the 8-hour working day every task level
// normalises to. Longer durations are legal but raise an advisory.
const ReferenceMinutes = 480.0

// Config sets the thresholds for a noise assessment. Zero-valued
// threshold fields fall back to the regulatory defaults.
type Config struct {
	// InfActionValue is the inferior action value in dB(A). Default 80.
	InfActionValue float64

	// SupActionValue is the superior action value in dB(A). Default 85.
	SupActionValue float64

	// LimitValue is the exposure limit value in dB(A). Default 87.
	LimitValue float64

	// ProtectedLevel is the daily level measured with hearing
	// protection. When set, classification compares it instead of the
	// unprotected value. Presence is the switch: an explicit 0 is a
	// valid measured level.
	ProtectedLevel *float64
}

func (c Config) withDefaults() Config {
	if c.InfActionValue == 0 {
		c.InfActionValue = DefaultInfActionValue
	}
	if c.SupActionValue == 0 {
		c.SupActionValue = DefaultSupActionValue
	}
	if c.LimitValue == 0 {
		c.LimitValue = DefaultLimitValue
	}
	return c
}

// Exposure computes daily noise exposure levels.
type Exposure struct {
	cfg Config
}

// NewExposure builds an engine from cfg, validating that the three
// thresholds are positive and strictly ordered.
func NewExposure(cfg Config) (*Exposure, error) {
	cfg = cfg.withDefaults()
	for _, tier := range []struct {
		field string
		value float64
	}{
		{"inf_action_value", cfg.InfActionValue},
		{"sup_action_value", cfg.SupActionValue},
		{"limit_value", cfg.LimitValue},
	} {
		if tier.value < 0 {
			return nil, &osh.InputError{Field: tier.field, Reason: "must be a positive number"}
		}
	}
	if !osh.Ascending(cfg.InfActionValue, cfg.SupActionValue, cfg.LimitValue) {
		return nil, &osh.InputError{Reason: "thresholds must be ordered: inferior action < superior action < limit"}
	}
	return &Exposure{cfg: cfg}, nil
}

// Task is one noise exposure record: a measured equivalent level over a
// duration.
type Task struct {
	// Name labels the record in errors and advisories. Optional.
	Name string

	// Level is the measured LAeq,T in dB(A). Must be positive.
	Level float64

	// Minutes is the task duration. Must be positive; durations above
	// ReferenceMinutes raise a non-fatal advisory.
	Minutes float64
}

// DailyLevel normalises one task to the 8-hour reference day,
// level + 10·log10(minutes/480).
func (e *Exposure) DailyLevel(task Task) (float64, *osh.Advisory, error) {
	if task.Level <= 0 {
		return 0, nil, &osh.InputError{Record: task.Name, Field: "laeq_t", Reason: "must be greater than zero"}
	}
	if task.Minutes <= 0 {
		return 0, nil, &osh.InputError{Record: task.Name, Field: "time", Reason: "exposure time must be greater than zero"}
	}

	var adv *osh.Advisory
	if task.Minutes > ReferenceMinutes {
		adv = &osh.Advisory{Record: task.Name, Message: "exposure time exceeds 480 minutes"}
	}
	return task.Level + 10*math.Log10(task.Minutes/ReferenceMinutes), adv, nil
}

// Combine merges normalised task levels by decibel energy summation,
// 10·log10(Σ 10^(Lᵢ/10)), and classifies the outcome. At least one
// level is required.
func (e *Exposure) Combine(levels []float64, advisories []osh.Advisory) (*Result, error) {
	if len(levels) == 0 {
		return nil, &osh.InputError{Field: "tasks", Reason: "at least one record is required"}
	}
	var energy float64
	for _, l := range levels {
		energy += math.Pow(10, l/10)
	}
	total := 10 * math.Log10(energy)
	return newResult(total, e.cfg, advisories), nil
}
