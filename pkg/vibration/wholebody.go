package vibration

import (
	"math"

	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

// Regulatory default thresholds for whole-body exposure, in m/s².
const (
	DefaultWholeBodyActionValue = 0.5
	DefaultWholeBodyLimitValue  = 1.15
)

// Axis weighting factors applied to whole-body accelerations before
// normalisation. Horizontal axes carry the higher factor.
const (
	weightX = 1.4
	weightY = 1.4
	weightZ = 1.0
)

// WholeBodyConfig sets the thresholds for a whole-body assessment.
// Zero-valued fields fall back to the regulatory defaults.
type WholeBodyConfig struct {
	// ActionValue is the exposure action value in m/s². Default 0.5.
	ActionValue float64

	// LimitValue is the exposure limit value in m/s². Default 1.15.
	LimitValue float64

	// Unit labels rendered output. Default "m/s²".
	Unit string
}

func (c WholeBodyConfig) withDefaults() WholeBodyConfig {
	if c.ActionValue == 0 {
		c.ActionValue = DefaultWholeBodyActionValue
	}
	if c.LimitValue == 0 {
		c.LimitValue = DefaultWholeBodyLimitValue
	}
	if c.Unit == "" {
		c.Unit = DefaultUnit
	}
	return c
}

// WholeBody computes daily A(8) whole-body vibration exposures.
type WholeBody struct {
	cfg WholeBodyConfig
}

// NewWholeBody builds an engine from cfg, validating that the
// thresholds are positive and strictly ordered.
func NewWholeBody(cfg WholeBodyConfig) (*WholeBody, error) {
	cfg = cfg.withDefaults()
	if cfg.ActionValue < 0 {
		return nil, &osh.InputError{Field: "action_value", Reason: "must be a positive number"}
	}
	if cfg.LimitValue < 0 {
		return nil, &osh.InputError{Field: "limit_value", Reason: "must be a positive number"}
	}
	if !osh.Ascending(cfg.ActionValue, cfg.LimitValue) {
		return nil, &osh.InputError{Reason: "action value must be below the limit value"}
	}
	return &WholeBody{cfg: cfg}, nil
}

// AxisContribution holds one record's weighted, duration-normalised
// exposure share on each axis.
type AxisContribution struct {
	X float64
	Y float64
	Z float64
}

// Contribution computes one record's weighted per-axis shares:
//
//	Ax = 1.4·ax·√(hours/8)
//	Ay = 1.4·ay·√(hours/8)
//	Az = 1.0·az·√(hours/8)
//
// Axis values must be non-negative and the duration positive; durations
// above ReferenceHours raise a non-fatal advisory.
func (w *WholeBody) Contribution(src WholeBodySource) (AxisContribution, *osh.Advisory, error) {
	if _, err := src.Axes.resultant(src.Name); err != nil {
		return AxisContribution{}, nil, err
	}
	if src.Hours <= 0 {
		return AxisContribution{}, nil, &osh.InputError{Record: src.Name, Field: "time", Reason: "exposure time must be positive"}
	}

	var adv *osh.Advisory
	if src.Hours > ReferenceHours {
		adv = &osh.Advisory{Record: src.Name, Message: "exposure time exceeds 8 hours"}
	}

	scale := math.Sqrt(src.Hours / ReferenceHours)
	return AxisContribution{
		X: weightX * src.Axes.X * scale,
		Y: weightY * src.Axes.Y * scale,
		Z: weightZ * src.Axes.Z * scale,
	}, adv, nil
}

// Combine aggregates per-axis contributions by root-sum-of-squares,
// takes the dominant axis as the daily exposure value, and classifies
// it against the configured tiers. The three slices must be parallel:
// element i of each belongs to record i.
func (w *WholeBody) Combine(xs, ys, zs []float64, advisories []osh.Advisory) (*Result, error) {
	if len(xs) != len(ys) || len(ys) != len(zs) {
		return nil, &osh.InputError{Reason: "axis contribution lists must have matching lengths"}
	}
	value := math.Max(rss(xs), math.Max(rss(ys), rss(zs)))
	return newResult(value, ExposureWholeBody, w.cfg.Unit,
		w.cfg.ActionValue, w.cfg.LimitValue, advisories), nil
}
