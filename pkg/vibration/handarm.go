package vibration

import (
	"math"

	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

// Regulatory default thresholds for hand-arm exposure, in m/s².
const (
	DefaultHandArmActionValue = 2.5
	DefaultHandArmLimitValue  = 5.0
)

// DefaultUnit labels vibration magnitudes in rendered output.
const DefaultUnit = "m/s²"

// ReferenceHours is the working day every exposure normalises to.
// Durations above it are legal but raise an advisory.
const ReferenceHours = 8.0

// HandArmConfig sets the thresholds for a hand-arm assessment.
// Zero-valued fields fall back to the regulatory defaults.
type HandArmConfig struct {
	// ActionValue is the exposure action value in m/s². Default 2.5.
	ActionValue float64

	// LimitValue is the exposure limit value in m/s². Default 5.0.
	LimitValue float64

	// Unit labels rendered output. Default "m/s²".
	Unit string
}

// withDefaults fills unset fields with the regulatory defaults.
func (c HandArmConfig) withDefaults() HandArmConfig {
	if c.ActionValue == 0 {
		c.ActionValue = DefaultHandArmActionValue
	}
	if c.LimitValue == 0 {
		c.LimitValue = DefaultHandArmLimitValue
	}
	if c.Unit == "" {
		c.Unit = DefaultUnit
	}
	return c
}

// HandArm computes daily A(8) hand-transmitted vibration exposures.
type HandArm struct {
	cfg HandArmConfig
}

// NewHandArm builds an engine from cfg, validating that the thresholds
// are positive and strictly ordered.
func NewHandArm(cfg HandArmConfig) (*HandArm, error) {
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
	return &HandArm{cfg: cfg}, nil
}

// Contribution computes one record's share of the daily exposure,
// aw·√(hours/8), where aw is either the record's combined magnitude or
// the vector sum of its three axis values.
//
// The returned advisory is non-nil when the exposure duration is above
// ReferenceHours; the computation still proceeds.
func (h *HandArm) Contribution(src HandArmSource) (float64, *osh.Advisory, error) {
	aw, err := src.magnitude()
	if err != nil {
		return 0, nil, err
	}
	if src.Hours <= 0 {
		return 0, nil, &osh.InputError{Record: src.Name, Field: "time", Reason: "exposure time must be positive"}
	}

	var adv *osh.Advisory
	if src.Hours > ReferenceHours {
		adv = &osh.Advisory{Record: src.Name, Message: "exposure time exceeds 8 hours"}
	}
	return aw * math.Sqrt(src.Hours/ReferenceHours), adv, nil
}

// Combine aggregates per-record contributions into the daily A(8) value
// by root-sum-of-squares and classifies it against the configured tiers.
// Advisories collected while computing the contributions are carried
// into the result.
func (h *HandArm) Combine(contributions []float64, advisories []osh.Advisory) *Result {
	return newResult(rss(contributions), ExposureHandArm, h.cfg.Unit,
		h.cfg.ActionValue, h.cfg.LimitValue, advisories)
}

// rss returns the root-sum-of-squares of values.
func rss(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v * v
	}
	return math.Sqrt(sum)
}
