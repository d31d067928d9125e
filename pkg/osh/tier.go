package osh

// Comparison selects how an exposure value is tested against a threshold.
// Vibration assessments use strict comparison, noise assessments inclusive;
// the asymmetry follows the underlying regulatory texts.
type Comparison int

const (
	// CompareStrict marks a tier exceeded when value > threshold.
	CompareStrict Comparison = iota

	// CompareInclusive marks a tier exceeded when value >= threshold.
	CompareInclusive
)

// ActionLevel is the recommended response tied to an exceeded tier.
type ActionLevel string

const (
	ActionNone       ActionLevel = "none"
	ActionPreventive ActionLevel = "preventive"
	ActionImmediate  ActionLevel = "immediate"
)

// Tier is one regulatory threshold together with its evaluated outcome.
type Tier struct {
	// Name identifies the tier, e.g. "action value" or "limit value".
	Name string

	// Value is the threshold in the unit of the assessed quantity.
	Value float64

	// Action is the recommended response when this is the highest
	// exceeded tier.
	Action ActionLevel

	// Exceeded is filled in by Evaluate.
	Exceeded bool
}

// Exceeds reports whether value crosses threshold under cmp.
func Exceeds(value, threshold float64, cmp Comparison) bool {
	if cmp == CompareInclusive {
		return value >= threshold
	}
	return value > threshold
}

// Evaluate returns a copy of tiers with each Exceeded flag set for value.
// Tiers must be in strictly ascending Value order; because every tier is
// tested against the same value with the same comparison, exceedance is
// then monotonic: a tier being exceeded implies every lower tier is too.
func Evaluate(value float64, cmp Comparison, tiers []Tier) []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		t.Exceeded = Exceeds(value, t.Value, cmp)
		out[i] = t
	}
	return out
}

// Highest returns the highest exceeded tier. The second return value is
// false when no tier is exceeded.
func Highest(tiers []Tier) (Tier, bool) {
	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].Exceeded {
			return tiers[i], true
		}
	}
	return Tier{}, false
}

// RecommendedAction returns the action level of the highest exceeded tier,
// or ActionNone when the value sits below every tier.
func RecommendedAction(tiers []Tier) ActionLevel {
	if t, ok := Highest(tiers); ok {
		return t.Action
	}
	return ActionNone
}

// Ascending reports whether values are in strictly increasing order.
// Threshold configurations are validated with it before an engine is built.
func Ascending(values ...float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return false
		}
	}
	return true
}
