package vibration

import (
	"math"

	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

// Axes holds frequency-weighted acceleration magnitudes for the three
// orthogonal measurement axes in m/s².
type Axes struct {
	X float64
	Y float64
	Z float64
}

// resultant returns the vector sum √(x²+y²+z²), rejecting negative
// components with an error naming the axis.
func (a Axes) resultant(record string) (float64, error) {
	components := []struct {
		field string
		value float64
	}{
		{"ax", a.X},
		{"ay", a.Y},
		{"az", a.Z},
	}
	for _, c := range components {
		if c.value < 0 {
			return 0, &osh.InputError{Record: record, Field: c.field, Reason: "must be non-negative"}
		}
	}
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z), nil
}

// HandArmSource is one tool-usage record for a hand-arm assessment.
// Exactly one of Magnitude or Axes must be set: Magnitude carries an
// already combined vibration value aw, Axes the three per-axis values.
type HandArmSource struct {
	// Name labels the record in errors and advisories. Optional.
	Name string

	// Magnitude is the combined vibration value aw in m/s².
	Magnitude *float64

	// Axes are the per-axis values, combined by vector sum.
	Axes *Axes

	// Hours is the daily exposure duration. Must be positive; durations
	// above 8 hours raise a non-fatal advisory.
	Hours float64
}

// magnitude resolves the record's aw value, enforcing the
// exactly-one-of contract between Magnitude and Axes.
func (s HandArmSource) magnitude() (float64, error) {
	switch {
	case s.Magnitude != nil && s.Axes != nil:
		return 0, &osh.InputError{Record: s.Name, Reason: "provide either 'aw' or the three axis values, not both"}
	case s.Magnitude != nil:
		if *s.Magnitude < 0 {
			return 0, &osh.InputError{Record: s.Name, Field: "aw", Reason: "must be non-negative"}
		}
		return *s.Magnitude, nil
	case s.Axes != nil:
		return s.Axes.resultant(s.Name)
	default:
		return 0, &osh.InputError{Record: s.Name, Reason: "provide either 'aw' or the three axis values"}
	}
}

// WholeBodySource is one machine-usage record for a whole-body
// assessment. All three axis values are mandatory.
type WholeBodySource struct {
	// Name labels the record in errors and advisories. Optional.
	Name string

	// Axes are the frequency-weighted per-axis accelerations in m/s².
	Axes Axes

	// Hours is the daily exposure duration, validated like
	// HandArmSource.Hours.
	Hours float64
}
