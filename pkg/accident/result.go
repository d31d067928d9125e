package accident

import (
	"fmt"
	"strconv"
)

// RateResult is the immutable outcome of a rate computation.
type RateResult struct {
	// Name identifies the rate, e.g. "Frequency Rate".
	Name string

	// Value is the computed rate.
	Value float64

	// Factor is the multiplier the rate was scaled by.
	Factor float64

	// NumUnit and DenUnit label the numerator and denominator of the
	// rendered report.
	NumUnit string
	DenUnit string
}

// String returns the rate value rounded to two decimals.
func (r *RateResult) String() string {
	return strconv.FormatFloat(r.Value, 'f', 2, 64)
}

// Narrative renders the one-line report, e.g.
//
//	Frequency Rate: 54.054 accidents per 1000000 work hours.
func (r *RateResult) Narrative() string {
	return fmt.Sprintf("%s: %s %s per %s %s.",
		r.Name,
		strconv.FormatFloat(r.Value, 'f', 3, 64),
		r.NumUnit,
		strconv.FormatFloat(r.Factor, 'f', -1, 64),
		r.DenUnit)
}

// Fields exports the result as a flat map for JSON output.
func (r *RateResult) Fields() map[string]any {
	return map[string]any{
		"rate_name":  r.Name,
		"rate_value": r.Value,
		"factor":     r.Factor,
		"num_unit":   r.NumUnit,
		"den_unit":   r.DenUnit,
	}
}
