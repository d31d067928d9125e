package vibration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

// Exposure type tags carried by Result.
const (
	ExposureHandArm   = "hand-arm"
	ExposureWholeBody = "body"
)

// Tier names used in classification and narratives.
const (
	TierAction = "exposure action value"
	TierLimit  = "exposure limit value"
)

// Result is the immutable outcome of a vibration assessment: the
// combined daily A(8) value, the thresholds it was classified against,
// and the advisories raised along the way.
type Result struct {
	// ExposureValue is the daily A(8) value in Unit.
	ExposureValue float64

	// ExposureType is ExposureHandArm or ExposureWholeBody.
	ExposureType string

	// Unit labels the exposure and threshold values.
	Unit string

	// ActionValue and LimitValue are the tiers the value was
	// classified against.
	ActionValue float64
	LimitValue  float64

	// ExceedsAction and ExceedsLimit report strict exceedance of the
	// respective tier.
	ExceedsAction bool
	ExceedsLimit  bool

	// Advisories are the non-fatal observations raised per record.
	Advisories []osh.Advisory
}

// newResult classifies value against the action and limit tiers and
// freezes the outcome.
func newResult(value float64, exposureType, unit string, action, limit float64, advisories []osh.Advisory) *Result {
	tiers := osh.Evaluate(value, osh.CompareStrict, []osh.Tier{
		{Name: TierAction, Value: action, Action: osh.ActionPreventive},
		{Name: TierLimit, Value: limit, Action: osh.ActionImmediate},
	})
	return &Result{
		ExposureValue: value,
		ExposureType:  exposureType,
		Unit:          unit,
		ActionValue:   action,
		LimitValue:    limit,
		ExceedsAction: tiers[0].Exceeded,
		ExceedsLimit:  tiers[1].Exceeded,
		Advisories:    advisories,
	}
}

// String returns the exposure value rounded to three decimals with its
// unit, e.g. "3.207 m/s²".
func (r *Result) String() string {
	return strconv.FormatFloat(r.ExposureValue, 'f', 3, 64) + " " + r.Unit
}

// Tiers returns the classification tiers with their exceedance flags.
func (r *Result) Tiers() []osh.Tier {
	return osh.Evaluate(r.ExposureValue, osh.CompareStrict, []osh.Tier{
		{Name: TierAction, Value: r.ActionValue, Action: osh.ActionPreventive},
		{Name: TierLimit, Value: r.LimitValue, Action: osh.ActionImmediate},
	})
}

// RecommendedAction returns the action level for the highest exceeded
// tier.
func (r *Result) RecommendedAction() osh.ActionLevel {
	return osh.RecommendedAction(r.Tiers())
}

// Narrative renders the multi-line assessment text: a header, the
// computed value, and the consequence of the highest exceeded tier.
func (r *Result) Narrative() string {
	title := "Hand-Arm"
	if r.ExposureType == ExposureWholeBody {
		title = "Whole-Body"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s Vibration Exposure Assessment ---\n", title)
	fmt.Fprintf(&b, "A(8) vibration value: %s %s.\n", strconv.FormatFloat(r.ExposureValue, 'f', 3, 64), r.Unit)
	switch {
	case r.ExceedsLimit:
		fmt.Fprintf(&b, "Exposure exceeds the exposure limit value (%s %s).\n", trimFloat(r.LimitValue), r.Unit)
		b.WriteString("Immediate action is required to reduce vibration levels.")
	case r.ExceedsAction:
		fmt.Fprintf(&b, "Exposure exceeds the exposure action value (%s %s).\n", trimFloat(r.ActionValue), r.Unit)
		b.WriteString("Preventive measures should be implemented to control exposure.")
	default:
		b.WriteString("Exposure is below the action value.\n")
		b.WriteString("No specific action is required.")
	}
	return b.String()
}

// Fields exports the result as a flat map for JSON output.
func (r *Result) Fields() map[string]any {
	fields := map[string]any{
		"exposure_value": r.ExposureValue,
		"exposure_type":  r.ExposureType,
		"unit":           r.Unit,
		"action_value":   r.ActionValue,
		"limit_value":    r.LimitValue,
		"exceeds_action": r.ExceedsAction,
		"exceeds_limit":  r.ExceedsLimit,
	}
	if len(r.Advisories) > 0 {
		msgs := make([]string, len(r.Advisories))
		for i, a := range r.Advisories {
			msgs[i] = a.String()
		}
		fields["advisories"] = msgs
	}
	return fields
}

// trimFloat renders a threshold without trailing zeros, e.g. 5 not 5.000.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
