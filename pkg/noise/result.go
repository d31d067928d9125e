package noise

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

// Tier names used in classification and narratives.
const (
	TierInfAction = "inferior action value"
	TierSupAction = "superior action value"
	TierLimit     = "limit value"
)

// Result is the immutable outcome of a noise assessment.
type Result struct {
	// ExposureValue is the unprotected daily level LAeq,d in dB(A).
	ExposureValue float64

	// ProtectedValue is the daily level with hearing protection, when
	// one was supplied. Classification used it in that case.
	ProtectedValue *float64

	// InfActionValue, SupActionValue and LimitValue are the tiers the
	// result was classified against.
	InfActionValue float64
	SupActionValue float64
	LimitValue     float64

	// Exceedance flags, inclusive comparison against the classified
	// value (the protected level when present).
	ExceedsInfAction bool
	ExceedsSupAction bool
	ExceedsLimit     bool

	// Advisories are the non-fatal observations raised per record.
	Advisories []osh.Advisory
}

// newResult classifies the combined level against cfg's tiers and
// freezes the outcome.
func newResult(value float64, cfg Config, advisories []osh.Advisory) *Result {
	r := &Result{
		ExposureValue:  value,
		ProtectedValue: cfg.ProtectedLevel,
		InfActionValue: cfg.InfActionValue,
		SupActionValue: cfg.SupActionValue,
		LimitValue:     cfg.LimitValue,
		Advisories:     advisories,
	}
	tiers := osh.Evaluate(r.classifiedValue(), osh.CompareInclusive, r.baseTiers())
	r.ExceedsInfAction = tiers[0].Exceeded
	r.ExceedsSupAction = tiers[1].Exceeded
	r.ExceedsLimit = tiers[2].Exceeded
	return r
}

// classifiedValue is the level the tiers are compared against: the
// protected level when supplied, the unprotected value otherwise.
func (r *Result) classifiedValue() float64 {
	if r.ProtectedValue != nil {
		return *r.ProtectedValue
	}
	return r.ExposureValue
}

func (r *Result) baseTiers() []osh.Tier {
	return []osh.Tier{
		{Name: TierInfAction, Value: r.InfActionValue, Action: osh.ActionPreventive},
		{Name: TierSupAction, Value: r.SupActionValue, Action: osh.ActionPreventive},
		{Name: TierLimit, Value: r.LimitValue, Action: osh.ActionImmediate},
	}
}

// String returns the unprotected level rounded to two decimals with its
// unit, e.g. "81.99 dB(A)".
func (r *Result) String() string {
	return strconv.FormatFloat(r.ExposureValue, 'f', 2, 64) + " " + Unit
}

// Tiers returns the classification tiers with their exceedance flags.
func (r *Result) Tiers() []osh.Tier {
	return osh.Evaluate(r.classifiedValue(), osh.CompareInclusive, r.baseTiers())
}

// RecommendedAction returns the action level for the highest exceeded
// tier.
func (r *Result) RecommendedAction() osh.ActionLevel {
	return osh.RecommendedAction(r.Tiers())
}

// Narrative renders the multi-line assessment text: the measured
// levels and the consequence of the highest exceeded tier.
func (r *Result) Narrative() string {
	var b strings.Builder
	b.WriteString("--- Noise Exposure Assessment ---\n")
	fmt.Fprintf(&b, "Unprotected LAeq,d: %.2f %s\n", r.ExposureValue, Unit)
	if r.ProtectedValue != nil {
		fmt.Fprintf(&b, "Protected LAeq,d: %.2f %s\n", *r.ProtectedValue, Unit)
	}
	switch {
	case r.ExceedsLimit:
		fmt.Fprintf(&b, "Exposure exceeds the limit value (%.1f %s).\n", r.LimitValue, Unit)
		b.WriteString("Immediate action is required.")
	case r.ExceedsSupAction:
		fmt.Fprintf(&b, "Exposure exceeds the superior action value (%.1f %s).\n", r.SupActionValue, Unit)
		b.WriteString("Preventive measures are needed.")
	case r.ExceedsInfAction:
		fmt.Fprintf(&b, "Exposure exceeds the inferior action value (%.1f %s).\n", r.InfActionValue, Unit)
		b.WriteString("Preventive measures are needed.")
	default:
		b.WriteString("Exposure is within acceptable regulatory thresholds.")
	}
	return b.String()
}

// Fields exports the result as a flat map for JSON output.
func (r *Result) Fields() map[string]any {
	fields := map[string]any{
		"exposure_value":          r.ExposureValue,
		"with_hearing_protection": r.ProtectedValue != nil,
		"unit":                    Unit,
		"inf_action_value":        r.InfActionValue,
		"sup_action_value":        r.SupActionValue,
		"limit_value":             r.LimitValue,
		"exceeds_inf_action":      r.ExceedsInfAction,
		"exceeds_sup_action":      r.ExceedsSupAction,
		"exceeds_limit":           r.ExceedsLimit,
	}
	if r.ProtectedValue != nil {
		fields["protected_exposure_value"] = *r.ProtectedValue
	} else {
		fields["protected_exposure_value"] = nil
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
