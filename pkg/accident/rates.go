package accident

import (
	"fmt"

	"github.com/Erik-Martinez/jsapy/internal/coerce"
	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

// Default multipliers applied when the factor argument is zero.
const (
	DefaultBasicFactor     = 1_000
	DefaultFrequencyFactor = 1_000_000
	DefaultIncidenceFactor = 100_000
	DefaultSeverityFactor  = 100_000
	DefaultSafetyFactor    = 100_000
)

// BasicRate computes the generic scaled ratio sum(num)·factor/sum(den).
// A zero factor selects DefaultBasicFactor.
func BasicRate(num, den any, factor float64) (float64, error) {
	value, _, err := ratio(num, den, "num", "den", factor, DefaultBasicFactor)
	if err != nil {
		return 0, fmt.Errorf("basic rate: %w", err)
	}
	return value, nil
}

// FrequencyRate computes accidents per factor work hours,
// sum(accidents)·factor/sum(hoursWorked). A zero factor selects
// DefaultFrequencyFactor.
func FrequencyRate(accidents, hoursWorked any, factor float64) (*RateResult, error) {
	value, f, err := ratio(accidents, hoursWorked, "accidents", "hours_worked", factor, DefaultFrequencyFactor)
	if err != nil {
		return nil, fmt.Errorf("frequency rate: %w", err)
	}
	return &RateResult{
		Name:    "Frequency Rate",
		Value:   value,
		Factor:  f,
		NumUnit: "accidents",
		DenUnit: "work hours",
	}, nil
}

// IncidenceRate computes accidents per factor exposed workers,
// sum(accidents)·factor/sum(workers). A zero factor selects
// DefaultIncidenceFactor.
func IncidenceRate(accidents, workers any, factor float64) (*RateResult, error) {
	value, f, err := ratio(accidents, workers, "accidents", "workers", factor, DefaultIncidenceFactor)
	if err != nil {
		return nil, fmt.Errorf("incidence rate: %w", err)
	}
	return &RateResult{
		Name:    "Incidence Rate",
		Value:   value,
		Factor:  f,
		NumUnit: "accidents",
		DenUnit: "number of workers",
	}, nil
}

// SeverityRate computes work days lost per factor work hours,
// sum(daysLost)·factor/sum(hoursWorked). A zero factor selects
// DefaultSeverityFactor.
func SeverityRate(daysLost, hoursWorked any, factor float64) (*RateResult, error) {
	value, f, err := ratio(daysLost, hoursWorked, "days_lost", "hours_worked", factor, DefaultSeverityFactor)
	if err != nil {
		return nil, fmt.Errorf("severity rate: %w", err)
	}
	return &RateResult{
		Name:    "Severity Rate",
		Value:   value,
		Factor:  f,
		NumUnit: "work days lost",
		DenUnit: "work hours",
	}, nil
}

// LostDaysRate computes the average work days lost per accident:
//
//	frequency = sum(accidents)·1e6/sum(hours)
//	severity  = sum(daysLost)·1e3/sum(hours)
//	rate      = severity·1e3/frequency
//
// which reduces to sum(daysLost)/sum(accidents) while validating every
// argument, hours included.
func LostDaysRate(accidents, hoursWorked, daysLost any) (*RateResult, error) {
	frequency, _, err := ratio(accidents, hoursWorked, "accidents", "hours_worked", 0, DefaultFrequencyFactor)
	if err != nil {
		return nil, fmt.Errorf("lost days rate: %w", err)
	}
	severity, _, err := ratio(daysLost, hoursWorked, "days_lost", "hours_worked", 0, 1_000)
	if err != nil {
		return nil, fmt.Errorf("lost days rate: %w", err)
	}
	return &RateResult{
		Name:    "Lost Days Rate",
		Value:   severity * 1_000 / frequency,
		Factor:  1,
		NumUnit: "work days lost",
		DenUnit: "accident",
	}, nil
}

// SafetyRate computes accidents per factor worker-hours. The
// denominator pairs workers with their hours element-wise,
// sum(workersᵢ·hoursᵢ); a one-element argument broadcasts across the
// other. A zero factor selects DefaultSafetyFactor.
func SafetyRate(accidents, workers, hoursWorked any, factor float64) (*RateResult, error) {
	f, err := resolveFactor(factor, DefaultSafetyFactor)
	if err != nil {
		return nil, fmt.Errorf("safety rate: %w", err)
	}
	acc, err := series(accidents, "accidents")
	if err != nil {
		return nil, fmt.Errorf("safety rate: %w", err)
	}
	w, err := series(workers, "workers")
	if err != nil {
		return nil, fmt.Errorf("safety rate: %w", err)
	}
	h, err := series(hoursWorked, "hours_worked")
	if err != nil {
		return nil, fmt.Errorf("safety rate: %w", err)
	}

	workerHours, err := pairwiseProduct(w, h)
	if err != nil {
		return nil, fmt.Errorf("safety rate: %w", err)
	}
	num := sum(acc)
	den := sum(workerHours)
	if num <= 0 {
		return nil, fmt.Errorf("safety rate: %w",
			&osh.InputError{Field: "accidents", Reason: "sum of values must be greater than zero"})
	}
	if den <= 0 {
		return nil, fmt.Errorf("safety rate: %w",
			&osh.InputError{Field: "worker-hours", Reason: "sum of values must be greater than zero"})
	}
	return &RateResult{
		Name:    "Safety Rate",
		Value:   num * f / den,
		Factor:  f,
		NumUnit: "accidents",
		DenUnit: "worker-hours",
	}, nil
}

// ratio computes sum(num)·factor/sum(den), validating both series and
// the factor. It returns the value and the factor actually applied.
func ratio(num, den any, numParam, denParam string, factor, fallback float64) (float64, float64, error) {
	f, err := resolveFactor(factor, fallback)
	if err != nil {
		return 0, 0, err
	}
	ns, err := series(num, numParam)
	if err != nil {
		return 0, 0, err
	}
	ds, err := series(den, denParam)
	if err != nil {
		return 0, 0, err
	}
	n := sum(ns)
	d := sum(ds)
	if n <= 0 {
		return 0, 0, &osh.InputError{Field: numParam, Reason: "sum of values must be greater than zero"}
	}
	if d <= 0 {
		return 0, 0, &osh.InputError{Field: denParam, Reason: "sum of values must be greater than zero"}
	}
	return n * f / d, f, nil
}

// resolveFactor applies the fallback for a zero factor and rejects
// negative ones.
func resolveFactor(factor, fallback float64) (float64, error) {
	if factor == 0 {
		return fallback, nil
	}
	if factor < 0 {
		return 0, &osh.InputError{Field: "factor", Reason: "must be a positive number"}
	}
	return factor, nil
}

// series coerces a scalar-or-array argument, requiring every element
// numeric and non-negative.
func series(v any, param string) ([]float64, error) {
	values, ok := coerce.Floats(v)
	if !ok {
		return nil, &osh.InputError{Field: param, Reason: "all elements must be numeric"}
	}
	for _, x := range values {
		if x < 0 {
			return nil, &osh.InputError{Field: param, Reason: "values must be non-negative"}
		}
	}
	return values, nil
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// pairwiseProduct multiplies two series element-wise, broadcasting a
// one-element series across the other.
func pairwiseProduct(a, b []float64) ([]float64, error) {
	switch {
	case len(a) == len(b):
	case len(a) == 1:
		a = repeat(a[0], len(b))
	case len(b) == 1:
		b = repeat(b[0], len(a))
	default:
		return nil, &osh.InputError{Reason: "workers and hours_worked must have matching lengths"}
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out, nil
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
