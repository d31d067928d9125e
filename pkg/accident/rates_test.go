package accident

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestBasicRate(t *testing.T) {
	got, err := BasicRate(10000, 10, 10)
	if err != nil {
		t.Fatalf("BasicRate: %v", err)
	}
	if got != 10000 {
		t.Errorf("BasicRate(10000, 10, 10) = %.2f, want 10000", got)
	}

	got, err = BasicRate(5, 1000, 0)
	if err != nil {
		t.Fatalf("BasicRate with default factor: %v", err)
	}
	if got != 5 {
		t.Errorf("default factor result = %.2f, want 5 (factor 1000)", got)
	}
}

func TestFrequencyRate(t *testing.T) {
	res, err := FrequencyRate([]float64{3, 7, 10}, []float64{50000, 120000, 200000}, 0)
	if err != nil {
		t.Fatalf("FrequencyRate: %v", err)
	}
	if !almostEqual(res.Value, 54.0541, 1e-3) {
		t.Errorf("value = %.4f, want 54.0541", res.Value)
	}
	if res.Factor != DefaultFrequencyFactor {
		t.Errorf("factor = %v, want %v", res.Factor, DefaultFrequencyFactor)
	}
	if res.NumUnit != "accidents" || res.DenUnit != "work hours" {
		t.Errorf("units = (%q, %q)", res.NumUnit, res.DenUnit)
	}
}

func TestFrequencyRateScalarArrayEquivalence(t *testing.T) {
	fromArrays, err := FrequencyRate([]int{3, 7, 10}, []int{50000, 120000, 200000}, 0)
	if err != nil {
		t.Fatalf("array form: %v", err)
	}
	fromScalars, err := FrequencyRate(20, 370000, 0)
	if err != nil {
		t.Fatalf("scalar form: %v", err)
	}
	if !almostEqual(fromArrays.Value, fromScalars.Value, 1e-9) {
		t.Errorf("array %.6f != scalar %.6f", fromArrays.Value, fromScalars.Value)
	}
}

func TestFrequencyRateCustomFactor(t *testing.T) {
	res, err := FrequencyRate(20, 370000, 1000)
	if err != nil {
		t.Fatalf("FrequencyRate: %v", err)
	}
	if !almostEqual(res.Value, 0.0541, 1e-4) {
		t.Errorf("value = %.4f, want 0.0541", res.Value)
	}
	if res.Factor != 1000 {
		t.Errorf("factor = %v, want 1000", res.Factor)
	}
}

func TestIncidenceRate(t *testing.T) {
	res, err := IncidenceRate(10, 350, 0)
	if err != nil {
		t.Fatalf("IncidenceRate: %v", err)
	}
	if !almostEqual(res.Value, 2857.1429, 1e-3) {
		t.Errorf("value = %.4f, want 2857.1429", res.Value)
	}
	if res.DenUnit != "number of workers" {
		t.Errorf("den unit = %q", res.DenUnit)
	}
}

func TestSeverityRate(t *testing.T) {
	res, err := SeverityRate([]float64{40, 60}, []float64{50000, 120000}, 0)
	if err != nil {
		t.Fatalf("SeverityRate: %v", err)
	}
	if !almostEqual(res.Value, 58.8235, 1e-3) {
		t.Errorf("value = %.4f, want 58.8235", res.Value)
	}
	if res.NumUnit != "work days lost" || res.DenUnit != "work hours" {
		t.Errorf("units = (%q, %q)", res.NumUnit, res.DenUnit)
	}
}

func TestLostDaysRate(t *testing.T) {
	res, err := LostDaysRate(5, 300000, 25)
	if err != nil {
		t.Fatalf("LostDaysRate: %v", err)
	}
	// Reduces to days lost per accident: 25/5.
	if !almostEqual(res.Value, 5, 1e-9) {
		t.Errorf("value = %.4f, want 5", res.Value)
	}
	if res.Factor != 1 {
		t.Errorf("factor = %v, want 1", res.Factor)
	}
	if res.NumUnit != "work days lost" || res.DenUnit != "accident" {
		t.Errorf("units = (%q, %q)", res.NumUnit, res.DenUnit)
	}
}

func TestLostDaysRateValidatesHours(t *testing.T) {
	_, err := LostDaysRate(5, 0, 25)
	var ie *osh.InputError
	if !errors.As(err, &ie) || ie.Field != "hours_worked" {
		t.Errorf("err = %v, want InputError naming hours_worked", err)
	}
}

func TestSafetyRate(t *testing.T) {
	res, err := SafetyRate(4, 350, 1800, 0)
	if err != nil {
		t.Fatalf("SafetyRate: %v", err)
	}
	// 4·1e5 / (350·1800)
	if !almostEqual(res.Value, 0.63492, 1e-4) {
		t.Errorf("value = %.5f, want 0.63492", res.Value)
	}
	if res.NumUnit != "accidents" || res.DenUnit != "worker-hours" {
		t.Errorf("units = (%q, %q)", res.NumUnit, res.DenUnit)
	}
}

func TestSafetyRatePairsSeriesElementwise(t *testing.T) {
	res, err := SafetyRate([]int{2, 2}, []int{100, 200}, []int{1700, 1800}, 0)
	if err != nil {
		t.Fatalf("SafetyRate: %v", err)
	}
	// 4·1e5 / (100·1700 + 200·1800)
	if !almostEqual(res.Value, 0.75472, 1e-4) {
		t.Errorf("value = %.5f, want 0.75472", res.Value)
	}
}

func TestSafetyRateBroadcastsScalars(t *testing.T) {
	scalar, err := SafetyRate(4, 350, 1800, 0)
	if err != nil {
		t.Fatalf("scalar form: %v", err)
	}
	broadcast, err := SafetyRate(4, 350, []float64{900, 900}, 0)
	if err != nil {
		t.Fatalf("broadcast form: %v", err)
	}
	if !almostEqual(scalar.Value, broadcast.Value, 1e-9) {
		t.Errorf("broadcast %.6f != scalar %.6f", broadcast.Value, scalar.Value)
	}
}

func TestSafetyRateLengthMismatch(t *testing.T) {
	_, err := SafetyRate(4, []int{100, 200}, []int{1, 2, 3}, 0)
	var ie *osh.InputError
	if !errors.As(err, &ie) || !strings.Contains(ie.Reason, "matching lengths") {
		t.Errorf("err = %v, want matching-lengths failure", err)
	}
}

func TestRateValidation(t *testing.T) {
	cases := []struct {
		name      string
		run       func() error
		wantField string
	}{
		{
			"non-numeric element names the parameter",
			func() error { _, err := FrequencyRate([]any{3, "x"}, 1000, 0); return err },
			"accidents",
		},
		{
			"negative value",
			func() error { _, err := FrequencyRate([]float64{3, -1}, 1000, 0); return err },
			"accidents",
		},
		{
			"zero numerator sum",
			func() error { _, err := FrequencyRate(0, 1000, 0); return err },
			"accidents",
		},
		{
			"zero denominator sum",
			func() error { _, err := SeverityRate(10, []float64{0, 0}, 0); return err },
			"hours_worked",
		},
		{
			"negative factor",
			func() error { _, err := IncidenceRate(10, 350, -5); return err },
			"factor",
		},
		{
			"non-numeric denominator",
			func() error { _, err := BasicRate(10, "many", 0); return err },
			"den",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			var ie *osh.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("err = %v, want *osh.InputError", err)
			}
			if ie.Field != tc.wantField {
				t.Errorf("field = %q, want %q", ie.Field, tc.wantField)
			}
		})
	}
}

func TestRateErrorsCarryContext(t *testing.T) {
	_, err := FrequencyRate(0, 1000, 0)
	if err == nil || !strings.HasPrefix(err.Error(), "frequency rate: ") {
		t.Errorf("err = %v, want frequency rate prefix", err)
	}
}
