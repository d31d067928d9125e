package vibration

import (
	"errors"
	"strings"
	"testing"

	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

func TestAssessHandArmBatch(t *testing.T) {
	machines := []any{
		map[string]any{"name": "drill", "aw": 2.8, "time": 4},
		map[string]any{"name": "polisher", "aw": 3.0, "time": 3},
		map[string]any{"ax": 1.2, "ay": 1.3, "az": 0.9, "time": 2},
	}

	res, err := AssessHandArm(machines, HandArmConfig{})
	if err != nil {
		t.Fatalf("AssessHandArm: %v", err)
	}

	// √(2.8²·4/8 + 3.0²·3/8 + (1.2²+1.3²+0.9²)·2/8)
	if !almostEqual(res.ExposureValue, 2.8775, 1e-3) {
		t.Errorf("exposure = %.4f, want 2.8775", res.ExposureValue)
	}
	if !res.ExceedsAction || res.ExceedsLimit {
		t.Errorf("flags = (%v, %v), want action only", res.ExceedsAction, res.ExceedsLimit)
	}
	if len(res.Advisories) != 0 {
		t.Errorf("unexpected advisories: %v", res.Advisories)
	}
}

func TestAssessHandArmRejectsNonList(t *testing.T) {
	_, err := AssessHandArm("not a list", HandArmConfig{})
	var ie *osh.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *osh.InputError", err)
	}
	if ie.Field != "machines" || !strings.Contains(ie.Reason, "list of records") {
		t.Errorf("err = %v, want usage naming 'machines'", err)
	}
}

func TestAssessHandArmRejectsEmptyList(t *testing.T) {
	_, err := AssessHandArm([]any{}, HandArmConfig{})
	var ie *osh.InputError
	if !errors.As(err, &ie) || !strings.Contains(ie.Reason, "at least one record") {
		t.Errorf("err = %v, want at-least-one-record failure", err)
	}
}

func TestAssessHandArmRejectsNonMappingEntry(t *testing.T) {
	_, err := AssessHandArm([]any{
		map[string]any{"aw": 2.8, "time": 4},
		"oops",
	}, HandArmConfig{})
	if err == nil || !strings.Contains(err.Error(), "machine entry #2") {
		t.Errorf("err = %v, want failure naming entry #2", err)
	}
}

func TestAssessHandArmRecordValidation(t *testing.T) {
	cases := []struct {
		name       string
		record     map[string]any
		wantField  string
		wantRecord string
	}{
		{
			"missing ay names it",
			map[string]any{"name": "saw", "ax": 1.2, "az": 0.9, "time": 2},
			"ay", "saw",
		},
		{
			"aw and axis together",
			map[string]any{"name": "saw", "aw": 2.0, "ax": 1.2, "time": 2},
			"", "saw",
		},
		{
			"non-numeric aw",
			map[string]any{"aw": "high", "time": 2},
			"aw", "Machine 1",
		},
		{
			"missing time",
			map[string]any{"aw": 2.0},
			"time", "Machine 1",
		},
		{
			"non-numeric time",
			map[string]any{"aw": 2.0, "time": "long"},
			"time", "Machine 1",
		},
		{
			"negative axis",
			map[string]any{"ax": 1.0, "ay": -1.0, "az": 0.5, "time": 2},
			"ay", "Machine 1",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AssessHandArm([]any{tc.record}, HandArmConfig{})
			var ie *osh.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("err = %v, want *osh.InputError", err)
			}
			if ie.Field != tc.wantField {
				t.Errorf("field = %q, want %q", ie.Field, tc.wantField)
			}
			if ie.Record != tc.wantRecord {
				t.Errorf("record = %q, want %q", ie.Record, tc.wantRecord)
			}
		})
	}
}

func TestAssessHandArmFallbackNamesArePositional(t *testing.T) {
	_, err := AssessHandArm([]any{
		map[string]any{"aw": 2.0, "time": 2},
		map[string]any{"aw": -3.0, "time": 2},
	}, HandArmConfig{})
	var ie *osh.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *osh.InputError", err)
	}
	if ie.Record != "Machine 2" {
		t.Errorf("record = %q, want Machine 2", ie.Record)
	}
}

func TestAssessHandArmCollectsAdvisories(t *testing.T) {
	res, err := AssessHandArm([]any{
		map[string]any{"name": "grinder", "aw": 1.0, "time": 9},
		map[string]any{"aw": 1.0, "time": 2},
	}, HandArmConfig{})
	if err != nil {
		t.Fatalf("AssessHandArm: %v", err)
	}
	if len(res.Advisories) != 1 || res.Advisories[0].Record != "grinder" {
		t.Errorf("advisories = %v, want one for grinder", res.Advisories)
	}
}

func TestAssessHandArmCustomThresholds(t *testing.T) {
	machines := []any{map[string]any{"aw": 2.0, "time": 8}}

	res, err := AssessHandArm(machines, HandArmConfig{ActionValue: 1.5, LimitValue: 1.9})
	if err != nil {
		t.Fatalf("AssessHandArm: %v", err)
	}
	if !res.ExceedsAction || !res.ExceedsLimit {
		t.Errorf("flags = (%v, %v), want both with lowered thresholds", res.ExceedsAction, res.ExceedsLimit)
	}

	if _, err := AssessHandArm(machines, HandArmConfig{ActionValue: 3, LimitValue: 2}); err == nil {
		t.Error("reversed thresholds accepted")
	}
}

func TestAssessHandArmGoLiteralRecords(t *testing.T) {
	res, err := AssessHandArm([]map[string]float64{
		{"aw": 2.8, "time": 4},
	}, HandArmConfig{})
	if err != nil {
		t.Fatalf("AssessHandArm: %v", err)
	}
	if !almostEqual(res.ExposureValue, 1.9799, 1e-3) {
		t.Errorf("exposure = %.4f, want 1.9799", res.ExposureValue)
	}
}

func TestAssessWholeBodyBatch(t *testing.T) {
	machines := []any{
		map[string]any{"name": "loader", "ax": 0.5, "ay": 0.4, "az": 0.3, "time": 4},
		map[string]any{"name": "dumper", "ax": 0.3, "ay": 0.2, "az": 0.6, "time": 2},
	}

	res, err := AssessWholeBody(machines, WholeBodyConfig{})
	if err != nil {
		t.Fatalf("AssessWholeBody: %v", err)
	}

	// Per axis RSS of the weighted contributions, dominant axis governs:
	// Ax = √((1.4·0.5·√.5)² + (1.4·0.3·√.25)²) ≈ 0.5379
	if !almostEqual(res.ExposureValue, 0.5379, 1e-3) {
		t.Errorf("exposure = %.4f, want 0.5379", res.ExposureValue)
	}
	if !res.ExceedsAction || res.ExceedsLimit {
		t.Errorf("flags = (%v, %v), want action only", res.ExceedsAction, res.ExceedsLimit)
	}
	if res.ExposureType != ExposureWholeBody {
		t.Errorf("exposure type = %q", res.ExposureType)
	}
}

func TestAssessWholeBodyRecordValidation(t *testing.T) {
	cases := []struct {
		name      string
		record    map[string]any
		wantField string
	}{
		{"missing az", map[string]any{"ax": 0.4, "ay": 0.3, "time": 2}, "az"},
		{"missing all axes names ax", map[string]any{"time": 2}, "ax"},
		{"non-numeric ay", map[string]any{"ax": 0.4, "ay": "eh", "az": 0.3, "time": 2}, "ay"},
		{"missing time", map[string]any{"ax": 0.4, "ay": 0.3, "az": 0.3}, "time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AssessWholeBody([]any{tc.record}, WholeBodyConfig{})
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

func TestAssessWholeBodyRejectsNonStringName(t *testing.T) {
	_, err := AssessWholeBody([]any{
		map[string]any{"name": 7, "ax": 0.4, "ay": 0.3, "az": 0.3, "time": 2},
	}, WholeBodyConfig{})
	var ie *osh.InputError
	if !errors.As(err, &ie) || ie.Field != "name" {
		t.Errorf("err = %v, want InputError naming 'name'", err)
	}
}
