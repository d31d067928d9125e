package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRatesFrequency(t *testing.T) {
	out, err := execute(t, "rates", "frequency", "--accidents", "2", "--hours-worked", "37000")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "Frequency Rate: 54.054 accidents per 1000000 work hours.\n"
	if out != want {
		t.Errorf("output:\n got %q\nwant %q", out, want)
	}
}

func TestRatesLostDays(t *testing.T) {
	out, err := execute(t, "rates", "lost-days",
		"--accidents", "4", "--hours-worked", "74000", "--days-lost", "20")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "Lost Days Rate: 5.000 work days lost per 1 accident.\n"
	if out != want {
		t.Errorf("output:\n got %q\nwant %q", out, want)
	}
}

func TestRatesSafety_JSON(t *testing.T) {
	out, err := execute(t, "rates", "safety", "--json",
		"--accidents", "2", "--workers", "63", "--hours-worked", "500")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(out), &fields); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if fields["rate_name"] != "Safety Rate" {
		t.Errorf("rate_name: got %v", fields["rate_name"])
	}
	got, ok := fields["rate_value"].(float64)
	if !ok || math.Abs(got-6.349206349) > 1e-6 {
		t.Errorf("rate_value: got %v, want about 6.3492", fields["rate_value"])
	}
}

func TestRatesFrequency_BadSeries(t *testing.T) {
	_, err := execute(t, "rates", "frequency", "--accidents", "2,x", "--hours-worked", "37000")
	if err == nil {
		t.Fatal("expected error for malformed series, got nil")
	}
	if !strings.Contains(err.Error(), "not a number") {
		t.Errorf("error: got %q, want mention of the bad value", err)
	}
}

func TestAssess_Text(t *testing.T) {
	path := writeFile(t, "input.yaml", `
hand_arm:
  machines:
    - name: drill
      aw: 3.0
      time: 2
rates:
  frequency:
    accidents: 2
    hours_worked: 37000
`)
	out, err := execute(t, "assess", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "--- Hand-Arm Vibration Exposure Assessment ---\n" +
		"A(8) vibration value: 1.500 m/s².\n" +
		"Exposure is below the action value.\n" +
		"No specific action is required.\n" +
		"\n" +
		"Frequency Rate: 54.054 accidents per 1000000 work hours.\n"
	if out != want {
		t.Errorf("output:\n got %q\nwant %q", out, want)
	}
}

func TestAssess_JSON(t *testing.T) {
	path := writeFile(t, "input.yaml", `
noise:
  tasks:
    - name: press line
      laeq_t: 85
      time: 480
`)
	out, err := execute(t, "assess", path, "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var rep struct {
		RunID       string                    `json:"run_id"`
		GeneratedAt time.Time                 `json:"generated_at"`
		File        string                    `json:"file"`
		Results     map[string]map[string]any `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}

	if _, err := uuid.Parse(rep.RunID); err != nil {
		t.Errorf("run_id: got %q, want a UUID", rep.RunID)
	}
	if rep.GeneratedAt.IsZero() {
		t.Error("generated_at: got zero time")
	}
	if rep.File != path {
		t.Errorf("file: got %q, want %q", rep.File, path)
	}

	res, ok := rep.Results["noise"]
	if !ok {
		t.Fatalf("results: missing noise section, got %v", rep.Results)
	}
	if got, _ := res["exposure_value"].(float64); math.Abs(got-85) > 1e-9 {
		t.Errorf("exposure_value: got %v, want 85", res["exposure_value"])
	}
	if res["exceeds_sup_action"] != true {
		t.Errorf("exceeds_sup_action: got %v, want true", res["exceeds_sup_action"])
	}
	if res["exceeds_limit"] != false {
		t.Errorf("exceeds_limit: got %v, want false", res["exceeds_limit"])
	}
}

func TestAssess_InvalidRecord(t *testing.T) {
	path := writeFile(t, "input.yaml", `
hand_arm:
  machines:
    - name: drill
      aw: 3.0
`)
	_, err := execute(t, "assess", path)
	if err == nil {
		t.Fatal("expected error for missing time, got nil")
	}
	if !strings.Contains(err.Error(), "drill") {
		t.Errorf("error should name the record: %v", err)
	}
}

func TestVibrationHandArm_SectionMissing(t *testing.T) {
	path := writeFile(t, "input.yaml", `
noise:
  tasks:
    - name: press line
      laeq_t: 85
      time: 480
`)
	_, err := execute(t, "vibration", "hand-arm", "-f", path)
	if err == nil {
		t.Fatal("expected error for missing section, got nil")
	}
	if !strings.Contains(err.Error(), "no hand_arm section") {
		t.Errorf("error: got %v", err)
	}
}

func TestVibrationHandArm_FlagOverridesSection(t *testing.T) {
	path := writeFile(t, "input.yaml", `
hand_arm:
  action_value: 1.0
  machines:
    - name: drill
      aw: 3.0
      time: 2
`)

	out, err := execute(t, "vibration", "hand-arm", "-f", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Exposure exceeds the exposure action value (1 m/s²).") {
		t.Errorf("section override not applied:\n%s", out)
	}

	out, err = execute(t, "vibration", "hand-arm", "-f", path, "--action", "2.0")
	if err != nil {
		t.Fatalf("execute with flag: %v", err)
	}
	if !strings.Contains(out, "Exposure is below the action value.") {
		t.Errorf("flag override not applied:\n%s", out)
	}
}

func TestNoise_ProtectedFlag(t *testing.T) {
	path := writeFile(t, "input.yaml", `
noise:
  tasks:
    - name: press line
      laeq_t: 95
      time: 480
`)
	out, err := execute(t, "noise", "-f", path, "--protected", "70")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Protected LAeq,d: 70.00 dB(A)") {
		t.Errorf("protected line missing:\n%s", out)
	}
	if !strings.Contains(out, "Exposure is within acceptable regulatory thresholds.") {
		t.Errorf("classification should use the protected level:\n%s", out)
	}
}

func TestConfigFile_JSONFormat(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", `
output:
  format: json
`)
	out, err := execute(t, "rates", "frequency", "--config", cfgPath,
		"--accidents", "2", "--hours-worked", "37000")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(out), &fields); err != nil {
		t.Fatalf("config should switch output to JSON: %v\n%s", err, out)
	}
	if fields["rate_name"] != "Frequency Rate" {
		t.Errorf("rate_name: got %v", fields["rate_name"])
	}
}

func TestConfigFile_ThresholdOverride(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", `
thresholds:
  hand_arm:
    action_value: 1.0
`)
	inputPath := writeFile(t, "input.yaml", `
hand_arm:
  machines:
    - name: drill
      aw: 3.0
      time: 2
`)
	out, err := execute(t, "vibration", "hand-arm", "--config", cfgPath, "-f", inputPath)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Exposure exceeds the exposure action value (1 m/s²).") {
		t.Errorf("config threshold not applied:\n%s", out)
	}
}

func TestConfigFile_Missing(t *testing.T) {
	_, err := execute(t, "version", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "jsapy version ") {
		t.Errorf("output: got %q", out)
	}
	if !strings.Contains(out, "Go version: ") {
		t.Errorf("output missing Go version: %q", out)
	}
}

func TestParseSeries(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  []float64
		isErr bool
	}{
		{"single value", "3", []float64{3}, false},
		{"list", "3,1,0", []float64{3, 1, 0}, false},
		{"spaces trimmed", " 2 , 4 ", []float64{2, 4}, false},
		{"decimal values", "1.5,2.25", []float64{1.5, 2.25}, false},
		{"empty string", "", nil, true},
		{"empty element", "1,,2", nil, true},
		{"non-numeric", "2,x", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSeries(tc.in)
			if tc.isErr {
				if err == nil {
					t.Fatalf("parseSeries(%q): expected error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSeries(%q): %v", tc.in, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("parseSeries(%q): got %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("parseSeries(%q)[%d]: got %v, want %v", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestFirstPositive(t *testing.T) {
	if got := firstPositive(0, 0, 5); got != 5 {
		t.Errorf("firstPositive(0,0,5): got %v", got)
	}
	if got := firstPositive(2, 1, 0); got != 2 {
		t.Errorf("firstPositive(2,1,0): got %v", got)
	}
	if got := firstPositive(0, 0); got != 0 {
		t.Errorf("firstPositive(0,0): got %v", got)
	}
	if got := firstPositive(); got != 0 {
		t.Errorf("firstPositive(): got %v", got)
	}
}

// execute runs the command tree with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	restoreLogger(t)

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// restoreLogger reinstates the default logger once the test ends; the
// root command swaps it for the configured one on every run.
func restoreLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

// writeFile writes content to a fresh temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
