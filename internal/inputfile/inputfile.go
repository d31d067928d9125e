package inputfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the top-level structure of an assessment input file.
// Sections are pointers so the CLI can tell which ones are present.
type Document struct {
	HandArm   *HandArmSection   `yaml:"hand_arm"`
	WholeBody *WholeBodySection `yaml:"whole_body"`
	Noise     *NoiseSection     `yaml:"noise"`
	Rates     *RatesSection     `yaml:"rates"`
}

// HandArmSection describes hand-arm vibration sources.
type HandArmSection struct {
	// ActionValue and LimitValue override the configured thresholds for
	// this file only. Zero keeps the configured value.
	ActionValue float64 `yaml:"action_value"`
	LimitValue  float64 `yaml:"limit_value"`

	// Machines is the raw record list, validated by the assessment
	// rather than at parse time.
	Machines []any `yaml:"machines"`
}

// WholeBodySection describes whole-body vibration sources.
type WholeBodySection struct {
	// ActionValue and LimitValue override the configured thresholds for
	// this file only. Zero keeps the configured value.
	ActionValue float64 `yaml:"action_value"`
	LimitValue  float64 `yaml:"limit_value"`

	// Machines is the raw record list, validated by the assessment
	// rather than at parse time.
	Machines []any `yaml:"machines"`
}

// NoiseSection describes daily noise exposure tasks.
type NoiseSection struct {
	// Threshold overrides for this file only. Zero keeps the
	// configured value.
	InfActionValue float64 `yaml:"inf_action_value"`
	SupActionValue float64 `yaml:"sup_action_value"`
	LimitValue     float64 `yaml:"limit_value"`

	// ProtectedLevel is the effective level under hearing protection.
	// A pointer so that an explicit 0 is distinguishable from absent.
	ProtectedLevel *float64 `yaml:"protected_level"`

	// Tasks is the raw record list, validated by the assessment rather
	// than at parse time.
	Tasks []any `yaml:"tasks"`
}

// RatesSection holds one sub-section per accident rate. Series inputs
// accept a scalar or a list of numbers.
type RatesSection struct {
	Frequency *FrequencySpec `yaml:"frequency"`
	Incidence *IncidenceSpec `yaml:"incidence"`
	Severity  *SeveritySpec  `yaml:"severity"`
	LostDays  *LostDaysSpec  `yaml:"lost_days"`
	Safety    *SafetySpec    `yaml:"safety"`
}

// FrequencySpec holds the inputs for a frequency rate calculation.
type FrequencySpec struct {
	Accidents   any     `yaml:"accidents"`
	HoursWorked any     `yaml:"hours_worked"`
	Factor      float64 `yaml:"factor"`
}

// IncidenceSpec holds the inputs for an incidence rate calculation.
type IncidenceSpec struct {
	Accidents any     `yaml:"accidents"`
	Workers   any     `yaml:"workers"`
	Factor    float64 `yaml:"factor"`
}

// SeveritySpec holds the inputs for a severity rate calculation.
type SeveritySpec struct {
	DaysLost    any     `yaml:"days_lost"`
	HoursWorked any     `yaml:"hours_worked"`
	Factor      float64 `yaml:"factor"`
}

// LostDaysSpec holds the inputs for a lost-days rate calculation.
// The rate has a fixed factor, so none can be configured here.
type LostDaysSpec struct {
	Accidents   any `yaml:"accidents"`
	HoursWorked any `yaml:"hours_worked"`
	DaysLost    any `yaml:"days_lost"`
}

// SafetySpec holds the inputs for a safety rate calculation.
type SafetySpec struct {
	Accidents   any     `yaml:"accidents"`
	Workers     any     `yaml:"workers"`
	HoursWorked any     `yaml:"hours_worked"`
	Factor      float64 `yaml:"factor"`
}

// Load reads and parses the YAML input file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inputfile: read file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("inputfile: parse yaml: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, fmt.Errorf("inputfile: %w", err)
	}

	return &doc, nil
}

// validate rejects documents with nothing to assess.
func validate(doc *Document) error {
	if doc.HandArm == nil && doc.WholeBody == nil && doc.Noise == nil && doc.Rates == nil {
		return fmt.Errorf("no assessment sections found (expected hand_arm, whole_body, noise or rates)")
	}
	return nil
}
