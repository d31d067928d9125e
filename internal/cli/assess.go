package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Erik-Martinez/jsapy/internal/inputfile"
	"github.com/Erik-Martinez/jsapy/pkg/accident"
	"github.com/Erik-Martinez/jsapy/pkg/noise"
	"github.com/Erik-Martinez/jsapy/pkg/osh"
	"github.com/Erik-Martinez/jsapy/pkg/report"
	"github.com/Erik-Martinez/jsapy/pkg/vibration"
)

func newAssessCommand(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "assess FILE",
		Short: "Run every assessment section of an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, err := inputfile.Load(path)
			if err != nil {
				return err
			}
			if err := a.runAssessment(cmd.OutOrStdout(), path, doc); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return inputfile.Watch(cmd.Context(), path, func(doc *inputfile.Document) {
				if err := a.runAssessment(cmd.OutOrStdout(), path, doc); err != nil {
					slog.Error("assessment failed", "path", path, "err", err)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Re-run the assessment when FILE changes")
	return cmd
}

// entry is one named assessment outcome. Rates nest one level.
type entry struct {
	name     string
	result   any
	children []entry
}

// runReport is the JSON envelope emitted by assess --json.
type runReport struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	File        string         `json:"file"`
	Results     map[string]any `json:"results"`
}

func (a *app) runAssessment(w io.Writer, path string, doc *inputfile.Document) error {
	entries, err := a.evaluate(doc)
	if err != nil {
		return err
	}
	slog.Info("assessment complete", "file", path, "sections", len(entries))

	if a.jsonOut {
		return writeRunReport(w, path, entries)
	}
	return renderText(w, entries)
}

// evaluate runs every section present in doc, in a fixed order.
// The first failing section aborts the run.
func (a *app) evaluate(doc *inputfile.Document) ([]entry, error) {
	var out []entry

	if sec := doc.HandArm; sec != nil {
		res, err := vibration.AssessHandArm(sec.Machines, a.handArmConfig(sec, 0, 0))
		if err != nil {
			return nil, err
		}
		logAdvisories(res.Advisories)
		out = append(out, entry{name: "hand_arm", result: res})
	}
	if sec := doc.WholeBody; sec != nil {
		res, err := vibration.AssessWholeBody(sec.Machines, a.wholeBodyConfig(sec, 0, 0))
		if err != nil {
			return nil, err
		}
		logAdvisories(res.Advisories)
		out = append(out, entry{name: "whole_body", result: res})
	}
	if sec := doc.Noise; sec != nil {
		res, err := noise.AssessNoise(sec.Tasks, a.noiseConfig(sec, noiseOverrides{}))
		if err != nil {
			return nil, err
		}
		logAdvisories(res.Advisories)
		out = append(out, entry{name: "noise", result: res})
	}
	if sec := doc.Rates; sec != nil {
		children, err := evaluateRates(sec)
		if err != nil {
			return nil, err
		}
		out = append(out, entry{name: "rates", children: children})
	}
	return out, nil
}

func evaluateRates(sec *inputfile.RatesSection) ([]entry, error) {
	var out []entry

	if s := sec.Frequency; s != nil {
		res, err := accident.FrequencyRate(s.Accidents, s.HoursWorked, s.Factor)
		if err != nil {
			return nil, err
		}
		out = append(out, entry{name: "frequency", result: res})
	}
	if s := sec.Incidence; s != nil {
		res, err := accident.IncidenceRate(s.Accidents, s.Workers, s.Factor)
		if err != nil {
			return nil, err
		}
		out = append(out, entry{name: "incidence", result: res})
	}
	if s := sec.Severity; s != nil {
		res, err := accident.SeverityRate(s.DaysLost, s.HoursWorked, s.Factor)
		if err != nil {
			return nil, err
		}
		out = append(out, entry{name: "severity", result: res})
	}
	if s := sec.LostDays; s != nil {
		res, err := accident.LostDaysRate(s.Accidents, s.HoursWorked, s.DaysLost)
		if err != nil {
			return nil, err
		}
		out = append(out, entry{name: "lost_days", result: res})
	}
	if s := sec.Safety; s != nil {
		res, err := accident.SafetyRate(s.Accidents, s.Workers, s.HoursWorked, s.Factor)
		if err != nil {
			return nil, err
		}
		out = append(out, entry{name: "safety", result: res})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("rates: no rate sub-sections found")
	}
	return out, nil
}

// renderText prints narratives in section order, blank line separated.
func renderText(w io.Writer, entries []entry) error {
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if e.children == nil {
			if err := report.Fprint(w, e.result); err != nil {
				return err
			}
			continue
		}
		for _, c := range e.children {
			if err := report.Fprint(w, c.result); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRunReport(w io.Writer, path string, entries []entry) error {
	results := make(map[string]any, len(entries))
	for _, e := range entries {
		if e.children == nil {
			fields, err := resultFields(e.result)
			if err != nil {
				return err
			}
			results[e.name] = fields
			continue
		}
		nested := make(map[string]any, len(e.children))
		for _, c := range e.children {
			fields, err := resultFields(c.result)
			if err != nil {
				return err
			}
			nested[c.name] = fields
		}
		results[e.name] = nested
	}

	doc := runReport{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		File:        path,
		Results:     results,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func resultFields(v any) (map[string]any, error) {
	fm, ok := v.(report.FieldMapper)
	if !ok {
		return nil, fmt.Errorf("cli: %T does not export fields", v)
	}
	return fm.Fields(), nil
}

// logAdvisories surfaces non-fatal advisories without touching stdout.
func logAdvisories(advs []osh.Advisory) {
	for _, adv := range advs {
		slog.Warn("advisory", "record", adv.Record, "message", adv.Message)
	}
}
