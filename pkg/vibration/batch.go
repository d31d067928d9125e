package vibration

import (
	"fmt"

	"github.com/Erik-Martinez/jsapy/internal/coerce"
	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

// AssessHandArm evaluates a batch of machine records and returns the
// combined daily hand-arm exposure.
//
// machines must be a list; each element a mapping with an optional
// "name", either "aw" or the three axis values "ax"/"ay"/"az", and a
// "time" in hours. Validation is fail-fast: the first offending record
// aborts the assessment and no partial result is produced.
func AssessHandArm(machines any, cfg HandArmConfig) (*Result, error) {
	engine, err := NewHandArm(cfg)
	if err != nil {
		return nil, err
	}
	sources, err := parseHandArmRecords(machines)
	if err != nil {
		return nil, err
	}

	contributions := make([]float64, 0, len(sources))
	var advisories []osh.Advisory
	for _, src := range sources {
		c, adv, err := engine.Contribution(src)
		if err != nil {
			return nil, err
		}
		if adv != nil {
			advisories = append(advisories, *adv)
		}
		contributions = append(contributions, c)
	}
	return engine.Combine(contributions, advisories), nil
}

// AssessWholeBody evaluates a batch of machine records and returns the
// combined daily whole-body exposure. Records require all three axis
// values and a "time" in hours.
func AssessWholeBody(machines any, cfg WholeBodyConfig) (*Result, error) {
	engine, err := NewWholeBody(cfg)
	if err != nil {
		return nil, err
	}
	sources, err := parseWholeBodyRecords(machines)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, 0, len(sources))
	ys := make([]float64, 0, len(sources))
	zs := make([]float64, 0, len(sources))
	var advisories []osh.Advisory
	for _, src := range sources {
		c, adv, err := engine.Contribution(src)
		if err != nil {
			return nil, err
		}
		if adv != nil {
			advisories = append(advisories, *adv)
		}
		xs = append(xs, c.X)
		ys = append(ys, c.Y)
		zs = append(zs, c.Z)
	}
	return engine.Combine(xs, ys, zs, advisories)
}

const machinesUsage = "must be a list of records such as [{name: drill, ax: 2.1, ay: 1.4, az: 0.8, time: 3}]"

// recordList coerces the dynamic machines argument into individual
// records, naming the position of any element that is not a mapping.
func recordList(machines any) ([]map[string]any, error) {
	list, ok := coerce.List(machines)
	if !ok {
		return nil, &osh.InputError{Field: "machines", Reason: machinesUsage}
	}
	if len(list) == 0 {
		return nil, &osh.InputError{Field: "machines", Reason: "at least one record is required"}
	}
	records := make([]map[string]any, len(list))
	for i, entry := range list {
		rec, ok := coerce.Record(entry)
		if !ok {
			return nil, &osh.InputError{Reason: fmt.Sprintf("machine entry #%d must be a mapping", i+1)}
		}
		records[i] = rec
	}
	return records, nil
}

func parseHandArmRecords(machines any) ([]HandArmSource, error) {
	records, err := recordList(machines)
	if err != nil {
		return nil, err
	}
	sources := make([]HandArmSource, len(records))
	for i, rec := range records {
		src, err := handArmSource(rec, i+1)
		if err != nil {
			return nil, err
		}
		sources[i] = src
	}
	return sources, nil
}

// handArmSource builds a typed source from one dynamic record,
// enforcing the aw-or-axes contract at the parse boundary so incomplete
// axis sets fail naming the first missing axis.
func handArmSource(rec map[string]any, position int) (HandArmSource, error) {
	name, err := coerce.Name(rec, "Machine", position)
	if err != nil {
		return HandArmSource{}, err
	}
	src := HandArmSource{Name: name}

	aw, hasMagnitude, err := coerce.Optional(rec, "aw", name)
	if err != nil {
		return HandArmSource{}, err
	}
	hasAxes := rec["ax"] != nil || rec["ay"] != nil || rec["az"] != nil
	switch {
	case hasMagnitude && hasAxes:
		return HandArmSource{}, &osh.InputError{Record: name, Reason: "provide either 'aw' or the three axis values, not both"}
	case hasMagnitude:
		src.Magnitude = &aw
	default:
		axes, err := requireAxes(rec, name)
		if err != nil {
			return HandArmSource{}, err
		}
		src.Axes = &axes
	}

	hours, err := coerce.Require(rec, "time", name)
	if err != nil {
		return HandArmSource{}, err
	}
	src.Hours = hours
	return src, nil
}

func parseWholeBodyRecords(machines any) ([]WholeBodySource, error) {
	records, err := recordList(machines)
	if err != nil {
		return nil, err
	}
	sources := make([]WholeBodySource, len(records))
	for i, rec := range records {
		name, err := coerce.Name(rec, "Machine", i+1)
		if err != nil {
			return nil, err
		}
		axes, err := requireAxes(rec, name)
		if err != nil {
			return nil, err
		}
		hours, err := coerce.Require(rec, "time", name)
		if err != nil {
			return nil, err
		}
		sources[i] = WholeBodySource{Name: name, Axes: axes, Hours: hours}
	}
	return sources, nil
}

// requireAxes extracts the three axis values, failing on the first
// missing one in ax, ay, az order.
func requireAxes(rec map[string]any, record string) (Axes, error) {
	var values [3]float64
	for i, field := range [3]string{"ax", "ay", "az"} {
		v, present, err := coerce.Optional(rec, field, record)
		if err != nil {
			return Axes{}, err
		}
		if !present {
			return Axes{}, &osh.InputError{Record: record, Field: field, Reason: "missing required axis value"}
		}
		values[i] = v
	}
	return Axes{X: values[0], Y: values[1], Z: values[2]}, nil
}
