package noise

import (
	"fmt"

	"github.com/Erik-Martinez/jsapy/internal/coerce"
	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

const tasksUsage = "must be a list of records such as [{name: grinding, laeq_t: 85, time: 120}]"

// AssessNoise evaluates a batch of task records and returns the
// combined daily exposure.
//
// tasks must be a list; each element a mapping with an optional
// "name", a "laeq_t" level in dB(A) and a "time" in minutes.
// Validation is fail-fast: the first offending record aborts the
// assessment and no partial result is produced.
func AssessNoise(tasks any, cfg Config) (*Result, error) {
	engine, err := NewExposure(cfg)
	if err != nil {
		return nil, err
	}
	parsed, err := parseTaskRecords(tasks)
	if err != nil {
		return nil, err
	}

	levels := make([]float64, 0, len(parsed))
	var advisories []osh.Advisory
	for _, task := range parsed {
		l, adv, err := engine.DailyLevel(task)
		if err != nil {
			return nil, err
		}
		if adv != nil {
			advisories = append(advisories, *adv)
		}
		levels = append(levels, l)
	}
	return engine.Combine(levels, advisories)
}

func parseTaskRecords(tasks any) ([]Task, error) {
	list, ok := coerce.List(tasks)
	if !ok {
		return nil, &osh.InputError{Field: "tasks", Reason: tasksUsage}
	}
	if len(list) == 0 {
		return nil, &osh.InputError{Field: "tasks", Reason: "at least one record is required"}
	}
	parsed := make([]Task, len(list))
	for i, entry := range list {
		rec, ok := coerce.Record(entry)
		if !ok {
			return nil, &osh.InputError{Reason: fmt.Sprintf("task entry #%d must be a mapping", i+1)}
		}
		name, err := coerce.Name(rec, "Task", i+1)
		if err != nil {
			return nil, err
		}
		level, err := coerce.Require(rec, "laeq_t", name)
		if err != nil {
			return nil, err
		}
		minutes, err := coerce.Require(rec, "time", name)
		if err != nil {
			return nil, err
		}
		parsed[i] = Task{Name: name, Level: level, Minutes: minutes}
	}
	return parsed, nil
}
