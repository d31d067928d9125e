package coerce

import (
	"fmt"

	"github.com/Erik-Martinez/jsapy/pkg/osh"
)

// Float converts a dynamic scalar to float64. It accepts the numeric
// types produced by the YAML and JSON decoders plus the ones callers
// plausibly hand over directly.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Floats converts a scalar-or-array argument to a slice of float64.
// A bare scalar promotes to a one-element slice. Any non-numeric
// element fails the whole conversion.
func Floats(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		out := make([]float64, len(s))
		copy(out, s)
		return out, true
	case []int:
		out := make([]float64, len(s))
		for i, n := range s {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			f, ok := Float(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	default:
		f, ok := Float(v)
		if !ok {
			return nil, false
		}
		return []float64{f}, true
	}
}

// List converts a dynamic record-list argument to []any.
func List(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []map[string]float64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

// Record converts a list element to a map record.
func Record(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]float64:
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = e
		}
		return out, true
	case map[string]int:
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = e
		}
		return out, true
	default:
		return nil, false
	}
}

// Name resolves a record's label from its optional "name" key, falling
// back to "<kind> <position>" (1-based), e.g. "Machine 2".
func Name(rec map[string]any, kind string, position int) (string, error) {
	fallback := fmt.Sprintf("%s %d", kind, position)
	v, ok := rec["name"]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &osh.InputError{Record: fallback, Field: "name", Reason: "must be a string"}
	}
	return s, nil
}

// Require extracts a mandatory numeric field from a record.
func Require(rec map[string]any, field, record string) (float64, error) {
	v, ok := rec[field]
	if !ok || v == nil {
		return 0, &osh.InputError{Record: record, Field: field, Reason: "missing required value"}
	}
	f, ok := Float(v)
	if !ok {
		return 0, &osh.InputError{Record: record, Field: field, Reason: "must be numeric"}
	}
	return f, nil
}

// Optional extracts a numeric field that may be absent. Presence with a
// non-numeric value is still an error.
func Optional(rec map[string]any, field, record string) (float64, bool, error) {
	v, ok := rec[field]
	if !ok || v == nil {
		return 0, false, nil
	}
	f, ok := Float(v)
	if !ok {
		return 0, false, &osh.InputError{Record: record, Field: field, Reason: "must be numeric"}
	}
	return f, true, nil
}
