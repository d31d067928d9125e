package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Renderable is implemented by results that can describe themselves as
// a multi-line assessment narrative.
type Renderable interface {
	Narrative() string
}

// FieldMapper is implemented by results that export their outcome as a
// flat field map.
type FieldMapper interface {
	Fields() map[string]any
}

// Display prints the result's narrative to standard output. It fails
// when the value does not provide one.
func Display(v any) error {
	return Fprint(os.Stdout, v)
}

// Fprint writes the result's narrative to w.
func Fprint(w io.Writer, v any) error {
	r, ok := v.(Renderable)
	if !ok {
		return fmt.Errorf("report: %T does not provide a narrative", v)
	}
	_, err := fmt.Fprintln(w, r.Narrative())
	return err
}

// WriteJSON writes the result's fields to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	m, ok := v.(FieldMapper)
	if !ok {
		return fmt.Errorf("report: %T does not export fields", v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m.Fields())
}
