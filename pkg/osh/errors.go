package osh

import "fmt"

// InputError reports a malformed or out-of-domain input. It names the
// offending record and, when identifiable, the offending field, so batch
// callers can point the user at the exact entry that failed.
type InputError struct {
	// Record is the label of the offending record, e.g. "Machine 2".
	// Empty for scalar arguments outside a record list.
	Record string

	// Field is the offending field or parameter name, when known.
	Field string

	// Reason describes the violation.
	Reason string
}

func (e *InputError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("field %q: %s", e.Field, msg)
	}
	if e.Record != "" {
		msg = e.Record + ": " + msg
	}
	return "invalid input: " + msg
}

// Advisory is a non-fatal observation raised while evaluating a record.
// Advisories never abort a computation; they travel with the result so
// callers can surface them next to the assessment outcome.
type Advisory struct {
	// Record is the label of the record the advisory refers to.
	Record string

	// Message describes the observation.
	Message string
}

func (a Advisory) String() string {
	if a.Record == "" {
		return a.Message
	}
	return a.Record + ": " + a.Message
}
