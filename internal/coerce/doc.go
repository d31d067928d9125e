// Package coerce converts the dynamic values arriving at the batch
// assessment boundary (decoded YAML/JSON, caller-built maps and slices)
// into the numeric shapes the engines consume. Failures carry enough
// position and field information for osh.InputError reporting.
package coerce
