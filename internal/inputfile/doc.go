// Package inputfile loads and watches jsapy assessment input files.
//
// An input file is a YAML document with up to four sections:
//   - hand_arm: machines [] plus optional action_value / limit_value overrides
//   - whole_body: machines [] plus optional overrides
//   - noise: tasks [] plus optional threshold and protected_level overrides
//   - rates: one sub-section per accident rate with its series inputs
//
// Record lists (machines, tasks) decode to []any and are validated by the
// assessment packages, which report issues by record name and field.
// Section-level threshold overrides follow the same zero-means-unset
// convention as package config.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Document, keeping the previous document
// when a reload fails.
package inputfile
