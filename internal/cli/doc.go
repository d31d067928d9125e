// Package cli wires the jsapy command tree.
//
// Commands:
//   - assess FILE [--watch]: run every section of an input file, optionally
//     re-running on file changes
//   - vibration hand-arm | whole-body -f FILE: one vibration assessment
//   - noise -f FILE: daily noise exposure assessment
//   - rates frequency | incidence | severity | lost-days | safety: accident
//     rate statistics from comma separated flag values
//   - version: build metadata
//
// Global flags: --config selects a config file, --json switches rendering
// to JSON, --verbose raises the log level to debug. Threshold overrides
// resolve flag first, then the input file section, then the config file,
// then the built-in regulatory defaults.
//
// Results go to standard out; diagnostics and advisories go through the
// structured logger, never standard out.
package cli
