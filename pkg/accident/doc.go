// Package accident computes workplace accident rate statistics:
// frequency, incidence, severity, lost-days and safety rates, plus the
// generic BasicRate they all derive from.
//
// Every data argument accepts a scalar or an array (periods, sites,
// departments); values are summed before the ratio is taken. Validation
// rejects non-numeric elements, negative values and zero sums, naming
// the offending parameter.
package accident
