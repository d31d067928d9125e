// Package report renders assessment results: narrative text to a
// writer or stdout, and flat-field JSON export. Results participate by
// implementing the small Renderable and FieldMapper capabilities, which
// every result type in this module does.
package report
