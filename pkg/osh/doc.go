// Package osh defines the shared vocabulary used by every assessment
// package: regulatory threshold tiers and their evaluation, recommended
// action levels, the InputError validation failure type, and non-fatal
// advisories attached to results.
package osh
