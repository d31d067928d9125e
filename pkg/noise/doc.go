// Package noise computes daily noise exposure levels LAeq,d.
//
// Each task's measured level LAeq,T is normalised to the 8-hour
// reference day, level + 10·log10(minutes/480), and tasks combine in
// the energy domain, 10·log10(Σ 10^(Lᵢ/10)).
//
// Classification runs against three tiers (inferior action, superior
// action, limit) with inclusive comparison. When a with-protection
// level is supplied, classification uses it instead of the unprotected
// value; presence of the field is the switch, so a measured 0.0 dB(A)
// counts.
package noise
