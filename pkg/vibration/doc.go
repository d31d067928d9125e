// Package vibration computes daily A(8) mechanical vibration exposures.
//
// handarm.go provides the HandArm engine: per-record contributions
// aw·√(hours/8), combined by root-sum-of-squares into the daily value.
// wholebody.go provides the WholeBody engine: per-axis weighted
// contributions (1.4·x, 1.4·y, 1.0·z, each ·√(hours/8)), combined per
// axis and classified on the dominant axis.
//
// Both engines classify the combined value against an action tier and a
// limit tier using strict comparison, and batch entry points accept
// dynamic record lists as decoded from YAML or JSON.
package vibration
