// Package risk classifies vitals readings against clinical thresholds and
// parses the free-text numeric fields a reading is assembled from.
//
// evaluate.go provides the pure Evaluate(reading) rule set:
//
//	hypertensive (PIH)  systolic >= 140 or diastolic >= 90
//	glucose (GDM)       glucose >= 140
//
// Both rules are independent and may fire together. Evaluator wraps the
// same rules with swappable thresholds so a config reload can take effect
// in a running session.
//
// scan.go provides ScanHistory, the clinical-review worklist: every reading
// in a history whose alert set is non-empty, in history order.
//
// parse.go turns raw text ("120/80", "65.5", "95") into typed values. A bad
// value yields a *ParseError; the submission is rejected and nothing else
// changes.
//
// banner.go maps alert sets to the messages shown to the user.
package risk
