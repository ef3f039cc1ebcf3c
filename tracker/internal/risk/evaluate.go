package risk

import (
	"fmt"
	"sync/atomic"

	"github.com/bloomnest/bloom/pkg/types"
)

// Thresholds are the inclusive lower bounds at which a reading raises an alert.
type Thresholds struct {
	Systolic  int `yaml:"systolic" default:"140"`
	Diastolic int `yaml:"diastolic" default:"90"`
	Glucose   int `yaml:"glucose" default:"140"`
}

// DefaultThresholds are the clinical cut-offs for PIH and GDM screening.
var DefaultThresholds = Thresholds{
	Systolic:  140,
	Diastolic: 90,
	Glucose:   140,
}

// Validate reports an error if any threshold is not positive.
func (t Thresholds) Validate() error {
	if t.Systolic <= 0 {
		return fmt.Errorf("systolic threshold must be positive, got %d", t.Systolic)
	}
	if t.Diastolic <= 0 {
		return fmt.Errorf("diastolic threshold must be positive, got %d", t.Diastolic)
	}
	if t.Glucose <= 0 {
		return fmt.Errorf("glucose threshold must be positive, got %d", t.Glucose)
	}
	return nil
}

// Evaluate classifies r against DefaultThresholds.
func Evaluate(r types.VitalsReading) types.Alert {
	return DefaultThresholds.Evaluate(r)
}

// Evaluate classifies r against t. It returns types.AlertNone when no rule fires.
func (t Thresholds) Evaluate(r types.VitalsReading) types.Alert {
	alert := types.AlertNone
	if r.Systolic >= t.Systolic || r.Diastolic >= t.Diastolic {
		alert |= types.AlertHypertensive
	}
	if r.Glucose >= t.Glucose {
		alert |= types.AlertGlucose
	}
	return alert
}

// Evaluator applies a set of thresholds that can be replaced at any time.
//
// Evaluator is safe for concurrent use.
type Evaluator struct {
	t atomic.Pointer[Thresholds]
}

// NewEvaluator returns an Evaluator using t.
func NewEvaluator(t Thresholds) *Evaluator {
	e := &Evaluator{}
	e.t.Store(&t)
	return e
}

// Thresholds returns the thresholds currently in effect. A zero Evaluator
// uses DefaultThresholds.
func (e *Evaluator) Thresholds() Thresholds {
	if p := e.t.Load(); p != nil {
		return *p
	}
	return DefaultThresholds
}

// SetThresholds replaces the thresholds used by later calls.
func (e *Evaluator) SetThresholds(t Thresholds) {
	e.t.Store(&t)
}

// Evaluate classifies r against the current thresholds.
func (e *Evaluator) Evaluate(r types.VitalsReading) types.Alert {
	return e.Thresholds().Evaluate(r)
}

// ScanHistory is ScanHistory using the current thresholds.
func (e *Evaluator) ScanHistory(history []types.VitalsReading) []Flagged {
	return e.Thresholds().ScanHistory(history)
}
