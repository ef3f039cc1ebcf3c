package risk

import "github.com/bloomnest/bloom/pkg/types"

// Flagged is one history entry that needs clinical review.
type Flagged struct {
	// Index is the position of Reading in the scanned history.
	Index   int
	Reading types.VitalsReading
	Alerts  types.Alert
}

// ScanHistory returns every reading in history that raises at least one
// alert under DefaultThresholds, in history order.
func ScanHistory(history []types.VitalsReading) []Flagged {
	return DefaultThresholds.ScanHistory(history)
}

// ScanHistory returns every reading in history that raises at least one
// alert under t, in history order. history is only read.
func (t Thresholds) ScanHistory(history []types.VitalsReading) []Flagged {
	var out []Flagged
	for i, r := range history {
		if a := t.Evaluate(r); !a.Empty() {
			out = append(out, Flagged{Index: i, Reading: r, Alerts: a})
		}
	}
	return out
}
