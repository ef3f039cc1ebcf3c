package types

import "strings"

// Alert is a set of risk categories raised for one reading. The zero value,
// AlertNone, is the empty set. Both categories may be present at once.
type Alert uint8

const (
	// AlertHypertensive flags elevated blood pressure (PIH).
	AlertHypertensive Alert = 1 << iota
	// AlertGlucose flags elevated blood glucose (GDM).
	AlertGlucose
)

// AlertNone is the empty alert set.
const AlertNone Alert = 0

// alertKinds is the fixed reporting order of the individual categories.
var alertKinds = []Alert{AlertHypertensive, AlertGlucose}

// Has reports whether every category in k is present in a.
func (a Alert) Has(k Alert) bool {
	return k != AlertNone && a&k == k
}

// Empty reports whether no category is present.
func (a Alert) Empty() bool { return a == AlertNone }

// Kinds splits the set into its individual categories, hypertensive first.
func (a Alert) Kinds() []Alert {
	var out []Alert
	for _, k := range alertKinds {
		if a.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (a Alert) String() string {
	if a.Empty() {
		return "none"
	}
	names := make([]string, 0, len(alertKinds))
	for _, k := range a.Kinds() {
		switch k {
		case AlertHypertensive:
			names = append(names, "hypertensive")
		case AlertGlucose:
			names = append(names, "glucose")
		}
	}
	return strings.Join(names, "+")
}
