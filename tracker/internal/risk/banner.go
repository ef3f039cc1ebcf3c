package risk

import "github.com/bloomnest/bloom/pkg/types"

// Severity constants for banners.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Banner is the user-facing message for one alert category.
type Banner struct {
	Alert     types.Alert
	Condition string // "PIH" or "GDM"
	Severity  string
	Message   string
}

// Banners returns one banner per category in a, hypertensive first.
// It returns nil for types.AlertNone.
func Banners(a types.Alert) []Banner {
	var out []Banner
	for _, k := range a.Kinds() {
		switch k {
		case types.AlertHypertensive:
			out = append(out, Banner{
				Alert:     k,
				Condition: "PIH",
				Severity:  SeverityCritical,
				Message:   "High blood pressure. Please rest and call your doctor.",
			})
		case types.AlertGlucose:
			out = append(out, Banner{
				Alert:     k,
				Condition: "GDM",
				Severity:  SeverityWarning,
				Message:   "Elevated sugar levels detected.",
			})
		}
	}
	return out
}

// Label renders the banner headline, e.g. "[CRITICAL] PIH ALERT".
func (b Banner) Label() string {
	return severityLabel(b.Severity) + " " + b.Condition + " ALERT"
}

func severityLabel(s string) string {
	switch s {
	case SeverityCritical:
		return "[CRITICAL]"
	case SeverityWarning:
		return "[WARNING]"
	default:
		return "[INFO]"
	}
}
