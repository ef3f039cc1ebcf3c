package types

import (
	"strings"
	"time"
)

// DateLabelLayout is the layout used for the human-readable date column of
// exported tables, e.g. "07 Mar".
const DateLabelLayout = "02 Jan"

// VitalsReading is one submitted set of vitals. Values are validated when the
// reading is constructed (see vitals.NewReading) and never change afterwards.
type VitalsReading struct {
	RecordedAt time.Time `json:"recorded_at"`
	WeightKg   float64   `json:"weight_kg" validate:"gte=40,lte=150"`
	Systolic   int       `json:"systolic" validate:"gt=0,lte=300"`
	Diastolic  int       `json:"diastolic" validate:"gt=0,lte=300"`
	Glucose    int       `json:"glucose" validate:"gte=50,lte=300"`
}

// DateLabel returns the reading date formatted with DateLabelLayout.
func (r VitalsReading) DateLabel() string {
	return r.RecordedAt.Format(DateLabelLayout)
}

// Role is the access level chosen at login.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// ParseRole maps user input to a Role. Matching is case-insensitive.
// The second return value is false for anything other than patient or doctor.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient, true
	case RoleDoctor:
		return RoleDoctor, true
	default:
		return "", false
	}
}
