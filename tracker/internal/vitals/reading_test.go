package vitals

import (
	"errors"
	"testing"
	"time"
)

var at = time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)

func TestNewReading_Valid(t *testing.T) {
	r, err := NewReading(at, 65.5, 120, 80, 95)
	if err != nil {
		t.Fatalf("NewReading: unexpected error %v", err)
	}
	if r.WeightKg != 65.5 || r.Systolic != 120 || r.Diastolic != 80 || r.Glucose != 95 {
		t.Errorf("unexpected reading %+v", r)
	}
	if r.DateLabel() != "07 Mar" {
		t.Errorf("DateLabel() = %q, want 07 Mar", r.DateLabel())
	}
}

func TestNewReading_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		weight    float64
		sys, dia  int
		glucose   int
		wantField string
	}{
		{"weight too low", 39.9, 120, 80, 95, "WeightKg"},
		{"weight too high", 150.1, 120, 80, 95, "WeightKg"},
		{"zero systolic", 65, 0, 80, 95, "Systolic"},
		{"negative diastolic", 65, 120, -80, 95, "Diastolic"},
		{"implausible systolic", 65, 400, 80, 95, "Systolic"},
		{"glucose too low", 65, 120, 80, 49, "Glucose"},
		{"glucose too high", 65, 120, 80, 301, "Glucose"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReading(at, tc.weight, tc.sys, tc.dia, tc.glucose)
			if !errors.Is(err, ErrInvalidReading) {
				t.Fatalf("got %v, want ErrInvalidReading", err)
			}
			var ire *InvalidReadingError
			if !errors.As(err, &ire) {
				t.Fatalf("error %T is not *InvalidReadingError", err)
			}
			if len(ire.Fields) != 1 || ire.Fields[0].Field != tc.wantField {
				t.Errorf("Fields = %+v, want one error on %s", ire.Fields, tc.wantField)
			}
		})
	}
}

func TestNewReading_BoundsInclusive(t *testing.T) {
	if _, err := NewReading(at, 40, 1, 1, 50); err != nil {
		t.Errorf("lower bounds rejected: %v", err)
	}
	if _, err := NewReading(at, 150, 300, 300, 300); err != nil {
		t.Errorf("upper bounds rejected: %v", err)
	}
}

func TestNewReading_MultipleFields(t *testing.T) {
	_, err := NewReading(at, 10, 0, 0, 10)
	var ire *InvalidReadingError
	if !errors.As(err, &ire) {
		t.Fatalf("got %v, want *InvalidReadingError", err)
	}
	if len(ire.Fields) != 4 {
		t.Errorf("got %d field errors, want 4: %v", len(ire.Fields), err)
	}
}
