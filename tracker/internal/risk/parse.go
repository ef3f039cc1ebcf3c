package risk

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse error kinds. Use errors.Is to test a *ParseError against them.
var (
	ErrMalformedBloodPressure = errors.New("malformed blood pressure")
	ErrMalformedWeight        = errors.New("malformed weight")
	ErrMalformedGlucose       = errors.New("malformed glucose")
)

// ParseError reports a free-text field that could not be turned into a number.
type ParseError struct {
	Field string // "blood_pressure", "weight" or "glucose"
	Input string
	Kind  error // one of the ErrMalformed* values
	Cause error // underlying strconv error, if any
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %q: %v: %v", e.Field, e.Input, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// Hint returns the corrective prompt to show the user.
func (e *ParseError) Hint() string {
	switch e.Kind {
	case ErrMalformedBloodPressure:
		return "Please use format 120/80"
	case ErrMalformedWeight:
		return "Please enter weight in kg, e.g. 65.5"
	case ErrMalformedGlucose:
		return "Please enter sugar in mg/dL as a whole number, e.g. 95"
	default:
		return "Please check the value and try again"
	}
}

// ParseBloodPressure parses "SYS/DIA" text such as "120/80". Whitespace
// anywhere in the input is ignored. Anything other than exactly two integers
// separated by one slash is a *ParseError with Kind ErrMalformedBloodPressure.
func ParseBloodPressure(text string) (systolic, diastolic int, err error) {
	compact := stripSpace(text)
	parts := strings.Split(compact, "/")
	if len(parts) != 2 {
		return 0, 0, &ParseError{Field: "blood_pressure", Input: text, Kind: ErrMalformedBloodPressure}
	}

	systolic, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, &ParseError{Field: "blood_pressure", Input: text, Kind: ErrMalformedBloodPressure, Cause: err}
	}
	diastolic, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, &ParseError{Field: "blood_pressure", Input: text, Kind: ErrMalformedBloodPressure, Cause: err}
	}
	return systolic, diastolic, nil
}

// ParseWeight parses a weight in kilograms. NaN and infinities are rejected.
func ParseWeight(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &ParseError{Field: "weight", Input: text, Kind: ErrMalformedWeight, Cause: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: "weight", Input: text, Kind: ErrMalformedWeight}
	}
	return v, nil
}

// ParseGlucose parses a whole-number glucose reading in mg/dL.
func ParseGlucose(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &ParseError{Field: "glucose", Input: text, Kind: ErrMalformedGlucose, Cause: err}
	}
	return v, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
