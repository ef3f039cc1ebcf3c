package vitals

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bloomnest/bloom/pkg/types"
)

// ErrInvalidReading is matched by every *InvalidReadingError.
var ErrInvalidReading = errors.New("invalid reading")

var validate = validator.New()

// FieldError describes one out-of-range field of a reading.
type FieldError struct {
	Field   string
	Message string
}

// InvalidReadingError lists the fields that failed validation.
type InvalidReadingError struct {
	Fields []FieldError
}

func (e *InvalidReadingError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidReading, strings.Join(msgs, "; "))
}

func (e *InvalidReadingError) Unwrap() error { return ErrInvalidReading }

// NewReading validates the values and returns an immutable reading.
// Out-of-range values yield an *InvalidReadingError.
func NewReading(at time.Time, weightKg float64, systolic, diastolic, glucose int) (types.VitalsReading, error) {
	r := types.VitalsReading{
		RecordedAt: at,
		WeightKg:   weightKg,
		Systolic:   systolic,
		Diastolic:  diastolic,
		Glucose:    glucose,
	}
	if err := validate.Struct(r); err != nil {
		return types.VitalsReading{}, toInvalidReading(err)
	}
	return r, nil
}

func toInvalidReading(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}
	out := &InvalidReadingError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
