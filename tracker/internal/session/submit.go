package session

import (
	"errors"
	"log/slog"

	"github.com/bloomnest/bloom/pkg/types"
	"github.com/bloomnest/bloom/tracker/internal/risk"
	"github.com/bloomnest/bloom/tracker/internal/vitals"
)

// Rejection reasons reported to the Recorder.
const (
	RejectMalformedBloodPressure = "malformed_blood_pressure"
	RejectMalformedWeight        = "malformed_weight"
	RejectMalformedGlucose       = "malformed_glucose"
	RejectInvalidReading         = "invalid_reading"
	RejectClosed                 = "closed"
)

// Entry is a reading as typed by the user.
type Entry struct {
	Weight        string
	BloodPressure string
	Glucose       string
}

// Result is the outcome of an accepted submission.
type Result struct {
	Reading types.VitalsReading
	Alerts  types.Alert
	Banners []risk.Banner
}

// Submit parses, validates, records and evaluates e. On error the history is
// unchanged; the error is a *risk.ParseError, a *vitals.InvalidReadingError
// or ErrClosed.
func (s *Session) Submit(e Entry) (Result, error) {
	r, err := s.build(e)
	if err != nil {
		kind := rejectKind(err)
		s.rec.SubmissionRejected(kind)
		slog.Info("session: submission rejected",
			"session", s.ID.String(), "reason", kind, "err", err)
		return Result{}, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.rec.SubmissionRejected(RejectClosed)
		return Result{}, ErrClosed
	}
	s.history.Append(r)
	s.mu.Unlock()
	s.rec.ReadingRecorded()

	alerts := s.eval.Evaluate(r)
	for _, k := range alerts.Kinds() {
		s.rec.AlertRaised(k.String())
	}
	if !alerts.Empty() {
		slog.Warn("session: risk alert",
			"session", s.ID.String(),
			"alerts", alerts.String(),
			"systolic", r.Systolic,
			"diastolic", r.Diastolic,
			"glucose", r.Glucose,
		)
	}

	return Result{Reading: r, Alerts: alerts, Banners: risk.Banners(alerts)}, nil
}

func (s *Session) build(e Entry) (types.VitalsReading, error) {
	if s.Closed() {
		return types.VitalsReading{}, ErrClosed
	}
	weight, err := risk.ParseWeight(e.Weight)
	if err != nil {
		return types.VitalsReading{}, err
	}
	sys, dia, err := risk.ParseBloodPressure(e.BloodPressure)
	if err != nil {
		return types.VitalsReading{}, err
	}
	glucose, err := risk.ParseGlucose(e.Glucose)
	if err != nil {
		return types.VitalsReading{}, err
	}
	return vitals.NewReading(s.now(), weight, sys, dia, glucose)
}

func rejectKind(err error) string {
	switch {
	case errors.Is(err, risk.ErrMalformedBloodPressure):
		return RejectMalformedBloodPressure
	case errors.Is(err, risk.ErrMalformedWeight):
		return RejectMalformedWeight
	case errors.Is(err, risk.ErrMalformedGlucose):
		return RejectMalformedGlucose
	case errors.Is(err, ErrClosed):
		return RejectClosed
	default:
		return RejectInvalidReading
	}
}
