package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bloomnest/bloom/pkg/types"
	"github.com/bloomnest/bloom/tracker/internal/risk"
	"github.com/bloomnest/bloom/tracker/internal/vitals"
)

// DefaultLMPWeeks is how many weeks before login the LMP starts when
// Options.LMP is not set.
const DefaultLMPWeeks = 16

var (
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("session closed")

	// ErrInvalidLogin is matched by every Login validation failure.
	ErrInvalidLogin = errors.New("invalid login")
)

var validate = validator.New()

// Recorder receives session activity for metrics.
type Recorder interface {
	ReadingRecorded()
	SubmissionRejected(kind string)
	AlertRaised(alert string)
	WeekObserved(week int)
}

type nopRecorder struct{}

func (nopRecorder) ReadingRecorded()          {}
func (nopRecorder) SubmissionRejected(string) {}
func (nopRecorder) AlertRaised(string)        {}
func (nopRecorder) WeekObserved(int)          {}

// LoginRequest is the data entered on the login screen.
type LoginRequest struct {
	Name string `validate:"required,max=100"`
	Role string `validate:"required,oneof=patient doctor"`
}

// Options configures a new Session. The zero value is usable.
type Options struct {
	// LMP is the initial last menstrual period. Zero means DefaultLMPWeeks
	// before login.
	LMP time.Time

	// Evaluator classifies readings. Nil means risk.DefaultThresholds.
	Evaluator *risk.Evaluator

	// Recorder receives metrics. Nil disables them.
	Recorder Recorder

	// Now is the session clock. Nil means time.Now.
	Now func() time.Time
}

// Session is one user's state between login and logout.
//
// Session is safe for concurrent use, though it is normally driven by a
// single presentation loop.
type Session struct {
	ID        uuid.UUID
	User      string
	Role      types.Role
	CreatedAt time.Time

	eval *risk.Evaluator
	rec  Recorder
	now  func() time.Time

	mu      sync.Mutex
	lmp     time.Time
	history *vitals.History
	closed  bool
}

// Login validates req and starts a new session.
func Login(req LoginRequest, opts Options) (*Session, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLogin, loginMessage(err))
	}
	role, _ := types.ParseRole(req.Role)

	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Evaluator == nil {
		opts.Evaluator = risk.NewEvaluator(risk.DefaultThresholds)
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}

	now := opts.Now()
	lmp := opts.LMP
	if lmp.IsZero() {
		lmp = now.AddDate(0, 0, -7*DefaultLMPWeeks)
	}

	s := &Session{
		ID:        uuid.New(),
		User:      req.Name,
		Role:      role,
		CreatedAt: now,
		eval:      opts.Evaluator,
		rec:       opts.Recorder,
		now:       opts.Now,
		lmp:       lmp,
		history:   vitals.NewHistory(),
	}
	slog.Info("session: logged in", "session", s.ID.String(), "role", string(role))
	return s, nil
}

func loginMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch {
		case fe.Field() == "Name" && fe.Tag() == "required":
			msgs = append(msgs, "name is required")
		case fe.Field() == "Name":
			msgs = append(msgs, "name is too long")
		default:
			msgs = append(msgs, "role must be patient or doctor")
		}
	}
	return strings.Join(msgs, "; ")
}

// LMP returns the current last menstrual period.
func (s *Session) LMP() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lmp
}

// SetLMP replaces the last menstrual period. Any date is accepted; an LMP in
// the future simply reports week 1.
func (s *Session) SetLMP(lmp time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lmp = lmp
}

// Evaluator returns the evaluator the session classifies readings with.
func (s *Session) Evaluator() *risk.Evaluator {
	return s.eval
}

// Close ends the session and discards its history. It is safe to call twice.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	n := s.history.Len()
	s.history = vitals.NewHistory()
	slog.Info("session: logged out", "session", s.ID.String(), "readings", n)
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// History returns a copy of the readings recorded so far, oldest first.
func (s *Session) History() []types.VitalsReading {
	s.mu.Lock()
	h := s.history
	s.mu.Unlock()
	return h.Snapshot()
}

// Worklist returns the readings that need clinical review, oldest first.
func (s *Session) Worklist() []risk.Flagged {
	return s.eval.ScanHistory(s.History())
}
