package session

import (
	"github.com/bloomnest/bloom/pkg/types"
	"github.com/bloomnest/bloom/tracker/internal/risk"
	"github.com/bloomnest/bloom/tracker/internal/timeline"
)

// Dashboard is what the home screen shows for one render.
type Dashboard struct {
	User string
	Role types.Role
	timeline.Snapshot

	// Readings is the number of readings recorded so far.
	Readings int

	// Latest is the newest reading; valid only when Readings > 0.
	Latest  types.VitalsReading
	Alerts  types.Alert
	Banners []risk.Banner
}

// Dashboard computes the timeline at the session clock and classifies the
// latest reading.
func (s *Session) Dashboard() Dashboard {
	history := s.History()
	d := Dashboard{
		User:     s.User,
		Role:     s.Role,
		Snapshot: timeline.Summarize(s.LMP(), s.now()),
		Readings: len(history),
	}
	if len(history) > 0 {
		d.Latest = history[len(history)-1]
		d.Alerts = s.eval.Evaluate(d.Latest)
		d.Banners = risk.Banners(d.Alerts)
	}
	s.rec.WeekObserved(d.Week)
	return d
}

// ExportHeader names the columns of ExportRows, in order.
var ExportHeader = []string{"Date", "Weight", "BP_Sys", "BP_Dia", "Sugar"}

// ExportRow is one history entry as handed to the document export layer.
type ExportRow struct {
	Date      string
	WeightKg  float64
	Systolic  int
	Diastolic int
	Glucose   int
}

// ExportRows returns the history in chronological order with human-readable
// date labels.
func (s *Session) ExportRows() []ExportRow {
	history := s.History()
	rows := make([]ExportRow, 0, len(history))
	for _, r := range history {
		rows = append(rows, ExportRow{
			Date:      r.DateLabel(),
			WeightKg:  r.WeightKg,
			Systolic:  r.Systolic,
			Diastolic: r.Diastolic,
			Glucose:   r.Glucose,
		})
	}
	return rows
}
