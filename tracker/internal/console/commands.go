package console

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bloomnest/bloom/pkg/types"
	"github.com/bloomnest/bloom/tracker/internal/risk"
	"github.com/bloomnest/bloom/tracker/internal/session"
	"github.com/bloomnest/bloom/tracker/internal/timeline"
	"github.com/bloomnest/bloom/tracker/internal/vitals"
)

const progressWidth = 20

func (c *Console) setLMP(arg string) {
	lmp, err := time.Parse(time.DateOnly, arg)
	if err != nil {
		c.printf("Please enter the date as YYYY-MM-DD, e.g. lmp 2024-01-15\n")
		return
	}
	c.s.SetLMP(lmp)
	c.printf("LMP set to %s. Current week: %d\n", lmp.Format(time.DateOnly), c.s.Dashboard().Week)
}

func (c *Console) add(args string) {
	fields := strings.Split(args, ",")
	if len(fields) != 3 {
		c.printf("Usage: add <weight>, <bp>, <glucose>   e.g. add 65.5, 120/80, 95\n")
		return
	}
	res, err := c.s.Submit(session.Entry{
		Weight:        fields[0],
		BloodPressure: fields[1],
		Glucose:       fields[2],
	})

	var pe *risk.ParseError
	var ire *vitals.InvalidReadingError
	switch {
	case errors.As(err, &pe):
		c.printf("Not saved. %s\n", pe.Hint())
		return
	case errors.As(err, &ire):
		c.printf("Not saved. %s\n", describeInvalid(ire))
		return
	case errors.Is(err, session.ErrClosed):
		c.printf("Not saved. You are logged out.\n")
		return
	case err != nil:
		c.printf("Not saved. %v\n", err)
		return
	}

	c.printf("Record saved.\n")
	c.banners(res.Banners)
}

func describeInvalid(e *vitals.InvalidReadingError) string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (c *Console) dashboard() {
	d := c.s.Dashboard()
	c.printf("Week %d of %d, trimester %d, due %s (%d days)\n",
		d.Week, timeline.MaxWeek, d.Trimester, d.DueDate.Format(time.DateOnly), d.DaysToDue)
	c.printf("Baby is the size of: %s\n", d.Milestone)
	c.printf("%s %d%%\n", progressBar(d.Progress), int(d.Progress*100+0.5))
	if d.Readings == 0 {
		c.printf("No readings yet. Use add to record one.\n")
		return
	}
	c.printf("Latest: %s\n", formatReading(d.Latest))
	c.banners(d.Banners)
}

func (c *Console) banners(bs []risk.Banner) {
	for _, b := range bs {
		c.printf("%s: %s\n", b.Label(), b.Message)
	}
}

func (c *Console) history() error {
	rows := c.s.ExportRows()
	if len(rows) == 0 {
		c.printf("No readings yet.\n")
		return nil
	}
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	writeRow(tw, session.ExportHeader)
	for _, r := range rows {
		writeRow(tw, exportFields(r))
	}
	return tw.Flush()
}

func writeRow(tw *tabwriter.Writer, fields []string) {
	_, _ = tw.Write([]byte(strings.Join(fields, "\t") + "\n"))
}

func (c *Console) export() error {
	w := csv.NewWriter(c.out)
	if err := w.Write(session.ExportHeader); err != nil {
		return err
	}
	for _, r := range c.s.ExportRows() {
		if err := w.Write(exportFields(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (c *Console) review() {
	if c.s.Role != types.RoleDoctor {
		c.printf("Clinical review is available to doctors only.\n")
		return
	}
	flagged := c.s.Worklist()
	if len(flagged) == 0 {
		c.printf("No readings require clinical review.\n")
		return
	}
	c.printf("The following logs require immediate clinical review:\n")
	for _, f := range flagged {
		c.printf("  #%d %s [%s]\n", f.Index+1, formatReading(f.Reading), f.Alerts)
	}
}

func exportFields(r session.ExportRow) []string {
	return []string{
		r.Date,
		strconv.FormatFloat(r.WeightKg, 'f', 1, 64),
		strconv.Itoa(r.Systolic),
		strconv.Itoa(r.Diastolic),
		strconv.Itoa(r.Glucose),
	}
}

func formatReading(r types.VitalsReading) string {
	return r.DateLabel() + "  " +
		strconv.FormatFloat(r.WeightKg, 'f', 1, 64) + " kg  " +
		strconv.Itoa(r.Systolic) + "/" + strconv.Itoa(r.Diastolic) + " mmHg  " +
		strconv.Itoa(r.Glucose) + " mg/dL"
}

func progressBar(p float64) string {
	filled := int(p*progressWidth + 0.5)
	if filled > progressWidth {
		filled = progressWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", progressWidth-filled) + "]"
}
