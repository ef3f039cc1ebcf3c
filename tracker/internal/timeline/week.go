package timeline

import "time"

// Week bounds reported by the engine.
const (
	MinWeek = 1
	MaxWeek = 40
)

const (
	daysPerWeek = 7

	// termDays is the length of a full-term pregnancy measured from LMP.
	termDays = 280
)

// ComputeWeek returns the gestational week on ref for a pregnancy with the
// given LMP. The result is always in [MinWeek, MaxWeek].
func ComputeWeek(lmp, ref time.Time) int {
	return WeekFromDays(DaysBetween(lmp, ref))
}

// WeekFromDays maps a day count since LMP to a clamped gestational week.
// Any count below one full week, including negative counts, maps to MinWeek.
func WeekFromDays(days int) int {
	return clampWeek(floorDiv(days, daysPerWeek))
}

// DaysBetween returns the number of whole calendar days from from to to.
// Only the calendar date of each value counts; time of day and zone offset
// are ignored. The result is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return dayNumber(to) - dayNumber(from)
}

// DueDate returns the estimated date of delivery: LMP plus 280 days.
func DueDate(lmp time.Time) time.Time {
	return civilDate(lmp).AddDate(0, 0, termDays)
}

// Progress returns the fraction of the pregnancy completed at week, in [0, 1].
func Progress(week int) float64 {
	return float64(clampWeek(week)) / MaxWeek
}

// TrimesterFor returns 1, 2 or 3 for the given week. Out-of-range weeks are
// clamped first.
func TrimesterFor(week int) int {
	switch w := clampWeek(week); {
	case w <= 13:
		return 1
	case w <= 27:
		return 2
	default:
		return 3
	}
}

// Snapshot is everything the dashboard needs for one render.
type Snapshot struct {
	Week      int
	Milestone Milestone
	Progress  float64
	Trimester int
	DueDate   time.Time
	DaysToDue int
}

// Summarize computes the dashboard snapshot for lmp as seen on ref.
func Summarize(lmp, ref time.Time) Snapshot {
	week := ComputeWeek(lmp, ref)
	due := DueDate(lmp)
	return Snapshot{
		Week:      week,
		Milestone: MilestoneFor(week),
		Progress:  Progress(week),
		Trimester: TrimesterFor(week),
		DueDate:   due,
		DaysToDue: DaysBetween(ref, due),
	}
}

// civilDate strips the clock and zone from t, keeping its calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayNumber returns the number of days from 1970-01-01 to t's calendar
// date in the proleptic Gregorian calendar. Unlike time.Time.Sub it does
// not saturate for dates centuries apart.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	if m <= time.February {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (int(m) + 9) % 12 // March = 0
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// clampWeek restricts w to [MinWeek, MaxWeek].
func clampWeek(w int) int {
	if w < MinWeek {
		return MinWeek
	}
	if w > MaxWeek {
		return MaxWeek
	}
	return w
}
