package timeline

// Milestone is the size comparison shown for a range of weeks.
type Milestone struct {
	Label     string
	Icon      string
	FirstWeek int
	LastWeek  int
}

// Fallback is returned for weeks that no table row covers.
// FirstWeek and LastWeek are zero.
var Fallback = Milestone{Label: "Growing beautifully!", Icon: "✨"}

// milestones is ordered by week; the ranges partition [1, 40].
var milestones = []Milestone{
	{Label: "Raspberry", Icon: "🍓", FirstWeek: 1, LastWeek: 8},
	{Label: "Lime", Icon: "🍋", FirstWeek: 9, LastWeek: 12},
	{Label: "Avocado", Icon: "🥑", FirstWeek: 13, LastWeek: 16},
	{Label: "Banana", Icon: "🍌", FirstWeek: 17, LastWeek: 20},
	{Label: "Corn", Icon: "🌽", FirstWeek: 21, LastWeek: 24},
	{Label: "Eggplant", Icon: "🍆", FirstWeek: 25, LastWeek: 28},
	{Label: "Coconut", Icon: "🥥", FirstWeek: 29, LastWeek: 32},
	{Label: "Pineapple", Icon: "🍍", FirstWeek: 33, LastWeek: 36},
	{Label: "Watermelon", Icon: "🍉", FirstWeek: 37, LastWeek: 40},
}

// MilestoneFor returns the first milestone whose range contains week, or
// Fallback when none does. It does not clamp week.
func MilestoneFor(week int) Milestone {
	for _, m := range milestones {
		if m.Contains(week) {
			return m
		}
	}
	return Fallback
}

// Milestones returns a copy of the milestone table in week order.
func Milestones() []Milestone {
	out := make([]Milestone, len(milestones))
	copy(out, milestones)
	return out
}

// Contains reports whether week falls inside the milestone's inclusive range.
// A milestone without a range, such as Fallback, contains no week; the
// FirstWeek check keeps it from matching week 0.
func (m Milestone) Contains(week int) bool {
	return m.FirstWeek <= week && week <= m.LastWeek && m.FirstWeek > 0
}

// String renders the label with its icon, e.g. "Lime 🍋".
func (m Milestone) String() string {
	if m.Icon == "" {
		return m.Label
	}
	return m.Label + " " + m.Icon
}
