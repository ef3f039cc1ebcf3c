package timeline

import "testing"

func TestMilestoneFor_Boundaries(t *testing.T) {
	tests := []struct {
		week int
		want string
	}{
		{1, "Raspberry"}, {8, "Raspberry"},
		{9, "Lime"}, {12, "Lime"},
		{13, "Avocado"}, {16, "Avocado"},
		{17, "Banana"}, {20, "Banana"},
		{21, "Corn"}, {24, "Corn"},
		{25, "Eggplant"}, {28, "Eggplant"},
		{29, "Coconut"}, {32, "Coconut"},
		{33, "Pineapple"}, {36, "Pineapple"},
		{37, "Watermelon"}, {40, "Watermelon"},
	}
	for _, tc := range tests {
		if got := MilestoneFor(tc.week); got.Label != tc.want {
			t.Errorf("MilestoneFor(%d) = %q, want %q", tc.week, got.Label, tc.want)
		}
	}
}

func TestMilestoneFor_OutsideTableFallsBack(t *testing.T) {
	for _, week := range []int{-5, 0, 41, 100} {
		if got := MilestoneFor(week); got != Fallback {
			t.Errorf("MilestoneFor(%d) = %+v, want fallback", week, got)
		}
	}
}

func TestMilestones_PartitionWeeks(t *testing.T) {
	table := Milestones()
	if len(table) != 9 {
		t.Fatalf("table has %d rows, want 9", len(table))
	}

	labels := make(map[string]bool)
	for _, m := range table {
		if labels[m.Label] {
			t.Errorf("duplicate label %q", m.Label)
		}
		labels[m.Label] = true
	}

	// Every week is covered by exactly one row, and rows are in week order.
	for week := MinWeek; week <= MaxWeek; week++ {
		hits := 0
		for _, m := range table {
			if m.Contains(week) {
				hits++
			}
		}
		if hits != 1 {
			t.Errorf("week %d covered by %d rows, want 1", week, hits)
		}
		if MilestoneFor(week) == Fallback {
			t.Errorf("week %d fell back", week)
		}
	}
	for i := 1; i < len(table); i++ {
		if table[i].FirstWeek != table[i-1].LastWeek+1 {
			t.Errorf("row %d starts at %d, previous ends at %d", i, table[i].FirstWeek, table[i-1].LastWeek)
		}
	}
}

func TestMilestones_ReturnsCopy(t *testing.T) {
	table := Milestones()
	table[0].Label = "changed"
	if MilestoneFor(1).Label != "Raspberry" {
		t.Error("mutating the returned table changed the lookup")
	}
}

func TestMilestone_String(t *testing.T) {
	if got := MilestoneFor(10).String(); got != "Lime 🍋" {
		t.Errorf("String() = %q", got)
	}
	if got := (Milestone{Label: "plain"}).String(); got != "plain" {
		t.Errorf("String() without icon = %q", got)
	}
}

func TestFallback_ContainsNoWeek(t *testing.T) {
	for week := -2; week <= MaxWeek+2; week++ {
		if Fallback.Contains(week) {
			t.Errorf("Fallback.Contains(%d) = true", week)
		}
	}
}
