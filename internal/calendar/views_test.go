package calendar

import (
	"testing"
	"time"
)

// ============================================================
// Time arithmetic
// ============================================================

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		in   string
		mins int
		want string
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"23:30", 90, "01:00"},
		{"00:00", 1440, "00:00"},
		{"12:00", 0, "12:00"},
	}
	for _, c := range cases {
		if got := AddMinutes(c.in, c.mins); got != c.want {
			t.Fatalf("AddMinutes(%q, %d) = %q, want %q", c.in, c.mins, got, c.want)
		}
	}
}

func TestFormatDateLocalFields(t *testing.T) {
	d := time.Date(2025, time.March, 5, 23, 59, 0, 0, time.Local)
	if got := FormatDate(d); got != "2025-03-05" {
		t.Fatalf("FormatDate = %q, want 2025-03-05", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d := ParseDate("2025-07-04")
	if FormatDate(d) != "2025-07-04" {
		t.Fatalf("round trip = %q", FormatDate(d))
	}
	if !ParseDate("not-a-date").IsZero() {
		t.Fatal("malformed date should parse to zero time")
	}
}

func TestValidTime(t *testing.T) {
	for _, ok := range []string{"00:00", "09:30", "23:59"} {
		if !ValidTime(ok) {
			t.Fatalf("%q should be valid", ok)
		}
	}
	for _, bad := range []string{"24:00", "9:30", "09:60", "0930", "ab:cd"} {
		if ValidTime(bad) {
			t.Fatalf("%q should be invalid", bad)
		}
	}
}

// ============================================================
// Day view
// ============================================================

func TestDayViewFiltersAndSorts(t *testing.T) {
	r := NewRepository()
	late := basicForm("2025-03-10", "15:00", 30)
	early := basicForm("2025-03-10", "08:00", 30)
	other := basicForm("2025-03-11", "09:00", 30)
	r.Create(late)
	r.Create(early)
	r.Create(other)

	day := r.DayViewFor("2025-03-10")
	if len(day.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(day.Events))
	}
	if day.Events[0].StartTime != "08:00" || day.Events[1].StartTime != "15:00" {
		t.Fatalf("events not sorted by start: %q, %q", day.Events[0].StartTime, day.Events[1].StartTime)
	}
}

func TestDayViewEventProjection(t *testing.T) {
	r := NewRepository()
	f := basicForm("2025-03-10", "09:00", 90)
	f.Description = "spec review"
	b := r.Create(f)
	r.ToggleCompletion(b.ID)

	day := r.DayViewFor("2025-03-10")
	ev := day.Events[0]
	if ev.EndTime != "10:30" {
		t.Fatalf("end time = %q, want 10:30", ev.EndTime)
	}
	if ev.Type != "timeblock" {
		t.Fatalf("type = %q, want timeblock", ev.Type)
	}
	if !ev.Completed {
		t.Fatal("completed flag not projected")
	}
	if ev.LinkedID != b.ID {
		t.Fatal("linked id should be the originating block id")
	}
}

func TestDayViewStats(t *testing.T) {
	r := NewRepository()

	task := basicForm("2025-03-10", "08:00", 30)
	task.LinkedItemType = LinkedTask
	task.LinkedItemID = "task-1"
	tb := r.Create(task)

	habit := basicForm("2025-03-10", "09:00", 30)
	habit.LinkedItemType = LinkedHabit
	habit.LinkedItemID = "habit-1"
	r.Create(habit)

	goal := basicForm("2025-03-10", "10:00", 30)
	goal.LinkedItemType = LinkedGoal
	goal.LinkedItemID = "goal-1"
	r.Create(goal)

	r.ToggleCompletion(tb.ID)

	stats := r.DayViewFor("2025-03-10").Stats
	if stats.TotalTasks != 1 {
		t.Fatalf("TotalTasks = %d, want 1", stats.TotalTasks)
	}
	if stats.TotalHabits != 1 {
		t.Fatalf("TotalHabits = %d, want 1", stats.TotalHabits)
	}
	if stats.CompletedItems != 1 {
		t.Fatalf("CompletedItems = %d, want 1", stats.CompletedItems)
	}
}

func TestDayViewEmpty(t *testing.T) {
	r := NewRepository()
	day := r.DayViewFor("2025-03-10")
	if len(day.Events) != 0 {
		t.Fatalf("expected empty day, got %d events", len(day.Events))
	}
	if day.Date != "2025-03-10" {
		t.Fatalf("date = %q", day.Date)
	}
}

// ============================================================
// Week view
// ============================================================

func TestWeekViewStartsOnSunday(t *testing.T) {
	r := NewRepository()
	// 2025-03-12 is a Wednesday; the containing week starts Sunday 03-09.
	week := r.WeekViewFor("2025-03-12")

	if week.WeekStart != "2025-03-09" {
		t.Fatalf("week start = %q, want 2025-03-09", week.WeekStart)
	}
	if week.WeekEnd != "2025-03-15" {
		t.Fatalf("week end = %q, want 2025-03-15", week.WeekEnd)
	}
	for i, day := range week.Days {
		want := FormatDate(ParseDate("2025-03-09").AddDate(0, 0, i))
		if day.Date != want {
			t.Fatalf("day %d = %q, want %q", i, day.Date, want)
		}
	}
}

func TestWeekViewOnSundayItself(t *testing.T) {
	r := NewRepository()
	week := r.WeekViewFor("2025-03-09")
	if week.WeekStart != "2025-03-09" {
		t.Fatalf("week containing a Sunday starts on it, got %q", week.WeekStart)
	}
}

func TestWeekViewCollectsEvents(t *testing.T) {
	r := NewRepository()
	r.Create(basicForm("2025-03-09", "09:00", 30))
	r.Create(basicForm("2025-03-15", "09:00", 30))
	r.Create(basicForm("2025-03-16", "09:00", 30)) // next week

	week := r.WeekViewFor("2025-03-12")
	if len(week.Days[0].Events) != 1 || len(week.Days[6].Events) != 1 {
		t.Fatal("events missing from week edges")
	}
	total := 0
	for _, d := range week.Days {
		total += len(d.Events)
	}
	if total != 2 {
		t.Fatalf("expected 2 events in week, got %d", total)
	}
}

// ============================================================
// Month view
// ============================================================

func TestMonthViewGridShape(t *testing.T) {
	r := NewRepository()
	fixedClock(r, "2025-03-10")

	month := r.MonthViewFor("2025-03-10")
	if month.Year != 2025 || month.Month != time.March {
		t.Fatalf("month header = %d-%v", month.Year, month.Month)
	}
	if len(month.Days) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(month.Days))
	}
	// March 1st 2025 is a Saturday; the grid starts Sunday Feb 23.
	if month.Days[0].Date != "2025-02-23" {
		t.Fatalf("grid starts %q, want 2025-02-23", month.Days[0].Date)
	}

	current := 0
	for _, d := range month.Days {
		if d.IsCurrentMonth {
			current++
		}
	}
	if current != 31 {
		t.Fatalf("expected 31 current-month cells, got %d", current)
	}
}

func TestMonthViewToday(t *testing.T) {
	r := NewRepository()
	fixedClock(r, "2025-03-10")

	month := r.MonthViewFor("2025-03-10")
	todays := 0
	for _, d := range month.Days {
		if d.IsToday {
			todays++
			if d.Date != "2025-03-10" {
				t.Fatalf("today cell dated %q", d.Date)
			}
		}
	}
	if todays != 1 {
		t.Fatalf("expected exactly 1 today cell, got %d", todays)
	}

	// Viewing another month: today is off-grid, zero cells flagged.
	other := r.MonthViewFor("2025-06-10")
	for _, d := range other.Days {
		if d.IsToday {
			t.Fatalf("unexpected today cell %q in June", d.Date)
		}
	}
}

func TestMonthViewDayNumbers(t *testing.T) {
	r := NewRepository()
	fixedClock(r, "2025-03-10")

	month := r.MonthViewFor("2025-03-10")
	// Feb 23 opens the grid, so cell 6 is Mar 1.
	if month.Days[6].DayNumber != 1 || !month.Days[6].IsCurrentMonth {
		t.Fatalf("cell 6 = day %d current=%v, want 1/true", month.Days[6].DayNumber, month.Days[6].IsCurrentMonth)
	}
	if month.Days[0].DayNumber != 23 || month.Days[0].IsCurrentMonth {
		t.Fatalf("cell 0 = day %d current=%v, want 23/false", month.Days[0].DayNumber, month.Days[0].IsCurrentMonth)
	}
}

// ============================================================
// Navigation
// ============================================================

func TestNavigatorSteps(t *testing.T) {
	n := NewNavigator(ParseDate("2025-03-12"))

	n.SetView(ViewDay)
	n.Next()
	if n.Date() != "2025-03-13" {
		t.Fatalf("day next = %q", n.Date())
	}
	n.Previous()
	if n.Date() != "2025-03-12" {
		t.Fatalf("day prev = %q", n.Date())
	}

	n.SetView(ViewWeek)
	n.Next()
	if n.Date() != "2025-03-19" {
		t.Fatalf("week next = %q", n.Date())
	}

	n.SetView(ViewMonth)
	n.Next()
	if n.Date() != "2025-04-19" {
		t.Fatalf("month next = %q", n.Date())
	}
	n.Previous()
	if n.Date() != "2025-03-19" {
		t.Fatalf("month prev = %q", n.Date())
	}
}

func TestNavigatorGoToDay(t *testing.T) {
	n := NewNavigator(ParseDate("2025-03-12"))
	n.SetView(ViewMonth)

	n.GoToDay("2025-03-25")
	if n.View() != ViewDay {
		t.Fatalf("view = %v, want day", n.View())
	}
	if n.Date() != "2025-03-25" {
		t.Fatalf("date = %q", n.Date())
	}
}

func TestNavigatorSetDateIgnoresMalformed(t *testing.T) {
	n := NewNavigator(ParseDate("2025-03-12"))
	n.SetDate("garbage")
	if n.Date() != "2025-03-12" {
		t.Fatalf("malformed SetDate moved cursor to %q", n.Date())
	}
}
