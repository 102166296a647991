package tui

import (
	"strings"
	"testing"

	"github.com/sadopc/dayblock/internal/calendar"
	"github.com/sadopc/dayblock/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seededRepo() *calendar.Repository {
	r := calendar.NewRepository()
	r.Create(calendar.BlockForm{
		Title: "Deep work", Date: "2025-03-10", StartTime: "09:00",
		DurationMinutes: 90, Type: calendar.BlockFocus,
	})
	r.Create(calendar.BlockForm{
		Title: "Standup", Date: "2025-03-10", StartTime: "11:00",
		DurationMinutes: 15, Type: calendar.BlockMeeting,
	})
	r.Create(calendar.BlockForm{
		Title: "Reading", Date: "2025-03-12", StartTime: "20:00",
		DurationMinutes: 30, Type: calendar.BlockLearning,
	})
	return r
}

// ============================================================
// Calendar model
// ============================================================

func TestSelectedEvent(t *testing.T) {
	repo := seededRepo()
	nav := calendar.NewNavigator(calendar.ParseDate("2025-03-10"))
	nav.SetView(calendar.ViewDay)
	c := newCalendarModel(repo, nav)

	ev, ok := c.selectedEvent()
	if !ok {
		t.Fatal("expected an event under cursor")
	}
	if ev.Title != "Deep work" {
		t.Fatalf("cursor 0 = %q, want earliest event", ev.Title)
	}

	c.cursor = 1
	ev, _ = c.selectedEvent()
	if ev.Title != "Standup" {
		t.Fatalf("cursor 1 = %q, want Standup", ev.Title)
	}

	c.cursor = 5
	if _, ok := c.selectedEvent(); ok {
		t.Fatal("out-of-range cursor should select nothing")
	}
}

func TestClampCursorAfterDelete(t *testing.T) {
	repo := seededRepo()
	nav := calendar.NewNavigator(calendar.ParseDate("2025-03-10"))
	nav.SetView(calendar.ViewDay)
	c := newCalendarModel(repo, nav)

	c.cursor = 1
	ev, _ := c.selectedEvent()
	repo.Delete(ev.LinkedID)
	c.clampCursor()

	if c.cursor != 0 {
		t.Fatalf("cursor = %d, want clamped to 0", c.cursor)
	}
}

func TestRenderDayListsEvents(t *testing.T) {
	repo := seededRepo()
	nav := calendar.NewNavigator(calendar.ParseDate("2025-03-10"))
	nav.SetView(calendar.ViewDay)
	c := newCalendarModel(repo, nav)
	c.setSize(100, 30)

	out := c.view()
	if !strings.Contains(out, "Deep work") || !strings.Contains(out, "Standup") {
		t.Fatal("day view missing events")
	}
	if !strings.Contains(out, "09:00") || !strings.Contains(out, "10:30") {
		t.Fatal("day view missing start/end times")
	}
}

func TestRenderMonthShowsGrid(t *testing.T) {
	repo := seededRepo()
	nav := calendar.NewNavigator(calendar.ParseDate("2025-03-10"))
	nav.SetView(calendar.ViewMonth)
	c := newCalendarModel(repo, nav)
	c.setSize(120, 40)

	out := c.view()
	if !strings.Contains(out, "March 2025") {
		t.Fatal("month header missing")
	}
	for _, day := range []string{"Sun", "Mon", "Sat"} {
		if !strings.Contains(out, day) {
			t.Fatalf("weekday header %q missing", day)
		}
	}
}

// ============================================================
// Block form
// ============================================================

func TestBlockFormResult(t *testing.T) {
	f := newBlockForm("2025-03-10")
	*f.title = "Sprint planning"
	*f.start = "10:00"
	*f.duration = "45"
	*f.blockType = string(calendar.BlockMeeting)
	*f.recurring = true
	*f.recurType = string(calendar.RecurWeekly)
	*f.interval = "2"
	*f.endDate = "2025-06-01"

	got := f.result()
	if got.Title != "Sprint planning" || got.DurationMinutes != 45 {
		t.Fatalf("unexpected form result: %+v", got)
	}
	if !got.IsRecurring || got.RecurrenceInterval != 2 || got.RecurrenceEndDate != "2025-06-01" {
		t.Fatalf("recurrence fields lost: %+v", got)
	}
}

func TestBlockFormResultNotRecurring(t *testing.T) {
	f := newBlockForm("2025-03-10")
	*f.title = "One-off"
	// recurrence inputs are filled with defaults but ignored when the
	// confirm stays false
	got := f.result()
	if got.IsRecurring || got.RecurrenceType != "" {
		t.Fatalf("non-recurring form produced recurrence: %+v", got)
	}
}

func TestFormValidation(t *testing.T) {
	if validateTitle("") == nil {
		t.Fatal("empty title should be rejected")
	}
	if validateTitle("x") != nil {
		t.Fatal("non-empty title should pass")
	}

	if validateDate("2025-13-40") == nil {
		t.Fatal("bad date should be rejected")
	}
	if validateDate("2025-03-10") != nil {
		t.Fatal("good date should pass")
	}
	if validateOptionalDate("") != nil {
		t.Fatal("blank optional date should pass")
	}

	if validateTime("25:00") == nil {
		t.Fatal("bad time should be rejected")
	}
	if validateTime("09:30") != nil {
		t.Fatal("good time should pass")
	}

	if validateDuration("10") == nil {
		t.Fatal("durations under the minimum should be rejected")
	}
	if validateDuration("abc") == nil {
		t.Fatal("non-numeric duration should be rejected")
	}
	if validateDuration("15") != nil {
		t.Fatal("minimum duration should pass")
	}

	if validateInterval("0") == nil {
		t.Fatal("zero interval should be rejected")
	}
	if validateInterval("1") != nil {
		t.Fatal("interval 1 should pass")
	}

	if validateHour("24") == nil {
		t.Fatal("hour 24 should be rejected")
	}
	if validateHour("7") != nil {
		t.Fatal("hour 7 should pass")
	}
}

// ============================================================
// Stats model
// ============================================================

func TestWeekTotals(t *testing.T) {
	repo := seededRepo()
	nav := calendar.NewNavigator(calendar.ParseDate("2025-03-10"))
	s := newStatsModel(repo, nav)

	scheduled, completed, perType := s.weekTotals()
	if scheduled != 135 {
		t.Fatalf("scheduled = %d, want 135", scheduled)
	}
	if completed != 0 {
		t.Fatalf("completed = %d, want 0", completed)
	}
	if len(perType) != 3 {
		t.Fatalf("expected 3 block types, got %d", len(perType))
	}

	// Complete one block; its minutes move into the completed total.
	day := repo.DayViewFor("2025-03-10")
	repo.ToggleCompletion(day.Events[0].LinkedID)

	_, completed, _ = s.weekTotals()
	if completed != 90 {
		t.Fatalf("completed = %d, want 90", completed)
	}
}

func TestWeekTotalsIgnoresOtherWeeks(t *testing.T) {
	repo := seededRepo()
	repo.Create(calendar.BlockForm{
		Title: "Far away", Date: "2025-04-01", StartTime: "09:00",
		DurationMinutes: 60, Type: calendar.BlockFocus,
	})
	nav := calendar.NewNavigator(calendar.ParseDate("2025-03-10"))
	s := newStatsModel(repo, nav)

	scheduled, _, _ := s.weekTotals()
	if scheduled != 135 {
		t.Fatalf("scheduled = %d, want 135 (other week excluded)", scheduled)
	}
}

// ============================================================
// Settings
// ============================================================

func TestViewModeFromSetting(t *testing.T) {
	if viewModeFromSetting("day") != calendar.ViewDay {
		t.Fatal("day")
	}
	if viewModeFromSetting("month") != calendar.ViewMonth {
		t.Fatal("month")
	}
	if viewModeFromSetting("week") != calendar.ViewWeek {
		t.Fatal("week")
	}
	if viewModeFromSetting("bogus") != calendar.ViewWeek {
		t.Fatal("unknown values fall back to week")
	}
}

func TestSettingsGetValFallback(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s)

	if got := m.getVal("default_view", "week"); got != "week" {
		t.Fatalf("default_view = %q", got)
	}
	if got := m.getVal("missing_key", "fallback"); got != "fallback" {
		t.Fatalf("missing key = %q, want fallback", got)
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		mins int
		want string
	}{
		{30, "30m"},
		{60, "1h"},
		{90, "1h30m"},
		{135, "2h15m"},
	}
	for _, c := range cases {
		if got := formatMinutes(c.mins); got != c.want {
			t.Fatalf("formatMinutes(%d) = %q, want %q", c.mins, got, c.want)
		}
	}
}
