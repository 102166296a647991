package calendar

import "time"

// Navigator tracks the "where am I looking" cursor: a current date plus a
// view granularity. Previous/Next step the date by the active view's unit.
type Navigator struct {
	date time.Time
	view ViewMode
}

// NewNavigator starts at the given date in week view.
func NewNavigator(date time.Time) *Navigator {
	return &Navigator{
		date: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local),
		view: ViewWeek,
	}
}

// Date returns the current cursor date as "YYYY-MM-DD".
func (n *Navigator) Date() string {
	return FormatDate(n.date)
}

// Time returns the current cursor date as a time.Time at local midnight.
func (n *Navigator) Time() time.Time {
	return n.date
}

// View returns the active view mode.
func (n *Navigator) View() ViewMode {
	return n.view
}

// SetView switches the view granularity without moving the cursor.
func (n *Navigator) SetView(v ViewMode) {
	n.view = v
}

// SetDate moves the cursor to an explicit date.
func (n *Navigator) SetDate(date string) {
	if t := ParseDate(date); !t.IsZero() {
		n.date = t
	}
}

// Next advances the cursor by one unit of the active view.
func (n *Navigator) Next() {
	n.step(1)
}

// Previous moves the cursor back by one unit of the active view.
func (n *Navigator) Previous() {
	n.step(-1)
}

func (n *Navigator) step(dir int) {
	switch n.view {
	case ViewDay:
		n.date = n.date.AddDate(0, 0, dir)
	case ViewWeek:
		n.date = n.date.AddDate(0, 0, 7*dir)
	case ViewMonth:
		n.date = n.date.AddDate(0, dir, 0)
	}
}

// GoToDay jumps to a specific date and drops into day view, the "drill in
// from the month grid" gesture.
func (n *Navigator) GoToDay(date string) {
	n.SetDate(date)
	n.view = ViewDay
}
