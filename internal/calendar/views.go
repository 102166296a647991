package calendar

import (
	"sort"
	"time"
)

// DayViewFor projects the collection onto a single day: every block dated
// on the target day, mapped to display events and sorted by start time,
// plus aggregate stats over the day's links.
func (r *Repository) DayViewFor(date string) DayView {
	view := DayView{Date: date}

	for _, b := range r.blocks {
		if b.Date != date {
			continue
		}
		ev := CalendarEvent{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			Date:        b.Date,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime(),
			Type:        "timeblock",
			Icon:        b.Icon,
			Color:       b.Color,
			Completed:   b.Status == StatusCompleted,
			LinkedID:    b.ID,
		}
		view.Events = append(view.Events, ev)

		switch b.LinkedItemType {
		case LinkedTask:
			view.Stats.TotalTasks++
		case LinkedHabit:
			view.Stats.TotalHabits++
		}
		if ev.Completed {
			view.Stats.CompletedItems++
		}
	}

	sort.SliceStable(view.Events, func(i, j int) bool {
		return TimeToMinutes(view.Events[i].StartTime) < TimeToMinutes(view.Events[j].StartTime)
	})
	return view
}

// WeekViewFor projects the week containing date, starting on the Sunday on
// or before it.
func (r *Repository) WeekViewFor(date string) WeekView {
	start := startOfWeek(ParseDate(date))

	var view WeekView
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		view.Days[i] = r.DayViewFor(FormatDate(day))
	}
	view.WeekStart = view.Days[0].Date
	view.WeekEnd = view.Days[6].Date
	return view
}

// MonthViewFor projects the month containing date as a fixed 42-cell grid:
// six full weeks starting on the Sunday on or before the first of the
// month, regardless of month length.
func (r *Repository) MonthViewFor(date string) MonthView {
	target := ParseDate(date)
	first := time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, time.Local)
	cursor := startOfWeek(first)
	today := FormatDate(r.now())

	view := MonthView{Year: target.Year(), Month: target.Month()}
	for i := 0; i < 42; i++ {
		day := cursor.AddDate(0, 0, i)
		view.Days[i] = MonthDay{
			DayView:        r.DayViewFor(FormatDate(day)),
			DayNumber:      day.Day(),
			IsCurrentMonth: day.Month() == target.Month() && day.Year() == target.Year(),
			IsToday:        FormatDate(day) == today,
		}
	}
	return view
}

// startOfWeek returns the Sunday on or before t, at local midnight.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return t.AddDate(0, 0, -int(t.Weekday()))
}
