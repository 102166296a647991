package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/dayblock/internal/calendar"
)

type calendarModel struct {
	repo   *calendar.Repository
	nav    *calendar.Navigator
	width  int
	height int

	cursor int // selected event in the day list

	formActive bool
	form       *blockForm
}

func newCalendarModel(repo *calendar.Repository, nav *calendar.Navigator) calendarModel {
	return calendarModel{repo: repo, nav: nav}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

// selectedEvent returns the event under the cursor in day view.
func (c calendarModel) selectedEvent() (calendar.CalendarEvent, bool) {
	day := c.repo.DayViewFor(c.nav.Date())
	if c.cursor < 0 || c.cursor >= len(day.Events) {
		return calendar.CalendarEvent{}, false
	}
	return day.Events[c.cursor], true
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			c.nav.Previous()
			c.cursor = 0
			return c, nil

		case key.Matches(msg, keys.Right):
			c.nav.Next()
			c.cursor = 0
			return c, nil

		case key.Matches(msg, keys.Today):
			c.nav.SetDate(calendar.FormatDate(time.Now()))
			c.cursor = 0
			return c, nil

		case key.Matches(msg, keys.DayMode):
			c.nav.SetView(calendar.ViewDay)
			return c, nil

		case key.Matches(msg, keys.WeekMode):
			c.nav.SetView(calendar.ViewWeek)
			return c, nil

		case key.Matches(msg, keys.MonthMode):
			c.nav.SetView(calendar.ViewMonth)
			return c, nil

		case key.Matches(msg, keys.Enter):
			if c.nav.View() != calendar.ViewDay {
				c.nav.GoToDay(c.nav.Date())
				c.cursor = 0
			}
			return c, nil

		case key.Matches(msg, keys.Back):
			if c.nav.View() == calendar.ViewDay {
				c.nav.SetView(calendar.ViewWeek)
			}
			return c, nil

		case key.Matches(msg, keys.Up):
			if c.nav.View() == calendar.ViewDay && c.cursor > 0 {
				c.cursor--
			}
			return c, nil

		case key.Matches(msg, keys.Down):
			if c.nav.View() == calendar.ViewDay {
				events := c.repo.DayViewFor(c.nav.Date()).Events
				if c.cursor < len(events)-1 {
					c.cursor++
				}
			}
			return c, nil

		case key.Matches(msg, keys.New):
			return c.showNewBlockForm()

		case key.Matches(msg, keys.Toggle):
			if ev, ok := c.selectedEvent(); ok {
				c.repo.ToggleCompletion(ev.LinkedID)
			}
			return c, nil

		case key.Matches(msg, keys.Delete):
			if ev, ok := c.selectedEvent(); ok {
				block, _ := c.repo.Get(ev.LinkedID)
				c.repo.Delete(ev.LinkedID)
				c.clampCursor()
				if block.IsTemplate() {
					return c, func() tea.Msg {
						return statusMsg{text: "Deleted template and its occurrences"}
					}
				}
				return c, func() tea.Msg { return blockDeletedMsg{} }
			}
			return c, nil
		}
	}
	return c, nil
}

func (c *calendarModel) clampCursor() {
	events := c.repo.DayViewFor(c.nav.Date()).Events
	if c.cursor >= len(events) {
		c.cursor = max(0, len(events)-1)
	}
}

func (c calendarModel) view() string {
	if c.formActive && c.form != nil {
		return c.renderForm()
	}

	switch c.nav.View() {
	case calendar.ViewDay:
		return c.renderDay()
	case calendar.ViewMonth:
		return c.renderMonth()
	default:
		return c.renderWeek()
	}
}

// ============================================================
// Day view
// ============================================================

func (c calendarModel) renderDay() string {
	w := c.width - 4
	day := c.repo.DayViewFor(c.nav.Date())
	date := calendar.ParseDate(day.Date)

	title := titleStyle.Render(date.Format("Monday, January 2 2006"))

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	if len(day.Events) == 0 {
		rows = append(rows, mutedStyle.Render("Nothing scheduled. Press n to add a block."))
	}

	for i, ev := range day.Events {
		cursor := "  "
		style := normalItemStyle
		if i == c.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		check := " "
		if ev.Completed {
			check = "✓"
			if i != c.cursor {
				style = completedItemStyle
			}
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(ev.Color)).Render("●")
		line := fmt.Sprintf("%s%s %s–%s %s %s %s", cursor, check, ev.StartTime, ev.EndTime, dot, ev.Icon, ev.Title)
		rows = append(rows, style.Render(line))
		if i == c.cursor && ev.Description != "" {
			rows = append(rows, mutedStyle.Render("       "+ev.Description))
		}
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf(
		"  %d tasks · %d habits · %d completed",
		day.Stats.TotalTasks, day.Stats.TotalHabits, day.Stats.CompletedItems,
	)))
	rows = append(rows, mutedStyle.Render("  n: new  c: complete  x: delete  esc: week"))

	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// ============================================================
// Week view
// ============================================================

func (c calendarModel) renderWeek() string {
	w := c.width - 4
	week := c.repo.WeekViewFor(c.nav.Date())

	title := titleStyle.Render(fmt.Sprintf("Week of %s – %s", week.WeekStart, week.WeekEnd))

	colWidth := max(10, (w-2)/7)
	maxLines := max(3, c.height-10)

	var cols []string
	for _, day := range week.Days {
		date := calendar.ParseDate(day.Date)
		head := fmt.Sprintf("%s %d", date.Weekday().String()[:3], date.Day())
		headStyle := mutedStyle
		if day.Date == c.nav.Date() {
			headStyle = selectedItemStyle
		}

		lines := []string{headStyle.Render(head)}
		for i, ev := range day.Events {
			if i >= maxLines {
				lines = append(lines, mutedStyle.Render(fmt.Sprintf("+%d more", len(day.Events)-maxLines)))
				break
			}
			label := fmt.Sprintf("%s %s", ev.StartTime, ev.Title)
			if len(label) > colWidth-1 {
				label = label[:colWidth-1]
			}
			style := normalItemStyle
			if ev.Completed {
				style = completedItemStyle
			}
			lines = append(lines, style.Render(label))
		}

		col := lipgloss.NewStyle().Width(colWidth).Render(strings.Join(lines, "\n"))
		cols = append(cols, col)
	}

	grid := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	hint := mutedStyle.Render("  h/l: week  enter: open day  d/w/m: view  t: today")

	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", grid, "", hint),
	)
}

// ============================================================
// Month view
// ============================================================

func (c calendarModel) renderMonth() string {
	w := c.width - 4
	month := c.repo.MonthViewFor(c.nav.Date())

	header := titleStyle.Render(fmt.Sprintf("%s %d", month.Month, month.Year))
	cellWidth := max(6, (w-16)/7)

	var weekRows []string
	dayNames := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var heads []string
	for _, d := range dayNames {
		heads = append(heads, mutedStyle.Width(cellWidth+2).Render(d))
	}
	weekRows = append(weekRows, lipgloss.JoinHorizontal(lipgloss.Top, heads...))

	for row := 0; row < 6; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			day := month.Days[row*7+col]

			num := fmt.Sprintf("%2d", day.DayNumber)
			body := ""
			if n := len(day.Events); n > 0 {
				body = highlightStyle.Render(fmt.Sprintf("%d blk", n))
			}

			style := monthCellStyle
			numStyle := normalItemStyle
			switch {
			case day.IsToday:
				style = monthTodayStyle
				numStyle = selectedItemStyle
			case !day.IsCurrentMonth:
				numStyle = otherMonthStyle
			}
			if day.Date == c.nav.Date() {
				numStyle = selectedItemStyle
			}

			cell := style.Width(cellWidth).Render(numStyle.Render(num) + "\n" + body)
			cells = append(cells, cell)
		}
		weekRows = append(weekRows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	hint := mutedStyle.Render("  h/l: month  enter: open day  t: today")
	rows := append([]string{header, ""}, weekRows...)
	rows = append(rows, hint)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
