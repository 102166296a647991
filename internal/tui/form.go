package tui

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/dayblock/internal/calendar"
)

// blockForm wraps the huh form for creating a time block. Values live
// behind pointers so they survive the Bubble Tea value copies.
type blockForm struct {
	form *huh.Form

	title       *string
	description *string
	date        *string
	start       *string
	duration    *string
	blockType   *string
	linkedType  *string
	linkedID    *string

	recurring *bool
	recurType *string
	interval  *string
	endDate   *string
}

func newBlockForm(date string) *blockForm {
	title, description := "", ""
	start, duration := "09:00", "30"
	blockType := string(calendar.BlockFocus)
	linkedType, linkedID := "", ""
	recurring := false
	recurType := string(calendar.RecurWeekly)
	interval, endDate := "1", ""

	f := &blockForm{
		title:       &title,
		description: &description,
		date:        &date,
		start:       &start,
		duration:    &duration,
		blockType:   &blockType,
		linkedType:  &linkedType,
		linkedID:    &linkedID,
		recurring:   &recurring,
		recurType:   &recurType,
		interval:    &interval,
		endDate:     &endDate,
	}

	typeOptions := make([]huh.Option[string], len(calendar.BlockTypes))
	for i, t := range calendar.BlockTypes {
		typeOptions[i] = huh.NewOption(fmt.Sprintf("%s %s", calendar.DefaultIcon(t), t), string(t))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(f.title).Validate(validateTitle),
			huh.NewInput().Title("Description").Value(f.description),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(f.date).Validate(validateDate),
			huh.NewInput().Title("Start (HH:MM)").Value(f.start).Validate(validateTime),
			huh.NewInput().Title("Duration (minutes)").Value(f.duration).Validate(validateDuration),
			huh.NewSelect[string]().Title("Type").Options(typeOptions...).Value(f.blockType),
		).Title("Block"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Link to").
				Options(
					huh.NewOption("Nothing", ""),
					huh.NewOption("Goal", string(calendar.LinkedGoal)),
					huh.NewOption("Task", string(calendar.LinkedTask)),
					huh.NewOption("Habit", string(calendar.LinkedHabit)),
				).Value(f.linkedType),
			huh.NewInput().Title("Linked id").Value(f.linkedID),
			huh.NewConfirm().Title("Repeats?").Value(f.recurring),
			huh.NewSelect[string]().Title("Cadence").
				Options(
					huh.NewOption("Weekly", string(calendar.RecurWeekly)),
					huh.NewOption("Monthly", string(calendar.RecurMonthly)),
				).Value(f.recurType),
			huh.NewInput().Title("Every N weeks/months").Value(f.interval).Validate(validateInterval),
			huh.NewInput().Title("Repeat until (YYYY-MM-DD, blank = 1 year)").Value(f.endDate).Validate(validateOptionalDate),
		).Title("Links & repeat"),
	).WithShowHelp(true).WithShowErrors(true)

	return f
}

// result converts the captured values into the repository's creation input.
// Only called after huh validation passed, so the parses cannot fail.
func (f *blockForm) result() calendar.BlockForm {
	duration, _ := strconv.Atoi(*f.duration)
	interval, _ := strconv.Atoi(*f.interval)

	out := calendar.BlockForm{
		Title:           *f.title,
		Description:     *f.description,
		Date:            *f.date,
		StartTime:       *f.start,
		DurationMinutes: duration,
		Type:            calendar.BlockType(*f.blockType),
		LinkedItemType:  calendar.LinkedItemType(*f.linkedType),
		LinkedItemID:    *f.linkedID,
	}
	if *f.recurring {
		out.IsRecurring = true
		out.RecurrenceType = calendar.RecurrenceType(*f.recurType)
		out.RecurrenceInterval = interval
		out.RecurrenceEndDate = *f.endDate
	}
	return out
}

// --- Validation (the form boundary keeps malformed input out of the core) ---

func validateTitle(s string) error {
	if s == "" {
		return errors.New("title is required")
	}
	return nil
}

func validateDate(s string) error {
	if !calendar.ValidDate(s) {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateDate(s)
}

func validateTime(s string) error {
	if !calendar.ValidTime(s) {
		return errors.New("use 24-hour HH:MM")
	}
	return nil
}

func validateDuration(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("whole minutes only")
	}
	if n < calendar.MinDurationMinutes {
		return fmt.Errorf("minimum %d minutes", calendar.MinDurationMinutes)
	}
	return nil
}

func validateInterval(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errors.New("must be 1 or more")
	}
	return nil
}

// --- Form lifecycle on the calendar model ---

func (c calendarModel) showNewBlockForm() (calendarModel, tea.Cmd) {
	c.form = newBlockForm(c.nav.Date())
	c.formActive = true
	return c, c.form.form.Init()
}

func (c calendarModel) updateForm(msg tea.Msg) (calendarModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form.form = f
	}

	if c.form.form.State == huh.StateCompleted {
		c.formActive = false
		input := c.form.result()
		c.form = nil

		// Advisory conflict check; the UI refuses the save, not the core.
		if c.repo.HasConflict(input.Date, input.StartTime, input.DurationMinutes, "") {
			return c, func() tea.Msg {
				return statusMsg{
					text:    fmt.Sprintf("Conflicts with an existing block on %s", input.Date),
					isError: true,
				}
			}
		}

		block := c.repo.Create(input)
		return c, func() tea.Msg { return blockCreatedMsg{block: block} }
	}

	return c, cmd
}

func (c calendarModel) renderForm() string {
	title := titleStyle.Render("New Time Block")
	formView := c.form.form.View()
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", formView)
	return panelStyle.Width(c.width - 4).Render(content)
}
