package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/dayblock/internal/calendar"
	"github.com/sadopc/dayblock/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	defaultView  *string
	dayStartHour *string
	dayEndHour   *string
}

func newSettingsModel(s *store.Store) settingsModel {
	dv, ds, de := "", "", ""
	return settingsModel{
		store:        s,
		defaultView:  &dv,
		dayStartHour: &ds,
		dayEndHour:   &de,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.defaultView = s.getVal("default_view", "week")
	*s.dayStartHour = s.getVal("day_start_hour", "7")
	*s.dayEndHour = s.getVal("day_end_hour", "22")

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Default view").
				Options(
					huh.NewOption("Day", "day"),
					huh.NewOption("Week", "week"),
					huh.NewOption("Month", "month"),
				).Value(s.defaultView),
			huh.NewInput().Title("Day starts at (hour)").Value(s.dayStartHour).Validate(validateHour),
			huh.NewInput().Title("Day ends at (hour)").Value(s.dayEndHour).Validate(validateHour),
		).Title("Calendar"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func validateHour(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 23 {
		return fmt.Errorf("hour must be 0-23")
	}
	return nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.saveSettings()
		return s, s.refresh()
	}

	return s, cmd
}

func (s settingsModel) saveSettings() {
	s.store.SetSetting("default_view", *s.defaultView)
	s.store.SetSetting("day_start_hour", *s.dayStartHour)
	s.store.SetSetting("day_end_hour", *s.dayEndHour)
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(setting.Value)
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// viewModeFromSetting maps a persisted default_view value to a ViewMode,
// falling back to week for anything unrecognized.
func viewModeFromSetting(v string) calendar.ViewMode {
	switch v {
	case "day":
		return calendar.ViewDay
	case "month":
		return calendar.ViewMonth
	default:
		return calendar.ViewWeek
	}
}
