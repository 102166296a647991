package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/dayblock/internal/calendar"
)

// typeTotal is one block type's share of a week.
type typeTotal struct {
	blockType calendar.BlockType
	minutes   int
}

type statsModel struct {
	repo   *calendar.Repository
	nav    *calendar.Navigator
	width  int
	height int

	chart barchart.Model
}

func newStatsModel(repo *calendar.Repository, nav *calendar.Navigator) statsModel {
	return statsModel{
		repo:  repo,
		nav:   nav,
		chart: barchart.New(60, 12),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			s.nav.SetView(calendar.ViewWeek)
			s.nav.Previous()
			s.buildChart()
			return s, nil
		case key.Matches(msg, keys.Right):
			s.nav.SetView(calendar.ViewWeek)
			s.nav.Next()
			s.buildChart()
			return s, nil
		}
	}
	return s, nil
}

// refresh recomputes the chart; called when the tab becomes active or
// blocks change underneath it.
func (s *statsModel) refresh() {
	s.buildChart()
}

func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if s.height > 30 {
		chartHeight = 16
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	week := s.repo.WeekViewFor(s.nav.Date())
	blocksByDate := s.blocksByDate()

	var bars []barchart.BarData
	for _, day := range week.Days {
		date := calendar.ParseDate(day.Date)
		label := date.Format("Mon 02")

		// Stack minutes per type so the bar shows the day's mix.
		perType := map[calendar.BlockType]int{}
		for _, b := range blocksByDate[day.Date] {
			perType[b.Type] += b.DurationMinutes
		}

		var values []barchart.BarValue
		for _, t := range calendar.BlockTypes {
			if perType[t] == 0 {
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(calendar.DefaultColor(t)))
			values = append(values, barchart.BarValue{
				Name:  string(t),
				Value: float64(perType[t]) / 60.0,
				Style: style,
			})
		}
		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: values,
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) blocksByDate() map[string][]calendar.TimeBlock {
	byDate := map[string][]calendar.TimeBlock{}
	for _, b := range s.repo.Blocks() {
		byDate[b.Date] = append(byDate[b.Date], b)
	}
	return byDate
}

// weekTotals sums the week's scheduled and completed minutes plus the
// per-type breakdown, in the fixed block-type order.
func (s statsModel) weekTotals() (scheduled, completed int, perType []typeTotal) {
	week := s.repo.WeekViewFor(s.nav.Date())
	inWeek := map[string]bool{}
	for _, d := range week.Days {
		inWeek[d.Date] = true
	}

	byType := map[calendar.BlockType]int{}
	for _, b := range s.repo.Blocks() {
		if !inWeek[b.Date] {
			continue
		}
		scheduled += b.DurationMinutes
		byType[b.Type] += b.DurationMinutes
		if b.Status == calendar.StatusCompleted {
			completed += b.DurationMinutes
		}
	}

	for _, t := range calendar.BlockTypes {
		if byType[t] > 0 {
			perType = append(perType, typeTotal{blockType: t, minutes: byType[t]})
		}
	}
	return scheduled, completed, perType
}

func (s statsModel) view() string {
	w := s.width - 4
	week := s.repo.WeekViewFor(s.nav.Date())

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Stats"), "  ",
		mutedStyle.Render(fmt.Sprintf("%s — %s", week.WeekStart, week.WeekEnd)),
	)

	scheduled, completed, perType := s.weekTotals()

	var rows []string
	rows = append(rows, header, "")
	rows = append(rows, s.chart.View(), "")

	rows = append(rows, fmt.Sprintf("  Scheduled %s · Completed %s",
		highlightStyle.Render(formatMinutes(scheduled)),
		successStyle.Render(formatMinutes(completed)),
	))

	if len(perType) > 0 {
		var items []string
		for _, tt := range perType {
			dot := lipgloss.NewStyle().Foreground(lipgloss.Color(calendar.DefaultColor(tt.blockType))).Render("●")
			items = append(items, fmt.Sprintf("%s %s %s", dot, tt.blockType, formatMinutes(tt.minutes)))
		}
		rows = append(rows, "", "  "+strings.Join(items, "  "))
	}

	rows = append(rows, "", mutedStyle.Render("  ←/→: week"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
