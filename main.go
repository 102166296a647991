package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/dayblock/internal/calendar"
	"github.com/sadopc/dayblock/internal/store"
	"github.com/sadopc/dayblock/internal/tui"
)

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	repo := calendar.NewRepository()
	blocks, err := s.LoadBlocks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading blocks: %v\n", err)
		os.Exit(1)
	}
	repo.Load(blocks)

	// Persist the whole collection whenever it changes; the repository
	// replaces its list on every mutation, so the store mirrors that.
	repo.OnChange(func(blocks []calendar.TimeBlock) {
		if err := s.SaveBlocks(blocks); err != nil {
			fmt.Fprintf(os.Stderr, "warning: persist failed: %v\n", err)
		}
	})

	app := tui.NewApp(s, repo)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
