package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Dump is a fully formatted hex dump handed to the viewer.
type Dump struct {
	Name  string
	Size  int64
	Lines []string
}

// Run starts the interactive dump viewer.
func Run(d Dump) error {
	m := NewModel(d)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		return err
	}

	return nil
}
