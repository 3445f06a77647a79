package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/tui"
)

func main() {
	// Optional argument: a YAML catalog for another fiscal year
	catalogPath := ""
	if len(os.Args) > 1 {
		catalogPath = os.Args[1]
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	model, err := tui.NewModel(cat)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
