package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wealthpath/nestegg/internal/config"
	"github.com/wealthpath/nestegg/internal/tui"
)

func main() {
	// Seed the explorer from an input file when given, otherwise start from
	// the example values.
	inputs := config.ExampleInputs()
	if len(os.Args) > 1 {
		loaded, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error loading inputs: %v\n", err)
			os.Exit(1)
		}
		inputs = loaded
	}

	p := tea.NewProgram(
		tui.NewModel(inputs),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
