package main

import (
	"fmt"
	"os"

	"wslfwd/pkg/cmd"
	"wslfwd/pkg/logging"
	"wslfwd/pkg/ui"
	"wslfwd/pkg/wincmd"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// File log for diagnostics; the TUI mirrors recent events in its own pane.
	if fileSink, err := logging.NewFileSink("wslfwd.log"); err == nil {
		logging.SetDefault(fileSink)
		defer fileSink.Close()
	}

	// Parse command line arguments
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "list":
			cmd.HandleListCommand()
			return
		case "add":
			cmd.HandleAddCommand()
			return
		case "delete":
			cmd.HandleDeleteCommand()
			return
		case "help", "-h", "--help":
			cmd.HandleHelpCommand()
			return
		default:
			fmt.Printf("Unknown command: %s\n\n", os.Args[1])
			cmd.ShowMainHelpAndExit()
		}
	}

	// Default behavior - start TUI
	logging.LogDebug("main: starting TUI")
	model := ui.NewModel(wincmd.ExecRunner{}, logging.Default())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
