package cmd

import (
	"fmt"
	"os"
)

// HandleHelpCommand displays help information for the application
func HandleHelpCommand() {
	showMainHelp()
}

// showMainHelp displays the main application help
func showMainHelp() {
	programName := os.Args[0]
	fmt.Printf(`wslfwd - WSL2 Port Forwarding Manager

A terminal application for managing Windows-to-WSL2 portproxy rules and
their companion firewall exceptions. Needs to run from an elevated shell
to change OS configuration.

Usage:
  %s [command]

Available Commands:
  list     Show current port forwarding rules
  add      Create a rule (and its firewall exception)
  delete   Remove a rule (and its firewall exception)
  help     Show help information

Options:
  -h, --help  Show help information

Interactive Mode:
  Run without any command to start the interactive TUI where you can:
  - Review the current rules in a table (r to refresh)
  - Press 'a' to add a rule with the WSL guest address pre-filled
  - Press 'd' to delete the selected rule after confirmation

Examples:
  %s                                      Start interactive TUI
  %s list                                 Print the current rules
  %s add --listen-port 8080 --connect-port 1996
  %s delete --listen-port 8080 -y

For more information about a specific command, use:
  %s <command> --help
`, programName, programName, programName, programName, programName, programName)
}

// ShowMainHelpAndExit displays help and exits with code 0
func ShowMainHelpAndExit() {
	showMainHelp()
	os.Exit(0)
}
