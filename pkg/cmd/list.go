package cmd

import (
	"flag"
	"fmt"
	"os"

	"wslfwd/pkg/logging"
	"wslfwd/pkg/rules"
	"wslfwd/pkg/wincmd"
)

// HandleListCommand handles the list subcommand logic
func HandleListCommand() {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	quiet := listCmd.Bool("q", false, "Only print rule lines, no header")
	listCmd.Usage = showListHelp

	if err := listCmd.Parse(os.Args[2:]); err != nil {
		fmt.Printf("Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	svc := rules.NewService(wincmd.ExecRunner{}, logging.Default())
	ruleSet, err := svc.Load()
	if err != nil {
		fmt.Printf("Error loading rules: %v\n", err)
		os.Exit(1)
	}

	if len(ruleSet) == 0 {
		if !*quiet {
			fmt.Println("No port forwarding rules configured.")
		}
		return
	}

	if !*quiet {
		fmt.Printf("%-18s %-12s %-18s %-12s\n", "LISTEN ADDRESS", "LISTEN PORT", "CONNECT ADDRESS", "CONNECT PORT")
	}
	for _, r := range ruleSet {
		fmt.Printf("%-18s %-12s %-18s %-12s\n", r.ListenAddress, r.ListenPort, r.ConnectAddress, r.ConnectPort)
	}
}

// showListHelp displays help for the list command
func showListHelp() {
	programName := os.Args[0]
	fmt.Fprintf(os.Stderr, `%s list - Show current port forwarding rules

Lists the v4-to-v4 portproxy rules currently configured in the OS.

Usage:
  %s list [options]

Options:
  -q          Only print rule lines, no header
  -h, --help  Show this help message
`, programName, programName)
}
