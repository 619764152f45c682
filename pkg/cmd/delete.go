package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"wslfwd/pkg/logging"
	"wslfwd/pkg/rules"
	"wslfwd/pkg/wincmd"
)

// HandleDeleteCommand handles the delete subcommand logic
func HandleDeleteCommand() {
	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	listenPort := deleteCmd.String("listen-port", "", "Listen port of the rule to delete (required)")
	listenAddr := deleteCmd.String("listen-addr", "0.0.0.0", "Listen address of the rule to delete")
	acceptAll := deleteCmd.Bool("y", false, "Delete without prompting")
	deleteCmd.Usage = showDeleteHelp

	if err := deleteCmd.Parse(os.Args[2:]); err != nil {
		fmt.Printf("Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	if *listenPort == "" {
		fmt.Println("Error: --listen-port is required")
		deleteCmd.Usage()
		os.Exit(1)
	}

	// Deleting by listen key removes every connect target under it, so
	// ask before mutating.
	if !*acceptAll {
		fmt.Printf("Delete rule(s) on %s:%s? [y/N]: ", *listenAddr, *listenPort)
		reader := bufio.NewReader(os.Stdin)
		resp, _ := reader.ReadString('\n')
		resp = strings.TrimSpace(strings.ToLower(resp))
		if resp != "y" && resp != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	svc := rules.NewService(wincmd.ExecRunner{}, logging.Default())
	result, err := svc.Delete(*listenAddr, *listenPort)
	if err != nil {
		fmt.Printf("Error deleting rule: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Deleted rule(s) on %s:%s\n", *listenAddr, *listenPort)
	reportFirewallStep(result)
	fmt.Printf("OS now holds %d rule(s).\n", len(result.Rules))
}

// showDeleteHelp displays help for the delete command
func showDeleteHelp() {
	programName := os.Args[0]
	fmt.Fprintf(os.Stderr, `%s delete - Remove a port forwarding rule

Removes every v4-to-v4 portproxy rule with the given listen address and
port, along with the companion WSL-<port>-LAN firewall rule. Requires an
elevated shell.

Usage:
  %s delete --listen-port <port> [options]

Options:
  --listen-port string   Listen port of the rule to delete (required)
  --listen-addr string   Listen address of the rule to delete (default "0.0.0.0")
  -y                     Delete without prompting for confirmation
  -h, --help             Show this help message

Examples:
  %s delete --listen-port 8080
  %s delete --listen-port 443 --listen-addr 192.168.1.10 -y
`, programName, programName, programName, programName)
}
