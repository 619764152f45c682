package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"wslfwd/pkg/logging"
	"wslfwd/pkg/rules"
	"wslfwd/pkg/wincmd"
	"wslfwd/pkg/wsl"
)

// HandleAddCommand handles the add subcommand logic
func HandleAddCommand() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	listenPort := addCmd.String("listen-port", "", "Windows port to listen on (required)")
	listenAddr := addCmd.String("listen-addr", "0.0.0.0", "Windows address to listen on")
	connectPort := addCmd.String("connect-port", "", "WSL2 port to forward to (required)")
	connectAddr := addCmd.String("connect-addr", "", "WSL2 guest address (auto-detected when omitted)")
	addCmd.Usage = showAddHelp

	if err := addCmd.Parse(os.Args[2:]); err != nil {
		fmt.Printf("Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	run := wincmd.ExecRunner{}

	// Resolve the guest address the same way the add dialog pre-fills it
	if *connectAddr == "" {
		guestIP, err := wsl.GuestAddress(run)
		if err != nil {
			fmt.Printf("Error: --connect-addr not given and WSL guest address could not be detected: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Using detected WSL guest address %s\n", guestIP)
		*connectAddr = guestIP
	}

	svc := rules.NewService(run, logging.Default())
	result, err := svc.Add(rules.Draft{
		ListenPort:     *listenPort,
		ListenAddress:  *listenAddr,
		ConnectPort:    *connectPort,
		ConnectAddress: *connectAddr,
	})
	if err != nil {
		var verr *rules.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("Invalid input: %v\n", verr)
			addCmd.Usage()
		} else {
			fmt.Printf("Error adding rule: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Added rule %s:%s -> %s:%s\n", *listenAddr, *listenPort, *connectAddr, *connectPort)
	reportFirewallStep(result)
	fmt.Printf("OS now holds %d rule(s).\n", len(result.Rules))
}

// reportFirewallStep prints the secondary firewall outcome without turning
// it into a command failure.
func reportFirewallStep(result *rules.ActionResult) {
	if result == nil || result.Firewall == nil {
		return
	}
	if result.Firewall.OK {
		fmt.Printf("%s\n", result.Firewall.Message)
	} else {
		fmt.Printf("Warning: firewall step failed: %s\n", result.Firewall.Message)
	}
}

// showAddHelp displays help for the add command
func showAddHelp() {
	programName := os.Args[0]
	fmt.Fprintf(os.Stderr, `%s add - Create a port forwarding rule

Creates a v4-to-v4 portproxy rule and an inbound firewall allow rule
(named WSL-<port>-LAN) for the listen port. Requires an elevated shell.

Usage:
  %s add --listen-port <port> --connect-port <port> [options]

Options:
  --listen-port string    Windows port to listen on (required)
  --listen-addr string    Windows address to listen on (default "0.0.0.0")
  --connect-port string   WSL2 port to forward to (required)
  --connect-addr string   WSL2 guest address (auto-detected when omitted)
  -h, --help              Show this help message

Examples:
  %s add --listen-port 8080 --connect-port 1996
  %s add --listen-port 443 --listen-addr 192.168.1.10 --connect-port 8443 --connect-addr 172.29.223.44
`, programName, programName, programName, programName)
}
