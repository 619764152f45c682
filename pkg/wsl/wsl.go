package wsl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"wslfwd/pkg/logging"
	"wslfwd/pkg/wincmd"
)

var ipv4Pattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)

// GuestAddress asks the default WSL distribution for its own addresses and
// returns the first one, used to pre-fill the connect address of a new
// rule. Callers treat failure as "no suggestion", never as a fatal error.
func GuestAddress(run wincmd.Runner) (string, error) {
	result, err := run.Run("wsl", "hostname", "-I")
	if err != nil {
		return "", fmt.Errorf("failed to query WSL guest address: %w", err)
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("wsl hostname -I exited with code %d: %s", result.ExitCode, strings.TrimSpace(result.Text()))
	}

	fields := strings.Fields(result.Stdout)
	if len(fields) == 0 {
		return "", errors.New("wsl reported no guest addresses")
	}

	ip := fields[0]
	if !ipv4Pattern.MatchString(ip) {
		return "", fmt.Errorf("unexpected guest address format: %q", ip)
	}
	logging.LogDebug("wsl: guest address %s", ip)
	return ip, nil
}
