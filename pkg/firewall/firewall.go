package firewall

import (
	"fmt"
	"strings"

	"wslfwd/pkg/logging"
	"wslfwd/pkg/wincmd"
)

// RuleName derives the display name of the companion inbound allow rule for
// a listen port. Deterministic: the name is the only handle this program
// keeps on a firewall rule, so create and remove must always agree on it.
func RuleName(listenPort string) string {
	return "WSL-" + listenPort + "-LAN"
}

// Manager issues idempotent create/remove operations for inbound allow
// rules through PowerShell's NetSecurity cmdlets.
type Manager struct {
	run wincmd.Runner
}

func NewManager(run wincmd.Runner) *Manager {
	return &Manager{run: run}
}

// EnsureInboundAllow makes sure exactly one inbound TCP allow rule exists
// for the port, scoped to the Private and Public profiles. Removing first
// keeps repeated calls from stacking duplicates; a missing rule on the
// remove side is suppressed by the script itself. Only the create step can
// fail, reported as ok=false with the shell's error text.
func (m *Manager) EnsureInboundAllow(listenPort string) (bool, string) {
	name := RuleName(listenPort)
	script := fmt.Sprintf(
		`Remove-NetFirewallRule -DisplayName "%s" -ErrorAction SilentlyContinue; `+
			`New-NetFirewallRule -DisplayName "%s" -Direction Inbound -Action Allow -Protocol TCP -LocalPort %s -Profile Private,Public`,
		name, name, listenPort)

	result, err := wincmd.RunShell(m.run, script)
	if err != nil {
		logging.LogError("firewall: ensure %s spawn failed: %v", name, err)
		return false, err.Error()
	}
	if result.ExitCode != 0 {
		logging.LogError("firewall: ensure %s failed: %s", name, result.Text())
		return false, strings.TrimSpace(result.Text())
	}
	logging.LogDebug("firewall: ensured inbound allow rule %s", name)
	return true, fmt.Sprintf("firewall rule %s ensured", name)
}

// RemoveInboundAllow deletes the companion rule. A rule that is already
// gone counts as success.
func (m *Manager) RemoveInboundAllow(listenPort string) (bool, string) {
	name := RuleName(listenPort)
	script := fmt.Sprintf(`Remove-NetFirewallRule -DisplayName "%s" -ErrorAction SilentlyContinue`, name)

	result, err := wincmd.RunShell(m.run, script)
	if err != nil {
		logging.LogError("firewall: remove %s spawn failed: %v", name, err)
		return false, err.Error()
	}
	if result.ExitCode != 0 {
		logging.LogError("firewall: remove %s failed: %s", name, result.Text())
		return false, strings.TrimSpace(result.Text())
	}
	logging.LogDebug("firewall: removed inbound allow rule %s (if present)", name)
	return true, fmt.Sprintf("firewall rule %s removed", name)
}
