package rules

import (
	"fmt"

	"wslfwd/pkg/portproxy"
)

// Draft is the user-entered form of a new rule, validated before any
// subprocess is spawned.
type Draft struct {
	ListenPort     string
	ListenAddress  string
	ConnectPort    string
	ConnectAddress string
}

// ValidationError reports a malformed draft. No OS interaction happened.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CommandError reports a failed netsh invocation. Output carries the
// decoded stderr, or stdout when stderr was empty. ExitCode is -1 when the
// process could not be spawned at all.
type CommandError struct {
	Op       string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s command failed with exit code %d", e.Op, e.ExitCode)
	}
	return fmt.Sprintf("%s command failed with exit code %d: %s", e.Op, e.ExitCode, e.Output)
}

// StepResult is the outcome of the best-effort firewall step. Failure here
// never invalidates the port-forward change it followed.
type StepResult struct {
	OK      bool
	Message string
}

// ActionResult is returned by mutating actions. Rules is the full rule set
// re-listed from the OS after the action, so the caller displays OS truth
// rather than a locally patched model. Firewall is nil when the step was
// skipped (validation or command failure).
type ActionResult struct {
	Rules    []portproxy.Rule
	Output   string
	Firewall *StepResult
}
