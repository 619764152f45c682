package wincmd

import (
	"bytes"
	"errors"
	"os/exec"

	"wslfwd/pkg/logging"
	"wslfwd/pkg/textenc"
)

// Result holds the outcome of one external command invocation. A nonzero
// ExitCode is a normal outcome (netsh reports "no such rule" that way), not
// an error.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Text returns the most useful output for diagnostics: stderr when the
// command wrote any, stdout otherwise.
func (r Result) Text() string {
	if r.Stderr != "" {
		return r.Stderr
	}
	return r.Stdout
}

// Runner invokes an external command and captures its output. The error
// return is reserved for spawn-level failures (binary not found, etc.);
// command failures are reported through Result.ExitCode.
type Runner interface {
	Run(name string, args ...string) (Result, error)
}

// ExecRunner runs commands as child processes. Console window creation is
// suppressed so netsh/powershell calls don't flash windows on the desktop.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	hideWindow(cmd)

	logging.LogDebug("wincmd: running %s %v", name, args)
	err := cmd.Run()

	result := Result{
		Stdout: decode(stdout.Bytes()),
		Stderr: decode(stderr.Bytes()),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logging.LogDebug("wincmd: %s exited with code %d", name, result.ExitCode)
			return result, nil
		}
		// Spawn failure: the child never ran.
		result.ExitCode = -1
		logging.LogError("wincmd: failed to run %s: %v", name, err)
		return result, err
	}
	return result, nil
}

// RunShell executes an inline PowerShell script non-interactively. Used for
// firewall management, where netsh-style argument lists don't cover the
// remove-then-create sequence in one invocation.
func RunShell(r Runner, script string) (Result, error) {
	return r.Run("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
}

func decode(data []byte) string {
	text, info := textenc.DecodeWithInfo(data)
	if info.Degraded && len(data) > 0 {
		logging.LogDebug("wincmd: encoding detection inconclusive (charset=%q confidence=%d), decoded as UTF-8", info.Charset, info.Confidence)
	}
	return text
}
