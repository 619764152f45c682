package wincmd

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shellArgs builds a platform shell invocation for the given script so the
// runner can be exercised without netsh itself.
func shellArgs(script string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/c", script}
	}
	return "sh", []string{"-c", script}
}

func TestRunCapturesOutput(t *testing.T) {
	name, args := shellArgs("echo hello")
	result, err := ExecRunner{}.Run(name, args...)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello", strings.TrimSpace(result.Stdout))
	assert.Empty(t, strings.TrimSpace(result.Stderr))
}

func TestRunNonzeroExitIsNotAnError(t *testing.T) {
	name, args := shellArgs("exit 3")
	result, err := ExecRunner{}.Run(name, args...)
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
}

func TestRunCapturesStderr(t *testing.T) {
	name, args := shellArgs("echo oops 1>&2")
	result, err := ExecRunner{}.Run(name, args...)
	require.NoError(t, err)
	assert.Equal(t, "oops", strings.TrimSpace(result.Stderr))
}

func TestRunSpawnFailure(t *testing.T) {
	result, err := ExecRunner{}.Run("wslfwd-no-such-binary-anywhere")
	require.Error(t, err)
	assert.Equal(t, -1, result.ExitCode)
}

func TestResultText(t *testing.T) {
	assert.Equal(t, "err", Result{Stdout: "out", Stderr: "err"}.Text())
	assert.Equal(t, "out", Result{Stdout: "out"}.Text())
	assert.Equal(t, "", Result{}.Text())
}

type recordingRunner struct {
	name string
	args []string
}

func (r *recordingRunner) Run(name string, args ...string) (Result, error) {
	r.name = name
	r.args = args
	return Result{}, nil
}

func TestRunShellInvocation(t *testing.T) {
	rec := &recordingRunner{}
	_, err := RunShell(rec, "Get-NetFirewallRule")
	require.NoError(t, err)
	assert.Equal(t, "powershell", rec.name)
	assert.Equal(t, []string{"-NoProfile", "-NonInteractive", "-Command", "Get-NetFirewallRule"}, rec.args)
}
