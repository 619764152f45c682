package firewall

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wslfwd/pkg/wincmd"
)

type fakeShell struct {
	scripts []string
	result  wincmd.Result
	err     error
}

func (f *fakeShell) Run(name string, args ...string) (wincmd.Result, error) {
	// Shell invocations carry the script as the last argument.
	f.scripts = append(f.scripts, args[len(args)-1])
	return f.result, f.err
}

func TestRuleName(t *testing.T) {
	assert.Equal(t, "WSL-8080-LAN", RuleName("8080"))
	assert.Equal(t, "WSL-8080-LAN", RuleName("8080")) // deterministic
	assert.Equal(t, "WSL-443-LAN", RuleName("443"))
}

func TestEnsureInboundAllowScript(t *testing.T) {
	fake := &fakeShell{}
	ok, msg := NewManager(fake).EnsureInboundAllow("8080")

	assert.True(t, ok)
	assert.Contains(t, msg, "WSL-8080-LAN")
	require.Len(t, fake.scripts, 1)

	script := fake.scripts[0]
	removeIdx := strings.Index(script, "Remove-NetFirewallRule")
	createIdx := strings.Index(script, "New-NetFirewallRule")
	require.GreaterOrEqual(t, removeIdx, 0)
	require.Greater(t, createIdx, removeIdx, "remove must precede create")
	assert.Contains(t, script, `-DisplayName "WSL-8080-LAN"`)
	assert.Contains(t, script, "-ErrorAction SilentlyContinue")
	assert.Contains(t, script, "-Direction Inbound")
	assert.Contains(t, script, "-Action Allow")
	assert.Contains(t, script, "-Protocol TCP")
	assert.Contains(t, script, "-LocalPort 8080")
	assert.Contains(t, script, "-Profile Private,Public")
}

func TestEnsureInboundAllowIdempotent(t *testing.T) {
	// Calling twice issues the remove-then-create sequence both times, so
	// the firewall store ends up with exactly one matching rule.
	fake := &fakeShell{}
	mgr := NewManager(fake)

	ok1, _ := mgr.EnsureInboundAllow("8080")
	ok2, _ := mgr.EnsureInboundAllow("8080")

	assert.True(t, ok1)
	assert.True(t, ok2)
	require.Len(t, fake.scripts, 2)
	assert.Equal(t, fake.scripts[0], fake.scripts[1])
}

func TestEnsureInboundAllowCreateFailure(t *testing.T) {
	fake := &fakeShell{result: wincmd.Result{ExitCode: 1, Stderr: "New-NetFirewallRule : Access is denied.\n"}}
	ok, msg := NewManager(fake).EnsureInboundAllow("8080")

	assert.False(t, ok)
	assert.Contains(t, msg, "Access is denied")
}

func TestEnsureInboundAllowSpawnFailure(t *testing.T) {
	fake := &fakeShell{err: errors.New("powershell not found")}
	ok, msg := NewManager(fake).EnsureInboundAllow("8080")

	assert.False(t, ok)
	assert.Contains(t, msg, "powershell not found")
}

func TestRemoveInboundAllowScript(t *testing.T) {
	fake := &fakeShell{}
	ok, _ := NewManager(fake).RemoveInboundAllow("8080")

	assert.True(t, ok)
	require.Len(t, fake.scripts, 1)
	script := fake.scripts[0]
	assert.Contains(t, script, `Remove-NetFirewallRule -DisplayName "WSL-8080-LAN"`)
	assert.Contains(t, script, "-ErrorAction SilentlyContinue")
	assert.NotContains(t, script, "New-NetFirewallRule")
}

func TestRemoveInboundAllowMissingRuleIsSuccess(t *testing.T) {
	// SilentlyContinue keeps the script at exit 0 when there is nothing
	// to remove; that must surface as success.
	fake := &fakeShell{result: wincmd.Result{ExitCode: 0}}
	ok, _ := NewManager(fake).RemoveInboundAllow("9999")
	assert.True(t, ok)
}

func TestRemoveInboundAllowFailure(t *testing.T) {
	fake := &fakeShell{result: wincmd.Result{ExitCode: 1, Stderr: "access denied"}}
	ok, msg := NewManager(fake).RemoveInboundAllow("8080")
	assert.False(t, ok)
	assert.Equal(t, "access denied", msg)
}
