package portproxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wslfwd/pkg/wincmd"
)

type fakeRunner struct {
	calls  [][]string
	result wincmd.Result
	err    error
}

func (f *fakeRunner) Run(name string, args ...string) (wincmd.Result, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.result, f.err
}

func TestClientListArgs(t *testing.T) {
	fake := &fakeRunner{result: wincmd.Result{Stdout: "table"}}
	client := NewClient(fake)

	result, err := client.List()
	require.NoError(t, err)
	assert.Equal(t, "table", result.Stdout)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"netsh", "interface", "portproxy", "show", "v4tov4"}, fake.calls[0])
}

func TestClientAddArgs(t *testing.T) {
	fake := &fakeRunner{}
	client := NewClient(fake)

	_, err := client.Add(Rule{
		ListenAddress:  "0.0.0.0",
		ListenPort:     "8080",
		ConnectAddress: "172.29.223.44",
		ConnectPort:    "1996",
	})
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{
		"netsh", "interface", "portproxy", "add", "v4tov4",
		"listenport=8080",
		"listenaddress=0.0.0.0",
		"connectport=1996",
		"connectaddress=172.29.223.44",
	}, fake.calls[0])
}

func TestClientDeleteArgs(t *testing.T) {
	fake := &fakeRunner{}
	client := NewClient(fake)

	_, err := client.Delete("0.0.0.0", "8080")
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{
		"netsh", "interface", "portproxy", "delete", "v4tov4",
		"listenport=8080",
		"listenaddress=0.0.0.0",
	}, fake.calls[0])
}
