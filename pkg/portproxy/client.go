package portproxy

import (
	"wslfwd/pkg/wincmd"
)

// Client drives the netsh portproxy command surface. Exit-code
// interpretation is left to the caller: netsh uses nonzero exits for
// ordinary conditions like deleting a rule that is not there.
type Client struct {
	run wincmd.Runner
}

func NewClient(run wincmd.Runner) *Client {
	return &Client{run: run}
}

// List invokes the v4tov4 listing; the output text feeds ParseTable.
func (c *Client) List() (wincmd.Result, error) {
	return c.run.Run("netsh", "interface", "portproxy", "show", "v4tov4")
}

// Add creates one v4-to-v4 forward. Adding over an existing listen key
// silently overwrites it; netsh still exits 0 and that counts as success.
func (c *Client) Add(rule Rule) (wincmd.Result, error) {
	return c.run.Run("netsh", "interface", "portproxy", "add", "v4tov4",
		"listenport="+rule.ListenPort,
		"listenaddress="+rule.ListenAddress,
		"connectport="+rule.ConnectPort,
		"connectaddress="+rule.ConnectAddress)
}

// Delete removes every forward with the given listen key.
func (c *Client) Delete(listenAddress, listenPort string) (wincmd.Result, error) {
	return c.run.Run("netsh", "interface", "portproxy", "delete", "v4tov4",
		"listenport="+listenPort,
		"listenaddress="+listenAddress)
}
