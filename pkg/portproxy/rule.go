package portproxy

import "fmt"

// Rule is one netsh portproxy v4tov4 forwarding entry. Ports stay textual
// because that is what the netsh argument syntax takes and what the listing
// emits; nothing in this program does arithmetic on them.
//
// (ListenAddress, ListenPort) is the natural key: netsh deletes by listen
// side only, so every connect target sharing that key goes together.
type Rule struct {
	ListenAddress  string
	ListenPort     string
	ConnectAddress string
	ConnectPort    string
}

func (r Rule) String() string {
	return fmt.Sprintf("%s:%s -> %s:%s", r.ListenAddress, r.ListenPort, r.ConnectAddress, r.ConnectPort)
}
