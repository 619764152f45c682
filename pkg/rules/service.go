package rules

import (
	"strings"

	"wslfwd/pkg/firewall"
	"wslfwd/pkg/logging"
	"wslfwd/pkg/portproxy"
	"wslfwd/pkg/wincmd"
)

// Service is the use-case layer between the presentation collaborator and
// the OS configuration stores. Every action is a short-lived transaction:
// no rule state is cached, and mutating actions end by re-listing the OS
// store. Callers are expected to serialize actions; each subprocess call
// blocks until the child exits.
type Service struct {
	proxy *portproxy.Client
	fw    *firewall.Manager
	sink  logging.Sink
}

// NewService wires the netsh client and firewall manager onto one runner.
// The sink receives every diagnostic the service produces; pass
// logging.NopSink{} to discard them.
func NewService(run wincmd.Runner, sink logging.Sink) *Service {
	if sink == nil {
		sink = logging.NopSink{}
	}
	return &Service{
		proxy: portproxy.NewClient(run),
		fw:    firewall.NewManager(run),
		sink:  sink,
	}
}

// Load lists and parses the current rule set from the OS.
func (s *Service) Load() ([]portproxy.Rule, error) {
	result, err := s.proxy.List()
	if err != nil {
		s.sink.Emit(logging.LevelError, "failed to run netsh list: "+err.Error())
		return nil, &CommandError{Op: "list", ExitCode: -1, Output: err.Error()}
	}
	if result.ExitCode != 0 {
		s.sink.Emit(logging.LevelError, "netsh list failed: "+strings.TrimSpace(result.Text()))
		return nil, &CommandError{Op: "list", ExitCode: result.ExitCode, Output: strings.TrimSpace(result.Text())}
	}

	rules := portproxy.ParseTable(result.Stdout)
	s.sink.Emit(logging.LevelDebug, "loaded rules from OS store")
	return rules, nil
}

// Add validates the draft, creates the forward, ensures the companion
// firewall rule best-effort, and reloads. A validation failure spawns
// nothing; a netsh failure skips the firewall step but still refreshes the
// snapshot so the caller sees OS truth.
func (s *Service) Add(draft Draft) (*ActionResult, error) {
	draft = draft.normalized()
	if verr := draft.validate(); verr != nil {
		s.sink.Emit(logging.LevelWarn, "rejected add: "+verr.Error())
		return nil, verr
	}

	rule := portproxy.Rule{
		ListenAddress:  draft.ListenAddress,
		ListenPort:     draft.ListenPort,
		ConnectAddress: draft.ConnectAddress,
		ConnectPort:    draft.ConnectPort,
	}

	result, err := s.proxy.Add(rule)
	if err != nil {
		s.sink.Emit(logging.LevelError, "failed to run netsh add: "+err.Error())
		return s.failedAction(), &CommandError{Op: "add", ExitCode: -1, Output: err.Error()}
	}
	if result.ExitCode != 0 {
		output := strings.TrimSpace(result.Text())
		s.sink.Emit(logging.LevelError, "netsh add failed: "+output)
		return s.failedAction(), &CommandError{Op: "add", ExitCode: result.ExitCode, Output: output}
	}
	s.sink.Emit(logging.LevelInfo, "added rule "+rule.String())

	step := s.firewallStep(s.fw.EnsureInboundAllow, draft.ListenPort)
	return s.finishAction(result, step), nil
}

// Delete removes every forward under the listen key, removes the companion
// firewall rule best-effort, and reloads. Confirmation is the caller's
// responsibility; this method mutates unconditionally.
func (s *Service) Delete(listenAddress, listenPort string) (*ActionResult, error) {
	result, err := s.proxy.Delete(listenAddress, listenPort)
	if err != nil {
		s.sink.Emit(logging.LevelError, "failed to run netsh delete: "+err.Error())
		return s.failedAction(), &CommandError{Op: "delete", ExitCode: -1, Output: err.Error()}
	}
	if result.ExitCode != 0 {
		output := strings.TrimSpace(result.Text())
		s.sink.Emit(logging.LevelError, "netsh delete failed: "+output)
		return s.failedAction(), &CommandError{Op: "delete", ExitCode: result.ExitCode, Output: output}
	}
	s.sink.Emit(logging.LevelInfo, "deleted rules on "+listenAddress+":"+listenPort)

	step := s.firewallStep(s.fw.RemoveInboundAllow, listenPort)
	return s.finishAction(result, step), nil
}

// firewallStep runs a firewall operation as a non-fatal secondary step.
// Its outcome is recorded for display, never turned into an action error.
func (s *Service) firewallStep(op func(string) (bool, string), listenPort string) *StepResult {
	ok, msg := op(listenPort)
	step := &StepResult{OK: ok, Message: msg}
	if ok {
		s.sink.Emit(logging.LevelDebug, msg)
	} else {
		s.sink.Emit(logging.LevelWarn, "firewall step failed: "+msg)
	}
	return step
}

// finishAction builds the result for a successful mutation, including the
// reloaded rule set. A reload failure at this point is reported through the
// sink but does not fail the already-applied action.
func (s *Service) finishAction(result wincmd.Result, step *StepResult) *ActionResult {
	action := &ActionResult{
		Output:   strings.TrimSpace(result.Stdout),
		Firewall: step,
	}
	loaded, err := s.Load()
	if err != nil {
		s.sink.Emit(logging.LevelWarn, "reload after action failed: "+err.Error())
		return action
	}
	action.Rules = loaded
	return action
}

// failedAction still refreshes the snapshot after a failed mutation, so the
// display reflects whatever the OS actually holds.
func (s *Service) failedAction() *ActionResult {
	action := &ActionResult{}
	loaded, err := s.Load()
	if err != nil {
		return action
	}
	action.Rules = loaded
	return action
}

func (d Draft) normalized() Draft {
	return Draft{
		ListenPort:     strings.TrimSpace(d.ListenPort),
		ListenAddress:  strings.TrimSpace(d.ListenAddress),
		ConnectPort:    strings.TrimSpace(d.ConnectPort),
		ConnectAddress: strings.TrimSpace(d.ConnectAddress),
	}
}

func (d Draft) validate() *ValidationError {
	switch {
	case d.ListenPort == "":
		return &ValidationError{Field: "listen port", Reason: "must not be empty"}
	case !digitsOnly(d.ListenPort):
		return &ValidationError{Field: "listen port", Reason: "must be a decimal number"}
	case d.ListenAddress == "":
		return &ValidationError{Field: "listen address", Reason: "must not be empty"}
	case d.ConnectPort == "":
		return &ValidationError{Field: "connect port", Reason: "must not be empty"}
	case !digitsOnly(d.ConnectPort):
		return &ValidationError{Field: "connect port", Reason: "must be a decimal number"}
	case d.ConnectAddress == "":
		return &ValidationError{Field: "connect address", Reason: "must not be empty"}
	}
	return nil
}

func digitsOnly(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
