package ui

import (
	"errors"
	"fmt"

	"wslfwd/pkg/rules"

	tea "github.com/charmbracelet/bubbletea"
)

// updateAddForm handles updates for the StateAddRule form
func (m *Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel the form, nothing was sent to the OS
		m.uiState = StateRules
		m.rulesTable.Focus()
		m.statusMsg = "Add cancelled"
		return m, nil

	case "enter":
		return m.commitAddForm()

	case "tab", "down":
		m.cycleAddFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.cycleAddFocus(-1)
		return m, nil

	default:
		var cmd tea.Cmd
		m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
		return m, cmd
	}
}

func (m *Model) cycleAddFocus(delta int) {
	m.addInputs[m.addFocus].Blur()
	m.addFocus = (m.addFocus + delta + addFieldCount) % addFieldCount
	m.addInputs[m.addFocus].Focus()
}

// commitAddForm submits the draft. Validation errors keep the form open so
// the user can fix the field; command errors return to the table with the
// refreshed snapshot.
func (m *Model) commitAddForm() (tea.Model, tea.Cmd) {
	m.errorMsg = ""
	m.statusMsg = ""

	draft := rules.Draft{
		ListenPort:     m.addInputs[fieldListenPort].Value(),
		ListenAddress:  m.addInputs[fieldListenAddr].Value(),
		ConnectPort:    m.addInputs[fieldConnectPort].Value(),
		ConnectAddress: m.addInputs[fieldConnectAddr].Value(),
	}

	result, err := m.svc.Add(draft)

	var verr *rules.ValidationError
	if errors.As(err, &verr) {
		m.errorMsg = fmt.Sprintf("Invalid input: %v", verr)
		return m, nil
	}

	m.uiState = StateRules
	m.rulesTable.Focus()
	m.applyActionResult(result, err,
		fmt.Sprintf("Added rule %s:%s -> %s:%s",
			draft.ListenAddress, draft.ListenPort, draft.ConnectAddress, draft.ConnectPort))
	return m, nil
}
