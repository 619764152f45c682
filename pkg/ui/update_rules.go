package ui

import (
	"fmt"

	"wslfwd/pkg/logging"
	"wslfwd/pkg/wsl"

	tea "github.com/charmbracelet/bubbletea"
)

// updateRules handles updates for the StateRules view
func (m *Model) updateRules(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case ShortcutRefresh:
		m.errorMsg = ""
		m.statusMsg = ""
		m.refreshRules()
		if m.errorMsg == "" {
			m.statusMsg = fmt.Sprintf("Loaded %d rule(s) from the OS", len(m.ruleSet))
		}
		return m, nil

	case ShortcutAdd:
		return m.enterAddForm()

	case ShortcutDelete:
		m.errorMsg = ""
		m.statusMsg = ""
		rule, ok := m.selectedRule()
		if !ok {
			m.errorMsg = "No rule selected"
			return m, nil
		}
		// Delete is keyed by the listen side; every connect target under
		// that key goes with it. Mutation waits for explicit confirmation.
		m.pendingDelete = &rule
		m.uiState = StateConfirmDelete
		return m, nil

	// Default case for keys not handled above: pass to table
	default:
		m.rulesTable, cmd = m.rulesTable.Update(msg)
		return m, cmd
	}
}

// updateConfirmDelete handles the yes/no gate before a delete
func (m *Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		rule := *m.pendingDelete
		m.pendingDelete = nil
		m.uiState = StateRules

		result, err := m.svc.Delete(rule.ListenAddress, rule.ListenPort)
		m.applyActionResult(result, err,
			fmt.Sprintf("Deleted rule(s) on %s:%s", rule.ListenAddress, rule.ListenPort))
		return m, nil

	case "n", "N", "esc":
		// Decline: no action taken
		m.pendingDelete = nil
		m.uiState = StateRules
		m.statusMsg = "Delete cancelled"
		return m, nil
	}
	return m, nil
}

// enterAddForm resets the add form and pre-fills defaults: all-interfaces
// listen address and, when the lookup succeeds, the WSL guest address.
func (m *Model) enterAddForm() (tea.Model, tea.Cmd) {
	m.errorMsg = ""
	m.statusMsg = ""

	m.addInputs = newAddInputs()
	m.addInputs[fieldListenAddr].SetValue("0.0.0.0")

	// Best-effort auto-fill; failure only means the user types it in.
	if guestIP, err := wsl.GuestAddress(m.runner); err == nil {
		m.addInputs[fieldConnectAddr].SetValue(guestIP)
	} else {
		m.appendDiagnostic(logging.LevelWarn, "could not detect WSL guest address: "+err.Error())
	}

	m.addFocus = fieldListenPort
	m.addInputs[m.addFocus].Focus()
	m.rulesTable.Blur()
	m.uiState = StateAddRule
	return m, nil
}
