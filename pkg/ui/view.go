package ui

import (
	"fmt"
	"strings"

	"wslfwd/pkg/firewall"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m *Model) View() string {
	switch m.uiState {
	case StateRules:
		return m.viewRules()
	case StateAddRule:
		return m.viewAddForm()
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}
	return "Unknown state"
}

// viewRules renders the rule table view
func (m *Model) viewRules() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTitle)).Bold(true).
		Render("WSL2 Port Forwarding Rules")

	help := ActionRulesNav
	if m.width < 80 {
		help = "a:Add | d:Delete | r:Refresh | q:Quit"
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelp))
	helpText := helpStyle.Render(help)

	tableView := lipgloss.PlaceHorizontal(m.width, lipgloss.Left, m.rulesTable.View())

	// Format top area: title and potentially help text (if room)
	var top string
	if m.width >= 80 {
		spacing := m.width - lipgloss.Width(title) - lipgloss.Width(helpText)
		if spacing > 0 {
			top = lipgloss.JoinHorizontal(lipgloss.Left, title, strings.Repeat(" ", spacing), helpText)
		} else {
			top = title
		}
	} else {
		top = title
	}

	sections := []string{top, "", tableView}
	if msg := m.messageLine(); msg != "" {
		sections = append(sections, msg)
	}
	if diag := m.diagnosticsPane(); diag != "" {
		sections = append(sections, diag)
	}
	if m.width < 80 {
		sections = append(sections, helpText)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewAddForm renders the add-rule form
func (m *Model) viewAddForm() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTitle)).Bold(true).
		Render("Add Rule")

	labels := [addFieldCount]string{
		fieldListenPort:  "Listen port",
		fieldListenAddr:  "Listen address",
		fieldConnectPort: "Connect port",
		fieldConnectAddr: "Connect address",
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for i, input := range m.addInputs {
		label := fmt.Sprintf("%-16s", labels[i]+":")
		b.WriteString(label)
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelp))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(ActionAddForm))

	if msg := m.messageLine(); msg != "" {
		b.WriteString("\n")
		b.WriteString(msg)
	}
	return b.String()
}

// viewConfirmDelete renders the confirmation gate over the table view
func (m *Model) viewConfirmDelete() string {
	rule := m.pendingDelete

	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarn)).Bold(true)
	prompt := promptStyle.Render(fmt.Sprintf(
		"Delete rule(s) on %s:%s? This also removes firewall rule %q. (%s)",
		rule.ListenAddress, rule.ListenPort, firewall.RuleName(rule.ListenPort), ActionConfirmDel))

	tableView := lipgloss.PlaceHorizontal(m.width, lipgloss.Left, m.rulesTable.View())
	return lipgloss.JoinVertical(lipgloss.Left, tableView, "", prompt)
}

// messageLine renders the primary error or status feedback line
func (m *Model) messageLine() string {
	if m.errorMsg != "" {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		return errorStyle.Render(fmt.Sprintf("ERROR: %s", m.errorMsg))
	}
	if m.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorStatus))
		return statusStyle.Render(m.statusMsg)
	}
	return ""
}

// diagnosticsPane renders the recent diagnostic events from the core
func (m *Model) diagnosticsPane() string {
	if len(m.diagLines) == 0 {
		return ""
	}
	diagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDiag))
	return diagStyle.Render(strings.Join(m.diagLines, "\n"))
}
