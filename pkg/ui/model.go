package ui

import (
	"fmt"

	"wslfwd/pkg/logging"
	"wslfwd/pkg/portproxy"
	"wslfwd/pkg/rules"
	"wslfwd/pkg/wincmd"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the state of the UI
type Model struct {
	uiState UIState

	// Core components
	svc    *rules.Service
	runner wincmd.Runner
	width  int
	height int

	// Central error message
	errorMsg string
	// Status/info message (non-error feedback)
	statusMsg string

	// Rules table and the rule set backing it (always the latest OS
	// snapshot, wholly replaced after each action)
	rulesTable table.Model
	ruleSet    []portproxy.Rule

	// Add-form state
	addInputs []textinput.Model
	addFocus  int

	// Rule awaiting delete confirmation
	pendingDelete *portproxy.Rule

	// Diagnostics pane fed by the service's sink
	diagLines []string
}

// calculateColumnWidths returns column widths based on terminal width
func (m *Model) calculateColumnWidths() []table.Column {
	minWidths := map[string]int{
		ColListenAddr:  15,
		ColListenPort:  11,
		ColConnectAddr: 15,
		ColConnectPort: 12,
	}

	availableWidth := m.width - 10
	availableWidth = max(availableWidth, 56)

	totalMinWidth := 0
	for _, width := range minWidths {
		totalMinWidth += width
	}

	// Distribute extra space, favoring the address columns
	extraSpace := max(availableWidth-totalMinWidth, 0)
	addrExtra := extraSpace * 35 / 100
	portExtra := extraSpace * 15 / 100

	return []table.Column{
		{Title: ColListenAddr, Width: minWidths[ColListenAddr] + addrExtra},
		{Title: ColListenPort, Width: minWidths[ColListenPort] + portExtra},
		{Title: ColConnectAddr, Width: minWidths[ColConnectAddr] + addrExtra},
		{Title: ColConnectPort, Width: minWidths[ColConnectPort] + portExtra},
	}
}

// NewModel builds the UI over a command runner. Every diagnostic the core
// emits is mirrored into the on-screen pane in addition to the base sink.
func NewModel(run wincmd.Runner, base logging.Sink) *Model {
	m := &Model{
		uiState: StateRules,
		runner:  run,
		width:   80, // Default width, will be updated on first WindowSizeMsg
		height:  24, // Default height, will be updated on first WindowSizeMsg
	}

	sink := logging.Sink(logging.FuncSink(m.appendDiagnostic))
	if base != nil {
		sink = logging.MultiSink{base, sink}
	}
	m.svc = rules.NewService(run, sink)

	// --- Initialize Table --- (Define styles first)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(ColorSelectedFg)).
		Background(lipgloss.Color(ColorSelectedBg)).
		Bold(false)

	m.rulesTable = table.New(
		table.WithColumns(m.calculateColumnWidths()),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(s),
	)

	m.addInputs = newAddInputs()

	// Initial load so the first frame shows the OS's current rule set
	m.refreshRules()

	return m
}

func newAddInputs() []textinput.Model {
	placeholders := [addFieldCount]string{
		fieldListenPort:  "Windows port (e.g. 8080)",
		fieldListenAddr:  "0.0.0.0",
		fieldConnectPort: "WSL2 port (e.g. 1996)",
		fieldConnectAddr: "WSL2 IP",
	}
	inputs := make([]textinput.Model, addFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 30
		inputs[i] = ti
	}
	return inputs
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		tableHeight := m.height - RulesViewOffset
		if tableHeight < MinTableHeight {
			tableHeight = MinTableHeight
		}
		m.rulesTable.SetHeight(tableHeight)
		m.rulesTable.SetColumns(m.calculateColumnWidths())
		return m, nil

	case tea.KeyMsg:
		// Global shortcut that works in any state
		if msg.String() == ShortcutExit {
			return m, tea.Quit
		}

		// Delegate to state-specific handlers
		switch m.uiState {
		case StateRules:
			return m.updateRules(msg)
		case StateAddRule:
			return m.updateAddForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
	}

	return m, nil
}

// appendDiagnostic feeds the on-screen diagnostics pane. Debug-level noise
// stays in the file log only.
func (m *Model) appendDiagnostic(level logging.Level, msg string) {
	if level == logging.LevelDebug {
		return
	}
	m.diagLines = append(m.diagLines, fmt.Sprintf("[%s] %s", level, msg))
	if len(m.diagLines) > MaxDiagLines {
		m.diagLines = m.diagLines[len(m.diagLines)-MaxDiagLines:]
	}
}

// refreshRules replaces the displayed rule set with the OS's current one.
func (m *Model) refreshRules() {
	loaded, err := m.svc.Load()
	if err != nil {
		m.errorMsg = fmt.Sprintf("Failed to load rules: %v", err)
		return
	}
	m.setRules(loaded)
}

// setRules swaps in a freshly loaded snapshot; the table is rebuilt, never
// patched in place.
func (m *Model) setRules(loaded []portproxy.Rule) {
	m.ruleSet = loaded
	m.rulesTable.SetRows(ruleRows(loaded))
	if cursor := m.rulesTable.Cursor(); cursor >= len(loaded) && len(loaded) > 0 {
		m.rulesTable.SetCursor(len(loaded) - 1)
	}
}

func ruleRows(ruleSet []portproxy.Rule) []table.Row {
	rows := make([]table.Row, 0, len(ruleSet))
	for _, r := range ruleSet {
		rows = append(rows, table.Row{r.ListenAddress, r.ListenPort, r.ConnectAddress, r.ConnectPort})
	}
	return rows
}

// selectedRule returns the rule under the cursor.
func (m *Model) selectedRule() (portproxy.Rule, bool) {
	idx := m.rulesTable.Cursor()
	if idx < 0 || idx >= len(m.ruleSet) {
		return portproxy.Rule{}, false
	}
	return m.ruleSet[idx], true
}

// applyActionResult folds a mutating action's outcome into the display:
// the snapshot, the primary error or success message, and the secondary
// firewall diagnostic.
func (m *Model) applyActionResult(result *rules.ActionResult, err error, successMsg string) {
	if result != nil && result.Rules != nil {
		m.setRules(result.Rules)
	}
	if err != nil {
		m.errorMsg = err.Error()
		return
	}
	m.statusMsg = successMsg
	if result != nil && result.Firewall != nil && !result.Firewall.OK {
		m.statusMsg = fmt.Sprintf("%s (firewall step failed: %s)", successMsg, result.Firewall.Message)
	}
}
