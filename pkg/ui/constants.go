package ui

// Table Column Titles
const (
	ColListenAddr  = "LISTEN ADDRESS"
	ColListenPort  = "LISTEN PORT"
	ColConnectAddr = "CONNECT ADDRESS"
	ColConnectPort = "CONNECT PORT"
)

// Action Lines / Key Hints
const (
	ActionRulesNav   = "↑/↓: Navigate | a: Add Rule | d: Delete Rule | r: Refresh | q: Quit"
	ActionAddForm    = "tab/↓: Next Field | shift+tab/↑: Previous Field | enter: Save | esc: Cancel"
	ActionConfirmDel = "y: Delete | n/esc: Cancel"
)

// Keyboard shortcuts
const (
	ShortcutRefresh = "r"
	ShortcutAdd     = "a"
	ShortcutDelete  = "d"
	ShortcutExit    = "ctrl+c"
)

// Numeric Constants for Layout/Indexing
const (
	MinTableHeight  = 4  // Minimum height for the rules table after calculation
	RulesViewOffset = 10 // Estimated non-table lines in the rules view for height calc
	MaxDiagLines    = 5  // Diagnostic pane depth
)

// Lipgloss Colors
const (
	ColorBorder     = "240"
	ColorSelectedFg = "229"
	ColorSelectedBg = "57"
	ColorTitle      = "14"  // Cyan for titles
	ColorHelp       = "245" // Grey for help text
	ColorError      = "9"   // Red for errors
	ColorStatus     = "10"  // Green for success messages
	ColorWarn       = "11"  // Yellow for confirm prompts and warnings
	ColorDiag       = "8"   // Dim grey for the diagnostics pane
)
