package ui

// UIState represents the different views/states of the UI
type UIState int

const (
	StateRules         UIState = iota // Rules table view
	StateAddRule                      // Add-rule form
	StateConfirmDelete                // Yes/no gate before deleting the selected rule
)

// Add-form field order; indexes into Model.addInputs.
const (
	fieldListenPort = iota
	fieldListenAddr
	fieldConnectPort
	fieldConnectAddr
	addFieldCount
)
