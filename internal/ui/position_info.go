package ui

// PositionInfo describes a position in the user interface.
//
// Retrievers should check for the type of pane they are receiving information
// on and can then retrieve the relevant additional information from it.
type PositionInfo interface {
	PaneType() PaneType
}

// NoPanePositionInfo is the information on a position not covered by any
// meaningful pane.
type NoPanePositionInfo struct{}

// PaneType returns NoPane.
func (NoPanePositionInfo) PaneType() PaneType { return NoPane }

// RulerPanePositionInfo provides information on a position in the ruler pane.
type RulerPanePositionInfo struct {
	// LocalX and LocalY are the position relative to the ruler's top-left
	// corner, i.E. in the coordinates the viewport controller works in.
	LocalX, LocalY int
}

// PaneType returns RulerPaneType.
func (RulerPanePositionInfo) PaneType() PaneType { return RulerPaneType }

// StatusPanePositionInfo provides information on a position in a status pane.
type StatusPanePositionInfo struct{}

// PaneType returns StatusPaneType.
func (StatusPanePositionInfo) PaneType() PaneType { return StatusPaneType }

// LogPanePositionInfo provides information on a position in the log pane.
type LogPanePositionInfo struct{}

// PaneType returns LogPaneType.
func (LogPanePositionInfo) PaneType() PaneType { return LogPaneType }

// HelpPanePositionInfo provides information on a position in the help pane.
type HelpPanePositionInfo struct{}

// PaneType returns HelpPaneType.
func (HelpPanePositionInfo) PaneType() PaneType { return HelpPaneType }
