// Package ui contains the renderer-independent parts of the user interface:
// the pane abstractions, the renderer contracts and the construction of the
// per-frame DrawPlan.
package ui

import (
	"github.com/ja-he/timeruler/internal/styling"
)

// Pane is a UI pane.
//
// Panes form a tree rooted in a root pane, which draws its subpanes and
// answers position queries by consulting them.
type Pane interface {
	Draw()
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo

	PaneQuerier

	SetParent(PaneQuerier)
}

// PaneQuerier is the read-only view a child gets of its parent.
type PaneQuerier interface {
	IsVisible() bool
	Identify() PaneID
}

// PaneType names the kind of pane a screen position falls on.
type PaneType int

const (
	_ PaneType = iota
	// NoPane is the type of positions outside every visible pane.
	NoPane
	// RulerPaneType is the ruler.
	RulerPaneType
	// StatusPaneType is the status bar.
	StatusPaneType
	// LogPaneType is the log overlay.
	LogPaneType
	// HelpPaneType is the help overlay.
	HelpPaneType
)

var paneTypeNames = map[PaneType]string{
	NoPane:         "NoPane",
	RulerPaneType:  "RulerPaneType",
	StatusPaneType: "StatusPaneType",
	LogPaneType:    "LogPaneType",
	HelpPaneType:   "HelpPaneType",
}

// ToString gives the pane type's name for logs and test output.
func (t PaneType) ToString() string {
	if name, ok := paneTypeNames[t]; ok {
		return name
	}
	return "[UNKNOWN]"
}

// PaneID identifies a pane within one pane tree.
type PaneID uint

// NonePaneID is the zero ID, which no generated ID ever equals.
const NonePaneID PaneID = 0

var lastPaneID = NonePaneID

// GeneratePaneID hands out the next pane ID.
var GeneratePaneID = func() PaneID {
	lastPaneID++
	return lastPaneID
}

// Renderer draws onto a cell surface whose origin is its top-left corner.
//
// Both operations clip against the renderer's bounds: whatever part of the
// requested rectangle lies outside them is not drawn.
type Renderer interface {
	// DrawBox fills the rectangle with the style's background.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// DrawText writes text into the rectangle, wrapping at its width.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a Renderer bound to a sub-rectangle of the surface.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions gives the bounding rectangle.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl frames a frame: the root pane clears the surface
// before its subpanes draw and shows it after.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// MouseCursorPos is a cell position on screen, 0,0 being top-left.
type MouseCursorPos struct {
	X, Y int
}
