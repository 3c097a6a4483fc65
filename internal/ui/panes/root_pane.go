package panes

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/util"
)

// RootPane is the top of the pane tree. It owns the render cycle (clearing,
// drawing the subpanes bottom to top, showing), answers position queries and
// holds the input processor all key input goes through.
type RootPane struct {
	ID ui.PaneID

	renderer   ui.RenderOrchestratorControl
	dimensions func() (x, y, w, h int)

	// in drawing order, bottom to top
	subpanes []ui.Pane

	// drawn over everything when visible, but never answers position queries
	performanceMetricsOverlay ui.Pane

	inputProcessor input.ModalInputProcessor

}

// Dimensions returns the dimensions of the whole screen.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// GetPositionInfo asks the topmost visible subpane containing the position.
// Positions not covered by any subpane give ui.NoPanePositionInfo.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	visible := p.visibleSubpanes()
	for i := len(visible) - 1; i >= 0; i-- {
		if util.NewRect(visible[i].Dimensions()).Contains(x, y) {
			return visible[i].GetPositionInfo(x, y)
		}
	}
	return ui.NoPanePositionInfo{}
}

func (p *RootPane) visibleSubpanes() []ui.Pane {
	visible := make([]ui.Pane, 0, len(p.subpanes))
	for _, pane := range p.subpanes {
		if pane.IsVisible() {
			visible = append(visible, pane)
		}
	}
	return visible
}

// IsVisible is always true for the root pane.
func (p *RootPane) IsVisible() bool { return true }

// Identify returns the root pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// Draw renders a full frame.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	for _, pane := range p.visibleSubpanes() {
		log.Trace().Msgf("drawing %d", pane.Identify())
		pane.Draw()
	}
	if p.performanceMetricsOverlay.IsVisible() {
		p.performanceMetricsOverlay.Draw()
	}

	p.renderer.Show()
}

// ProcessInput hands the key to the input processor and reports whether it
// triggered anything.
func (p *RootPane) ProcessInput(key input.Key) bool {
	return p.inputProcessor.ProcessInput(key)
}

// ApplyModalOverlay puts an overlay over the input processor, which then
// gets all input until popped.
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost input overlay.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// GetHelp returns the bindings currently in effect.
func (p *RootPane) GetHelp() input.Help {
	return p.inputProcessor.GetHelp()
}

// NewRootPane constructs and returns a new RootPane.
// The ruler is drawn first, then the status bar, then the log and help
// overlays.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	dimensions func() (x, y, w, h int),
	rulerPane ui.Pane,
	statusPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	performanceMetricsOverlay ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *RootPane {
	rootPane := &RootPane{
		ID:                        ui.GeneratePaneID(),
		renderer:                  renderer,
		dimensions:                dimensions,
		subpanes:                  []ui.Pane{rulerPane, statusPane, logPane, helpPane},
		performanceMetricsOverlay: performanceMetricsOverlay,
		inputProcessor:            inputProcessor,
	}

	for _, pane := range append(rootPane.subpanes, performanceMetricsOverlay) {
		pane.SetParent(rootPane)
	}
	log.Trace().Msgf("created root pane with id '%d'", rootPane.ID)

	return rootPane
}
