package panes

import (
	"sort"

	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
)

// A HelpPane is a pane that displays a help popup listing key bindings and
// their actions.
type HelpPane struct {
	ui.LeafPane

	content func() input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const maxKeyWidth = 12
	const pad = 1
	keyOffset := x + border
	descriptionOffset := keyOffset + maxKeyWidth + pad

	for i, m := range sortedMappings(p.content()) {
		row := y + border + i
		if row >= y+h-border {
			break
		}
		keysWidth := len([]rune(m.mapping))
		p.Renderer.DrawText(keyOffset+maxKeyWidth-keysWidth, row, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), m.mapping)
		p.Renderer.DrawText(descriptionOffset, row, x+w-border-descriptionOffset, 1, p.Stylesheet.Help.Italicized(), m.action)
	}
}

type mappingAndAction = struct {
	mapping string
	action  string
}

// sortedMappings orders the help by action, then by mapping.
func sortedMappings(help input.Help) []mappingAndAction {
	content := make([]mappingAndAction, 0, len(help))
	for mapping, action := range help {
		content = append(content, mappingAndAction{mapping: mapping, action: action})
	}
	sort.Slice(content, func(i, j int) bool {
		if content[i].action != content[j].action {
			return content[i].action < content[j].action
		}
		return content[i].mapping < content[j].mapping
	})
	return content
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *HelpPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.HelpPanePositionInfo{}
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	content func() input.Help,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		content: content,
	}
}
