package panes

import (
	"math"

	"github.com/ja-he/timeruler/internal/control"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
)

// Rows of the ruler, relative to its top.
const (
	rulerTimestampRow = iota
	rulerClipRow
	rulerAxisRow
	rulerLabelRow

	// RulerHeight is the number of rows the ruler pane needs.
	RulerHeight
)

// Glyphs the ruler is drawn with.
const (
	MinorTickGlyph       = '│'
	MajorTickGlyph       = '┃'
	ClipStartGlyph       = '▌'
	ClipEndGlyph         = '▐'
	CenterIndicatorGlyph = '▼'
)

// RulerSettings toggles the optional parts of the ruler.
type RulerSettings struct {
	CenterIndicator bool
	Timestamp       bool
	DayNight        bool
}

// RulerPane draws the time ruler from a DrawPlan: the timestamp, the clip
// band with its markers, the center indicator, the tick axis and the labels
// under the major ticks.
//
// One column is one pixel of the plan.
type RulerPane struct {
	ui.LeafPane

	plan     func(width int) ui.DrawPlan
	dragMode func() control.DragMode
	settings func() RulerSettings

	// may be nil, in which case the axis is not shaded
	suntimes *model.SuntimesProvider
}

// Draw draws this pane.
// A pane without area (e.g. in a terminal collapsed to nothing) draws nothing.
func (p *RulerPane) Draw() {
	x, y, w, h := p.Dimensions()
	if w <= 0 || h <= 0 {
		return
	}

	plan := p.plan(w)
	settings := p.settings()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	if settings.Timestamp {
		p.Renderer.DrawText(x, y+rulerTimestampRow, w, 1, p.Stylesheet.Timestamp, plan.TimestampLabel)
	}

	p.drawClip(x, y+rulerClipRow, w, plan.Clip, settings.CenterIndicator, plan.CenterX)
	p.drawAxis(x, y+rulerAxisRow, w, plan, settings.DayNight)
	p.drawLabels(x, y+rulerLabelRow, w, plan.Labels)
}

func (p *RulerPane) drawClip(x, y, w int, clip ui.ClipMarkers, centerIndicator bool, centerX float64) {
	if clip.Band {
		from := column(clip.BandFrom)
		to := min(int(math.Ceil(clip.BandTo)), w)
		p.Renderer.DrawBox(x+from, y, to-from, 1, p.Stylesheet.ClipBand)
	}

	if centerIndicator {
		col := column(centerX)
		style := p.Stylesheet.CenterIndicator
		p.Renderer.DrawText(x+col, y, 1, 1, style, string(CenterIndicatorGlyph))
	}

	mode := p.dragMode()
	if clip.StartX != nil {
		style := p.Stylesheet.ClipMarker
		if mode == control.DragModeClipStart {
			style = p.Stylesheet.ClipMarkerActive
		}
		p.Renderer.DrawText(x+column(*clip.StartX), y, 1, 1, style, string(ClipStartGlyph))
	}
	if clip.EndX != nil {
		style := p.Stylesheet.ClipMarker
		if mode == control.DragModeClipEnd {
			style = p.Stylesheet.ClipMarkerActive
		}
		p.Renderer.DrawText(x+column(*clip.EndX), y, 1, 1, style, string(ClipEndGlyph))
	}
}

func (p *RulerPane) drawAxis(x, y, w int, plan ui.DrawPlan, dayNight bool) {
	styles := make([]styling.DrawStyling, w)
	for col := range styles {
		styles[col] = p.Stylesheet.RulerDay
		if dayNight && p.suntimes != nil {
			seconds := plan.Window.Start + model.PixelsToSeconds(float64(col)+0.5, plan.Zoom)
			if !p.suntimes.IsDaylight(seconds) {
				styles[col] = p.Stylesheet.RulerNight
			}
		}
		p.Renderer.DrawBox(x+col, y, 1, 1, styles[col])
	}

	for _, tick := range plan.Ticks {
		col := column(tick.X)
		if col < 0 || col >= w {
			continue
		}
		if tick.Major {
			p.Renderer.DrawText(x+col, y, 1, 1, styles[col].Bolded(), string(MajorTickGlyph))
		} else {
			p.Renderer.DrawText(x+col, y, 1, 1, styles[col], string(MinorTickGlyph))
		}
	}
}

func (p *RulerPane) drawLabels(x, y, w int, labels []ui.Label) {
	for _, label := range labels {
		textWidth := len([]rune(label.Text))
		start := column(label.X) - textWidth/2
		if start+textWidth <= 0 || start >= w {
			continue
		}
		p.Renderer.DrawText(x+start, y, textWidth, 1, p.Stylesheet.RulerLabel, label.Text)
	}
}

// column returns the column a pixel offset falls into.
func column(px float64) int {
	return int(math.Floor(px))
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *RulerPane) GetPositionInfo(x, y int) ui.PositionInfo {
	px, py, _, _ := p.Dimensions()
	return ui.RulerPanePositionInfo{LocalX: x - px, LocalY: y - py}
}

// NewRulerPane constructs and returns a new RulerPane.
func NewRulerPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	plan func(width int) ui.DrawPlan,
	dragMode func() control.DragMode,
	settings func() RulerSettings,
	suntimes *model.SuntimesProvider,
) *RulerPane {
	return &RulerPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		plan:     plan,
		dragMode: dragMode,
		settings: settings,
		suntimes: suntimes,
	}
}
