package panes

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/util"
)

// PerfPane is an overlay showing render and input processing times.
type PerfPane struct {
	ui.LeafPane

	renderTime          util.MetricsGetter
	eventProcessingTime util.MetricsGetter
}

// Draw draws the last and the average duration of both measurements, one
// measurement per row, the last duration highlighted by how far it exceeds
// the average.
func (p *PerfPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dims()
	lastWidth := len(" render time: ....... xs ")
	plain := styling.StyleFromHex("#000000", "#f0f0f0")
	p.Renderer.DrawBox(x, y, w, h, plain)

	rows := []struct {
		name    string
		metrics util.MetricsGetter
	}{
		{"render", p.renderTime},
		{"input ", p.eventProcessingTime},
	}
	for i, row := range rows {
		last := row.metrics.GetLast().Microseconds()
		avg := row.metrics.Avg().Microseconds()
		p.Renderer.DrawText(x, y+i, lastWidth, 1, deviationStyle(last, avg),
			fmt.Sprintf(" %s time: % 7d µs ", row.name, last))
		p.Renderer.DrawText(x+lastWidth, y+i, w-lastWidth, 1, plain,
			fmt.Sprintf(" %s avg ~ % 7d µs", row.name, avg))
	}
}

// deviationStyle gives a background that is the more saturated red the more
// the last value exceeds the average.
func deviationStyle(last, avg int64) styling.DrawStyling {
	bad := colorful.Color{R: 1.0, G: 0.8, B: 0.8}
	hue, _, ltn := bad.Hsl()

	sat := float64(0)
	if last > avg && avg > 0 {
		sat = math.Min(float64(last-avg)/float64(avg), 1.0)
	}
	return styling.StyleFromColors(
		colorful.Hsl(0, 0, 0), // black
		colorful.Hsl(hue, sat, ltn),
	)
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *PerfPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.NoPanePositionInfo{}
}

// NewPerfPane constructs and returns a new PerfPane.
func NewPerfPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	condition func() bool,
	renderTime util.MetricsGetter,
	eventProcessingTime util.MetricsGetter,
) *PerfPane {
	return &PerfPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer: renderer,
			Dims:     dimensions,
		},
		renderTime:          renderTime,
		eventProcessingTime: eventProcessingTime,
	}
}
