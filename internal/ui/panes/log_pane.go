package panes

import (
	"fmt"
	"sort"

	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	if w <= 0 || h <= 0 {
		return
	}

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x+(w/2-len([]rune(title))/2), y, len([]rune(title)), 1, p.Stylesheet.LogTitleBox, title)

	const levelLen = len(" error ")
	const extraDataIndentWidth = levelLen + 1

	// at most one entry per row can be visible, so that many suffice
	entries := p.logReader.Tail(h)
	row := 2
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]
		field := func(k string) string {
			if v, ok := entry[k]; ok {
				return fmt.Sprint(v)
			}
			return ""
		}

		level := field("level")
		p.Renderer.DrawText(x, y+row, levelLen, 1, p.levelStyle(level), util.PadCenter(level, levelLen))

		col := x + extraDataIndentWidth
		for _, part := range []struct {
			text  string
			style styling.DrawStyling
		}{
			{field("message"), p.Stylesheet.LogDefault},
			{field("caller"), p.Stylesheet.LogEntryLocation},
			{field("time"), p.Stylesheet.LogEntryTime},
		} {
			p.Renderer.DrawText(col, y+row, x+w-col, 1, part.style, part.text)
			col += len([]rune(part.text)) + 1
		}
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "caller", "message", "time", "level":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= h {
				break
			}
			col := x + extraDataIndentWidth
			p.Renderer.DrawText(col, y+row, w, 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(col+len(k)+2, y+row, w, 1, p.Stylesheet.LogEntryLocation, field(k))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error", "fatal", "panic":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *LogPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.LogPanePositionInfo{}
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}
