package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/control"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/tui"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/ui/panes"
)

// PlanCommand contains flags for the `plan` command line command, for
// `go-flags` to parse command line args into.
type PlanCommand struct {
	Width     int     `short:"w" long:"width" default:"80" description:"the width of the ruler in pixels (columns)" value-name:"<px>"`
	Center    string  `short:"c" long:"center" description:"the time at the center of the ruler (default: now)" value-name:"<yyyy-mm-dd HH:MM:SS>"`
	Zoom      float64 `short:"z" long:"zoom" description:"the zoom in pixels per second, clamped to the supported range (default: initial zoom)" value-name:"<px/s>"`
	ClipStart string  `long:"clip-start" description:"the start of the clip range (default: far before the center)" value-name:"<yyyy-mm-dd HH:MM:SS>"`
	ClipEnd   string  `long:"clip-end" description:"the end of the clip range (default: far after the center)" value-name:"<yyyy-mm-dd HH:MM:SS>"`
	ASCII     bool    `short:"a" long:"ascii" description:"draw the ruler as text instead of printing the plan as YAML"`
}

// Execute executes the plan command.
// (This gets called by `go-flags` when `plan` is provided on the command line)
func (command *PlanCommand) Execute(args []string) error {
	return command.run(os.Stdout, time.Now())
}

func (command *PlanCommand) run(out io.Writer, now time.Time) error {
	if command.Width <= 0 {
		return fmt.Errorf("width must be positive (is %d)", command.Width)
	}

	center := now
	if command.Center != "" {
		var err error
		center, err = parseTime(command.Center)
		if err != nil {
			return fmt.Errorf("invalid center (%w)", err)
		}
	}

	clip := model.NewClipRangeAround(center, model.InitialClipHalfSpan)
	if command.ClipStart != "" || command.ClipEnd != "" {
		start, end := clip.Start(), clip.End()
		var err error
		if command.ClipStart != "" {
			if start, err = parseTime(command.ClipStart); err != nil {
				return fmt.Errorf("invalid clip start (%w)", err)
			}
		}
		if command.ClipEnd != "" {
			if end, err = parseTime(command.ClipEnd); err != nil {
				return fmt.Errorf("invalid clip end (%w)", err)
			}
		}
		if clip, err = model.NewClipRange(start, end); err != nil {
			return err
		}
	}

	viewport := control.NewViewportController(center, clip)
	if command.Zoom != 0 {
		viewport.SetZoom(command.Zoom)
	}
	plan := viewport.Plan(float64(command.Width))

	if command.ASCII {
		return writeASCII(out, plan, command.Width)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(plan); err != nil {
		return fmt.Errorf("could not encode plan (%w)", err)
	}
	return encoder.Close()
}

// writeASCII draws the plan the way the TUI's ruler pane does, as text.
func writeASCII(out io.Writer, plan ui.DrawPlan, width int) error {
	renderer := tui.NewTextRenderer(width, panes.RulerHeight)
	dimensions := func() (x, y, w, h int) { return 0, 0, width, panes.RulerHeight }
	rulerPane := panes.NewRulerPane(
		renderer,
		dimensions,
		styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet),
		func(int) ui.DrawPlan { return plan },
		func() control.DragMode { return control.DragModeIdle },
		func() panes.RulerSettings { return panes.RulerSettings{CenterIndicator: true, Timestamp: true} },
		nil,
	)
	rulerPane.Draw()
	_, err := fmt.Fprintln(out, renderer.String())
	return err
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime parses a time in the local zone, or, in RFC 3339 format, in the
// zone it states.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse time '%s' (expected e.g. '2006-01-02 15:04:05')", s)
}
