// Package tui provides the surfaces the UI draws onto: a tcell terminal
// screen and a headless text grid.
package tui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/timeruler/internal/styling"
)

// ScreenHandler is the terminal surface. It wraps a tcell.Screen and does a
// full resync on the next Show after a resize has been reported.
type ScreenHandler struct {
	screen tcell.Screen

	syncMtx   sync.Mutex
	needsSync bool
}

// NewTUIScreenHandler sets up the process's terminal.
func NewTUIScreenHandler() (*ScreenHandler, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create screen (%w)", err)
	}
	return NewScreenHandler(screen)
}

// NewScreenHandler initializes the given screen and returns a ScreenHandler
// for it. Mouse reporting is enabled, as the ruler is operated by mouse.
func NewScreenHandler(screen tcell.Screen) (*ScreenHandler, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize screen (%w)", err)
	}

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorReset).
		Foreground(tcell.ColorReset))
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	return &ScreenHandler{screen: screen}, nil
}

// GetEventPollable exposes only the screen's event source.
func (s *ScreenHandler) GetEventPollable() EventPollable {
	return s.screen
}

// Fini restores the terminal.
func (s *ScreenHandler) Fini() {
	s.screen.Fini()
}

// NeedsSync makes the next Show a full Sync. Call it on resize.
func (s *ScreenHandler) NeedsSync() {
	s.syncMtx.Lock()
	defer s.syncMtx.Unlock()
	s.needsSync = true
}

// Dimensions gives the whole screen; the origin is always 0,0.
func (s *ScreenHandler) Dimensions() (x, y, w, h int) {
	w, h = s.screen.Size()
	return 0, 0, w, h
}

// Clear blanks the back buffer.
func (s *ScreenHandler) Clear() {
	s.screen.Clear()
}

// Show flushes the back buffer to the terminal.
func (s *ScreenHandler) Show() {
	s.syncMtx.Lock()
	resync := s.needsSync
	s.needsSync = false
	s.syncMtx.Unlock()

	if !resync {
		s.screen.Show()
		return
	}
	s.screen.Sync()
}

// DrawText writes text into the rectangle, wrapping at its width.
func (s *ScreenHandler) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	tcellStyle := style.AsTcell()
	forEachTextCell(x, y, w, h, text, func(col, row int, r rune) {
		s.screen.SetContent(col, row, r, nil, tcellStyle)
	})
}

// DrawBox fills the rectangle with blanks in the given style.
func (s *ScreenHandler) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	tcellStyle := style.AsTcell()
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, tcellStyle)
		}
	}
}

// forEachTextCell lays out text in the given box, wrapping at its width and
// stopping at its height.
func forEachTextCell(x, y, w, h int, text string, f func(col, row int, r rune)) {
	if w <= 0 || h <= 0 {
		return
	}

	col := x
	row := y
	for _, r := range text {
		f(col, row, r)
		col++
		if col >= x+w {
			row++
			col = x
		}
		if row >= y+h {
			return
		}
	}
}

// EventPollable is a source of terminal events.
type EventPollable interface {
	PollEvent() tcell.Event
}

// InitializedScreen is a screen that must be finalized on shutdown.
type InitializedScreen interface {
	Fini()
}

// ScreenSynchronizer accepts resize notifications.
type ScreenSynchronizer interface {
	NeedsSync()
}
