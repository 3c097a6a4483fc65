package tui

import (
	"strings"

	"github.com/ja-he/timeruler/internal/styling"
)

// TextRenderer renders into an in-memory grid of runes instead of a terminal.
// Styles are ignored.
//
// It serves as the surface for printing a frame as plain text and for
// inspecting what panes draw.
type TextRenderer struct {
	w, h  int
	cells [][]rune
}

// NewTextRenderer returns a blank TextRenderer of the given size.
// Non-positive sizes give an empty surface.
func NewTextRenderer(w, h int) *TextRenderer {
	r := &TextRenderer{w: max(w, 0), h: max(h, 0)}
	r.Clear()
	return r
}

// Dimensions returns the size of the grid.
func (r *TextRenderer) Dimensions() (x, y, w, h int) {
	return 0, 0, r.w, r.h
}

// Clear blanks the grid.
func (r *TextRenderer) Clear() {
	r.cells = make([][]rune, r.h)
	for i := range r.cells {
		r.cells[i] = []rune(strings.Repeat(" ", r.w))
	}
}

// Show does nothing; the grid is always current.
func (r *TextRenderer) Show() {}

// DrawText writes text into the grid, wrapping within the given box.
func (r *TextRenderer) DrawText(x, y, w, h int, _ styling.DrawStyling, text string) {
	forEachTextCell(x, y, w, h, text, r.set)
}

// DrawBox blanks the given box.
func (r *TextRenderer) DrawBox(x, y, w, h int, _ styling.DrawStyling) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.set(col, row, ' ')
		}
	}
}

// Row returns the given row of the grid as a string, or "" when out of range.
func (r *TextRenderer) Row(y int) string {
	if y < 0 || y >= r.h {
		return ""
	}
	return string(r.cells[y])
}

// Cell returns the rune at the given position, or 0 when out of range.
func (r *TextRenderer) Cell(x, y int) rune {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return 0
	}
	return r.cells[y][x]
}

// String returns the grid as lines with trailing whitespace removed.
func (r *TextRenderer) String() string {
	lines := make([]string, r.h)
	for i := range r.cells {
		lines[i] = strings.TrimRight(string(r.cells[i]), " ")
	}
	return strings.Join(lines, "\n")
}

func (r *TextRenderer) set(x, y int, c rune) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	r.cells[y][x] = c
}
