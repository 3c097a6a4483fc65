// Package util contains small helpers shared across the UI.
package util

import "strings"

// Rect is a rectangle on the screen.
type Rect struct {
	X, Y, W, H int
}

// Contains returns whether the position lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

// TruncateAt truncates the string to the given length in runes, marking the
// truncation with trailing dots.
func TruncateAt(s string, length int) string {
	r := []rune(s)
	switch {
	case len(r) <= length:
		return s
	case length <= 3:
		return string([]rune("...")[:max(length, 0)])
	default:
		return string(append(r[:length-3], []rune("...")...))
	}
}

// NewRect returns the rectangle of the given dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// PadCenter centers the string within the given width (in runes), padding it
// with spaces. Strings at least as wide are returned as they are.
func PadCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
