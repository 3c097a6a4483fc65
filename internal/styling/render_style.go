// Package styling turns configured colors into styles a renderer can use.
package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DrawStyling is an immutable text style. Every modifier returns a new
// styling and leaves the receiver as it was.
type DrawStyling interface {
	AsTcell() tcell.Style

	DefaultDimmed() DrawStyling
	DefaultEmphasized() DrawStyling
	LightenedBG(percentage int) DrawStyling
	DarkenedBG(percentage int) DrawStyling

	Italicized() DrawStyling
	Bolded() DrawStyling

	ToString() string
}

// FallbackStyling keeps its colors renderer-independent and converts them
// only when asked for a tcell.Style.
type FallbackStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// derive applies f to a copy of s.
func (s *FallbackStyling) derive(f func(*FallbackStyling)) DrawStyling {
	c := *s
	f(&c)
	return &c
}

// AsTcell converts the styling for drawing on a tcell.Screen.
func (s *FallbackStyling) AsTcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(colorfulColorToTcellColor(s.fg)).
		Background(colorfulColorToTcellColor(s.bg)).
		Bold(s.bold).
		Italic(s.italic).
		Underline(s.underlined)
}

// DefaultDimmed lightens both colors by half.
func (s *FallbackStyling) DefaultDimmed() DrawStyling {
	return s.derive(func(c *FallbackStyling) {
		c.fg = lightenColorfulColor(c.fg, 50)
		c.bg = lightenColorfulColor(c.bg, 50)
	})
}

// DefaultEmphasized darkens both colors by a fifth.
func (s *FallbackStyling) DefaultEmphasized() DrawStyling {
	return s.derive(func(c *FallbackStyling) {
		c.fg = darkenColorfulColor(c.fg, 20)
		c.bg = darkenColorfulColor(c.bg, 20)
	})
}

// LightenedBG lightens the background by the given percentage.
func (s *FallbackStyling) LightenedBG(percentage int) DrawStyling {
	return s.derive(func(c *FallbackStyling) { c.bg = lightenColorfulColor(c.bg, percentage) })
}

// DarkenedBG darkens the background by the given percentage.
func (s *FallbackStyling) DarkenedBG(percentage int) DrawStyling {
	return s.derive(func(c *FallbackStyling) { c.bg = darkenColorfulColor(c.bg, percentage) })
}

// Italicized sets the italic attribute.
func (s *FallbackStyling) Italicized() DrawStyling {
	return s.derive(func(c *FallbackStyling) { c.italic = true })
}

// Bolded sets the bold attribute.
func (s *FallbackStyling) Bolded() DrawStyling {
	return s.derive(func(c *FallbackStyling) { c.bold = true })
}

// ToString renders the styling as e.g. "[fg:'#ffffff' bg:'#000000' (b:true i:false u:false)]".
func (s *FallbackStyling) ToString() string {
	return fmt.Sprintf("[fg:'%s' bg:'%s' (b:%t i:%t u:%t)]",
		s.fg.Hex(), s.bg.Hex(), s.bold, s.italic, s.underlined)
}

// StyleFromHex builds a styling from two '#rrggbb' or '#rgb' colors.
// It panics on malformed input; configured colors are validated when the
// configuration is parsed.
func StyleFromHex(fg, bg string) *FallbackStyling {
	return &FallbackStyling{
		fg: colorfulColorFromHexString(fg),
		bg: colorfulColorFromHexString(bg),
	}
}

// StyleFromColors builds a styling from two colors.
func StyleFromColors(fg, bg colorful.Color) *FallbackStyling {
	return &FallbackStyling{fg: fg, bg: bg}
}
