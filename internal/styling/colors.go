package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func colorfulColorToTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// lightenColorfulColor moves the color's lightness towards white by the given
// percentage of the remaining distance.
func lightenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	scalar := float64(percentage) / 100.0
	return colorful.Hsl(hue, sat, ltn+(1.0-ltn)*scalar)
}

// darkenColorfulColor moves the color's lightness towards black by the given
// percentage of the remaining distance.
func darkenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	scalar := float64(percentage) / 100.0
	return colorful.Hsl(hue, sat, ltn-ltn*scalar)
}

func colorfulColorFromHexString(hex string) colorful.Color {
	color, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("unable to create colorful.Color from '%s' due to error: '%s'", hex, err.Error()))
	}
	return color
}
