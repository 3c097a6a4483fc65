package config

import "github.com/ja-he/timeruler/internal/input"

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Ruler:      defaultRuler(),
		Keys:       DefaultKeys(),
	}
}

// DefaultKeys returns the default key bindings.
func DefaultKeys() input.Bindings {
	return input.Bindings{
		"quit":           "q",
		"zoom-in":        "+",
		"zoom-out":       "-",
		"pan-left":       "h",
		"pan-right":      "l",
		"reset-zoom":     "0",
		"center-on-now":  "n",
		"center-on-clip": "c",
		"toggle-help":    "?",
		"toggle-log":     "L",
		"toggle-debug":   "P",
	}
}

func defaultRuler() Ruler {
	yes := true
	panStep := 1
	return Ruler{
		CenterIndicator: &yes,
		Timestamp:       &yes,
		DayNight:        &yes,
		PanStep:         &panStep,
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			RulerDay:          Styling{Fg: "#f0f0f0", Bg: "#303030", Style: &FontStyle{}},
			RulerNight:        Styling{Fg: "#f0f0f0", Bg: "#222255", Style: &FontStyle{}},
			RulerLabel:        Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			ClipBand:          Styling{Fg: "#ccebff", Bg: "#0a2a40", Style: &FontStyle{}},
			ClipMarker:        Styling{Fg: "#ccebff", Bg: "#0067ab", Style: &FontStyle{Bold: true}},
			ClipMarkerActive:  Styling{Fg: "#ffffff", Bg: "#0099ff", Style: &FontStyle{Bold: true}},
			CenterIndicator:   Styling{Fg: "#ffffff", Bg: "#cc0000", Style: &FontStyle{Bold: true}},
			Timestamp:         Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
			Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		RulerDay:          Styling{Fg: "#404040", Bg: "#fff0cc", Style: &FontStyle{}},
		RulerNight:        Styling{Fg: "#f0f0f0", Bg: "#404060", Style: &FontStyle{}},
		RulerLabel:        Styling{Fg: "#404040", Bg: "#ffffff", Style: &FontStyle{}},
		ClipBand:          Styling{Fg: "#0067ab", Bg: "#ccebff", Style: &FontStyle{}},
		ClipMarker:        Styling{Fg: "#ffffff", Bg: "#0067ab", Style: &FontStyle{Bold: true}},
		ClipMarkerActive:  Styling{Fg: "#ffffff", Bg: "#003d66", Style: &FontStyle{Bold: true}},
		CenterIndicator:   Styling{Fg: "#ffffff", Bg: "#ff0000", Style: &FontStyle{Bold: true}},
		Timestamp:         Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
		Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#a0a0a0", Bg: "#ffffff", Style: &FontStyle{}},
		Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
	}
}
