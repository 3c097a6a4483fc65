package styling

import (
	"github.com/ja-he/timeruler/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	RulerDay   DrawStyling
	RulerNight DrawStyling
	RulerLabel DrawStyling

	ClipBand         DrawStyling
	ClipMarker       DrawStyling
	ClipMarkerActive DrawStyling

	CenterIndicator DrawStyling
	Timestamp       DrawStyling

	Status DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) *Stylesheet {
	return &Stylesheet{
		Normal:            StyleFromConfig(c.Normal),
		RulerDay:          StyleFromConfig(c.RulerDay),
		RulerNight:        StyleFromConfig(c.RulerNight),
		RulerLabel:        StyleFromConfig(c.RulerLabel),
		ClipBand:          StyleFromConfig(c.ClipBand),
		ClipMarker:        StyleFromConfig(c.ClipMarker),
		ClipMarkerActive:  StyleFromConfig(c.ClipMarkerActive),
		CenterIndicator:   StyleFromConfig(c.CenterIndicator),
		Timestamp:         StyleFromConfig(c.Timestamp),
		Status:            StyleFromConfig(c.Status),
		LogDefault:        StyleFromConfig(c.LogDefault),
		LogTitleBox:       StyleFromConfig(c.LogTitleBox),
		LogEntryTypeError: StyleFromConfig(c.LogEntryTypeError),
		LogEntryTypeWarn:  StyleFromConfig(c.LogEntryTypeWarn),
		LogEntryTypeInfo:  StyleFromConfig(c.LogEntryTypeInfo),
		LogEntryTypeDebug: StyleFromConfig(c.LogEntryTypeDebug),
		LogEntryTypeTrace: StyleFromConfig(c.LogEntryTypeTrace),
		LogEntryLocation:  StyleFromConfig(c.LogEntryLocation),
		LogEntryTime:      StyleFromConfig(c.LogEntryTime),
		Help:              StyleFromConfig(c.Help),
	}
}

// StyleFromConfig converts a configured styling to a DrawStyling.
func StyleFromConfig(c config.Styling) DrawStyling {
	s := StyleFromHex(c.Fg, c.Bg)
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s
}
