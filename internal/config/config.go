// Package config holds the configuration file format and its defaults.
package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/timeruler/internal/input"
)

// Config is the configuration data as present in a config file at
// '${TIMERULER_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet     `yaml:"stylesheet"`
	Ruler      Ruler          `yaml:"ruler"`
	Keys       input.Bindings `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	RulerDay          Styling `yaml:"ruler-day"`
	RulerNight        Styling `yaml:"ruler-night"`
	RulerLabel        Styling `yaml:"ruler-label"`
	ClipBand          Styling `yaml:"clip-band"`
	ClipMarker        Styling `yaml:"clip-marker"`
	ClipMarkerActive  Styling `yaml:"clip-marker-active"`
	CenterIndicator   Styling `yaml:"center-indicator"`
	Timestamp         Styling `yaml:"timestamp"`
	Status            Styling `yaml:"status"`
	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
	Help              Styling `yaml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// Ruler holds the behavioral settings of the ruler.
// Unset (nil) fields keep their defaults.
type Ruler struct {
	CenterIndicator *bool `yaml:"center-indicator,omitempty"`
	Timestamp       *bool `yaml:"timestamp,omitempty"`
	DayNight        *bool `yaml:"day-night,omitempty"`
	// PanStep is the number of major tick intervals a single pan key moves.
	PanStep *int `yaml:"pan-step,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	if err := parsedConfig.Stylesheet.validate(); err != nil {
		return defaultConfig, err
	}
	if parsedConfig.Ruler.PanStep != nil && *parsedConfig.Ruler.PanStep < 1 {
		return defaultConfig, fmt.Errorf("ruler pan-step must be at least 1 (is %d)", *parsedConfig.Ruler.PanStep)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)
	result.Ruler = base.Ruler.augmentWith(augment.Ruler)

	result.Keys = make(input.Bindings, len(base.Keys))
	for action, keys := range base.Keys {
		result.Keys[action] = keys
	}
	for action, keys := range augment.Keys {
		result.Keys[action] = keys
	}

	return result
}

func (base Ruler) augmentWith(augment Ruler) Ruler {
	result := base
	if augment.CenterIndicator != nil {
		result.CenterIndicator = augment.CenterIndicator
	}
	if augment.Timestamp != nil {
		result.Timestamp = augment.Timestamp
	}
	if augment.DayNight != nil {
		result.DayNight = augment.DayNight
	}
	if augment.PanStep != nil {
		result.PanStep = augment.PanStep
	}
	return result
}

// the stylesheet's entries in a fixed order, for walking base and augment in
// lockstep
func (s *Stylesheet) entries() []*Styling {
	return []*Styling{
		&s.Normal,
		&s.RulerDay,
		&s.RulerNight,
		&s.RulerLabel,
		&s.ClipBand,
		&s.ClipMarker,
		&s.ClipMarkerActive,
		&s.CenterIndicator,
		&s.Timestamp,
		&s.Status,
		&s.LogDefault,
		&s.LogTitleBox,
		&s.LogEntryTypeError,
		&s.LogEntryTypeWarn,
		&s.LogEntryTypeInfo,
		&s.LogEntryTypeDebug,
		&s.LogEntryTypeTrace,
		&s.LogEntryLocation,
		&s.LogEntryTime,
		&s.Help,
	}
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	resultEntries := result.entries()
	augmentEntries := augment.entries()
	for i := range resultEntries {
		resultEntries[i].overwriteIfDefined(*augmentEntries[i])
	}

	return result
}

func (s Stylesheet) validate() error {
	for _, entry := range s.entries() {
		for _, color := range []string{entry.Fg, entry.Bg} {
			if color == "" {
				continue
			}
			if _, err := colorful.Hex(color); err != nil {
				return fmt.Errorf("invalid color '%s' in stylesheet (%w)", color, err)
			}
		}
	}
	return nil
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)

// ColorschemeTypeFromString returns the colorscheme type for "light" or
// "dark", defaulting to dark.
func ColorschemeTypeFromString(s string) ColorschemeType {
	if s == "light" {
		return Light
	}
	return Dark
}
